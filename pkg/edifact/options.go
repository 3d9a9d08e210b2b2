// Copyright 2021 Comcast Cable Communications Management, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or   implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package edifact

// config carries the options shared by ParseEDI and MakeEDI.
type config struct {
	delimiters            Delimiters
	withUNA               bool
	withNewline           bool
	withCarriageReturn    bool
	defaultEncoding       string
	warnInvalidCharacters bool
}

func defaultConfig() config {
	return config{
		delimiters:      DefaultDelimiters(),
		withUNA:         true,
		defaultEncoding: DefaultIdentifier,
	}
}

// Option configures ParseEDI or MakeEDI.
type Option func(*config)

// WithDelimiters overrides the default delimiter record.
func WithDelimiters(d Delimiters) Option {
	return func(c *config) { c.delimiters = d }
}

// WithUNA controls whether MakeEDI emits a leading UNA segment. It has no
// effect on ParseEDI, which always honours an in-band UNA if present.
func WithUNA(with bool) Option {
	return func(c *config) { c.withUNA = with }
}

// WithNewline controls whether MakeEDI appends a newline after each
// segment terminator except the last (and after UNA, if emitted).
func WithNewline(with bool) Option {
	return func(c *config) { c.withNewline = with }
}

// WithCarriageReturn controls whether MakeEDI appends a carriage return
// after each segment terminator except the last (and after UNA, if
// emitted), before any newline.
func WithCarriageReturn(with bool) Option {
	return func(c *config) { c.withCarriageReturn = with }
}

// WithDefaultEncoding sets the syntax identifier used when no UNB segment
// is present to sniff one from, and when emitting a message with no UNB.
func WithDefaultEncoding(identifier string) Option {
	return func(c *config) { c.defaultEncoding = identifier }
}

// WithWarnInvalidCharacters enables scanning decoded text for characters
// that are neither printable nor part of the sniffed identifier's
// whitelist. Warnings are logged via Logger, not raised as errors.
func WithWarnInvalidCharacters(warn bool) Option {
	return func(c *config) { c.warnInvalidCharacters = warn }
}
