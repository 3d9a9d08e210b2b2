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

import "fmt"

// ConfigError reports a delimiter record that fails the uniqueness invariant.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "edifact: config: " + e.Msg }

// EncodingError reports an unknown syntax identifier, or text that could not
// be decoded under any known encoding.
type EncodingError struct {
	Identifier string
	Msg        string
}

func (e *EncodingError) Error() string {
	if e.Identifier == "" {
		return "edifact: encoding: " + e.Msg
	}
	return fmt.Sprintf("edifact: encoding: %s: %s", e.Identifier, e.Msg)
}

// SyntaxError reports a structural violation while parsing a segment, keyed
// by the zero-based index of the offending segment line.
type SyntaxError struct {
	Segment int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("edifact: syntax: segment %d: %s", e.Segment, e.Msg)
}

// UnknownSegmentError reports a three-letter tag outside the recognised
// segment set.
type UnknownSegmentError struct {
	Tag string
}

func (e *UnknownSegmentError) Error() string {
	return fmt.Sprintf("edifact: unknown segment: %q", e.Tag)
}
