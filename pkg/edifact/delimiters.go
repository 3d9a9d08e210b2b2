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

// Default delimiter characters, in effect when a message carries no UNA
// service-string advice segment.
const (
	DefaultComponentSeparator   = ':'
	DefaultDataElementSeparator = '+'
	DefaultDecimalMark          = '.'
	DefaultReleaseChar          = '?'
	DefaultReservedSpace        = ' '
	DefaultSegmentTerminator    = '\''
	DefaultNewline              = '\n'
	DefaultCarriageReturn       = '\r'
)

// Delimiters is the six-character service-string advice record (plus the two
// line-break characters, which are never part of the UNA record itself but
// participate in the uniqueness invariant). It governs how the wire form of
// an interchange is tokenised into segments, data elements and components.
type Delimiters struct {
	ComponentSeparator   rune
	DataElementSeparator rune
	DecimalMark          rune
	ReleaseChar          rune
	ReservedSpace        rune
	SegmentTerminator    rune
	Newline              rune
	CarriageReturn       rune
}

// DefaultDelimiters returns the standard EDIFACT delimiter record:
// component ':', data element '+', decimal '.', release '?', segment '\''.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		ComponentSeparator:   DefaultComponentSeparator,
		DataElementSeparator: DefaultDataElementSeparator,
		DecimalMark:          DefaultDecimalMark,
		ReleaseChar:          DefaultReleaseChar,
		ReservedSpace:        DefaultReservedSpace,
		SegmentTerminator:    DefaultSegmentTerminator,
		Newline:              DefaultNewline,
		CarriageReturn:       DefaultCarriageReturn,
	}
}

// UNAString returns the six delimiter characters in UNA record order:
// component, data-element, decimal, release, reserved space, terminator.
func (d Delimiters) UNAString() string {
	return string([]rune{
		d.ComponentSeparator,
		d.DataElementSeparator,
		d.DecimalMark,
		d.ReleaseChar,
		d.ReservedSpace,
		d.SegmentTerminator,
	})
}

// Validate checks the uniqueness invariant: the component, data-element,
// decimal, release and terminator characters plus the two line-break
// characters must be pairwise distinct. The reserved space is not part of
// the check. A violation is a ConfigError.
func (d Delimiters) Validate() error {
	chars := []rune{
		d.ComponentSeparator,
		d.DataElementSeparator,
		d.DecimalMark,
		d.ReleaseChar,
		d.SegmentTerminator,
		d.Newline,
		d.CarriageReturn,
	}
	seen := make(map[rune]bool, len(chars))
	for _, c := range chars {
		if seen[c] {
			return &ConfigError{Msg: fmt.Sprintf("delimiters must be unique, got %q", chars)}
		}
		seen[c] = true
	}
	return nil
}

// fromUNARecord builds a Delimiters from the six characters following the
// UNA literal, keeping the caller's newline/carriage-return choices (those
// two are never carried in the UNA record itself).
func fromUNARecord(record []rune, newline, carriageReturn rune) Delimiters {
	return Delimiters{
		ComponentSeparator:   record[0],
		DataElementSeparator: record[1],
		DecimalMark:          record[2],
		ReleaseChar:          record[3],
		ReservedSpace:        record[4],
		SegmentTerminator:    record[5],
		Newline:              newline,
		CarriageReturn:       carriageReturn,
	}
}
