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

import (
	"strings"
)

// MakeEDI serialises the structural form to wire bytes, the inverse of
// ParseEDI. Any UNA segment in s is skipped; the emitted UNA, if any, comes
// from the configured delimiters. So for Segments s produced by ParseEDI,
// ParseEDI(s.MakeEDI()) reproduces s when s starts with a UNA segment
// carrying the default delimiters, and ParseEDI(s.MakeEDI(WithUNA(false)))
// does when s has no UNA segment.
func (s Segments) MakeEDI(opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	d := cfg.delimiters
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	if cfg.withUNA {
		b.WriteString("UNA")
		b.WriteString(d.UNAString())
		writeLineBreak(&b, d, cfg)
	}

	for i, seg := range s {
		if seg.Tag == "UNA" {
			continue
		}
		if !IsRecognisedSegment(seg.Tag) {
			return nil, &UnknownSegmentError{Tag: seg.Tag}
		}
		b.WriteString(seg.Tag)
		b.WriteRune(d.DataElementSeparator)
		for ei, element := range seg.Body {
			comps := make([]string, len(element))
			for ci, c := range element {
				comps[ci] = escapeComponent(c, d)
			}
			b.WriteString(strings.Join(comps, string(d.ComponentSeparator)))
			if ei != len(seg.Body)-1 {
				b.WriteRune(d.DataElementSeparator)
			}
		}
		b.WriteRune(d.SegmentTerminator)
		if i != len(s)-1 {
			writeLineBreak(&b, d, cfg)
		}
	}

	identifier := cfg.defaultEncoding
	for _, seg := range s {
		if seg.Tag == "UNB" && len(seg.Body) > 0 && len(seg.Body[0]) > 0 {
			identifier = seg.Body[0][0]
			break
		}
	}
	entry, ok := charsetTable[identifier]
	if !ok {
		return nil, &EncodingError{Identifier: identifier, Msg: "unknown syntax identifier"}
	}
	if entry.ascii {
		assembled := b.String()
		for _, r := range assembled {
			if r > 0x7F {
				return nil, &EncodingError{Identifier: identifier, Msg: "component contains a non-ASCII character"}
			}
		}
		return []byte(assembled), nil
	}
	out, err := entry.encoding.NewEncoder().Bytes([]byte(b.String()))
	if err != nil {
		return nil, &EncodingError{Identifier: identifier, Msg: err.Error()}
	}
	return out, nil
}

// writeLineBreak appends the configured carriage-return/newline suffix
// after a segment terminator (or after the UNA record), if requested.
func writeLineBreak(b *strings.Builder, d Delimiters, cfg config) {
	if cfg.withCarriageReturn {
		b.WriteRune(d.CarriageReturn)
	}
	if cfg.withNewline {
		b.WriteRune(d.Newline)
	}
}

// escapeComponent escapes the four meta-characters: component separator,
// data-element separator, segment terminator and the release character
// itself, by prefixing the release character. Escaping the release
// character is a deliberate deviation from the Python reference
// implementation, which omits it and so cannot round-trip a component
// that legitimately contains a release character; see DESIGN.md.
func escapeComponent(c string, d Delimiters) string {
	replacer := strings.NewReplacer(
		string(d.ReleaseChar), string(d.ReleaseChar)+string(d.ReleaseChar),
		string(d.DataElementSeparator), string(d.ReleaseChar)+string(d.DataElementSeparator),
		string(d.ComponentSeparator), string(d.ReleaseChar)+string(d.ComponentSeparator),
		string(d.SegmentTerminator), string(d.ReleaseChar)+string(d.SegmentTerminator),
	)
	return replacer.Replace(c)
}
