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
	"fmt"
	"strings"
)

// ParseEDI decodes wire bytes into the structural form. It sniffs the
// syntax identifier (falling back to the configured default encoding when
// no UNB is present), resolves the delimiter record
// (defaults, or an in-band UNA), and tokenises the decoded text into
// segments, data elements and components.
func ParseEDI(data []byte, opts ...Option) (Segments, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	identifier := SniffIdentifier(data, cfg.defaultEncoding)
	text, used, err := DecodeText(data, identifier)
	if err != nil {
		return nil, err
	}
	if cfg.warnInvalidCharacters {
		for _, w := range CheckCharacters(text, used) {
			Logger.Printf("%s: %s", used, w)
		}
	}

	delims := cfg.delimiters
	if strings.HasPrefix(text, "UNA") {
		runes := []rune(text)
		if len(runes) < 9 {
			return nil, &SyntaxError{Segment: 0, Msg: "UNA segment truncated"}
		}
		delims = fromUNARecord(runes[3:9], cfg.delimiters.Newline, cfg.delimiters.CarriageReturn)
	}
	if err := delims.Validate(); err != nil {
		return nil, err
	}

	lines := tokeniseLines(text, delims)

	segments := make(Segments, 0, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, "UNA") {
			if i != 0 {
				return nil, &SyntaxError{Segment: i, Msg: "multiple UNA segments in one message"}
			}
			segments = append(segments, NewUNASegment(delims))
			continue
		}

		runes := []rune(line)
		if len(runes) < 4 {
			return nil, &SyntaxError{Segment: i, Msg: "segment shorter than tag plus data-element separator"}
		}
		if runes[3] != delims.DataElementSeparator {
			return nil, &SyntaxError{Segment: i, Msg: fmt.Sprintf("expected data-element separator %q, got %q", delims.DataElementSeparator, runes[3])}
		}

		tag := string(runes[:3])
		if !IsRecognisedSegment(tag) {
			return nil, &UnknownSegmentError{Tag: tag}
		}

		body := parseDataElements(string(runes[4:]), delims)
		segments = append(segments, NewSegment(tag, body))
	}

	return segments, nil
}

// tokeniseLines applies the four wire-level transformations of §4.2 step 2:
// collapsing an unescaped terminator's optional CR/LF suffix, splitting on
// the unescaped terminator, unescaping the terminator within each line, and
// discarding the trailing empty segment produced by the final terminator.
func tokeniseLines(text string, d Delimiters) []string {
	collapsed := collapseLineBreaks(text, d)
	lines := splitEscaped(collapsed, d.SegmentTerminator, d.ReleaseChar)
	for i, line := range lines {
		lines[i] = unescape(line, d.SegmentTerminator, d.ReleaseChar)
	}
	if len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// collapseLineBreaks removes an optional CR then LF immediately following
// an unescaped segment terminator, leaving the bare terminator. A rune is
// "escaped" when it is immediately preceded by an odd-length run of
// release characters; checking only the single preceding rune (rather than
// tracking this run) misjudges a terminator that follows a self-escaped
// release character (?? meaning a literal release char, followed by a real
// terminator would wrongly read as an escaped terminator).
func collapseLineBreaks(text string, d Delimiters) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	escaped := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		out = append(out, r)
		if escaped {
			escaped = false
			continue
		}
		if r == d.ReleaseChar {
			escaped = true
			continue
		}
		if r == d.SegmentTerminator {
			j := i + 1
			if j < len(runes) && runes[j] == d.CarriageReturn {
				j++
			}
			if j < len(runes) && runes[j] == d.Newline {
				j++
			}
			i = j - 1
		}
	}
	return string(out)
}

// parseDataElements splits a segment's remainder (after tag and
// data-element separator) into data elements, and each data element into
// components, per §4.2 step 3. The release character's self-escape (??) is
// resolved only once each component's own separator escapes have already
// been stripped, since until then a bare release char may still be acting
// as the escape introducer for a separator at an outer level.
func parseDataElements(remainder string, d Delimiters) [][]string {
	elements := splitEscaped(remainder, d.DataElementSeparator, d.ReleaseChar)
	body := make([][]string, len(elements))
	for i, el := range elements {
		el = unescape(el, d.DataElementSeparator, d.ReleaseChar)
		comps := splitEscaped(el, d.ComponentSeparator, d.ReleaseChar)
		for j, c := range comps {
			c = unescape(c, d.ComponentSeparator, d.ReleaseChar)
			comps[j] = unescapeRelease(c, d.ReleaseChar)
		}
		body[i] = comps
	}
	return body
}

// splitEscaped splits s on every occurrence of sep that is not escaped, a
// release-char-aware stand-in for a regex negative look-behind split, since
// Go's regexp package has no look-behind support at all. It tracks whether
// each rune is the target of a pending release, rather than only comparing
// against the immediately preceding rune, so a chain of release characters
// (a self-escaped release followed by a genuine separator) is read
// correctly instead of treating the separator as escaped.
func splitEscaped(s string, sep, release rune) []string {
	runes := []rune(s)
	var parts []string
	var cur []rune
	escaped := false
	for _, r := range runes {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == release:
			cur = append(cur, r)
			escaped = true
		case r == sep:
			parts = append(parts, string(cur))
			cur = cur[:0]
		default:
			cur = append(cur, r)
		}
	}
	parts = append(parts, string(cur))
	return parts
}

// unescape resolves only the escape sequences targeting sep (release+sep
// pairs become a literal sep), leaving every other release-prefixed
// character, including a self-escaped release, untouched for a later
// level or unescapeRelease to resolve.
func unescape(s string, sep, release rune) string {
	runes := []rune(s)
	var out []rune
	escaped := false
	for _, r := range runes {
		if escaped {
			if r == sep {
				out = append(out, r)
			} else {
				out = append(out, release, r)
			}
			escaped = false
			continue
		}
		if r == release {
			escaped = true
			continue
		}
		out = append(out, r)
	}
	if escaped {
		out = append(out, release)
	}
	return string(out)
}

// unescapeRelease resolves the release character's self-escape (release
// doubled on itself). Applied once, after a component's own separator
// escapes are already stripped, every remaining release char can only be
// this self-escape, so it is dropped unconditionally and the character it
// introduces is kept literally.
func unescapeRelease(s string, release rune) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	escaped := false
	for _, r := range runes {
		if escaped {
			out = append(out, r)
			escaped = false
			continue
		}
		if r == release {
			escaped = true
			continue
		}
		out = append(out, r)
	}
	if escaped {
		out = append(out, release)
	}
	return string(out)
}
