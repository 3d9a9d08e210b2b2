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
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// representationPattern matches a representation class string such as
// "an..35" (alphanumeric, up to 35 characters) or "n3" (numeric, exactly
// three characters).
var representationPattern = regexp.MustCompile(`^(a|n|an)(\.\.)?(\d+)$`)

// numericPattern matches the "n" representation class: optional leading
// digits, an optional single decimal mark or comma, then digits.
var numericPattern = regexp.MustCompile(`^\d*[.,]?\d+`)

// dataElementPos derives the decimal "pos" string a data element's
// defining row is located by: 10, 20, 30, ... for the 1st, 2nd, 3rd data
// element of a segment. A row's Pos need only end with this string to
// match, since directory versions disagree on the zero-padding ("010" vs
// "0010") of a pos code.
func dataElementPos(d int) string { return strconv.Itoa((d + 1) * 10) }

// headerRow returns the first row of table whose non-empty Pos ends with
// pos, and its index. This row either is the composite header for the
// data element (Representation nil) or, for a non-composite data
// element, is itself the row for that element's lone component.
func headerRow(table []TableRow, pos string) (TableRow, int, bool) {
	for i, row := range table {
		if row.Pos != "" && strings.HasSuffix(row.Pos, pos) {
			return row, i, true
		}
	}
	return TableRow{}, 0, false
}

// componentRow returns the row pairing positionally with the c-th
// component of a data element, walking forward from start (the data
// element's header row index, advanced past the header itself when the
// data element is composite). Components are paired by position, not by
// their own Pos suffix, since only the data element's defining row is
// ever looked up by pos.
func componentRow(table []TableRow, start, c int) (TableRow, bool) {
	i := start + c
	if i < 0 || i >= len(table) {
		return TableRow{}, false
	}
	return table[i], true
}

// validateRepresentation checks value against an EDIFACT representation
// class string, returning human-readable warnings (never errors; callers
// of Report see these as extra lines, not aborted annotation).
func validateRepresentation(value, representation string) []string {
	m := representationPattern.FindStringSubmatch(representation)
	if m == nil {
		return []string{fmt.Sprintf("unrecognised representation %q", representation)}
	}
	class, upTo := m[1], m[2] == ".."
	length, _ := strconv.Atoi(m[3])

	var warnings []string
	n := len([]rune(value))
	switch {
	case upTo && n > length:
		warnings = append(warnings, fmt.Sprintf("value %q exceeds maximum length %d", value, length))
	case !upTo && n != 0 && n != length:
		warnings = append(warnings, fmt.Sprintf("value %q must be exactly %d characters, got %d", value, length, n))
	}

	switch class {
	case "n":
		if !numericPattern.MatchString(value) {
			warnings = append(warnings, fmt.Sprintf("value %q is not numeric", value))
		}
	case "a":
		for _, r := range value {
			if !unicode.IsLetter(r) {
				warnings = append(warnings, fmt.Sprintf("value %q is not purely alphabetic", value))
				break
			}
		}
	}
	return warnings
}

// describeCode looks up value in ed's entry for code, returning the value
// followed by its code-list entry's name in parentheses, or by
// "(CUSTOM CODE)" for a non-empty value absent from the table. An empty
// code means the component carries no code list.
func describeCode(ed CodeDictionary, code, value string) string {
	if code == "" {
		return value
	}
	def, ok := ed[code]
	if !ok {
		return value
	}
	if entry, ok := def.Table[value]; ok {
		return fmt.Sprintf("%s (%s)", value, entry.Name)
	}
	if value != "" {
		return fmt.Sprintf("%s (CUSTOM CODE)", value)
	}
	return value
}

// Report renders a textual annotation of segs against sd and ed: for each
// segment, the reassembled wire line, its definition's name, and a row per
// component naming its dictionary entry, validating its representation
// class and length, and resolving its code-list value where one applies.
// Unknown segments, unknown components and missing mandatory components are
// reported as extra lines, never as an aborted pass.
func Report(segs Segments, sd SegmentDictionary, ed CodeDictionary) string {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Tag == "UNA" {
			fmt.Fprintf(&b, "UNA %s\n\n", seg.UNA.UNAString())
			continue
		}

		line, err := Segments{seg}.MakeEDI(WithUNA(false), WithNewline(false))
		if err != nil {
			fmt.Fprintf(&b, "%s: could not reassemble segment: %s\n\n", seg.Tag, err)
			continue
		}
		fmt.Fprintf(&b, "%s\n%s\n", line, strings.Repeat("-", len(line)))

		def, ok := sd[seg.Tag]
		if !ok {
			fmt.Fprintf(&b, "unknown segment: %s\n\n", seg.Tag)
			continue
		}
		fmt.Fprintf(&b, "%s  %s\n", seg.Tag, def.Name)

		matched := make(map[string]bool, len(def.Table))
		rowKey := func(row TableRow) string { return row.Pos + "\x00" + row.Name }

		for d, element := range seg.Body {
			header, start, found := headerRow(def.Table, dataElementPos(d))
			if found {
				if header.Representation == nil {
					fmt.Fprintf(&b, "  %s  %s\n", header.Pos, header.Name)
					matched[rowKey(header)] = true
					start++
				}
			}
			for c, value := range element {
				if !found {
					fmt.Fprintf(&b, "    unknown component at data element %d position %d: %q\n", d+1, c+1, value)
					continue
				}
				row, ok := componentRow(def.Table, start, c)
				if !ok {
					fmt.Fprintf(&b, "    unknown component at data element %d position %d: %q\n", d+1, c+1, value)
					continue
				}
				// An empty component transmits no value, so it does not
				// satisfy a mandatory row.
				if value != "" {
					matched[rowKey(row)] = true
				}

				var repr string
				if row.Representation != nil {
					repr = *row.Representation
				}
				warnings := validateRepresentation(value, repr)
				fmt.Fprintf(&b, "    %s  %s: %s\n", row.Pos, row.Name, describeCode(ed, row.Code, value))
				for _, w := range warnings {
					fmt.Fprintf(&b, "      ! %s\n", w)
				}
			}
		}

		for _, row := range def.Table {
			if row.MC == "M" && !matched[rowKey(row)] {
				fmt.Fprintf(&b, "  missing mandatory component: %s %s\n", row.Pos, row.Name)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MakeEDIXML builds the same positional tree as MakeXML, additionally
// attaching dictionary-derived attributes (name, description, pos, mc,
// repeat, representation, code and value) to each segment and component
// element where sd and ed supply a match.
func (s Segments) MakeEDIXML(sd SegmentDictionary, ed CodeDictionary, rootTag string) *XMLElement {
	if rootTag == "" {
		rootTag = DefaultRootTag
	}
	root := NewXMLElement(rootTag)
	for _, seg := range s {
		if seg.Tag == "UNA" {
			root.AddChild("UNA").SetText(seg.UNA.UNAString())
			continue
		}

		segEl := root.AddChild(seg.Tag)
		def, hasDef := sd[seg.Tag]
		if hasDef {
			segEl.SetAttr("name", def.Name)
			segEl.SetAttr("description", def.Description)
		}

		for d, element := range seg.Body {
			deEl := segEl.AddChild(fmt.Sprintf("%s%d", seg.Tag, d))

			var start int
			found := false
			if hasDef {
				var header TableRow
				header, start, found = headerRow(def.Table, dataElementPos(d))
				if found {
					deEl.SetAttr("pos", header.Pos)
					if header.Representation == nil {
						start++
						deEl.SetAttr("name", header.Name)
						deEl.SetAttr("code", header.Code)
					}
					if header.Repeat != "" {
						deEl.SetAttr("repeat", header.Repeat)
						deEl.SetAttr("mc", header.MC)
					}
				}
			}

			for c, component := range element {
				cEl := deEl.AddChild(fmt.Sprintf("%s%d%d", seg.Tag, d, c))
				if component != "" {
					cEl.SetText(component)
				}
				if !found {
					continue
				}
				row, ok := componentRow(def.Table, start, c)
				if !ok {
					continue
				}
				cEl.SetAttr("name", row.Name)
				cEl.SetAttr("pos", row.Pos)
				cEl.SetAttr("mc", row.MC)
				cEl.SetAttr("repeat", row.Repeat)
				if row.Representation != nil {
					cEl.SetAttr("representation", *row.Representation)
				}
				if row.Code == "" {
					continue
				}
				cEl.SetAttr("code", row.Code)
				if codeDef, ok := ed[row.Code]; ok {
					if entry, ok := codeDef.Table[component]; ok {
						cEl.SetAttr("value", entry.Name)
						cEl.SetAttr("description", entry.Description)
					} else if component != "" {
						cEl.SetAttr("value", "CUSTOM CODE")
					}
				}
			}
		}
	}
	return root
}
