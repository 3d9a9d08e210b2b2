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

// DefaultRootTag is the root element tag MakeXML uses when rootTag is
// empty.
const DefaultRootTag = "EDIFACT"

// MakeXML builds a positional XML tree from the structural form: each
// segment becomes a child named after its tag; for UNA, the child's text
// is the concatenated six-character delimiter record and it has no
// children. For any other segment, each data element at index d becomes a
// child tagged "<tag><d>", and each component at index c within it becomes
// a leaf child tagged "<tag><d><c>" whose text is the component, or absent
// when the component is empty.
func (s Segments) MakeXML(rootTag string) *XMLElement {
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
		for d, element := range seg.Body {
			deEl := segEl.AddChild(fmt.Sprintf("%s%d", seg.Tag, d))
			for c, component := range element {
				cEl := deEl.AddChild(fmt.Sprintf("%s%d%d", seg.Tag, d, c))
				if component != "" {
					cEl.SetText(component)
				}
			}
		}
	}
	return root
}

// ParseXML is the inverse of MakeXML: for each child of root, a UNA tag
// yields a UNA segment carrying its text as the six delimiter characters;
// any other tag yields a data segment whose body is reconstructed from the
// grandchildren's text, with absent text mapped to the empty string.
func ParseXML(root *XMLElement) (Segments, error) {
	segments := make(Segments, 0, len(root.Children))
	for i, el := range root.Children {
		if el.Tag == "UNA" {
			if i != 0 {
				return nil, &SyntaxError{Segment: i, Msg: "multiple UNA segments in one message"}
			}
			chars := []rune(el.Text)
			if len(chars) != 6 {
				return nil, &SyntaxError{Segment: i, Msg: "UNA element must carry exactly six characters"}
			}
			d := fromUNARecord(chars, DefaultNewline, DefaultCarriageReturn)
			segments = append(segments, NewUNASegment(d))
			continue
		}

		body := make([][]string, len(el.Children))
		for d, deEl := range el.Children {
			comps := make([]string, len(deEl.Children))
			for c, cEl := range deEl.Children {
				comps[c] = cEl.Text
			}
			body[d] = comps
		}
		segments = append(segments, NewSegment(el.Tag, body))
	}
	return segments, nil
}
