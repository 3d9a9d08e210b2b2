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
	"encoding/xml"
	"io"
)

// DecodeXMLElement reads a single XML document from r into an XMLElement
// tree, the inverse of PrettyXML's output. It is a generic reader for any
// document shaped the way MakeXML/MakeEDIXML produce one: nested elements,
// with leaf text content representing a component's value.
func DecodeXMLElement(r io.Reader) (*XMLElement, error) {
	dec := xml.NewDecoder(r)
	var root *XMLElement
	var stack []*XMLElement

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SyntaxError{Msg: "malformed XML: " + err.Error()}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := NewXMLElement(t.Name.Local)
			for _, attr := range t.Attr {
				el.SetAttr(attr.Name.Local, attr.Value)
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].SetText(stack[len(stack)-1].Text + string(t))
			}
		case xml.EndElement:
			el := stack[len(stack)-1]
			if len(el.Children) > 0 {
				// Text seen between child tags is formatting whitespace,
				// not a component value; only a childless element's text
				// is meaningful.
				el.Text, el.HasText = "", false
			}
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, &SyntaxError{Msg: "empty XML document"}
	}
	return root, nil
}
