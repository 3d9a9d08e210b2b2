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
	"strings"
)

// DefaultIndent is the indentation PrettyXML uses when indent is empty.
const DefaultIndent = "    "

// PrettyXML renders root as indented, UTF-8 XML text. Empty elements are
// self-closing; attributes are written in alphabetical order so the
// output is reproducible across runs and implementations.
func PrettyXML(root *XMLElement, indent string) (string, error) {
	if indent == "" {
		indent = DefaultIndent
	}
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" ?>` + "\n")
	if err := writeElement(&b, root, "", indent); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeElement(b *strings.Builder, el *XMLElement, prefix, indent string) error {
	b.WriteString(prefix)
	b.WriteString("<")
	b.WriteString(el.Tag)
	for _, name := range el.sortedAttrNames() {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		if err := xml.EscapeText(b, []byte(el.Attrs[name])); err != nil {
			return err
		}
		b.WriteString(`"`)
	}

	if !el.HasText && len(el.Children) == 0 {
		b.WriteString("/>\n")
		return nil
	}

	b.WriteString(">")
	if len(el.Children) > 0 {
		b.WriteString("\n")
		for _, child := range el.Children {
			if err := writeElement(b, child, prefix+indent, indent); err != nil {
				return err
			}
		}
		b.WriteString(prefix)
	} else if err := xml.EscapeText(b, []byte(el.Text)); err != nil {
		return err
	}
	b.WriteString("</")
	b.WriteString(el.Tag)
	b.WriteString(">\n")
	return nil
}
