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

import "sort"

// XMLElement is a minimal mutable XML tree: encoding/xml has no generic
// writable element type (unlike Python's ElementTree), so the structural
// ↔ XML mapper, the annotator and the pretty printer all share this one.
type XMLElement struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	HasText  bool
	Children []*XMLElement
}

// NewXMLElement returns an empty element with the given tag.
func NewXMLElement(tag string) *XMLElement {
	return &XMLElement{Tag: tag, Attrs: map[string]string{}}
}

// AddChild appends and returns a new child element with the given tag.
func (e *XMLElement) AddChild(tag string) *XMLElement {
	child := NewXMLElement(tag)
	e.Children = append(e.Children, child)
	return child
}

// SetText sets the element's text content. HasText is set only for a
// non-empty string, so an element given empty text counts as having no
// text (an empty component is rendered as a self-closing element,
// matching the reference implementation).
func (e *XMLElement) SetText(text string) {
	e.Text = text
	e.HasText = text != ""
}

// SetAttr sets an attribute. Attributes are rendered in alphabetical
// order regardless of insertion order, so output is reproducible.
func (e *XMLElement) SetAttr(name, value string) {
	e.Attrs[name] = value
}

// sortedAttrNames returns this element's attribute names in alphabetical
// order.
func (e *XMLElement) sortedAttrNames() []string {
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
