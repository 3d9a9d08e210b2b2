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

// SegmentDictionary maps a segment tag (e.g. "NAD") to its definition. The
// codec never loads one itself; callers unmarshal a published UNTDID
// directory and pass the result to Report or MakeEDIXML.
type SegmentDictionary map[string]SegmentDefinition

// SegmentDefinition describes a segment's data elements and components as a
// flat, ordered table. A data element's defining row is the first row whose
// Pos ends with the element's decimal position ("10", "20", ...), a suffix
// match rather than equality, so "010" and "0010" style tables both match;
// its components are then paired with the rows that follow by position.
type SegmentDefinition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Table       []TableRow `json:"table"`
}

// TableRow is one row of a segment's definition table. A row with a nil
// Representation describes a composite data element's header rather than a
// leaf component; its MC and Repeat still apply to the data element as a
// whole.
type TableRow struct {
	Pos            string  `json:"pos"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Representation *string `json:"representation"`
	MC             string  `json:"mc"`
	Repeat         string  `json:"repeat"`
}

// CodeDictionary maps a code-list identifier (a TableRow.Code value) to the
// set of values it admits.
type CodeDictionary map[string]CodeDefinition

// CodeDefinition names a code list and, where the list is enumerable,
// provides the value table. Free-text code lists (no fixed enumeration)
// carry a nil Table.
type CodeDefinition struct {
	Name  string               `json:"name"`
	Table map[string]CodeEntry `json:"table,omitempty"`
}

// CodeEntry is one admissible value of a code list.
type CodeEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MessageDictionary maps a message type (the first component of UNH's
// second data element, e.g. "ORDERS") to its definition. Unused by Report
// and MakeEDIXML today; carried for callers building their own
// message-level tooling on top of the same directories.
type MessageDictionary map[string]MessageDefinition

// MessageDefinition describes a message type.
type MessageDefinition struct {
	Description string `json:"description"`
}
