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

package edifact_test

import (
	"testing"

	"github.com/Comcast/edifact-go/pkg/edifact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func representation(s string) *string { return &s }

// testSegmentDictionary mirrors a real UNTDID-style BGM table: data
// element 1 (pos "010") is the composite C002, whose lone component (pos
// "0101") is the code-listed document name code; data element 2 (pos
// "020") is the plain document number element, with no composite header
// of its own.
func testSegmentDictionary() edifact.SegmentDictionary {
	return edifact.SegmentDictionary{
		"BGM": edifact.SegmentDefinition{
			Name:        "Beginning of message",
			Description: "Function and type of a message",
			Table: []edifact.TableRow{
				{Pos: "010", Code: "1001", Name: "Document/message name", MC: "M"},
				{Pos: "0101", Code: "1001", Name: "Document name code", Representation: representation("an..3"), MC: "M"},
				{Pos: "020", Name: "Document number", Representation: representation("an..35"), MC: "C"},
			},
		},
	}
}

func testCodeDictionary() edifact.CodeDictionary {
	return edifact.CodeDictionary{
		"1001": edifact.CodeDefinition{
			Name: "Document name code",
			Table: map[string]edifact.CodeEntry{
				"220": {Name: "Order", Description: "Document/message is an order"},
			},
		},
	}
}

func TestReportKnownSegment(t *testing.T) {
	segs := edifact.Segments{
		edifact.NewSegment("BGM", [][]string{{"220"}, {"B10001"}}),
	}
	out := edifact.Report(segs, testSegmentDictionary(), testCodeDictionary())
	assert.Contains(t, out, "BGM+220+B10001'")
	assert.Contains(t, out, "Document name code")
	assert.Contains(t, out, "220 (Order)")
	assert.Contains(t, out, "Document number")
	assert.Contains(t, out, "B10001")
}

func TestReportUnknownSegmentDoesNotAbort(t *testing.T) {
	segs := edifact.Segments{
		edifact.NewSegment("BGM", [][]string{{"220"}}),
		edifact.NewSegment("FTX", [][]string{{"free text"}}),
	}
	out := edifact.Report(segs, testSegmentDictionary(), testCodeDictionary())
	assert.Contains(t, out, "unknown segment: FTX")
	assert.Contains(t, out, "BGM+220'")
}

func TestReportMissingMandatoryComponent(t *testing.T) {
	segs := edifact.Segments{
		edifact.NewSegment("BGM", [][]string{}),
	}
	out := edifact.Report(segs, testSegmentDictionary(), testCodeDictionary())
	assert.Contains(t, out, "missing mandatory component")
}

func TestReportRepresentationWarning(t *testing.T) {
	segs := edifact.Segments{
		edifact.NewSegment("BGM", [][]string{{"22001"}}),
	}
	out := edifact.Report(segs, testSegmentDictionary(), testCodeDictionary())
	assert.Contains(t, out, "exceeds maximum length")
}

func TestMakeEDIXMLAttachesDictionaryAttributes(t *testing.T) {
	segs := edifact.Segments{
		edifact.NewSegment("BGM", [][]string{{"220"}, {"B10001"}}),
	}
	root := segs.MakeEDIXML(testSegmentDictionary(), testCodeDictionary(), "")
	require.Len(t, root.Children, 1)
	bgm := root.Children[0]
	assert.Equal(t, "Beginning of message", bgm.Attrs["name"])

	dataElement := bgm.Children[0]
	assert.Equal(t, "010", dataElement.Attrs["pos"])
	assert.Equal(t, "Document/message name", dataElement.Attrs["name"])

	component := dataElement.Children[0]
	assert.Equal(t, "0101", component.Attrs["pos"])
	assert.Equal(t, "M", component.Attrs["mc"])
	assert.Equal(t, "Order", component.Attrs["value"])
	assert.Equal(t, "Document/message is an order", component.Attrs["description"])
}

func TestReportAllowsDecimalNumeric(t *testing.T) {
	sd := edifact.SegmentDictionary{
		"MOA": edifact.SegmentDefinition{
			Name: "Monetary amount",
			Table: []edifact.TableRow{
				{Pos: "010", Name: "Amount", Representation: representation("n..18")},
			},
		},
	}
	segs := edifact.Segments{
		edifact.NewSegment("MOA", [][]string{{"1.5"}}),
	}
	out := edifact.Report(segs, sd, edifact.CodeDictionary{})
	assert.NotContains(t, out, "not numeric")

	segs = edifact.Segments{
		edifact.NewSegment("MOA", [][]string{{"1,5"}}),
	}
	out = edifact.Report(segs, sd, edifact.CodeDictionary{})
	assert.NotContains(t, out, "not numeric")

	segs = edifact.Segments{
		edifact.NewSegment("MOA", [][]string{{"abc"}}),
	}
	out = edifact.Report(segs, sd, edifact.CodeDictionary{})
	assert.Contains(t, out, "not numeric")
}
