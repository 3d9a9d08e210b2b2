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

func TestMakeXMLParseXMLRoundTrip(t *testing.T) {
	segs, err := edifact.ParseEDI([]byte(canonicalOrders))
	require.NoError(t, err)

	root := segs.MakeXML("")
	assert.Equal(t, edifact.DefaultRootTag, root.Tag)
	assert.Equal(t, len(segs), len(root.Children))

	roundTripped, err := edifact.ParseXML(root)
	require.NoError(t, err)
	assert.Equal(t, segs, roundTripped)
}

func TestMakeXMLParseXMLRoundTripWithUNA(t *testing.T) {
	raw := "UNA:+.? '\n" + canonicalOrders
	segs, err := edifact.ParseEDI([]byte(raw))
	require.NoError(t, err)

	root := segs.MakeXML("INTERCHANGE")
	assert.Equal(t, "INTERCHANGE", root.Tag)
	assert.Equal(t, "UNA", root.Children[0].Tag)
	assert.Equal(t, segs[0].UNA.UNAString(), root.Children[0].Text)

	roundTripped, err := edifact.ParseXML(root)
	require.NoError(t, err)
	assert.Equal(t, segs, roundTripped)
}

func TestMakeXMLEmptyComponentIsTextless(t *testing.T) {
	segs := edifact.Segments{
		edifact.NewSegment("NAD", [][]string{{"BY"}, {"5790001014331", "", "9"}}),
	}
	root := segs.MakeXML("")
	nad := root.Children[0]
	element1 := nad.Children[1]
	assert.False(t, element1.Children[1].HasText)
	assert.True(t, element1.Children[0].HasText)
	assert.Equal(t, "5790001014331", element1.Children[0].Text)
}

func TestParseXMLRejectsMalformedUNA(t *testing.T) {
	root := edifact.NewXMLElement(edifact.DefaultRootTag)
	root.AddChild("UNA").SetText("short")
	_, err := edifact.ParseXML(root)
	require.Error(t, err)
	var syntaxErr *edifact.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}
