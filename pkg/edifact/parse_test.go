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
	"io"
	"os"
	"testing"

	"github.com/Comcast/edifact-go/pkg/edifact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonicalOrders is a minimal ORDERS interchange with default delimiters,
// used across parse, encode and XML round-trip tests.
const canonicalOrders = "UNB+UNOA:1+5790001014331:1+5790001200017:1+160521:1159+1'\n" +
	"UNH+1+ORDERS:D:96A:UN:EAN008'\n" +
	"BGM+220+B10001'\n" +
	"DTM+137:20160521:102'\n" +
	"NAD+BY+5790001014331::9'\n" +
	"NAD+SE+5790001200017::9'\n" +
	"LIN+1++1234567890123:EN'\n" +
	"QTY+1:25'\n" +
	"UNT+8+1'\n" +
	"UNZ+1+1'\n"

func TestParseEDICanonicalOrders(t *testing.T) {
	segs, err := edifact.ParseEDI([]byte(canonicalOrders))
	require.NoError(t, err)
	require.Len(t, segs, 9)

	assert.Equal(t, "UNB", segs[0].Tag)
	assert.Equal(t, [][]string{
		{"UNOA", "1"},
		{"5790001014331", "1"},
		{"5790001200017", "1"},
		{"160521", "1159"},
		{"1"},
	}, segs[0].Body)

	nad := segs[4]
	assert.Equal(t, "NAD", nad.Tag)
	assert.Equal(t, [][]string{{"BY"}, {"5790001014331", "", "9"}}, nad.Body)
}

func TestParseEDIWithUNA(t *testing.T) {
	raw := "UNA:+.? '\n" + canonicalOrders
	segs, err := edifact.ParseEDI([]byte(raw))
	require.NoError(t, err)
	require.True(t, len(segs) > 0)
	assert.Equal(t, "UNA", segs[0].Tag)
	require.NotNil(t, segs[0].UNA)
	assert.Equal(t, edifact.DefaultDelimiters(), *segs[0].UNA)
	assert.Equal(t, "UNB", segs[1].Tag)
}

func TestParseEDIAlternateDelimiters(t *testing.T) {
	raw := "UNA|^,! ~\r\n" +
		"UNH^1^ORDERS~\r\n"
	segs, err := edifact.ParseEDI([]byte(raw))
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, "UNA", segs[0].Tag)
	assert.Equal(t, "UNH", segs[1].Tag)
	assert.Equal(t, [][]string{{"1"}, {"ORDERS"}}, segs[1].Body)
}

func TestParseEDIEscapedReleaseChar(t *testing.T) {
	raw := "UNH+1+ORDERS?+TEST'\n"
	segs, err := edifact.ParseEDI([]byte(raw))
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, [][]string{{"1"}, {"ORDERS+TEST"}}, segs[0].Body)
}

func TestParseEDITruncatedUNA(t *testing.T) {
	_, err := edifact.ParseEDI([]byte("UNA:+."))
	require.Error(t, err)
	var syntaxErr *edifact.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestParseEDIUnknownSegment(t *testing.T) {
	_, err := edifact.ParseEDI([]byte("ZZZ+1'\n"))
	require.Error(t, err)
	var unknownErr *edifact.UnknownSegmentError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ZZZ", unknownErr.Tag)
}

func TestParseEDIMissingDataElementSeparator(t *testing.T) {
	_, err := edifact.ParseEDI([]byte("UNH 1+ORDERS'\n"))
	require.Error(t, err)
	var syntaxErr *edifact.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestParseEDIWarnsInvalidCharacters(t *testing.T) {
	edifact.Logger.SetOutput(os.Stderr)
	defer edifact.Logger.SetOutput(io.Discard)

	_, err := edifact.ParseEDI([]byte("UNB+UNOA:1'\n"), edifact.WithWarnInvalidCharacters(true))
	require.NoError(t, err)
}
