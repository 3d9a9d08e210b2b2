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

func TestSniffIdentifier(t *testing.T) {
	cases := map[string]struct {
		raw  string
		def  string
		want string
	}{
		"UNB with explicit identifier": {
			raw:  "UNB+UNOC:3+...",
			def:  edifact.DefaultIdentifier,
			want: "UNOC",
		},
		"no UNB falls back to default": {
			raw:  "UNH+1+ORDERS'",
			def:  edifact.DefaultIdentifier,
			want: edifact.DefaultIdentifier,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, edifact.SniffIdentifier([]byte(c.raw), c.def))
		})
	}
}

// UNOA and UNOB both reject a byte above 0x7F, so DecodeText moves on to
// UNOC (ISO-8859-1), the next identifier in fallback order.
func TestDecodeTextASCIIStrict(t *testing.T) {
	text, used, err := edifact.DecodeText([]byte{0xFF}, "UNOA")
	require.NoError(t, err)
	assert.Equal(t, "UNOC", used)
	assert.Equal(t, "ÿ", text)
}

func TestDecodeTextFallsBackAndLogs(t *testing.T) {
	text, used, err := edifact.DecodeText([]byte{0xE9}, "UNOA")
	require.NoError(t, err)
	assert.NotEqual(t, "UNOA", used)
	assert.NotEmpty(t, text)
}

func TestCheckCharactersFlagsOutsideWhitelist(t *testing.T) {
	warnings := edifact.CheckCharacters("ABCabc", "UNOA")
	require.Len(t, warnings, 3)
	assert.Equal(t, 3, warnings[0].Index)
}
