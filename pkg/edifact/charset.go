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
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	xunicode "golang.org/x/text/encoding/unicode"
)

// DefaultIdentifier is the syntax identifier used when an interchange
// carries no UNB segment to sniff one from.
const DefaultIdentifier = "UNOY"

// charsetEntry binds one syntax identifier to its text encoding. ascii is
// set for UNOA/UNOB, whose Python-reference "encoding" is really a strict
// 7-bit check followed by an accepted-character whitelist rather than a
// translation table.
type charsetEntry struct {
	ascii     bool
	encoding  encoding.Encoding
	whitelist map[rune]bool
}

// charsetOrder fixes the deterministic fallback order the sniffer tries
// other encodings in when the sniffed identifier's encoding fails to
// decode the bytes.
var charsetOrder = []string{
	"UNOA", "UNOB", "UNOC", "UNOD", "UNOE", "UNOF", "UNOG", "UNOH", "UNOI",
	"UNOJ", "UNOK", "UNOL", "UNOX", "UNOY", "UNOW",
}

var charsetTable = map[string]charsetEntry{
	"UNOA": {ascii: true, whitelist: asciiWhitelist(false)},
	"UNOB": {ascii: true, whitelist: asciiWhitelist(true)},
	"UNOC": {encoding: charmap.ISO8859_1},
	"UNOD": {encoding: charmap.ISO8859_2},
	"UNOE": {encoding: charmap.ISO8859_5},
	"UNOF": {encoding: charmap.ISO8859_7},
	"UNOG": {encoding: charmap.ISO8859_3},
	"UNOH": {encoding: charmap.ISO8859_4},
	"UNOI": {encoding: charmap.ISO8859_6},
	"UNOJ": {encoding: charmap.ISO8859_8},
	"UNOK": {encoding: charmap.ISO8859_9},
	"UNOL": {encoding: charmap.ISO8859_15},
	"UNOX": {encoding: japanese.ISO2022JP},
	"UNOY": {encoding: encoding.Nop},
	"UNOW": {encoding: xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM)},
}

// asciiWhitelist returns the printable-character whitelist for UNOA
// (uppercase only) or UNOB (uppercase + lowercase) as a lookup set.
func asciiWhitelist(extended bool) map[rune]bool {
	const common = " !\"#$%&'()*+,-./0123456789:;<=>?@" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`{|}~"
	chars := common
	if extended {
		chars += "abcdefghijklmnopqrstuvwxyz"
	}
	out := make(map[rune]bool, len(chars))
	for _, r := range chars {
		out[r] = true
	}
	return out
}

// SniffIdentifier searches raw for the first occurrence of "UNB"; from
// there it locates the next "UNO" and reads the four bytes starting at that
// "UNO" (e.g. "UNOC") as the syntax identifier. If no UNB is present it
// returns def.
func SniffIdentifier(raw []byte, def string) string {
	unbIdx := bytes.Index(raw, []byte("UNB"))
	if unbIdx < 0 {
		return def
	}
	rest := raw[unbIdx:]
	unoIdx := bytes.Index(rest, []byte("UNO"))
	if unoIdx < 0 || unoIdx+4 > len(rest) {
		return def
	}
	return string(rest[unoIdx : unoIdx+4])
}

// decodeWithIdentifier decodes raw as the text encoding bound to
// identifier, returning an error if identifier is unknown or the bytes are
// not valid under that encoding.
func decodeWithIdentifier(raw []byte, identifier string) (string, error) {
	entry, ok := charsetTable[identifier]
	if !ok {
		return "", &EncodingError{Identifier: identifier, Msg: "unknown syntax identifier"}
	}
	if entry.ascii {
		for i, b := range raw {
			if b > 0x7F {
				return "", &EncodingError{Identifier: identifier, Msg: fmt.Sprintf("byte %#02x at offset %d is not 7-bit ASCII", b, i)}
			}
		}
		return string(raw), nil
	}
	out, err := entry.encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &EncodingError{Identifier: identifier, Msg: err.Error()}
	}
	if !utf8.Valid(out) {
		// encoding.Nop (UNOY) passes bytes through unchecked.
		return "", &EncodingError{Identifier: identifier, Msg: "bytes are not valid UTF-8"}
	}
	return string(out), nil
}

// DecodeText decodes raw to text, trying identifier first and then, if
// that fails, every other known identifier's encoding in charsetOrder.
// It returns the identifier whose encoding actually succeeded.
func DecodeText(raw []byte, identifier string) (text string, used string, err error) {
	if text, err = decodeWithIdentifier(raw, identifier); err == nil {
		return text, identifier, nil
	}
	for _, alt := range charsetOrder {
		if alt == identifier {
			continue
		}
		if text, err = decodeWithIdentifier(raw, alt); err == nil {
			Logger.Printf("encoding %s failed, fell back to %s", identifier, alt)
			return text, alt, nil
		}
	}
	return "", "", &EncodingError{Msg: "unreadable with any known encoding"}
}

// CharacterWarning reports one character that is neither printable nor
// part of its identifier's accepted-character whitelist.
type CharacterWarning struct {
	Index int
	Rune  rune
}

func (w CharacterWarning) String() string {
	return fmt.Sprintf("invalid character at index %d: %q", w.Index, w.Rune)
}

// CheckCharacters scans text and returns a warning for every rune that is
// neither printable nor, when identifier defines one, in its whitelist.
func CheckCharacters(text string, identifier string) []CharacterWarning {
	entry, ok := charsetTable[identifier]
	if !ok {
		return nil
	}
	var warnings []CharacterWarning
	for i, r := range text {
		if unicode.IsPrint(r) {
			if entry.whitelist == nil || entry.whitelist[r] {
				continue
			}
		}
		warnings = append(warnings, CharacterWarning{Index: i, Rune: r})
	}
	return warnings
}
