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

package cmd

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/Comcast/edifact-go/pkg/edifact"
	"github.com/spf13/cobra"
)

// delimiterFlags binds the command-line flags that override the delimiter
// record used by encode. una, newline and cr additionally gate MakeEDI's
// corresponding Option.
type delimiterFlags struct {
	una        bool
	newline    bool
	cr         bool
	component  string
	element    string
	decimal    string
	release    string
	terminator string
}

func addDelimiterFlags(cmd *cobra.Command) *delimiterFlags {
	f := &delimiterFlags{}
	cmd.Flags().BoolVar(&f.una, "una", true, "emit a leading UNA service-string advice segment")
	cmd.Flags().BoolVar(&f.newline, "newline", false, "append a newline after each segment terminator except the last")
	cmd.Flags().BoolVar(&f.cr, "cr", false, "append a carriage return after each segment terminator except the last, before any newline")
	cmd.Flags().StringVar(&f.component, "component", "", "override the component separator (single character)")
	cmd.Flags().StringVar(&f.element, "dataelement", "", "override the data-element separator (single character)")
	cmd.Flags().StringVar(&f.decimal, "decimal", "", "override the decimal mark (single character)")
	cmd.Flags().StringVar(&f.release, "release", "", "override the release character (single character)")
	cmd.Flags().StringVar(&f.terminator, "terminator", "", "override the segment terminator (single character)")
	return f
}

// options builds the Option slice this flag set describes, starting from
// the default delimiter record and overriding only the characters the
// caller set explicitly.
func (f *delimiterFlags) options() []edifact.Option {
	d := edifact.DefaultDelimiters()
	if f.component != "" {
		d.ComponentSeparator = []rune(f.component)[0]
	}
	if f.element != "" {
		d.DataElementSeparator = []rune(f.element)[0]
	}
	if f.decimal != "" {
		d.DecimalMark = []rune(f.decimal)[0]
	}
	if f.release != "" {
		d.ReleaseChar = []rune(f.release)[0]
	}
	if f.terminator != "" {
		d.SegmentTerminator = []rune(f.terminator)[0]
	}
	return []edifact.Option{
		edifact.WithDelimiters(d),
		edifact.WithUNA(f.una),
		edifact.WithNewline(f.newline),
		edifact.WithCarriageReturn(f.cr),
	}
}

// readInput reads all of path's bytes, treating "-" as stdin, matching the
// file/stdin dual input convention bound throughout this CLI.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(bufio.NewReader(os.Stdin))
	}
	return os.ReadFile(path)
}

// loadSegmentDictionary reads a SegmentDictionary from a JSON file on disk.
func loadSegmentDictionary(path string) (edifact.SegmentDictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sd edifact.SegmentDictionary
	if err := json.Unmarshal(b, &sd); err != nil {
		return nil, err
	}
	return sd, nil
}

// loadCodeDictionary reads a CodeDictionary from a JSON file on disk.
func loadCodeDictionary(path string) (edifact.CodeDictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ed edifact.CodeDictionary
	if err := json.Unmarshal(b, &ed); err != nil {
		return nil, err
	}
	return ed, nil
}
