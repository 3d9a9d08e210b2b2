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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/Comcast/edifact-go/pkg/edifact"
	"github.com/spf13/cobra"
)

// encodeCommand returns the command for `edifact encode`.
func encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode < filename",
		Short: "Encode a structural JSON or XML form to a UN/EDIFACT interchange on stdout",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("additional command line arguments are not needed")
			}
			return nil
		},
	}
	flags := addDelimiterFlags(cmd)
	cmd.Run = func(cmd *cobra.Command, args []string) {
		reader := bufio.NewReader(os.Stdin)
		var output []rune

		for {
			r, _, err := reader.ReadRune()
			if err != nil && err == io.EOF {
				break
			}
			output = append(output, r)
		}

		var segs edifact.Segments
		var err error

		if firstNonSpace(output) == '<' {
			var root *edifact.XMLElement
			root, err = edifact.DecodeXMLElement(bytes.NewReader([]byte(string(output))))
			if err == nil {
				segs, err = edifact.ParseXML(root)
			}
		} else {
			err = json.Unmarshal([]byte(string(output)), &segs)
		}

		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return
		}

		b, err := segs.MakeEDI(flags.options()...)
		_, _ = fmt.Fprintf(os.Stdout, "%s", b)

		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
	}
	return cmd
}

func firstNonSpace(runes []rune) rune {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return r
		}
	}
	return 0
}
