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
	"fmt"
	"os"

	"github.com/Comcast/edifact-go/pkg/edifact"
	"github.com/spf13/cobra"
)

// xmlCommand returns the command for `edifact xml`.
func xmlCommand() *cobra.Command {
	var rootTag, segmentsPath, codesPath string

	cmd := &cobra.Command{
		Use:   "xml <file|->",
		Short: "Decode a UN/EDIFACT interchange and print its pretty-printed XML form",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("requires a file path, or - for stdin")
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			data, err := readInput(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				return
			}

			segs, err := edifact.ParseEDI(data)

			var root *edifact.XMLElement
			if segmentsPath != "" || codesPath != "" {
				sd, loadErr := loadSegmentDictionary(segmentsPath)
				if loadErr != nil {
					_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", loadErr)
					return
				}
				ed, loadErr := loadCodeDictionary(codesPath)
				if loadErr != nil {
					_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", loadErr)
					return
				}
				root = segs.MakeEDIXML(sd, ed, rootTag)
			} else {
				root = segs.MakeXML(rootTag)
			}

			out, marshalErr := edifact.PrettyXML(root, edifact.DefaultIndent)
			if marshalErr != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", marshalErr)
				return
			}
			_, _ = fmt.Fprint(os.Stdout, out)

			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&rootTag, "root", "", "override the root element tag")
	cmd.PersistentFlags().StringVar(&segmentsPath, "segments", "", "segment dictionary JSON file; attaches dictionary attributes to the output")
	cmd.PersistentFlags().StringVar(&codesPath, "codes", "", "code dictionary JSON file; resolves code-list values in the output")
	return cmd
}
