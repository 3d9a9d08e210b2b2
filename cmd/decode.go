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
	"encoding/json"
	"fmt"
	"os"

	"github.com/Comcast/edifact-go/pkg/edifact"
	"github.com/spf13/cobra"
)

// decodeCommand returns the command for `edifact decode`.
func decodeCommand() *cobra.Command {
	var format, segmentsPath, codesPath string

	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Decode a UN/EDIFACT interchange to text, json, xml or an annotated report",
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

			switch format {
			case "json":
				b, _ := json.MarshalIndent(segs, "", "  ")
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b)
			case "xml":
				out, marshalErr := edifact.PrettyXML(segs.MakeXML(""), edifact.DefaultIndent)
				if marshalErr != nil {
					_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", marshalErr)
					return
				}
				_, _ = fmt.Fprint(os.Stdout, out)
			case "report":
				if segmentsPath == "" || codesPath == "" {
					_, _ = fmt.Fprintf(os.Stderr, "Error: report format requires --segments and --codes\n")
					return
				}
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
				_, _ = fmt.Fprint(os.Stdout, edifact.Report(segs, sd, ed))
			default:
				b, encErr := segs.MakeEDI(edifact.WithUNA(false), edifact.WithNewline(true))
				if encErr != nil {
					_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", encErr)
					return
				}
				_, _ = fmt.Fprintf(os.Stdout, "%s", b)
			}

			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&format, "out", "text", "specify alternative output format (json, xml, report, text)")
	cmd.PersistentFlags().StringVar(&segmentsPath, "segments", "", "segment dictionary JSON file, required by --out report")
	cmd.PersistentFlags().StringVar(&codesPath, "codes", "", "code dictionary JSON file, required by --out report")
	return cmd
}
