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

// reportCommand returns the command for `edifact report`.
func reportCommand() *cobra.Command {
	var segmentsPath, codesPath string

	cmd := &cobra.Command{
		Use:   "report <file|->",
		Short: "Decode a UN/EDIFACT interchange and print a segment-by-segment annotation against a dictionary",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("requires a file path, or - for stdin")
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			if segmentsPath == "" || codesPath == "" {
				_, _ = fmt.Fprintf(os.Stderr, "Error: --segments and --codes are required\n")
				return
			}

			data, err := readInput(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				return
			}

			sd, err := loadSegmentDictionary(segmentsPath)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				return
			}
			ed, err := loadCodeDictionary(codesPath)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				return
			}

			segs, err := edifact.ParseEDI(data)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				return
			}

			_, _ = fmt.Fprint(os.Stdout, edifact.Report(segs, sd, ed))
		},
	}

	cmd.PersistentFlags().StringVar(&segmentsPath, "segments", "", "segment dictionary JSON file (required)")
	cmd.PersistentFlags().StringVar(&codesPath, "codes", "", "code dictionary JSON file (required)")
	return cmd
}
