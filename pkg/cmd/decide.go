// Copyright the k-reasoner contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/modal-tableau/k-reasoner/pkg/formula"
	"github.com/modal-tableau/k-reasoner/pkg/label"
	"github.com/modal-tableau/k-reasoner/pkg/parser"
	"github.com/modal-tableau/k-reasoner/pkg/tableau"
	"github.com/modal-tableau/k-reasoner/pkg/util"
	"github.com/modal-tableau/k-reasoner/pkg/util/termio"
	"github.com/spf13/cobra"
)

// labelSizeCutoff is the §6 threshold above which output lines switch from
// printing the full label to referring to it by its zero-based line
// index.
const labelSizeCutoff = 100

// decideCmd implements `reasoner decide -label "..."` and
// `reasoner decide <path>`.
var decideCmd = &cobra.Command{
	Use:   "decide [path]",
	Short: "Decide satisfiability of a label, or of each label in a file.",
	Run: func(cmd *cobra.Command, args []string) {
		runDecide(cmd, args)
	},
}

func runDecide(cmd *cobra.Command, args []string) {
	configureLogging(cmd)

	ansi := GetFlag(cmd, "ansi-escapes") || termio.IsInteractive()

	if l := GetString(cmd, "label"); l != "" {
		if err := decideLabelLine(l, 0, ansi); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}

	decideFile(args[0], ansi)
}

// decideFile decides every label in the file at path, one line at a time. A
// malformed label is fatal only to that label: it is reported and the batch
// continues with the next line.
func decideFile(path string, ansi bool) {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	lines := util.ReadInputFile(path)

	for i, line := range lines {
		if err := decideLabelLine(line, i, ansi); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

// decideLabelLine parses, normalizes and decides a single label line, then
// prints one output line in the §6 format. It returns the label's parse
// error, if any, rather than terminating the process, so that batch callers
// can recover and move on to the next line.
func decideLabelLine(line string, index int, ansi bool) error {
	l, err := parser.ParseLabel(line)
	if err != nil {
		return err
	}

	normalized := label.New()
	for _, f := range l.Iter() {
		normalized.Insert(formula.Normalize(f))
	}

	sat := tableau.Successful(normalized)

	fmt.Println(formatVerdict(l, index, sat, ansi))

	return nil
}

// formatVerdict renders one §6 output line: the full label when small
// enough to read, otherwise a reference by zero-based line index.
func formatVerdict(l *label.Label, index int, sat bool, ansi bool) string {
	var subject string
	if l.Size() <= labelSizeCutoff {
		subject = l.String()
	} else {
		subject = fmt.Sprintf("Label %d", index)
	}

	verdict := "is satisfiable"
	colour := termio.TERM_GREEN

	if !sat {
		verdict = "is not satisfiable"
		colour = termio.TERM_RED
	}

	if !ansi {
		return fmt.Sprintf("%s %s", subject, verdict)
	}

	return fmt.Sprintf("%s %s", subject, string(termio.NewColouredText(verdict, colour).Bytes()))
}
