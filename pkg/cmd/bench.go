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

	"github.com/modal-tableau/k-reasoner/pkg/bench"
	"github.com/modal-tableau/k-reasoner/pkg/util/termio"
	"github.com/spf13/cobra"
)

// benchCmd implements `reasoner bench linear_neg|exp_size|exp_model --from
// N --to M` (§6.1): it runs the named family over [N,M] and renders a
// table of n, elapsed time and verdict using the adapted termio table.
var benchCmd = &cobra.Command{
	Use:   "bench {linear_neg|exp_size|exp_model}",
	Short: "Run a parametric benchmark family and report time bounds.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		family := bench.Family(args[0])
		if !validFamily(family) {
			fmt.Printf("error: unknown benchmark family %q\n", args[0])
			os.Exit(1)
		}

		from := GetUint(cmd, "from")
		to := GetUint(cmd, "to")

		if to < from {
			fmt.Println("error: --to must be >= --from")
			os.Exit(1)
		}

		ansi := GetFlag(cmd, "ansi-escapes") || termio.IsInteractive()

		runBenchRange(family, from, to, ansi)
	},
}

func init() {
	benchCmd.Flags().Uint("from", 0, "smallest n to run")
	benchCmd.Flags().Uint("to", 10, "largest n to run (inclusive)")
}

func validFamily(f bench.Family) bool {
	for _, fam := range bench.Families {
		if fam == f {
			return true
		}
	}

	return false
}

func runBenchRange(family bench.Family, from, to uint, ansi bool) {
	rows := to - from + 1
	table := termio.NewFormattedTable(3, rows+1)

	table.SetRow(0, termio.NewText("n"), termio.NewText("elapsed"), termio.NewText("verdict"))

	for i, n := uint(1), from; n <= to; i, n = i+1, n+1 {
		result, err := bench.Run(family, n)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		verdict := "unsatisfiable"
		colour := termio.TERM_RED

		if result.Satisfiable {
			verdict = "satisfiable"
			colour = termio.TERM_GREEN
		}

		verdictText := termio.NewText(verdict)
		if ansi {
			verdictText = termio.NewColouredText(verdict, colour)
		}

		table.SetRow(i,
			termio.NewText(fmt.Sprintf("%d", n)),
			termio.NewText(result.Elapsed.String()),
			verdictText,
		)
	}

	table.Print(ansi)
}
