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

// Package cmd wires the tableau decision procedure up as a Cobra-based
// command-line tool, following this codebase's existing rootCmd +
// subcommand convention: a single shared `log` import configured once at
// start-up, flags (not environment variables) as the configuration
// surface, and GetFlag/GetString/GetUint helpers that exit on cobra
// plumbing errors rather than threading an error back up.
package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is empty unless set at link time (e.g. with -ldflags "-X").
var Version string

// rootCmd represents the base command when called without any
// subcommands. Per §6, `reasoner -label "..."` and `reasoner <path>` are
// accepted directly on the root command, mirroring how the decide
// subcommand behaves, so that the common case doesn't require typing
// `decide` explicitly.
var rootCmd = &cobra.Command{
	Use:   "reasoner",
	Args:  cobra.ArbitraryArgs,
	Short: "Decide satisfiability of modal-logic labels under K.",
	Long: `A tableau-based decision procedure for satisfiability of finite sets of
modal-logic formulae in the basic normal modal logic K.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		}

		label := GetString(cmd, "label")
		if label == "" && len(args) == 0 {
			if err := cmd.Usage(); err != nil {
				fmt.Println(err)
			}

			return
		}

		runDecide(cmd, args)
	},
}

func init() {
	rootCmd.Flags().Bool("version", false, "print version information and exit")
	rootCmd.Flags().String("label", "", "decide a single label given directly on the command line")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
	rootCmd.PersistentFlags().Bool("ansi-escapes", false, "force ANSI-coloured output even when stdout isn't a terminal")

	decideCmd.Flags().String("label", "", "decide a single label given directly on the command line")
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(benchCmd)
}

func printVersion() {
	fmt.Print("reasoner ")

	if Version != "" {
		fmt.Printf("%s", Version)
	} else {
		fmt.Print("(development build)")
	}

	fmt.Println()
}

func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main() exactly once. The single-dash
// spelling -label is accepted as an alias of --label.
func Execute() {
	for i, arg := range os.Args {
		if arg == "-label" || strings.HasPrefix(arg, "-label=") {
			os.Args[i] = "-" + arg
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
