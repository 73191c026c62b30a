// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cybrota/avltree/kinds"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing binary search trees you can watch rotate [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load configuration, using defaults")
		cfg := defaultConfig()
		config = &cfg
	}
	manager := kinds.NewManager()

	launchTUI := func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("kind")
		if err := runTUI(manager, kind, NewRenderCache(), config); err != nil {
			log.Fatal().Err(err).Msg("interactive UI failed")
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree editor",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the interactive editor: type values, watch the tree rebalance`),
		Args:  cobra.NoArgs,
		Run:   launchTUI,
	}
	cmdRun.Flags().String("kind", config.Tree.Kind, "value kind: auto, int, float or string")

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Replay the demonstration insert sequence",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Demo inserts a fixed sequence that triggers all four rotation cases"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			verify, _ := cmd.Flags().GetBool("verify")
			if err := runDemo(os.Stdout, verify); err != nil {
				log.Fatal().Err(err).Msg("demo failed")
			}
		},
	}
	cmdDemo.Flags().Bool("verify", true, "check the AVL invariants after every insert")

	var cmdInsert = &cobra.Command{
		Use:   "insert [values...]",
		Short: "Build a tree from values and print its traversals",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Insert builds a tree from the given values, in order, and prints the traversals"),
		Run: func(cmd *cobra.Command, args []string) {
			values, _ := cmd.Flags().GetString("values")
			tokens, err := collectTokens(args, values)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid values")
			}

			orderNames, _ := cmd.Flags().GetStringSlice("order")
			orders, err := parseOrders(orderNames)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid traversal order")
			}

			opts := insertOptions{
				Tokens:  tokens,
				Orders:  orders,
				Session: config.SessionConfig(),
			}
			opts.Kind, _ = cmd.Flags().GetString("kind")
			opts.Diagram, _ = cmd.Flags().GetBool("diagram")
			opts.Verify, _ = cmd.Flags().GetBool("verify")
			opts.Copy, _ = cmd.Flags().GetBool("copy")

			if err := runInsert(os.Stdout, manager, opts); err != nil {
				log.Fatal().Err(err).Msg("insert failed")
			}
		},
	}
	cmdInsert.Flags().String("values", "", `values as one line, e.g. "3 1 'two words'"`)
	cmdInsert.Flags().String("kind", config.Tree.Kind, "value kind: auto, int, float or string")
	cmdInsert.Flags().StringSlice("order", config.Tree.Orders, "traversal orders to print (repeatable)")
	cmdInsert.Flags().Bool("diagram", config.Display.Diagram, "print an ASCII diagram of the tree")
	cmdInsert.Flags().Bool("verify", config.Display.Verify, "check the AVL invariants after building")
	cmdInsert.Flags().Bool("copy", false, "copy the first traversal to the clipboard")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert many values and check the height bound",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Bench inserts a generated sequence and compares the tree height with the AVL bound"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			size, _ := cmd.Flags().GetInt("size")
			pattern, _ := cmd.Flags().GetString("pattern")
			seed, _ := cmd.Flags().GetInt64("seed")
			noProgress, _ := cmd.Flags().GetBool("no-progress")

			seq, err := benchSequence(pattern, size, seed)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid bench parameters")
			}

			var progress io.Writer
			if config.Bench.ShowProgress && !noProgress {
				progress = os.Stderr
			}

			result, err := runBench(seq, pattern, progress)
			printBenchResult(os.Stdout, result)
			if err != nil {
				log.Fatal().Err(err).Msg("bench failed")
			}
		},
	}
	cmdBench.Flags().Int("size", config.Bench.Size, "number of values to insert")
	cmdBench.Flags().String("pattern", config.Bench.Pattern, "ascending, descending or random")
	cmdBench.Flags().Int64("seed", 1, "seed for the random pattern")
	cmdBench.Flags().Bool("no-progress", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints ~/.avltree.yaml, creating it with defaults when missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogger(os.Stderr, verbose)
		},
		// Default to the interactive editor when no subcommand is provided
		Run: launchTUI,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log rotations and other debug details to stderr")
	rootCmd.Flags().String("kind", config.Tree.Kind, "value kind: auto, int, float or string")

	rootCmd.AddCommand(cmdRun, cmdDemo, cmdInsert, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
