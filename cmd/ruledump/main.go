// Command ruledump is a secondary entry point for inspecting the
// candidate rule space generated by rulesfinder: print every candidate
// rule in either dialect, or apply them all to a dictionary for offline
// review.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/blackforge-sec/rulesfinder/engine"
	"github.com/blackforge-sec/rulesfinder/internal/rfconfig"
	"github.com/blackforge-sec/rulesfinder/rules"
)

func main() {
	var (
		mode          string
		hashcat       bool
		dictPath      string
		asConfigBlock bool
		logLevel      string
	)

	cmd := &cobra.Command{
		Use:   "ruledump",
		Short: "Print or apply the rulesfinder candidate rule space",
		RunE: func(_ *cobra.Command, _ []string) error {
			lvl, err := rfconfig.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			gologger.DefaultLogger.SetMaxLevel(lvl)
			switch mode {
			case "dump":
				return runDump(hashcat, asConfigBlock)
			case "apply":
				if dictPath == "" {
					return fmt.Errorf("--dict is required with --mode apply")
				}
				return runApply(hashcat, dictPath)
			default:
				return fmt.Errorf("accepted modes are dump and apply, got %q", mode)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&mode, "mode", "dump", "dump or apply")
	flags.BoolVar(&hashcat, "hashcat", false, "use only Hashcat-compatible rules")
	flags.StringVar(&dictPath, "dict", "", "dictionary path (required for --mode apply)")
	flags.BoolVar(&asConfigBlock, "as-config-block", false, "wrap dump output in a [List.Rules:RulesFinderRaw] config section")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug|info|warning|error|fatal")

	if err := cmd.Execute(); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}

func runDump(hashcat, asConfigBlock bool) error {
	candidates := rules.FilterDialect(rules.Genmutate(), hashcat)

	if asConfigBlock {
		fmt.Println("[List.Rules:RulesFinderRaw]")
		for _, seq := range candidates {
			text, ok := rules.ShowRules(seq, hashcat)
			if !ok {
				continue
			}
			fmt.Println(text)
		}
		return nil
	}

	for _, seq := range candidates {
		for _, line := range engine.FormatRule(seq, hashcat, false, 0, 0) {
			fmt.Println(line)
		}
	}
	return nil
}

func runApply(hashcat bool, dictPath string) error {
	f, err := os.Open(dictPath)
	if err != nil {
		return fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	var dict [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		dict = append(dict, append([]byte(nil), scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}

	candidates := rules.FilterDialect(rules.Genmutate(), hashcat)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, seq := range candidates {
		for _, word := range dict {
			mutated, ok := rules.Mutate(word, seq)
			if !ok {
				continue
			}
			w.Write(mutated)
			w.WriteByte('\n')
		}
	}
	return nil
}
