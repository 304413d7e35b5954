// Command rulesfinder discovers password-mangling rules that, applied
// to a training wordlist, reproduce the largest share of a training set
// of known cleartext passwords.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/blackforge-sec/rulesfinder/engine"
	"github.com/blackforge-sec/rulesfinder/internal/monitor"
	"github.com/blackforge-sec/rulesfinder/internal/rfconfig"
)

// Version information; overridden at build time with
// -ldflags "-X main.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		wordlistPath   string
		cleartextsPath string
		cutoff         int
		combos         int
		threads        int
		minSize        int
		hashcat        bool
		details        bool
		preallocate    bool
		tuiMode        bool
		configPath     string
		logLevel       string
		showVersion    bool
	)

	cmd := &cobra.Command{
		Use:   "rulesfinder",
		Short: "Discover password-mangling rules from a wordlist and a cleartext corpus",
		RunE: func(_ *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Printf("rulesfinder %s (%s)\n", Version, Commit)
				return nil
			}
			lvl, err := rfconfig.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			gologger.DefaultLogger.SetMaxLevel(lvl)
			if combos != 1 {
				return fmt.Errorf("--combos must be 1 for now, got %d", combos)
			}

			if configPath == "" {
				configPath = rfconfig.Path()
			}
			cfg, err := rfconfig.LoadFrom(configPath)
			if err != nil {
				gologger.Fatal().Msgf("loading config: %v", err)
			}
			applyConfigDefaults(cfg, &cutoff, &threads, &minSize, &hashcat, &details, &preallocate, &tuiMode)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			var mon *monitor.Monitor
			var fragProg *barProgress
			var ruleProg *barProgress
			if tuiMode {
				mon = monitor.New()
				go func() {
					if err := mon.Run(); err != nil {
						gologger.Error().Msgf("monitor exited: %v", err)
					}
					cancel()
				}()
			} else {
				fragProg = newBarProgress(" fragments inserted")
				ruleProg = newBarProgress(" rules retained")
			}

			opts := engine.Options{
				WordlistPath:   wordlistPath,
				CleartextsPath: cleartextsPath,
				Cutoff:         cutoff,
				MinSize:        minSize,
				Threads:        threads,
				Hashcat:        hashcat,
				Preallocate:    preallocate,
			}

			var result *engine.Result
			if mon != nil {
				result, err = engine.Run(ctx, opts, mon.FragmentProgress(), mon.RuleProgress())
			} else {
				result, err = engine.Run(ctx, opts, fragProg, ruleProg)
			}
			if err != nil {
				gologger.Fatal().Msgf("run failed: %v", err)
			}

			if mon != nil {
				mon.Stop()
			}

			printEmitted(result.Emitted, hashcat, details)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&wordlistPath, "wordlist", "w", "", "training wordlist path (required)")
	flags.StringVarP(&cleartextsPath, "cleartexts", "p", "", "training cleartext passwords path (required)")
	flags.IntVarP(&cutoff, "cutoff", "n", 0, "minimum cleartexts cracked for a rule to be kept")
	flags.IntVarP(&combos, "combos", "c", 1, "rule combination depth (must be 1)")
	flags.IntVarP(&threads, "threads", "t", 4, "worker thread count")
	flags.IntVar(&minSize, "minsize", 4, "minimum fragment size")
	flags.BoolVar(&hashcat, "hashcat", false, "emit only Hashcat-compatible rules")
	flags.BoolVar(&details, "details", false, "append hit counters to each emitted rule")
	flags.BoolVar(&preallocate, "preallocate", false, "preallocate fragment-map capacity")
	flags.BoolVar(&tuiMode, "tui", false, "show a live dashboard instead of progress bars")
	flags.StringVar(&configPath, "config", "", "TOML config file path (defaults to the platform config dir)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug|info|warning|error|fatal")
	flags.BoolVar(&showVersion, "version", false, "print version and exit")
	_ = cmd.MarkFlagRequired("wordlist")
	_ = cmd.MarkFlagRequired("cleartexts")
	_ = cmd.MarkFlagRequired("cutoff")

	if err := cmd.Execute(); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}

func applyConfigDefaults(cfg *rfconfig.Config, cutoff, threads, minSize *int, hashcat, details, preallocate, tui *bool) {
	if *cutoff == 0 && cfg.Search.Cutoff != 0 {
		*cutoff = cfg.Search.Cutoff
	}
	if !cmdFlagChanged(threads, 4) {
		*threads = cfg.Search.Threads
	}
	if !cmdFlagChanged(minSize, 4) {
		*minSize = cfg.Search.MinSize
	}
	if !*hashcat {
		*hashcat = cfg.Output.Hashcat
	}
	if !*details {
		*details = cfg.Output.Details
	}
	if !*preallocate {
		*preallocate = cfg.Search.Preallocate
	}
	if !*tui {
		*tui = cfg.Monitor.Enabled
	}
}

// cmdFlagChanged is a small heuristic: if the flag still holds its
// default value, the config file is allowed to override it.
func cmdFlagChanged(v *int, def int) bool { return *v != def }

func printEmitted(rulesOut []engine.EmittedRule, hashcat, details bool) {
	for _, r := range rulesOut {
		for _, line := range engine.FormatRule(r.Seq, hashcat, details, r.Count, r.Cumulative) {
			fmt.Println(line)
		}
	}
}
