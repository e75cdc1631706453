package main

import (
	"co2-pax-compare/internal/config"
	"fmt"

	"github.com/spf13/cobra"
)

type flagOverrides struct {
	format string
	out    string
	align  string
	port   string
}

func newRootCmd() *cobra.Command {
	var (
		cfg   config.Config
		flags flagOverrides
	)

	root := &cobra.Command{
		Use:   "paxco2",
		Short: "Compare global CO2 emissions with airline passenger numbers",
		Long: `paxco2 loads yearly airline passenger totals and OECD air emissions,
sums emissions across countries, aligns both series by year and renders
a dual-axis comparison chart or table.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			loaded, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, &loaded, flags)
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("config: %w", err)
			}

			cfg = loaded
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flags.format, "format", "f", "", "Output format (html|table|markdown|csv|json)")
	root.PersistentFlags().StringVarP(&flags.align, "align", "a", "", "Alignment mode (keyed|positional)")

	_ = root.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"html", "table", "markdown", "csv", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = root.RegisterFlagCompletionFunc("align", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"keyed", "positional"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newRunCmd(&cfg, &flags))
	root.AddCommand(newServeCmd(&cfg, &flags))

	return root
}

// applyFlags overrides environment values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f flagOverrides) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("format") {
		cfg.OutputFormat = f.format
	}
	if changed("align") {
		cfg.AlignMode = f.align
	}
	if changed("out") {
		cfg.OutputPath = f.out
	}
	if changed("port") {
		cfg.Port = f.port
	}
}
