package main

import (
	"co2-pax-compare/internal/config"
	"co2-pax-compare/internal/platform/obs"
	"co2-pax-compare/internal/render"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRunCmd(cfg *config.Config, flags *flagOverrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the comparison once and write the rendered output",
		Example: `  paxco2 run --out chart.html
  paxco2 run --format table
  paxco2 run --format csv --align positional`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd, *cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Write output to this file instead of stdout")

	return cmd
}

func runOnce(cmd *cobra.Command, cfg config.Config) error {
	ctx := obs.WithRunID(cmd.Context())

	renderer, err := render.New(cfg.OutputFormat)
	if err != nil {
		return err
	}

	pipeline, cleanup, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	table, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.OutputPath == "" {
		return renderer.Render(cmd.OutOrStdout(), table)
	}

	if err := writeOutput(cfg.OutputPath, func(w io.Writer) error {
		return renderer.Render(w, table)
	}); err != nil {
		return err
	}

	log.Printf("run_id=%s wrote %d rows to %s", obs.RunID(ctx), len(table), cfg.OutputPath)
	return nil
}

var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeOutput reports the close error too; a failed flush leaves a truncated file.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	f, err := createOutput(path)
	if err != nil {
		return fmt.Errorf("create output %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output %q: %w", path, cerr)
		}
	}()

	return write(f)
}
