package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agenthands/schemagraph/internal/core/export"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/docio"
	"github.com/spf13/cobra"
)

var (
	exportRun     string
	exportReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export [filtered]",
	Short: "Copy a filtered document into Memgraph",
	Long: `Writes every topic, node and connection of a filtered document to the
graph configured under [memgraph] (or MEMGRAPH_URI). Element ids derive from
the run name, so exporting the same run again updates it in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportRun, "run", "", "Run name (default: input file name without extension)")
	exportCmd.Flags().BoolVar(&exportReplace, "replace", false, "Delete the run's previous export first")
}

func runExport(cmd *cobra.Command, args []string) error {
	in := arg(args, 0, cfg.Paths.Filtered)
	run := exportRun
	if run == "" {
		run = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}

	var doc model.FilteredDocument
	if err := docio.ReadJSON(in, &doc); err != nil {
		return err
	}

	ctx := cmd.Context()
	d, err := newDriver(ctx, cfg.Memgraph, logger.Named("driver"))
	if err != nil {
		return err
	}
	defer d.Close(ctx)

	ex := export.NewExporter(d, logger.Named("export"))
	ex.Replace = exportReplace
	stats, err := ex.Export(ctx, run, &doc)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported run %q (%s): %d topics, %d nodes, %d connections",
		run, export.RunUUID(run), stats.Topics, stats.Nodes, stats.Connections)
	if stats.Skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d connections skipped", stats.Skipped)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
