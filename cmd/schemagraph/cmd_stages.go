package main

import (
	"fmt"

	"github.com/agenthands/schemagraph/internal/core"
	"github.com/agenthands/schemagraph/internal/core/filter"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/regenerate"
	"github.com/agenthands/schemagraph/internal/docio"
	"github.com/agenthands/schemagraph/internal/llm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var regenerateAfterRun bool

var topicsCmd = &cobra.Command{
	Use:   "topics [transcript] [out]",
	Short: "Segment a transcript into ordered topics",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runTopics,
}

var structureCmd = &cobra.Command{
	Use:   "structure [topics] [out]",
	Short: "Select a schema and extract a graph for every topic",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runStructure,
}

var filterCmd = &cobra.Command{
	Use:   "filter [structured] [out]",
	Short: "Reduce a structured document to the final artifact",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runFilter,
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate [filtered] [out_dir]",
	Short: "Write a dialogue transcript from a filtered document",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runRegenerate,
}

var runCmd = &cobra.Command{
	Use:   "run [transcript]",
	Short: "Run topics, structure and filter in sequence",
	Long: `Runs every stage on one transcript and writes the topics, structured and
filtered documents to the paths configured under [paths].`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAll,
}

func init() {
	runCmd.Flags().BoolVar(&regenerateAfterRun, "regenerate", false, "Also regenerate a transcript from the filtered document")
}

func runTopics(cmd *cobra.Command, args []string) error {
	in := arg(args, 0, cfg.Paths.Transcript)
	out := arg(args, 1, cfg.Paths.Topics)

	transcript, err := docio.ReadText(in)
	if err != nil {
		return err
	}
	p, err := newPipeline(cmd.Context())
	if err != nil {
		return err
	}
	defer llm.Close(p.LLM)

	topics, warnings, err := p.Segment(cmd.Context(), transcript)
	if err != nil {
		return fmt.Errorf("failed to extract topics: %w", err)
	}
	if err := docio.WriteJSON(out, topics); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Saved %d topics to %s\n", topics.Len(), out)
	for _, warn := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warn)
	}
	return nil
}

func runStructure(cmd *cobra.Command, args []string) error {
	in := arg(args, 0, cfg.Paths.Topics)
	out := arg(args, 1, cfg.Paths.Structured)

	var topics model.Topics
	if err := docio.ReadJSON(in, &topics); err != nil {
		return err
	}
	p, err := newPipeline(cmd.Context())
	if err != nil {
		return err
	}
	defer llm.Close(p.LLM)

	logger.Info("structuring topics", zap.String("input", in), zap.Int("topics", topics.Len()))
	doc, summary, err := p.Structure(cmd.Context(), &topics)
	if err != nil {
		return err
	}
	if err := docio.WriteJSON(out, doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d topics to %s\n", doc.Len(), out)
	summary.Print(cmd.OutOrStdout())
	return nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	in := arg(args, 0, cfg.Paths.Structured)
	out := arg(args, 1, cfg.Paths.Filtered)

	raw, err := docio.ReadRaw(in)
	if err != nil {
		return err
	}
	doc, err := filter.FilterJSON(raw)
	if err != nil {
		return fmt.Errorf("invalid JSON in '%s': %w", in, err)
	}
	if err := docio.WriteJSON(out, doc); err != nil {
		return err
	}

	s := filter.Count(doc)
	fmt.Fprintf(cmd.OutOrStdout(), "Filtered %d topics (%d nodes, %d connections) to %s\n", s.Topics, s.Nodes, s.Connections, out)
	return nil
}

func runRegenerate(cmd *cobra.Command, args []string) error {
	in := arg(args, 0, cfg.Paths.Filtered)
	dir := arg(args, 1, cfg.Paths.RegenerateDir)

	var doc model.FilteredDocument
	if err := docio.ReadJSON(in, &doc); err != nil {
		return err
	}
	p, err := newPipeline(cmd.Context())
	if err != nil {
		return err
	}
	defer llm.Close(p.LLM)
	return regenerateTo(cmd, p, &doc, dir)
}

func runAll(cmd *cobra.Command, args []string) error {
	in := arg(args, 0, cfg.Paths.Transcript)

	transcript, err := docio.ReadText(in)
	if err != nil {
		return err
	}
	p, err := newPipeline(cmd.Context())
	if err != nil {
		return err
	}
	defer llm.Close(p.LLM)

	res, err := p.Run(cmd.Context(), transcript)
	if err != nil {
		return err
	}
	if err := docio.WriteJSON(cfg.Paths.Topics, res.Topics); err != nil {
		return err
	}
	if err := docio.WriteJSON(cfg.Paths.Structured, res.Structured); err != nil {
		return err
	}
	if err := docio.WriteJSON(cfg.Paths.Filtered, res.Filtered); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warn)
	}
	fmt.Fprintf(w, "Saved %s, %s and %s\n", cfg.Paths.Topics, cfg.Paths.Structured, cfg.Paths.Filtered)
	res.Summary.Print(w)

	if regenerateAfterRun {
		return regenerateTo(cmd, p, res.Filtered, cfg.Paths.RegenerateDir)
	}
	return nil
}

func regenerateTo(cmd *cobra.Command, p *core.Pipeline, doc *model.FilteredDocument, dir string) error {
	text, err := p.Regenerate(cmd.Context(), doc)
	if err != nil {
		return err
	}
	out := regenerate.OutputPath(dir)
	if err := docio.WriteText(out, text); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Regenerated podcast saved to %s\n", out)
	return nil
}
