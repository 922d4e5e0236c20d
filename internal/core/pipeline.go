package core

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/extraction"
	"github.com/agenthands/schemagraph/internal/core/filter"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/regenerate"
	"github.com/agenthands/schemagraph/internal/core/segment"
	"github.com/agenthands/schemagraph/internal/core/selection"
	"github.com/agenthands/schemagraph/internal/llm"
	"go.uber.org/zap"
)

var ErrEmptyTopic = errors.New("topic has no transcript")

// Pipeline runs segmentation, per-topic selection and extraction, and
// filtering. Topics are processed one at a time, in document order.
type Pipeline struct {
	LLM         llm.LLMClient
	Segmenter   *segment.Segmenter
	Selector    *selection.Selector
	Extractor   *extraction.Extractor
	Regenerator *regenerate.Regenerator
	Logger      *zap.Logger
}

func NewPipeline(llmClient llm.LLMClient, cfg *config.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		LLM:         llmClient,
		Segmenter:   segment.NewSegmenter(llmClient, cfg, logger.Named("segment")),
		Selector:    selection.NewSelector(llmClient, cfg, logger.Named("selection")),
		Extractor:   extraction.NewExtractor(llmClient, cfg, logger.Named("extraction")),
		Regenerator: regenerate.NewRegenerator(llmClient, cfg, logger.Named("regenerate")),
		Logger:      logger,
	}
}

func (p *Pipeline) Segment(ctx context.Context, transcript string) (*model.Topics, []model.Warning, error) {
	return p.Segmenter.Segment(ctx, transcript)
}

// ProcessTopic selects a schema for topic and extracts its structure.
func (p *Pipeline) ProcessTopic(ctx context.Context, topic model.Topic) (model.TopicResult, error) {
	if topic.Transcript == "" {
		return model.TopicResult{}, ErrEmptyTopic
	}

	sel, err := p.Selector.Select(ctx, topic.Transcript)
	if err != nil {
		return model.TopicResult{}, err
	}
	structure, warnings, err := p.Extractor.Extract(ctx, topic, sel)
	if err != nil {
		return model.TopicResult{}, err
	}

	selCopy := sel.Selection
	return model.TopicResult{
		Title:              topic.Title,
		OriginalTranscript: topic.Transcript,
		SchemaType:         sel.Schema.String(),
		SchemaSelection:    &selCopy,
		Topic:              structure.Topic,
		Nodes:              structure.Nodes,
		Connections:        structure.Connections,
		Warnings:           warnings,
	}, nil
}

// Structure processes every topic. A topic that fails, including by panic,
// is recorded with its error and the run moves on; topics with an empty
// transcript are left out. Only context cancellation stops the loop early.
func (p *Pipeline) Structure(ctx context.Context, topics *model.Topics) (*model.StructuredDocument, Summary, error) {
	doc := model.NewOrdered[model.TopicResult]()
	total := topics.Len()
	i, skipped := 0, 0

	var ctxErr error
	topics.Each(func(key string, topic model.Topic) {
		if ctxErr != nil {
			return
		}
		i++
		log := p.Logger.With(zap.String("key", key), zap.String("title", topic.Title))

		if topic.Transcript == "" {
			log.Warn("topic has no transcript, skipping")
			skipped++
			return
		}
		log.Info("processing topic",
			zap.Int("index", i),
			zap.Int("total", total),
			zap.Int("chars", len(topic.Transcript)))

		result, err := p.safeProcess(ctx, topic)
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				ctxErr = cerr
			}
			log.Error("failed to process topic", zap.Error(err))
			doc.Set(key, model.FailedTopic(topic, err))
			return
		}

		log.Info("processed topic",
			zap.String("schema", result.SchemaType),
			zap.Int("nodes", len(result.Nodes)),
			zap.Int("connections", len(result.Connections)),
			zap.Int("warnings", len(result.Warnings)))
		doc.Set(key, result)
	})

	summary := Summarize(doc)
	summary.Skipped = skipped
	if ctxErr != nil {
		return doc, summary, fmt.Errorf("structuring interrupted: %w", ctxErr)
	}
	return doc, summary, nil
}

func (p *Pipeline) safeProcess(ctx context.Context, topic model.Topic) (res model.TopicResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("panic while processing topic",
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return p.ProcessTopic(ctx, topic)
}

// Result bundles every artifact of a full run.
type Result struct {
	Topics     *model.Topics             `json:"topics"`
	Structured *model.StructuredDocument `json:"structured"`
	Filtered   *model.FilteredDocument   `json:"filtered"`
	Summary    Summary                   `json:"summary"`
	Warnings   []model.Warning           `json:"warnings,omitempty"`
}

// Run segments transcript, structures every topic and filters the result.
func (p *Pipeline) Run(ctx context.Context, transcript string) (*Result, error) {
	topics, warnings, err := p.Segment(ctx, transcript)
	if err != nil {
		return nil, err
	}
	structured, summary, err := p.Structure(ctx, topics)
	if err != nil {
		return nil, err
	}
	return &Result{
		Topics:     topics,
		Structured: structured,
		Filtered:   filter.Filter(structured),
		Summary:    summary,
		Warnings:   warnings,
	}, nil
}

func (p *Pipeline) Regenerate(ctx context.Context, doc *model.FilteredDocument) (string, error) {
	return p.Regenerator.Regenerate(ctx, doc)
}
