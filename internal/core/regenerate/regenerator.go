// Package regenerate turns a filtered document back into a dialogue
// transcript.
package regenerate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/common"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/llm"
	"go.uber.org/zap"
)

var ErrEmptyDocument = errors.New("nothing to regenerate: document has no topics")

// OutputFile is the file name written under the regeneration directory.
const OutputFile = "regenerated_podcast.txt"

func OutputPath(dir string) string {
	return filepath.Join(dir, OutputFile)
}

type Regenerator struct {
	LLM         llm.LLMClient
	Prompts     config.PromptPair
	Temperature float32
	Logger      *zap.Logger
}

func NewRegenerator(llmClient llm.LLMClient, cfg *config.Config, logger *zap.Logger) *Regenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Regenerator{
		LLM:         llmClient,
		Prompts:     cfg.Prompts.Regeneration,
		Temperature: cfg.LLM.RegenerateTemperature,
		Logger:      logger,
	}
}

func (r *Regenerator) Regenerate(ctx context.Context, doc *model.FilteredDocument) (string, error) {
	if doc.Len() == 0 {
		return "", ErrEmptyDocument
	}

	response, err := r.LLM.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			llm.System(r.Prompts.System),
			llm.User(fmt.Sprintf(r.Prompts.User, common.MustMarshalIndent(doc))),
		},
		Temperature: r.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to regenerate podcast: %w", err)
	}

	text := strings.TrimSpace(response)
	if text == "" {
		return "", fmt.Errorf("failed to regenerate podcast: %w", llm.ErrEmptyResponse)
	}
	r.Logger.Info("podcast regenerated", zap.Int("topics", doc.Len()), zap.Int("chars", len(text)))
	return text + "\n", nil
}
