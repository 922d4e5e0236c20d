package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/common"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/schema"
	"github.com/agenthands/schemagraph/internal/core/taxonomy"
	"github.com/agenthands/schemagraph/internal/llm"
	"go.uber.org/zap"
)

var ErrMalformedResponse = errors.New("malformed schema selection response")

// Result is a classification plus the conversation that produced it, so the
// extraction step can continue from it.
type Result struct {
	Selection model.Selection
	// Schema is the schema actually used; it differs from
	// Selection.SelectedSchema only when FellBack is set.
	Schema       taxonomy.SchemaType
	FellBack     bool
	Conversation []llm.Message
}

type Selector struct {
	LLM         llm.LLMClient
	Prompts     config.PromptPair
	Temperature float32
	Logger      *zap.Logger
}

func NewSelector(llmClient llm.LLMClient, cfg *config.Config, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		LLM:         llmClient,
		Prompts:     cfg.Prompts.Selection,
		Temperature: cfg.LLM.Temperature,
		Logger:      logger,
	}
}

func (s *Selector) Select(ctx context.Context, chunk string) (Result, error) {
	conversation := []llm.Message{
		llm.System(fmt.Sprintf(s.Prompts.System, common.MustMarshalIndent(schema.CatalogByType()))),
		llm.User(fmt.Sprintf(s.Prompts.User, chunk)),
	}

	response, err := s.LLM.Generate(ctx, llm.Request{
		Messages:    conversation,
		Temperature: s.Temperature,
		JSON:        true,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to select schema: %w", err)
	}

	obj, err := common.ParseObject(response)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	sel := model.SelectionFrom(obj)

	res := Result{
		Selection:    sel,
		Conversation: append(conversation, llm.Assistant(response)),
	}
	st, ok := taxonomy.ParseSchemaType(sel.SelectedSchema)
	if !ok {
		s.Logger.Warn("unknown schema selected, falling back",
			zap.String("selected", sel.SelectedSchema),
			zap.String("fallback", taxonomy.DefaultSchema.String()))
		st = taxonomy.DefaultSchema
		res.FellBack = true
	}
	res.Schema = st

	s.Logger.Debug("schema selected",
		zap.String("schema", st.String()),
		zap.String("confidence", sel.Confidence))
	return res, nil
}
