package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/common"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/schema"
	"github.com/agenthands/schemagraph/internal/core/selection"
	"github.com/agenthands/schemagraph/internal/core/taxonomy"
	"github.com/agenthands/schemagraph/internal/llm"
	"go.uber.org/zap"
)

var ErrMalformedResponse = errors.New("malformed structure response")

type Extractor struct {
	LLM         llm.LLMClient
	Prompts     config.PromptPair
	Temperature float32
	Logger      *zap.Logger
}

func NewExtractor(llmClient llm.LLMClient, cfg *config.Config, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		LLM:         llmClient,
		Prompts:     cfg.Prompts.Extraction,
		Temperature: cfg.LLM.Temperature,
		Logger:      logger,
	}
}

// Extract continues the selection conversation: the system message is
// replaced by one scoped to the selected schema's vocabulary, and the
// extraction request is appended after the selector's answer.
//
// The returned warnings report what the oracle was told but not held to:
// vocabulary, unique ids, referential integrity, connectivity and coverage.
func (e *Extractor) Extract(ctx context.Context, topic model.Topic, sel selection.Result) (model.Structure, []model.Warning, error) {
	s, err := schema.Get(sel.Schema)
	if err != nil {
		return model.Structure{}, nil, err
	}

	messages := make([]llm.Message, 0, len(sel.Conversation)+1)
	messages = append(messages, sel.Conversation...)
	system := llm.System(e.systemPrompt(s))
	if len(messages) > 0 && messages[0].Role == llm.RoleSystem {
		messages[0] = system
	} else {
		messages = append([]llm.Message{system}, messages...)
	}
	messages = append(messages, llm.User(e.userPrompt(topic)))

	response, err := e.LLM.Generate(ctx, llm.Request{
		Messages:    messages,
		Temperature: e.Temperature,
		JSON:        true,
	})
	if err != nil {
		return model.Structure{}, nil, fmt.Errorf("failed to generate structure: %w", err)
	}

	obj, err := common.ParseObject(response)
	if err != nil {
		return model.Structure{}, nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	structure := model.StructureFrom(obj)
	if structure.Topic == "" {
		structure.Topic = topic.Title
	}

	warnings := Validate(s, topic.Transcript, structure)
	for _, w := range warnings {
		e.Logger.Warn("extracted structure violates its contract",
			zap.String("topic", topic.Title),
			zap.String("kind", string(w.Kind)),
			zap.String("detail", w.Message))
	}
	e.Logger.Debug("structure extracted",
		zap.String("topic", topic.Title),
		zap.Int("nodes", len(structure.Nodes)),
		zap.Int("connections", len(structure.Connections)))

	return structure, warnings, nil
}

func (e *Extractor) systemPrompt(s schema.Schema) string {
	nodes := model.NewOrdered[string]()
	for _, t := range s.AllowedNodeTypes() {
		nodes.Set(string(t), taxonomy.NodeDefinitionOf(t).Description)
	}
	conns := model.NewOrdered[string]()
	for _, t := range s.AllowedConnectionTypes() {
		conns.Set(string(t), taxonomy.ConnectionDefinitionOf(t).Description)
	}
	return fmt.Sprintf(e.Prompts.System,
		s.Type, s.Definition(),
		common.MustMarshalIndent(nodes), common.MustMarshalIndent(conns))
}

func (e *Extractor) userPrompt(topic model.Topic) string {
	title, _ := json.Marshal(topic.Title)
	return fmt.Sprintf(e.Prompts.User, topic.Transcript, title)
}
