package segment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core/common"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/llm"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	ErrEmptyTranscript   = errors.New("transcript is empty")
	ErrMalformedResponse = errors.New("malformed segmentation response")
)

type Segmenter struct {
	LLM         llm.LLMClient
	Prompts     config.PromptPair
	Temperature float32
	// LongTranscriptChars only triggers a warning; 0 disables it.
	LongTranscriptChars int
	Logger              *zap.Logger
}

func NewSegmenter(llmClient llm.LLMClient, cfg *config.Config, logger *zap.Logger) *Segmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Segmenter{
		LLM:                 llmClient,
		Prompts:             cfg.Prompts.Segmentation,
		Temperature:         cfg.LLM.Temperature,
		LongTranscriptChars: cfg.Segmentation.LongTranscriptChars,
		Logger:              logger,
	}
}

// Segment asks the oracle to split transcript into ordered topics. Any call or
// parse failure is returned as an error; there is no partial result. Coverage
// violations come back as warnings alongside the topics.
func (s *Segmenter) Segment(ctx context.Context, transcript string) (*model.Topics, []model.Warning, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, nil, ErrEmptyTranscript
	}
	if s.LongTranscriptChars > 0 && len(transcript) > s.LongTranscriptChars {
		s.Logger.Warn("transcript is very long, the oracle may truncate or drop text",
			zap.Int("chars", len(transcript)),
			zap.Int("threshold", s.LongTranscriptChars))
	}

	response, err := s.LLM.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			llm.System(s.Prompts.System),
			llm.User(fmt.Sprintf(s.Prompts.User, transcript)),
		},
		Temperature: s.Temperature,
		JSON:        true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate topics: %w", err)
	}

	topics, err := ParseTopics(response)
	if err != nil {
		return nil, nil, err
	}

	warnings := VerifyCoverage(transcript, topics)
	for _, w := range warnings {
		s.Logger.Warn("segmentation coverage violated", zap.String("kind", string(w.Kind)), zap.String("detail", w.Message))
	}
	s.Logger.Info("transcript segmented", zap.Int("topics", topics.Len()))

	return topics, warnings, nil
}

// ParseTopics reads a segmentation response. Entries keep the order the
// oracle emitted them in and are re-keyed topic_1..topic_n.
func ParseTopics(response string) (*model.Topics, error) {
	raw, err := common.ExtractObject(response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid JSON: %s", ErrMalformedResponse, common.Truncate(raw, 200))
	}

	topics := model.NewOrdered[model.Topic]()
	var perr error
	gjson.Parse(raw).ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			perr = fmt.Errorf("%w: %q is not an object", ErrMalformedResponse, key.String())
			return false
		}
		title, transcript := value.Get("title"), value.Get("transcript")
		if title.Type != gjson.String || transcript.Type != gjson.String {
			perr = fmt.Errorf("%w: %q needs string title and transcript", ErrMalformedResponse, key.String())
			return false
		}
		topics.Set(model.TopicKey(topics.Len()+1), model.Topic{
			Title:      title.String(),
			Transcript: transcript.String(),
		})
		return true
	})
	if perr != nil {
		return nil, perr
	}
	if topics.Len() == 0 {
		return nil, fmt.Errorf("%w: no topics", ErrMalformedResponse)
	}
	return topics, nil
}
