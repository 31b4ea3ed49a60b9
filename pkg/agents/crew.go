package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"github.com/blogforge/blogforge/pkg/webresearch"
)

// Crew runs the two-stage content pipeline: a researcher stage that turns
// analyzed web data into a report, then a writer stage that turns the
// report into audience-tailored content. Stages run sequentially; each
// run is independent and holds no state between requests.
type Crew struct {
	cfg  Config
	api  openai.Client
	tool *webresearch.Tool
}

// NewCrew validates the config and wires the LLM client and research tool.
func NewCrew(cfg Config, tool *webresearch.Tool) (*Crew, error) {
	cfg = *cfg.WithDefaults()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("llm api key is not set")
	}
	if tool == nil {
		return nil, errors.New("research tool is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Crew{
		cfg:  cfg,
		api:  openai.NewClient(opts...),
		tool: tool,
	}, nil
}

// Kickoff executes both stages for one request and returns the combined
// result. The context bounds the whole run, including the web research.
func (c *Crew) Kickoff(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("missing topic")
	}
	log := zerolog.Ctx(ctx)

	researchData, err := c.tool.AnalyzeTopicJSON(ctx, req.Topic)
	if err != nil {
		return nil, fmt.Errorf("web research failed: %w", err)
	}
	researchData = truncateToTokens(researchData, c.cfg.Model, c.cfg.MaxResearchTokens)
	log.Debug().Str("topic", req.Topic).Int("research_chars", len(researchData)).Msg("research stage input ready")

	report, err := c.complete(ctx,
		researcherSystemPrompt(req.Topic),
		researchTaskPrompt(req.Topic, researchData))
	if err != nil {
		return nil, fmt.Errorf("researcher stage failed: %w", err)
	}

	content, err := c.complete(ctx,
		writerSystemPrompt(req.ContentType, req.Topic, req.TargetAudience),
		writingTaskPrompt(req, report))
	if err != nil {
		return nil, fmt.Errorf("writer stage failed: %w", err)
	}

	return &Result{
		TaskOutputs: []TaskOutput{
			{TaskID: uuid.NewString(), Agent: researcherAgent, Output: report},
			{TaskID: uuid.NewString(), Agent: writerAgent, Output: content},
		},
		FinalOutput: content,
	}, nil
}

func (c *Crew) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	stageCtx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(stageCtx, openai.ChatCompletionNewParams{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
