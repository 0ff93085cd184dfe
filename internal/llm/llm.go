package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"

	"pathfinder/internal/llm/prompts"
	"pathfinder/internal/model"
)

// Client wraps an OpenAI-compatible API client for career analysis calls.
type Client struct {
	api        *openai.Client
	model      string
	maxElapsed time.Duration
}

// New creates a new LLM client. baseURL may point at any OpenAI-compatible
// endpoint (a local ollama, a proxy, or the real thing).
func New(baseURL, apiKey, modelName string) (*Client, error) {
	if err := prompts.Load(); err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:        openai.NewClientWithConfig(config),
		model:      modelName,
		maxElapsed: 2 * time.Minute,
	}, nil
}

// Ping verifies the endpoint is reachable and the model responds.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "ping"}},
		MaxTokens: 1,
	})
	if err != nil {
		return fmt.Errorf("LLM ping: %w", err)
	}
	return nil
}

// Analyze requests the career analysis for a profile text. The variant
// controls depth; maxSuggestions caps the career list for the caller's plan.
func (c *Client) Analyze(ctx context.Context, variant prompts.Variant, profile string, maxSuggestions int) (*model.FullAnalysis, error) {
	prompt, err := prompts.BuildAnalysisPrompt(variant, profile, maxSuggestions)
	if err != nil {
		return nil, err
	}
	var analysis model.FullAnalysis
	if err := c.completeJSON(ctx, prompt, &analysis); err != nil {
		return nil, fmt.Errorf("career analysis: %w", err)
	}
	return &analysis, nil
}

// CompareCareers requests a side-by-side comparison for a set of careers.
func (c *Client) CompareCareers(ctx context.Context, profile string, careers []string) ([]model.CareerComparison, error) {
	prompt, err := prompts.BuildComparePrompt(profile, careers)
	if err != nil {
		return nil, err
	}
	var comparisons []model.CareerComparison
	if err := c.completeJSON(ctx, prompt, &comparisons); err != nil {
		return nil, fmt.Errorf("career comparison: %w", err)
	}
	return comparisons, nil
}

// Testimonial requests a first-person testimonial. Plain text, no JSON.
func (c *Client) Testimonial(ctx context.Context, archetype, career string) (string, error) {
	prompt, err := prompts.BuildTestimonialPrompt(archetype, career)
	if err != nil {
		return "", err
	}
	text, err := c.complete(ctx, prompt, nil)
	if err != nil {
		return "", fmt.Errorf("testimonial: %w", err)
	}
	return text, nil
}

// LearningPath requests a 3-step learning path for skills to develop.
func (c *Client) LearningPath(ctx context.Context, archetype, career string, skills []string) ([]model.LearningStep, error) {
	prompt, err := prompts.BuildLearningPathPrompt(archetype, career, skills)
	if err != nil {
		return nil, err
	}
	var steps []model.LearningStep
	if err := c.completeJSON(ctx, prompt, &steps); err != nil {
		return nil, fmt.Errorf("learning path: %w", err)
	}
	return steps, nil
}

// InterviewQuestions requests interview prep questions with coaching tips.
func (c *Client) InterviewQuestions(ctx context.Context, archetype, career string, growthAreas []string) ([]model.InterviewQuestion, error) {
	prompt, err := prompts.BuildInterviewPrompt(archetype, career, growthAreas)
	if err != nil {
		return nil, err
	}
	var questions []model.InterviewQuestion
	if err := c.completeJSON(ctx, prompt, &questions); err != nil {
		return nil, fmt.Errorf("interview questions: %w", err)
	}
	return questions, nil
}

// Simulate requests an interactive career simulation scenario.
func (c *Client) Simulate(ctx context.Context, archetype, career string, growthAreas []string) (*model.CareerSimulation, error) {
	prompt, err := prompts.BuildSimulationPrompt(archetype, career, growthAreas)
	if err != nil {
		return nil, err
	}
	var sim model.CareerSimulation
	if err := c.completeJSON(ctx, prompt, &sim); err != nil {
		return nil, fmt.Errorf("career simulation: %w", err)
	}
	return &sim, nil
}

// completeJSON runs a completion in JSON mode and decodes into out.
func (c *Client) completeJSON(ctx context.Context, prompt string, out any) error {
	raw, err := c.complete(ctx, prompt, &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("parse LLM response: %w (raw: %s)", err, raw)
	}
	return nil
}

// complete sends one prompt and returns the model's text. Transient
// failures are retried with exponential backoff; the caller's context
// bounds the whole attempt, so navigating away simply cancels it.
func (c *Client) complete(ctx context.Context, prompt string, format *openai.ChatCompletionResponseFormat) (string, error) {
	op := func() (string, error) {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			ResponseFormat: format,
			Temperature:    0.3,
		})
		if err != nil {
			return "", fmt.Errorf("LLM API call: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", backoff.Permanent(fmt.Errorf("LLM returned no choices"))
		}
		return resp.Choices[0].Message.Content, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.maxElapsed
	raw, err := backoff.RetryWithData(op, backoff.WithContext(bo, ctx))
	if err != nil {
		return "", err
	}
	slog.Debug("LLM response", "raw", raw)
	return raw, nil
}
