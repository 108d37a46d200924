package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("gemini api key not configured")

// Generator produces one assistant reply for message under the given
// system instruction.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, message string) (string, error)
}

var _ Generator = (*GeminiClient)(nil)

type GeminiClient struct {
	client         *genai.Client
	model          string
	thinkingBudget int32
}

func NewGeminiClient(ctx context.Context, apiKey, model string, thinkingBudget int32) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		model:          model,
		thinkingBudget: thinkingBudget,
	}, nil
}

func (g *GeminiClient) config(systemInstruction string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(g.thinkingBudget),
		},
	}
}

// Generate sends a single-turn request. An empty reply is not an error.
func (g *GeminiClient) Generate(ctx context.Context, systemInstruction, message string) (string, error) {
	ctx, span := otel.Tracer("GeminiClient").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("model", g.model),
		attribute.Int("message.length", len(message)),
	))
	defer span.End()

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(message), g.config(systemInstruction))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "Content generated")
	return text, nil
}

// GenerateStream is Generate with the reply delivered in chunks as they
// arrive. It returns the concatenated text.
func (g *GeminiClient) GenerateStream(ctx context.Context, systemInstruction, message string, onChunk func(string)) (string, error) {
	ctx, span := otel.Tracer("GeminiClient").Start(ctx, "GenerateStream", trace.WithAttributes(
		attribute.String("model", g.model),
		attribute.Int("message.length", len(message)),
	))
	defer span.End()

	var sb strings.Builder
	for result, err := range g.client.Models.GenerateContentStream(ctx, g.model, genai.Text(message), g.config(systemInstruction)) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Stream failed")
			return sb.String(), fmt.Errorf("gemini stream: %w", err)
		}
		chunk := result.Text()
		if chunk == "" {
			continue
		}
		sb.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	span.SetAttributes(attribute.Int("response.length", sb.Len()))
	return sb.String(), nil
}
