package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGeminiClient_MissingKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", DefaultModel, 0)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGeminiClient_Config(t *testing.T) {
	g := &GeminiClient{model: DefaultModel}
	cfg := g.config(BriefingContext)

	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Equal(t, BriefingContext, cfg.SystemInstruction.Parts[0].Text)
	assert.Equal(t, genai.RoleUser, cfg.SystemInstruction.Role)

	require.NotNil(t, cfg.ThinkingConfig)
	require.NotNil(t, cfg.ThinkingConfig.ThinkingBudget)
	assert.Equal(t, int32(0), *cfg.ThinkingConfig.ThinkingBudget)
}
