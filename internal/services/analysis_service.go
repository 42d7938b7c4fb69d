package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agent_review_go_backend/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
)

const (
	// Returned when no API credential is configured.
	AnalysisPlaceholderNoKey = "AgentReview AI Node: Please configure your API Key to enable neural analysis."
	// Returned when the model call fails for any reason.
	AnalysisPlaceholderFailed = "System Error: Neural link to Gemini interrupted. Please try again later."
	// Returned when the model answers with no usable text.
	AnalysisPlaceholderEmpty = "Analysis failed."
)

// TextGenerator is the narrow slice of a generative model the analysis
// service needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator backs TextGenerator with a Gemini model.
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
}

func NewGeminiGenerator(client *genai.Client, modelName string) *GeminiGenerator {
	return &GeminiGenerator{
		client:    client,
		modelName: modelName,
	}
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates in response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// AnalysisService fronts the external text-analysis collaborator. It is
// fully isolated from the ledger: every failure degrades to a fixed
// placeholder string, never an error, and it runs under its own timeout.
type AnalysisService struct {
	generator TextGenerator
	timeout   time.Duration
}

// NewAnalysisService creates the service. generator may be nil when no API
// credential is configured; analysis then degrades to a placeholder.
func NewAnalysisService(generator TextGenerator, timeout time.Duration) *AnalysisService {
	return &AnalysisService{
		generator: generator,
		timeout:   timeout,
	}
}

// AnalyzePaper asks the model for a structured commentary on the paper's
// title and abstract.
func (s *AnalysisService) AnalyzePaper(ctx context.Context, paper models.Paper) string {
	if s.generator == nil {
		log.Warn().Str("paper_id", paper.ID).Msg("no Gemini API key configured, skipping analysis")
		return AnalysisPlaceholderNoKey
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(ctx, buildAnalysisPrompt(paper))
	if err != nil {
		log.Error().Err(err).Str("paper_id", paper.ID).Msg("Gemini analysis failed")
		return AnalysisPlaceholderFailed
	}
	if text == "" {
		return AnalysisPlaceholderEmpty
	}
	return text
}

func buildAnalysisPrompt(paper models.Paper) string {
	return fmt.Sprintf(`
You are an expert academic reviewer for AI Agents.
Analyze the following abstract for a paper titled "%s".

Abstract: "%s"

Provide a structured "DeSci Review" in markdown format:
1. **Core Innovation**: One sentence on what is new.
2. **Agentic Capability**: Does it involve multi-agent consensus, tool use, or embodiment?
3. **Impact Rating**: A score from 1-10 on potential impact for the AI ecosystem.
4. **Critique**: One potential limitation.

Keep it concise (under 150 words). Tone: Cyberpunk academic, objective but forward-looking.
`, paper.Title, paper.Abstract)
}
