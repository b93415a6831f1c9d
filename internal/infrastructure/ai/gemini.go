// Package ai implements the recommender on the Gemini API.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

const defaultModel = "gemini-2.0-flash"

// Config captures the Gemini settings. APIKey must be explicitly configured;
// there is no default credential.
type Config struct {
	APIKey string
	Model  string
}

// GeminiRecommender implements ports.Recommender against the Gemini API.
type GeminiRecommender struct {
	client *genai.Client
	model  string
}

func NewGeminiRecommender(ctx context.Context, cfg Config) (*GeminiRecommender, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &GeminiRecommender{client: client, model: model}, nil
}

// Generate asks the model for structured recommendations. Any transport or
// parse failure is wrapped in ErrRecommenderUnavailable so the service layer
// can degrade to its simulated output.
func (g *GeminiRecommender) Generate(ctx context.Context, prefs ports.PreferenceInput) ([]domain.Recommendation, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(buildPrompt(prefs)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecommenderUnavailable, err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Text())), &recs); err != nil {
		return nil, fmt.Errorf("%w: parse model output: %v", domain.ErrRecommenderUnavailable, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: empty model output", domain.ErrRecommenderUnavailable)
	}
	return recs, nil
}

// buildPrompt embeds every supplied preference, substituting neutral defaults
// for the optional ones.
func buildPrompt(prefs ports.PreferenceInput) string {
	duration := prefs.Duration
	if duration == "" {
		duration = "flexible"
	}
	interests := strings.Join(prefs.Interests, ", ")
	if interests == "" {
		interests = "general"
	}
	goals := prefs.LearningGoals
	if goals == "" {
		goals = "skill development"
	}

	var b strings.Builder
	b.WriteString("You are an expert academic advisor. Based on the following student preferences, recommend 5 relevant courses:\n\n")
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(prefs.Topics, ", "))
	fmt.Fprintf(&b, "Skill Level: %s\n", prefs.SkillLevel)
	fmt.Fprintf(&b, "Duration Preference: %s\n", duration)
	fmt.Fprintf(&b, "Interests: %s\n", interests)
	fmt.Fprintf(&b, "Learning Goals: %s\n\n", goals)
	b.WriteString(`Please provide course recommendations in the following JSON format:
[
  {
    "courseName": "Course Name",
    "universityName": "University Name",
    "matchScore": 85,
    "rationale": "Why this course matches the student's needs",
    "category": "Course Category",
    "duration": "Course Duration",
    "difficulty": "beginner/intermediate/advanced"
  }
]

Focus on courses that match the student's skill level and interests. Provide realistic university names and course details.`)
	return b.String()
}

// stripCodeFence unwraps ```json ... ``` blocks some models emit even when
// asked for raw JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
