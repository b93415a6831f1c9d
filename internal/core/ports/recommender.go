package ports

import (
	"context"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// PreferenceInput carries a learner's validated preferences.
type PreferenceInput struct {
	Topics        []string
	SkillLevel    string
	Duration      string
	Interests     []string
	LearningGoals string
}

// Recommender generates course recommendations from learner preferences.
// Implementations call a generative-AI backend; failures are returned as
// errors and the caller decides how to degrade.
type Recommender interface {
	Generate(ctx context.Context, prefs PreferenceInput) ([]domain.Recommendation, error)
}

type RecommendationService interface {
	Generate(ctx context.Context, prefs PreferenceInput) ([]domain.Recommendation, error)
}
