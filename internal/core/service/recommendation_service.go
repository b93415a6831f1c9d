package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coursecompass/course-discovery/internal/api/metrics"
	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

// maxRecommendations caps the list returned to callers regardless of how many
// rows the generative backend produces.
const maxRecommendations = 5

// RecommendationService turns learner preferences into ranked course
// suggestions. When simulate is set (or the recommender fails) it serves a
// deterministic canned list instead of calling the backend; simulation is an
// explicit configured mode, never an implicit default.
type RecommendationService struct {
	recommender ports.Recommender
	simulate    bool
	logger      zerolog.Logger
}

func NewRecommendationService(recommender ports.Recommender, simulate bool, logger zerolog.Logger) *RecommendationService {
	return &RecommendationService{recommender: recommender, simulate: simulate, logger: logger}
}

func (s *RecommendationService) Generate(ctx context.Context, prefs ports.PreferenceInput) ([]domain.Recommendation, error) {
	if s.simulate || s.recommender == nil {
		metrics.RecommendationsTotal.WithLabelValues("simulated").Inc()
		return simulatedRecommendations(prefs), nil
	}

	recs, err := s.recommender.Generate(ctx, prefs)
	if err != nil {
		s.logger.Warn().Err(err).Msg("recommender failed, serving simulated recommendations")
		metrics.RecommendationsTotal.WithLabelValues("simulated").Inc()
		return simulatedRecommendations(prefs), nil
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	metrics.RecommendationsTotal.WithLabelValues("gemini").Inc()
	return recs, nil
}

// simulatedRecommendations fabricates five suggestions from the first topic.
// Scores and institutions are fixed so the output is fully deterministic for
// a given request.
func simulatedRecommendations(prefs ports.PreferenceInput) []domain.Recommendation {
	topic := prefs.Topics[0]

	return []domain.Recommendation{
		{
			CourseName:     fmt.Sprintf("Advanced %s Programming", topic),
			UniversityName: "Stanford University",
			MatchScore:     92,
			Rationale:      fmt.Sprintf("Perfect match for %s level students interested in %s", prefs.SkillLevel, topic),
			Category:       topic,
			Duration:       "12 weeks",
			Difficulty:     prefs.SkillLevel,
		},
		{
			CourseName:     fmt.Sprintf("%s Fundamentals", topic),
			UniversityName: "MIT",
			MatchScore:     88,
			Rationale:      fmt.Sprintf("Comprehensive introduction to %s concepts", topic),
			Category:       topic,
			Duration:       "8 weeks",
			Difficulty:     domain.SkillBeginner,
		},
		{
			CourseName:     fmt.Sprintf("Data Science with %s", topic),
			UniversityName: "Harvard University",
			MatchScore:     85,
			Rationale:      fmt.Sprintf("Combines %s with practical data science applications", topic),
			Category:       "Data Science",
			Duration:       "16 weeks",
			Difficulty:     domain.SkillIntermediate,
		},
		{
			CourseName:     fmt.Sprintf("Machine Learning in %s", topic),
			UniversityName: "Carnegie Mellon University",
			MatchScore:     90,
			Rationale:      fmt.Sprintf("Advanced course covering ML applications in %s", topic),
			Category:       "Machine Learning",
			Duration:       "20 weeks",
			Difficulty:     domain.SkillAdvanced,
		},
		{
			CourseName:     fmt.Sprintf("%s Project Management", topic),
			UniversityName: "University of California, Berkeley",
			MatchScore:     82,
			Rationale:      fmt.Sprintf("Practical project-based learning in %s", topic),
			Category:       "Project Management",
			Duration:       "10 weeks",
			Difficulty:     domain.SkillIntermediate,
		},
	}
}
