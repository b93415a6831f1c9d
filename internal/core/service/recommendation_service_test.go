package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

type stubRecommender struct {
	recs []domain.Recommendation
	err  error
}

func (s *stubRecommender) Generate(_ context.Context, _ ports.PreferenceInput) ([]domain.Recommendation, error) {
	return s.recs, s.err
}

func TestRecommendationService_Simulated(t *testing.T) {
	svc := NewRecommendationService(nil, true, zerolog.Nop())

	recs, err := svc.Generate(context.Background(), ports.PreferenceInput{
		Topics:     []string{"Python"},
		SkillLevel: domain.SkillBeginner,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("expected 5 simulated recommendations, got %d", len(recs))
	}
	for i, rec := range recs {
		if !strings.Contains(rec.CourseName, "Python") {
			t.Fatalf("recommendation %d does not reference the topic: %q", i, rec.CourseName)
		}
	}
	if recs[0].UniversityName != "Stanford University" || recs[0].MatchScore != 92 {
		t.Fatalf("unexpected first recommendation: %+v", recs[0])
	}
	if recs[0].Difficulty != domain.SkillBeginner {
		t.Fatalf("expected first recommendation to mirror the skill level, got %q", recs[0].Difficulty)
	}
}

func TestRecommendationService_NilRecommenderFallsBack(t *testing.T) {
	svc := NewRecommendationService(nil, false, zerolog.Nop())

	recs, err := svc.Generate(context.Background(), ports.PreferenceInput{
		Topics:     []string{"Go"},
		SkillLevel: domain.SkillIntermediate,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs))
	}
}

func TestRecommendationService_RecommenderErrorFallsBack(t *testing.T) {
	stub := &stubRecommender{err: errors.New("backend down")}
	svc := NewRecommendationService(stub, false, zerolog.Nop())

	recs, err := svc.Generate(context.Background(), ports.PreferenceInput{
		Topics:     []string{"Rust"},
		SkillLevel: domain.SkillAdvanced,
	})
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("expected 5 fallback recommendations, got %d", len(recs))
	}
	if !strings.Contains(recs[0].CourseName, "Rust") {
		t.Fatalf("fallback did not use the topic: %q", recs[0].CourseName)
	}
}

func TestRecommendationService_TruncatesToFive(t *testing.T) {
	many := make([]domain.Recommendation, 8)
	for i := range many {
		many[i] = domain.Recommendation{CourseName: "Course", MatchScore: float64(90 - i)}
	}
	svc := NewRecommendationService(&stubRecommender{recs: many}, false, zerolog.Nop())

	recs, err := svc.Generate(context.Background(), ports.PreferenceInput{
		Topics:     []string{"ML"},
		SkillLevel: domain.SkillBeginner,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("expected truncation to 5, got %d", len(recs))
	}
}

func TestRecommendationService_UsesRecommender(t *testing.T) {
	stub := &stubRecommender{recs: []domain.Recommendation{
		{CourseName: "Distributed Systems", UniversityName: "ETH Zurich", MatchScore: 97},
	}}
	svc := NewRecommendationService(stub, false, zerolog.Nop())

	recs, err := svc.Generate(context.Background(), ports.PreferenceInput{
		Topics:     []string{"systems"},
		SkillLevel: domain.SkillAdvanced,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(recs) != 1 || recs[0].CourseName != "Distributed Systems" {
		t.Fatalf("expected recommender output, got %+v", recs)
	}
}
