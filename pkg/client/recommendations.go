package client

import (
	"context"
	"strings"
)

// Preferences is the recommendation request payload.
type Preferences struct {
	Topics        []string `json:"topics"`
	SkillLevel    string   `json:"skillLevel"`
	Duration      string   `json:"duration,omitempty"`
	Interests     []string `json:"interests,omitempty"`
	LearningGoals string   `json:"learningGoals,omitempty"`
}

// Recommendation is one suggested course.
type Recommendation struct {
	CourseName     string  `json:"courseName"`
	UniversityName string  `json:"universityName"`
	MatchScore     float64 `json:"matchScore"`
	Rationale      string  `json:"rationale"`
	Category       string  `json:"category"`
	Duration       string  `json:"duration"`
	Difficulty     string  `json:"difficulty"`
}

// RecommendationClient wraps the recommendation service.
type RecommendationClient struct {
	base
}

func NewRecommendationClient(baseURL string, opts ...Option) *RecommendationClient {
	return &RecommendationClient{base: newBase(baseURL, opts)}
}

func (c *RecommendationClient) Generate(ctx context.Context, prefs Preferences) ([]Recommendation, error) {
	res, err := c.postJSON(ctx, "/api/recommendations", prefs)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    []Recommendation `json:"data"`
		Errors  []struct {
			Path    string `json:"path"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := decodeBody(res, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		message := envelope.Message
		if len(envelope.Errors) > 0 {
			details := make([]string, 0, len(envelope.Errors))
			for _, fe := range envelope.Errors {
				details = append(details, fe.Path+": "+fe.Message)
			}
			message += " (" + strings.Join(details, "; ") + ")"
		}
		return nil, &APIError{StatusCode: res.StatusCode, Message: message}
	}
	return envelope.Data, nil
}
