package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursecompass/course-discovery/internal/core/ports"
)

type RecommendationHandler struct {
	service ports.RecommendationService
}

func NewRecommendationHandler(service ports.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

type recommendationRequest struct {
	Topics        []string `json:"topics"        validate:"required,min=1,dive,required"`
	SkillLevel    string   `json:"skillLevel"    validate:"required,oneof=beginner intermediate advanced"`
	Duration      string   `json:"duration"`
	Interests     []string `json:"interests"`
	LearningGoals string   `json:"learningGoals"`
}

// Generate returns up to five ranked course suggestions for the supplied
// learner preferences.
//
// @Summary      Generate course recommendations
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body      recommendationRequest  true  "Learner preferences"
// @Success      200   {object}  apiEnvelope
// @Failure      400   {object}  apiEnvelope
// @Router       /api/recommendations [post]
func (h *RecommendationHandler) Generate(c echo.Context) error {
	var req recommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiEnvelope{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, apiEnvelope{
				Message: "Invalid request data",
				Errors:  ve.Fields,
			})
		}
		return err
	}

	recs, err := h.service.Generate(c.Request().Context(), ports.PreferenceInput{
		Topics:        req.Topics,
		SkillLevel:    req.SkillLevel,
		Duration:      req.Duration,
		Interests:     req.Interests,
		LearningGoals: req.LearningGoals,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apiEnvelope{
		Success: true,
		Data:    recs,
		Message: "Course recommendations generated successfully",
	})
}

// Describe serves the root service descriptor.
func (h *RecommendationHandler) Describe(c echo.Context) error {
	return c.JSON(http.StatusOK, serviceDescriptor{
		Status:  "AI Recommendations microservice running",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"recommendations": "/api/recommendations",
		},
	})
}
