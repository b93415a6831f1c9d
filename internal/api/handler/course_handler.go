package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

// maxUploadBytes caps course uploads at 10MB.
const maxUploadBytes = 10 << 20

// CourseHandler handles HTTP requests for the course catalog.
type CourseHandler struct {
	service ports.CatalogService
}

func NewCourseHandler(service ports.CatalogService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Upload ingests a CSV of course records.
//
// @Summary      Upload a course CSV
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Param        csvFile  formData  file  true  "Course CSV (max 10MB)"
// @Success      200      {object}  apiEnvelope
// @Failure      400      {object}  apiEnvelope
// @Failure      413      {object}  apiEnvelope
// @Router       /api/courses/upload [post]
func (h *CourseHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiEnvelope{Message: "No CSV file provided"})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, apiEnvelope{Message: "CSV file exceeds the 10MB limit"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	result, err := h.service.UploadCourses(c.Request().Context(), file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiEnvelope{Message: "Failed to parse CSV file", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, apiEnvelope{
		Success: true,
		Message: fmt.Sprintf("Successfully uploaded %d courses", result.TotalSaved),
		Data:    result,
	})
}

// Search serves the ranked full-text search with facet filters.
//
// @Summary      Search courses
// @Tags         courses
// @Produce      json
// @Param        q            query     string  true   "Free-text query"
// @Param        university   query     string  false  "Exact university filter"
// @Param        discipline   query     string  false  "Exact discipline filter"
// @Param        courseLevel  query     string  false  "Exact course level filter"
// @Param        page         query     int     false  "Page (default 1)"
// @Param        limit        query     int     false  "Page size (default 20)"
// @Success      200          {object}  apiEnvelope
// @Failure      400          {object}  apiEnvelope
// @Router       /api/courses/search [get]
func (h *CourseHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, apiEnvelope{Message: "Search query is required"})
	}

	input := ports.SearchInput{
		Query: query,
		Filters: ports.SearchFilters{
			University:  c.QueryParam("university"),
			Discipline:  c.QueryParam("discipline"),
			CourseLevel: c.QueryParam("courseLevel"),
		},
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 20),
	}

	result, cached, err := h.service.SearchCourses(c.Request().Context(), input)
	if err != nil {
		return err
	}

	message := "Search completed successfully"
	if cached {
		message = "Search results from cache"
	}
	return c.JSON(http.StatusOK, apiEnvelope{
		Success: true,
		Data:    result,
		Message: message,
		Cached:  cachedFlag(cached),
	})
}

// List pages through the catalog with exact-match facet filters.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        page        query     int     false  "Page (default 1)"
// @Param        limit       query     int     false  "Page size (default 20)"
// @Param        university  query     string  false  "Exact university filter"
// @Param        discipline  query     string  false  "Exact discipline filter"
// @Success      200         {object}  apiEnvelope
// @Router       /api/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	input := ports.ListInput{
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 20),
		University: c.QueryParam("university"),
		Discipline: c.QueryParam("discipline"),
	}

	result, cached, err := h.service.ListCourses(c.Request().Context(), input)
	if err != nil {
		return err
	}

	message := "Courses retrieved successfully"
	if cached {
		message = "Courses retrieved from cache"
	}
	return c.JSON(http.StatusOK, apiEnvelope{
		Success: true,
		Data:    result,
		Message: message,
		Cached:  cachedFlag(cached),
	})
}

// Get serves a single course by its generated identifier.
//
// @Summary      Get a course by ID
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  apiEnvelope
// @Failure      404  {object}  apiEnvelope
// @Router       /api/courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, cached, err := h.service.GetCourseByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, apiEnvelope{Message: "Course not found"})
		}
		return err
	}

	message := "Course retrieved successfully"
	if cached {
		message = "Course retrieved from cache"
	}
	return c.JSON(http.StatusOK, apiEnvelope{
		Success: true,
		Data:    course,
		Message: message,
		Cached:  cachedFlag(cached),
	})
}

// Describe serves the root service descriptor.
func (h *CourseHandler) Describe(c echo.Context) error {
	return c.JSON(http.StatusOK, serviceDescriptor{
		Status:  "Course Management microservice running",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"upload":  "/api/courses/upload",
			"search":  "/api/courses/search",
			"courses": "/api/courses",
		},
	})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
