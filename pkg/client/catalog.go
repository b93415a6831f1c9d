package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// Course is the subset of catalog fields the front-end renders. The services
// return the full record; unknown fields are ignored on decode.
type Course struct {
	ID                  string   `json:"id"`
	CourseName          string   `json:"courseName"`
	UniversityName      string   `json:"universityName"`
	Discipline          string   `json:"discipline"`
	Overview            string   `json:"overview"`
	Summary             string   `json:"summary"`
	Keywords            []string `json:"keywords"`
	CourseLevel         string   `json:"courseLevel"`
	Language            string   `json:"languageOfInstruction"`
	DurationMonths      int      `json:"duration"`
	FirstYearTuitionFee float64  `json:"firstYearTuitionFee"`
	TuitionFeeCurrency  string   `json:"tuitionFeeCurrency"`
}

// SearchHit is a course plus its relevance score.
type SearchHit struct {
	Course
	Score float64 `json:"_score"`
}

// SearchFilters are the exact-match facets applied on top of the query.
type SearchFilters struct {
	University  string `json:"university,omitempty"`
	Discipline  string `json:"discipline,omitempty"`
	CourseLevel string `json:"courseLevel,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// UploadResult reports rows parsed versus rows persisted.
type UploadResult struct {
	TotalProcessed int `json:"totalProcessed"`
	TotalSaved     int `json:"totalSaved"`
	Courses        []struct {
		ID             string `json:"id"`
		CourseName     string `json:"courseName"`
		UniversityName string `json:"universityName"`
	} `json:"courses"`
}

// SearchResult wraps ranked hits with the echoed query and pagination.
// Cached reports whether the service answered from its cache.
type SearchResult struct {
	Query      string        `json:"query"`
	Filters    SearchFilters `json:"filters"`
	Results    []SearchHit   `json:"results"`
	Pagination Pagination    `json:"pagination"`
	Cached     bool          `json:"-"`
}

type ListResult struct {
	Courses    []Course   `json:"courses"`
	Pagination Pagination `json:"pagination"`
	Cached     bool       `json:"-"`
}

// CatalogClient wraps the course catalog service.
type CatalogClient struct {
	base
}

func NewCatalogClient(baseURL string, opts ...Option) *CatalogClient {
	return &CatalogClient{base: newBase(baseURL, opts)}
}

type catalogEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Cached  bool            `json:"cached"`
	Error   string          `json:"error"`
}

// Upload streams a CSV to the ingest endpoint under the "csvFile" form field.
func (c *CatalogClient) Upload(ctx context.Context, filename string, csv io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("csvFile", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, csv); err != nil {
		return nil, fmt.Errorf("buffer upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/courses/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}

	var result UploadResult
	if _, err := c.unwrap(res, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *CatalogClient) Search(ctx context.Context, query string, filters SearchFilters, page, limit int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	if filters.University != "" {
		params.Set("university", filters.University)
	}
	if filters.Discipline != "" {
		params.Set("discipline", filters.Discipline)
	}
	if filters.CourseLevel != "" {
		params.Set("courseLevel", filters.CourseLevel)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	res, err := c.get(ctx, "/api/courses/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result SearchResult
	cached, err := c.unwrap(res, &result)
	if err != nil {
		return nil, err
	}
	result.Cached = cached
	return &result, nil
}

func (c *CatalogClient) List(ctx context.Context, page, limit int, university, discipline string) (*ListResult, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if university != "" {
		params.Set("university", university)
	}
	if discipline != "" {
		params.Set("discipline", discipline)
	}

	path := "/api/courses"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	res, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var result ListResult
	cached, err := c.unwrap(res, &result)
	if err != nil {
		return nil, err
	}
	result.Cached = cached
	return &result, nil
}

func (c *CatalogClient) Get(ctx context.Context, id string) (*Course, error) {
	res, err := c.get(ctx, "/api/courses/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var course Course
	if _, err := c.unwrap(res, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// unwrap decodes the success-keyed envelope, surfacing failures as *APIError
// and reporting whether the response was served from cache.
func (c *CatalogClient) unwrap(res *http.Response, dest any) (bool, error) {
	var envelope catalogEnvelope
	if err := decodeBody(res, &envelope); err != nil {
		return false, err
	}
	if !envelope.Success {
		return false, &APIError{StatusCode: res.StatusCode, Message: envelope.Message}
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return envelope.Cached, nil
}
