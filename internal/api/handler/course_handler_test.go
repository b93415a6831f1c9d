package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

type stubCatalogService struct {
	uploadFn func(ctx context.Context, csv io.Reader) (*ports.UploadResult, error)
	searchFn func(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, bool, error)
	listFn   func(ctx context.Context, input ports.ListInput) (*ports.ListResult, bool, error)
	getFn    func(ctx context.Context, id string) (*domain.Course, bool, error)
}

func (s *stubCatalogService) UploadCourses(ctx context.Context, csv io.Reader) (*ports.UploadResult, error) {
	return s.uploadFn(ctx, csv)
}

func (s *stubCatalogService) SearchCourses(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, bool, error) {
	return s.searchFn(ctx, input)
}

func (s *stubCatalogService) ListCourses(ctx context.Context, input ports.ListInput) (*ports.ListResult, bool, error) {
	return s.listFn(ctx, input)
}

func (s *stubCatalogService) GetCourseByID(ctx context.Context, id string) (*domain.Course, bool, error) {
	return s.getFn(ctx, id)
}

func newCourseContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func multipartCSV(t *testing.T, field, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, "courses.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestCourseHandler_Upload_Success(t *testing.T) {
	stub := &stubCatalogService{
		uploadFn: func(ctx context.Context, csv io.Reader) (*ports.UploadResult, error) {
			raw, _ := io.ReadAll(csv)
			if len(raw) == 0 {
				t.Fatalf("expected csv content")
			}
			return &ports.UploadResult{
				TotalProcessed: 3,
				TotalSaved:     2,
				Courses: []ports.UploadedCourse{
					{ID: "id1", CourseName: "A", UniversityName: "U"},
					{ID: "id2", CourseName: "B", UniversityName: "U"},
				},
			}, nil
		},
	}
	handler := NewCourseHandler(stub)

	body, contentType := multipartCSV(t, "csvFile", "Course Name\nA\nB\n")
	req := httptest.NewRequest(http.MethodPost, "/api/courses/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newCourseContext(t, req)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["message"] != "Successfully uploaded 2 courses" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data := resp["data"].(map[string]any)
	if data["totalProcessed"] != float64(3) || data["totalSaved"] != float64(2) {
		t.Fatalf("unexpected counts: %+v", data)
	}
}

func TestCourseHandler_Upload_MissingFile(t *testing.T) {
	handler := NewCourseHandler(&stubCatalogService{})

	body, contentType := multipartCSV(t, "wrongField", "Course Name\nA\n")
	req := httptest.NewRequest(http.MethodPost, "/api/courses/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newCourseContext(t, req)

	_ = handler.Upload(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "No CSV file provided" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestCourseHandler_Upload_ParseError(t *testing.T) {
	stub := &stubCatalogService{
		uploadFn: func(ctx context.Context, csv io.Reader) (*ports.UploadResult, error) {
			return nil, domain.ErrCourseNotFound // any error maps to a 400 here
		},
	}
	handler := NewCourseHandler(stub)

	body, contentType := multipartCSV(t, "csvFile", "\"broken")
	req := httptest.NewRequest(http.MethodPost, "/api/courses/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newCourseContext(t, req)

	_ = handler.Upload(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Failed to parse CSV file" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestCourseHandler_Search_Success(t *testing.T) {
	stub := &stubCatalogService{
		searchFn: func(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, bool, error) {
			if input.Query != "python" || input.Filters.University != "MIT" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Page != 2 || input.Limit != 5 {
				t.Fatalf("unexpected window: page=%d limit=%d", input.Page, input.Limit)
			}
			return &ports.SearchResult{
				Query:   input.Query,
				Filters: input.Filters,
				Results: []ports.SearchHit{
					{Course: domain.Course{ID: "1", CourseName: "Python"}, Score: 1.5},
				},
				Pagination: ports.SearchPagination{Page: 2, Limit: 5, Total: 11},
			}, false, nil
		},
	}
	handler := NewCourseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/courses/search?q=python&university=MIT&page=2&limit=5", nil)
	c, rec := newCourseContext(t, req)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Search completed successfully" || resp["cached"] != false {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestCourseHandler_Search_Cached(t *testing.T) {
	stub := &stubCatalogService{
		searchFn: func(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, bool, error) {
			return &ports.SearchResult{Query: input.Query, Results: []ports.SearchHit{}}, true, nil
		},
	}
	handler := NewCourseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/courses/search?q=go", nil)
	c, rec := newCourseContext(t, req)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["cached"] != true || resp["message"] != "Search results from cache" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestCourseHandler_Search_MissingQuery(t *testing.T) {
	handler := NewCourseHandler(&stubCatalogService{})

	req := httptest.NewRequest(http.MethodGet, "/api/courses/search", nil)
	c, rec := newCourseContext(t, req)

	_ = handler.Search(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Search query is required" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestCourseHandler_List_DefaultsAndCachedFlag(t *testing.T) {
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, input ports.ListInput) (*ports.ListResult, bool, error) {
			if input.Page != 1 || input.Limit != 20 {
				t.Fatalf("expected default window, got %+v", input)
			}
			return &ports.ListResult{
				Courses:    []domain.Course{{ID: "1", CourseName: "A"}},
				Pagination: ports.ListPagination{Page: 1, Limit: 20, Total: 1, Pages: 1},
			}, true, nil
		},
	}
	handler := NewCourseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/courses?page=abc", nil)
	c, rec := newCourseContext(t, req)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Courses retrieved from cache" || resp["cached"] != true {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id string) (*domain.Course, bool, error) {
			return nil, false, domain.ErrCourseNotFound
		},
	}
	handler := NewCourseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/courses/missing", nil)
	c, rec := newCourseContext(t, req)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Course not found" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestCourseHandler_Get_Success(t *testing.T) {
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id string) (*domain.Course, bool, error) {
			if id != "abc" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.Course{ID: "abc", CourseName: "Compilers"}, false, nil
		},
	}
	handler := NewCourseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/courses/abc", nil)
	c, rec := newCourseContext(t, req)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["courseName"] != "Compilers" {
		t.Fatalf("unexpected course: %+v", data)
	}
}
