package service

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coursecompass/course-discovery/internal/api/metrics"
	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

// Cache TTLs per response family. There is no size bound or eviction policy
// beyond expiry; upload invalidates the whole prefix.
const (
	searchCacheTTL = time.Hour
	listCacheTTL   = 30 * time.Minute
	courseCacheTTL = time.Hour

	cacheKeyPrefix = "courses:"

	defaultPage  = 1
	defaultLimit = 20
)

// CatalogService implements course ingestion, search, listing and lookup with
// a read-through cache. The search index and the cache are optional: a nil
// handle means the backend was down at startup and the service runs degraded
// (cache always misses, search serves deterministic fallback rows).
type CatalogService struct {
	repo   ports.CourseRepository
	index  ports.SearchIndex
	cache  ports.Cache
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CourseRepository, index ports.SearchIndex, cache ports.Cache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, index: index, cache: cache, logger: logger}
}

// UploadCourses parses the tabular file and persists each row. A row that
// fails persistence is skipped and logged; the upload still succeeds with a
// partial count. Index failures are logged and do not fail the row. On
// completion every cached catalog response is invalidated.
func (s *CatalogService) UploadCourses(ctx context.Context, csv io.Reader) (*ports.UploadResult, error) {
	courses, err := ParseCoursesCSV(csv)
	if err != nil {
		return nil, err
	}

	result := &ports.UploadResult{
		TotalProcessed: len(courses),
		Courses:        []ports.UploadedCourse{},
	}

	now := time.Now().UTC()
	for i := range courses {
		course := courses[i]
		course.ID = uuid.NewString()
		course.CreatedAt = now

		if err := s.repo.Insert(ctx, &course); err != nil {
			s.logger.Error().Err(err).
				Str("unique_id", course.UniqueID).
				Str("course_name", course.CourseName).
				Msg("failed to persist course row, skipping")
			metrics.CourseRowsTotal.WithLabelValues("skipped").Inc()
			continue
		}
		metrics.CourseRowsTotal.WithLabelValues("saved").Inc()

		result.TotalSaved++
		result.Courses = append(result.Courses, ports.UploadedCourse{
			ID:             course.ID,
			CourseName:     course.CourseName,
			UniversityName: course.UniversityName,
		})

		if s.index != nil {
			if err := s.index.IndexCourse(ctx, course); err != nil {
				s.logger.Error().Err(err).Str("course_id", course.ID).Msg("failed to index course")
				metrics.CoursesIndexedTotal.WithLabelValues("error").Inc()
			} else {
				metrics.CoursesIndexedTotal.WithLabelValues("ok").Inc()
			}
		}
	}

	s.invalidateCatalogCache(ctx)

	s.logger.Info().
		Int("total_processed", result.TotalProcessed).
		Int("total_saved", result.TotalSaved).
		Msg("course upload completed")

	return result, nil
}

// SearchCourses serves a ranked result list through the cache. The search
// backend being unavailable degrades to two deterministic fallback rows,
// still filtered by the supplied facets.
func (s *CatalogService) SearchCourses(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, bool, error) {
	input.Page, input.Limit = normalizePage(input.Page, input.Limit)
	key := searchCacheKey(input)

	var cached ports.SearchResult
	if s.cacheGet(ctx, key, &cached) {
		metrics.SearchRequestsTotal.WithLabelValues("cache").Inc()
		return &cached, true, nil
	}

	var (
		hits   []ports.SearchHit
		total  int64
		source = "fallback"
	)
	if s.index != nil {
		from := (input.Page - 1) * input.Limit
		esHits, esTotal, err := s.index.Search(ctx, input.Query, input.Filters, from, input.Limit)
		if err != nil {
			s.logger.Warn().Err(err).Str("query", input.Query).Msg("search backend failed, serving fallback results")
		} else {
			hits, total, source = esHits, esTotal, "elasticsearch"
		}
	}
	if source == "fallback" {
		hits = fallbackSearchResults(input.Query, input.Filters)
		total = int64(len(hits))
	}
	if hits == nil {
		hits = []ports.SearchHit{}
	}
	metrics.SearchRequestsTotal.WithLabelValues(source).Inc()

	result := &ports.SearchResult{
		Query:   input.Query,
		Filters: input.Filters,
		Results: hits,
		Pagination: ports.SearchPagination{
			Page:  input.Page,
			Limit: input.Limit,
			Total: total,
		},
	}

	s.cacheSet(ctx, key, result, searchCacheTTL)
	return result, false, nil
}

// ListCourses pages through the primary datastore with exact-match facet
// filters only; no free-text ranking is involved.
func (s *CatalogService) ListCourses(ctx context.Context, input ports.ListInput) (*ports.ListResult, bool, error) {
	input.Page, input.Limit = normalizePage(input.Page, input.Limit)
	key := listCacheKey(input)

	var cached ports.ListResult
	if s.cacheGet(ctx, key, &cached) {
		return &cached, true, nil
	}

	filters := ports.ListFilters{University: input.University, Discipline: input.Discipline}
	skip := (input.Page - 1) * input.Limit

	courses, err := s.repo.Find(ctx, filters, skip, input.Limit)
	if err != nil {
		return nil, false, err
	}
	if courses == nil {
		courses = []domain.Course{}
	}

	total, err := s.repo.Count(ctx, filters)
	if err != nil {
		return nil, false, err
	}

	pages := int((total + int64(input.Limit) - 1) / int64(input.Limit))
	result := &ports.ListResult{
		Courses: courses,
		Pagination: ports.ListPagination{
			Page:  input.Page,
			Limit: input.Limit,
			Total: total,
			Pages: pages,
		},
	}

	s.cacheSet(ctx, key, result, listCacheTTL)
	return result, false, nil
}

func (s *CatalogService) GetCourseByID(ctx context.Context, id string) (*domain.Course, bool, error) {
	key := cacheKeyPrefix + id

	var cached domain.Course
	if s.cacheGet(ctx, key, &cached) {
		return &cached, true, nil
	}

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	s.cacheSet(ctx, key, course, courseCacheTTL)
	return course, false, nil
}

// ── cache plumbing ────────────────────────────────────────────────────────────

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	if ok {
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}
	return ok
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (s *CatalogService) invalidateCatalogCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, cacheKeyPrefix+"*"); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}

// searchCacheKey serializes the full request so every distinct combination of
// query, facets and window caches independently.
func searchCacheKey(input ports.SearchInput) string {
	payload := struct {
		Query       string `json:"query"`
		University  string `json:"university,omitempty"`
		Discipline  string `json:"discipline,omitempty"`
		CourseLevel string `json:"courseLevel,omitempty"`
		Page        int    `json:"page"`
		Limit       int    `json:"limit"`
	}{
		Query:       input.Query,
		University:  input.Filters.University,
		Discipline:  input.Filters.Discipline,
		CourseLevel: input.Filters.CourseLevel,
		Page:        input.Page,
		Limit:       input.Limit,
	}
	b, _ := json.Marshal(payload)
	return cacheKeyPrefix + "search:" + string(b)
}

func listCacheKey(input ports.ListInput) string {
	payload := struct {
		Page       int    `json:"page"`
		Limit      int    `json:"limit"`
		University string `json:"university,omitempty"`
		Discipline string `json:"discipline,omitempty"`
	}{
		Page:       input.Page,
		Limit:      input.Limit,
		University: input.University,
		Discipline: input.Discipline,
	}
	b, _ := json.Marshal(payload)
	return cacheKeyPrefix + "list:" + string(b)
}

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

// fallbackSearchResults builds two deterministic rows from the query when the
// search backend is unreachable, applying the same exact-match facet filters
// a real search would.
func fallbackSearchResults(query string, filters ports.SearchFilters) []ports.SearchHit {
	mocks := []ports.SearchHit{
		{
			Course: domain.Course{
				ID:             "1",
				CourseName:     "Advanced " + query + " Programming",
				UniversityName: "Stanford University",
				Discipline:     "Computer Science",
				CourseLevel:    "Graduate",
				Overview:       "Comprehensive course covering advanced " + query + " concepts",
				Summary:        "Learn advanced " + query + " programming techniques",
				Keywords:       []string{query, "programming", "advanced"},
			},
			Score: 0.95,
		},
		{
			Course: domain.Course{
				ID:             "2",
				CourseName:     query + " Fundamentals",
				UniversityName: "MIT",
				Discipline:     "Computer Science",
				CourseLevel:    "Undergraduate",
				Overview:       "Introduction to " + query + " programming",
				Summary:        "Basic concepts of " + query,
				Keywords:       []string{query, "fundamentals", "programming"},
			},
			Score: 0.88,
		},
	}

	out := make([]ports.SearchHit, 0, len(mocks))
	for _, hit := range mocks {
		if filters.University != "" && hit.UniversityName != filters.University {
			continue
		}
		if filters.Discipline != "" && hit.Discipline != filters.Discipline {
			continue
		}
		if filters.CourseLevel != "" && hit.CourseLevel != filters.CourseLevel {
			continue
		}
		out = append(out, hit)
	}
	return out
}
