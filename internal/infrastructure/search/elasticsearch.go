// Package search implements the course search index on Elasticsearch.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

const (
	coursesIndex   = "courses"
	defaultTimeout = 5 * time.Second
)

// Config captures the settings for establishing an Elasticsearch connection.
type Config struct {
	URL string
}

// Client implements ports.SearchIndex against an Elasticsearch cluster.
type Client struct {
	es *elasticsearch.Client
}

// Connect initialises the client and verifies the cluster is reachable with a
// health check. Callers treat a connection failure as "run degraded", not as
// a startup failure.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{cfg.URL}})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	healthCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := es.Cluster.Health(es.Cluster.Health.WithContext(healthCtx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch health: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch health: %s", res.Status())
	}

	return &Client{es: es}, nil
}

// IndexCourse stores the course document under its generated ID, the same key
// the primary datastore uses.
func (c *Client) IndexCourse(ctx context.Context, course domain.Course) error {
	body, err := json.Marshal(course)
	if err != nil {
		return fmt.Errorf("encode course: %w", err)
	}

	res, err := c.es.Index(
		coursesIndex,
		bytes.NewReader(body),
		c.es.Index.WithDocumentID(course.ID),
		c.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index course: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index course: %s", res.Status())
	}
	return nil
}

// Search ranks query against the course text fields, name weighted highest,
// with exact-match term filters for the optional facets.
func (c *Client) Search(ctx context.Context, query string, filters ports.SearchFilters, from, size int) ([]ports.SearchHit, int64, error) {
	body, err := json.Marshal(buildSearchBody(query, filters, from, size))
	if err != nil {
		return nil, 0, fmt.Errorf("encode search body: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(coursesIndex),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrSearchUnavailable, res.Status())
	}

	var envelope struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Score  float64       `json:"_score"`
				Source domain.Course `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, 0, fmt.Errorf("decode search response: %w", err)
	}

	hits := make([]ports.SearchHit, 0, len(envelope.Hits.Hits))
	for _, h := range envelope.Hits.Hits {
		hits = append(hits, ports.SearchHit{Course: h.Source, Score: h.Score})
	}
	return hits, envelope.Hits.Total.Value, nil
}

func buildSearchBody(query string, filters ports.SearchFilters, from, size int) map[string]any {
	filter := []map[string]any{}
	if filters.University != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"universityName": filters.University}})
	}
	if filters.Discipline != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"discipline": filters.Discipline}})
	}
	if filters.CourseLevel != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"courseLevel": filters.CourseLevel}})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": []map[string]any{
					{
						"multi_match": map[string]any{
							"query":  query,
							"fields": []string{"courseName^2", "overview", "summary", "keywords", "discipline", "department"},
						},
					},
				},
				"filter": filter,
			},
		},
		"from": from,
		"size": size,
	}
}
