package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/munigo/civic-portal-api/internal/config"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type Repository interface {
	// Index indexes a single tenancy incident
	Index(ctx context.Context, incident *domain.TenancyIncident) error
	// BulkIndex indexes multiple tenancy incidents
	BulkIndex(ctx context.Context, incidents []domain.TenancyIncident) error
	// Search searches incidents with the given filter
	Search(ctx context.Context, filter *domain.TenancyIncidentFilter) ([]domain.TenancyIncident, error)
	// CreateIndex creates a city's index if it doesn't exist
	CreateIndex(ctx context.Context, cityID string, t time.Time) error
	// DeleteIndex deletes a city's index
	DeleteIndex(ctx context.Context, cityID string) error
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) Index(ctx context.Context, incident *domain.TenancyIncident) error {
	indexTime := time.Now()
	if !incident.OccurredAt.IsZero() {
		indexTime = incident.OccurredAt
	}
	indexName := r.config.GetIndexName(incident.CityID, indexTime)

	if err := r.CreateIndex(ctx, incident.CityID, indexTime); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: incident.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) BulkIndex(ctx context.Context, incidents []domain.TenancyIncident) error {
	if len(incidents) == 0 {
		return nil
	}

	// Group incidents by city and month
	groups := make(map[string][]domain.TenancyIncident)
	for _, incident := range incidents {
		indexTime := time.Now()
		if !incident.OccurredAt.IsZero() {
			indexTime = incident.OccurredAt
		}
		indexName := r.config.GetIndexName(incident.CityID, indexTime)
		groups[indexName] = append(groups[indexName], incident)
	}

	for indexName, group := range groups {
		if err := r.bulkIndexGroup(ctx, indexName, group); err != nil {
			return fmt.Errorf("failed to bulk index group for index %s: %w", indexName, err)
		}
	}

	return nil
}

func (r *repository) bulkIndexGroup(ctx context.Context, indexName string, incidents []domain.TenancyIncident) error {
	if len(incidents) > 0 {
		indexTime := time.Now()
		if !incidents[0].OccurredAt.IsZero() {
			indexTime = incidents[0].OccurredAt
		}
		if err := r.CreateIndex(ctx, incidents[0].CityID, indexTime); err != nil {
			return fmt.Errorf("failed to ensure index exists: %w", err)
		}
	}

	var bulkBody strings.Builder
	for _, incident := range incidents {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    incident.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(incident)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(bulkBody.String()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func (r *repository) Search(ctx context.Context, filter *domain.TenancyIncidentFilter) ([]domain.TenancyIncident, error) {
	// Prefer an explicit city filter, then the bound tenant; empty searches
	// every city's indices (admin console path).
	cityID := filter.CityID
	if cityID == "" {
		cityID = tenancy.CityID(ctx)
	}

	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexPattern(cityID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.TenancyIncident{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.TenancyIncident `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var incidents []domain.TenancyIncident
	for _, hit := range searchResult.Hits.Hits {
		incidents = append(incidents, hit.Source)
	}

	return incidents, nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter
func (r *repository) buildSearchQuery(filter *domain.TenancyIncidentFilter) map[string]any {
	must := make([]map[string]any, 0)

	exactMatches := map[string]string{
		"kind":     string(filter.Kind),
		"severity": string(filter.Severity),
		"actor_id": filter.ActorID,
	}
	for field, value := range exactMatches {
		if value != "" {
			must = append(must, createTermQuery(field, value))
		}
	}

	if !filter.StartTime.IsZero() || !filter.EndTime.IsZero() {
		must = append(must, createTimeRangeQuery(filter.StartTime, filter.EndTime))
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Limit > 0 {
		query["size"] = filter.Limit
		if filter.Offset > 0 {
			query["from"] = filter.Offset
		}
	}

	query["sort"] = []map[string]any{
		{
			"occurred_at": map[string]any{
				"order": "desc",
			},
		},
	}

	return query
}

func createTermQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

func createTimeRangeQuery(startTime, endTime time.Time) map[string]any {
	timeRange := make(map[string]any)
	if !startTime.IsZero() {
		timeRange["gte"] = startTime
	}
	if !endTime.IsZero() {
		timeRange["lte"] = endTime
	}
	return map[string]any{
		"range": map[string]any{
			"occurred_at": timeRange,
		},
	}
}

// getIndexMapping returns the mapping for the incident index
func (r *repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"city_id": { "type": "keyword" },
				"kind": { "type": "keyword" },
				"fingerprint": { "type": "keyword" },
				"severity": { "type": "keyword" },
				"actor_id": { "type": "keyword" },
				"host": { "type": "keyword" },
				"path": { "type": "keyword" },
				"message": { "type": "text" },
				"details": {
					"type": "object",
					"dynamic": true
				},
				"occurred_at": { "type": "date" },
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *repository) CreateIndex(ctx context.Context, cityID string, t time.Time) error {
	indexName := r.config.GetIndexName(cityID, t)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}

func (r *repository) DeleteIndex(ctx context.Context, cityID string) error {
	req := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetIndexPattern(cityID)},
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}
