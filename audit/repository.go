// audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type Repository interface {
	Append(ctx context.Context, entry AuditEntry) error
	Recent(ctx context.Context, limit int) ([]AuditEntry, error)
	RecentForSubject(ctx context.Context, subjectID string, limit int) ([]AuditEntry, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// Append indexes one entry under its own ID. Entries are never updated.
func (r *ElasticsearchRepository) Append(ctx context.Context, entry AuditEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: entry.ID,
		OpType:     "create",
		Body:       bytes.NewReader(data),
		Refresh:    "wait_for",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing audit entry: %s", res.String())
	}
	return nil
}

func (r *ElasticsearchRepository) Recent(ctx context.Context, limit int) ([]AuditEntry, error) {
	return r.search(ctx, map[string]interface{}{"match_all": map[string]interface{}{}}, limit)
}

func (r *ElasticsearchRepository) RecentForSubject(ctx context.Context, subjectID string, limit int) ([]AuditEntry, error) {
	query := map[string]interface{}{
		"term": map[string]interface{}{
			"subject_id.keyword": subjectID,
		},
	}
	return r.search(ctx, query, limit)
}

func (r *ElasticsearchRepository) search(ctx context.Context, query map[string]interface{}, limit int) ([]AuditEntry, error) {
	var buf strings.Builder
	body := map[string]interface{}{
		"query": query,
		"sort": []interface{}{
			map[string]interface{}{"timestamp": map[string]interface{}{"order": "desc"}},
		},
	}
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
		r.esClient.Search.WithSize(limit),
		r.esClient.Search.WithIgnoreUnavailable(true),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching audit entries: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source AuditEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	entries := make([]AuditEntry, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		entries = append(entries, hit.Source)
	}
	return entries, nil
}
