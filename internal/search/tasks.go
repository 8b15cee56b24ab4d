package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
)

// TaskIndexer mirrors tasks into Elasticsearch for full-text search.
// Indexing is best effort: Postgres stays the source of truth and index
// failures are logged, never surfaced to the request.
type TaskIndexer struct {
	es    *elasticsearch.Client
	index string
	log   *logrus.Logger
}

func NewTaskIndexer(es *elasticsearch.Client, index string, log *logrus.Logger) *TaskIndexer {
	return &TaskIndexer{es: es, index: index, log: log}
}

type taskDoc struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsCompleted bool    `json:"is_completed"`
}

// Index upserts the task document. Safe to call with a nil indexer.
func (ix *TaskIndexer) Index(ctx context.Context, t *entity.Task) {
	if ix == nil || ix.es == nil {
		return
	}
	doc := taskDoc{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		IsCompleted: t.IsCompleted,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		ix.log.WithError(err).Warn("failed to marshal task for indexing")
		return
	}
	req := esapi.IndexRequest{
		Index:      ix.index,
		DocumentID: t.ID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, ix.es)
	if err != nil {
		ix.log.WithError(err).WithField("task_id", t.ID).Warn("failed to index task")
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		ix.log.WithField("status", res.Status()).WithField("task_id", t.ID).Warn("task index request rejected")
	}
}

// Delete removes the task document. Missing documents are not an error.
func (ix *TaskIndexer) Delete(ctx context.Context, taskID string) {
	if ix == nil || ix.es == nil {
		return
	}
	req := esapi.DeleteRequest{
		Index:      ix.index,
		DocumentID: taskID,
	}
	res, err := req.Do(ctx, ix.es)
	if err != nil {
		ix.log.WithError(err).WithField("task_id", taskID).Warn("failed to delete task from index")
		return
	}
	defer res.Body.Close()
}

// Search runs a multi_match over title, description and category, scoped to
// the user. Returns the matching task IDs in relevance order.
func (ix *TaskIndexer) Search(ctx context.Context, userID, query string) ([]string, error) {
	if ix == nil || ix.es == nil {
		return nil, fmt.Errorf("search is not configured")
	}
	q := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"title^2", "description", "category"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": 50,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, err
	}
	res, err := ix.es.Search(
		ix.es.Search.WithContext(ctx),
		ix.es.Search.WithIndex(ix.index),
		ix.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", strings.TrimSpace(res.Status()))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}
