// Package search keeps an Elasticsearch copy of user profiles for lookup by
// name or email. Passwords are never indexed.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

const usersMapping = `{
  "mappings": {
    "properties": {
      "id":         {"type": "keyword"},
      "email":      {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "firstName":  {"type": "text"},
      "lastName":   {"type": "text"},
      "createdAt":  {"type": "date"},
      "updatedAt":  {"type": "date"}
    }
  }
}`

type userDoc struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type UserIndexer struct {
	es     *elasticsearch.Client
	index  string
	logger logrus.FieldLogger
}

func NewUserIndexer(es *elasticsearch.Client, index string, logger logrus.FieldLogger) *UserIndexer {
	return &UserIndexer{es: es, index: index, logger: logger}
}

// EnsureIndex creates the users index with its mapping when it does not exist yet.
func (x *UserIndexer) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	exists, err := esapi.IndicesExistsRequest{Index: []string{x.index}}.Do(c, x.es)
	if err != nil {
		return err
	}
	_ = exists.Body.Close()
	if exists.StatusCode == http.StatusOK {
		return nil
	}

	res, err := esapi.IndicesCreateRequest{Index: x.index, Body: strings.NewReader(usersMapping)}.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", x.index, res.Status())
	}
	x.logger.WithField("index", x.index).Info("search index created")
	return nil
}

func (x *UserIndexer) Index(ctx context.Context, u *entity.User) error {
	b, err := json.Marshal(userDoc{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req := esapi.IndexRequest{Index: x.index, DocumentID: u.ID, Body: bytes.NewReader(b), Refresh: "false"}
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index user %s: %s", u.ID, res.Status())
	}
	return nil
}

// Remove deletes the document for id. A missing document is not an error.
func (x *UserIndexer) Remove(ctx context.Context, id string) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := esapi.DeleteRequest{Index: x.index, DocumentID: id}.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("remove user %s: %s", id, res.Status())
	}
	return nil
}

// Search runs a multi_match over email, first and last name. Email matches weigh double.
func (x *UserIndexer) Search(ctx context.Context, q string, size int) ([]application.UserSearchHit, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "firstName", "lastName"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search users: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source userDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]application.UserSearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, application.UserSearchHit{
			ID:        h.Source.ID,
			FirstName: h.Source.FirstName,
			LastName:  h.Source.LastName,
			Email:     h.Source.Email,
		})
	}
	return out, nil
}

var _ application.UserIndexer = (*UserIndexer)(nil)
