package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

var ErrUnavailable = errors.New("search is not configured")

const itemsIndex = "items"

// Service maintains the item search index. A nil *Service reports
// ErrUnavailable on queries and skips indexing, so the catalog works without
// elasticsearch.
type Service struct {
	ES *elasticsearch.Client
}

func NewService(es *elasticsearch.Client) *Service {
	if es == nil {
		return nil
	}
	return &Service{ES: es}
}

func (s *Service) IndexItem(ctx context.Context, item transport.ItemDTO) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("search: marshal item: %w", err)
	}

	res, err := s.ES.Index(
		itemsIndex,
		bytes.NewReader(data),
		s.ES.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
		s.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index item: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search: index item: %s", res.Status())
	}
	return nil
}

func (s *Service) DeleteItem(ctx context.Context, id uint) error {
	if s == nil {
		return nil
	}

	res, err := s.ES.Delete(
		itemsIndex,
		strconv.FormatUint(uint64(id), 10),
		s.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: delete item: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: delete item: %s", res.Status())
	}
	return nil
}

func (s *Service) Search(ctx context.Context, query string, from, size int) (int64, []transport.ItemDTO, error) {
	if s == nil {
		return 0, nil, ErrUnavailable
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(itemsIndex),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: query: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: query: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source transport.ItemDTO `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	items := make([]transport.ItemDTO, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return r.Hits.Total.Value, items, nil
}
