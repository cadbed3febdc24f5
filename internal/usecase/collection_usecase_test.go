package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mentor-match/internal/domain/record"
)

type stubRepo struct {
	docs       map[string][]record.Record
	searchErr  error
	searchHits int
}

func newStubRepo() *stubRepo {
	return &stubRepo{docs: map[string][]record.Record{}}
}

func (s *stubRepo) Create(ctx context.Context, collection string, doc record.Record) (record.Record, error) {
	s.docs[collection] = append(s.docs[collection], doc)
	return doc, nil
}

func (s *stubRepo) Read(ctx context.Context, collection string, filter record.Filter) ([]record.Record, error) {
	return s.docs[collection], nil
}

func (s *stubRepo) First(ctx context.Context, collection string, filter record.Filter) (record.Record, error) {
	for _, doc := range s.docs[collection] {
		match := true
		for k, v := range filter {
			if doc[k] != v {
				match = false
				break
			}
		}
		if match {
			return doc, nil
		}
	}
	return nil, record.ErrNotFound
}

func (s *stubRepo) Search(ctx context.Context, collection string, query string) ([]record.Record, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	s.searchHits++
	return s.docs[collection], nil
}

func (s *stubRepo) Update(ctx context.Context, collection string, filter record.Filter, changes record.Record) (int64, error) {
	var n int64
	for _, doc := range s.docs[collection] {
		match := true
		for k, v := range filter {
			if doc[k] != v {
				match = false
				break
			}
		}
		if match {
			for k, v := range changes {
				doc[k] = v
			}
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) Delete(ctx context.Context, collection string, filter record.Filter) (int64, error) {
	kept := s.docs[collection][:0]
	var n int64
	for _, doc := range s.docs[collection] {
		match := true
		for k, v := range filter {
			if doc[k] != v {
				match = false
				break
			}
		}
		if match {
			n++
			continue
		}
		kept = append(kept, doc)
	}
	s.docs[collection] = kept
	return n, nil
}

func (s *stubRepo) Collections(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for name, docs := range s.docs {
		out[name] = int64(len(docs))
	}
	return out, nil
}

type stubCache struct {
	entries  map[string][]byte
	sets     int
	deletes  []string
	disabled bool
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string][]byte{}}
}

func (c *stubCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c.disabled {
		return false, errors.New("cache unavailable")
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c.disabled {
		return errors.New("cache unavailable")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *stubCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.deletes = append(c.deletes, pattern)
	c.entries = map[string][]byte{}
	return nil
}

type stubNotifier struct {
	events []string
}

func (n *stubNotifier) NotifyChange(collection, action, profileID string) {
	n.events = append(n.events, collection+"/"+action+"/"+profileID)
}

func TestCollectionSearchCachesResults(t *testing.T) {
	repo := newStubRepo()
	repo.docs[record.CollectionMentors] = []record.Record{
		{"profile_id": "m1", "subject": "Web"},
	}
	cache := newStubCache()
	u := NewCollectionUsecase(repo, cache, nil)

	for i := 0; i < 3; i++ {
		docs, err := u.Search(context.Background(), record.CollectionMentors, "Web")
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if len(docs) != 1 || docs[0]["profile_id"] != "m1" {
			t.Fatalf("unexpected search result: %v", docs)
		}
	}

	if repo.searchHits != 1 {
		t.Fatalf("expected 1 repository search, got %d", repo.searchHits)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", cache.sets)
	}
}

func TestCollectionSearchSurvivesCacheOutage(t *testing.T) {
	repo := newStubRepo()
	repo.docs[record.CollectionMentees] = []record.Record{
		{"profile_id": "p1"},
	}
	cache := newStubCache()
	cache.disabled = true
	u := NewCollectionUsecase(repo, cache, nil)

	docs, err := u.Search(context.Background(), record.CollectionMentees, "anything")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected repo result despite cache outage, got %v", docs)
	}
}

func TestCollectionWritesInvalidateAndNotify(t *testing.T) {
	repo := newStubRepo()
	cache := newStubCache()
	notifier := &stubNotifier{}
	u := NewCollectionUsecase(repo, cache, notifier)

	ctx := context.Background()
	if _, err := u.Create(ctx, record.CollectionMentees, record.Record{"profile_id": "p1", "subject": "Web"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := u.Update(ctx, record.CollectionMentees, record.Filter{"profile_id": "p1"}, record.Record{"subject": "Data"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	n, err := u.Delete(ctx, record.CollectionMentees, "p1")
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted, got %d", n)
	}

	want := []string{
		record.CollectionMentees + "/created/p1",
		record.CollectionMentees + "/updated/p1",
		record.CollectionMentees + "/deleted/p1",
	}
	if len(notifier.events) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), notifier.events)
	}
	for i := range want {
		if notifier.events[i] != want[i] {
			t.Fatalf("event %d: want %q, got %q", i, want[i], notifier.events[i])
		}
	}
	if len(cache.deletes) != 3 {
		t.Fatalf("expected 3 cache invalidations, got %d", len(cache.deletes))
	}
}

func TestCollectionUpdateOnMissingDocSkipsSideEffects(t *testing.T) {
	repo := newStubRepo()
	cache := newStubCache()
	notifier := &stubNotifier{}
	u := NewCollectionUsecase(repo, cache, notifier)

	n, err := u.Update(context.Background(), record.CollectionMentors, record.Filter{"profile_id": "nope"}, record.Record{"subject": "Data"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 updated, got %d", n)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("no events expected, got %v", notifier.events)
	}
	if len(cache.deletes) != 0 {
		t.Fatalf("no invalidations expected, got %v", cache.deletes)
	}
}

func TestCollectionRejectsBlankInput(t *testing.T) {
	u := NewCollectionUsecase(newStubRepo(), nil, nil)
	ctx := context.Background()

	if _, err := u.Create(ctx, "  ", record.Record{"a": 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Create: want ErrInvalidInput, got %v", err)
	}
	if _, err := u.Search(ctx, record.CollectionMentees, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Search: want ErrInvalidInput, got %v", err)
	}
	if _, err := u.Update(ctx, record.CollectionMentees, nil, record.Record{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Update: want ErrInvalidInput, got %v", err)
	}
	if _, err := u.Delete(ctx, record.CollectionMentees, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Delete: want ErrInvalidInput, got %v", err)
	}
}
