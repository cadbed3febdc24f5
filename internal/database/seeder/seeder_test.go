package seeder

import (
	"context"
	"testing"

	"mentor-match/internal/domain/record"
)

type memRepo struct {
	docs map[string][]record.Record
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[string][]record.Record{}}
}

func (m *memRepo) Create(ctx context.Context, collection string, doc record.Record) (record.Record, error) {
	m.docs[collection] = append(m.docs[collection], doc)
	return doc, nil
}

func (m *memRepo) Read(ctx context.Context, collection string, filter record.Filter) ([]record.Record, error) {
	return m.docs[collection], nil
}

func (m *memRepo) First(ctx context.Context, collection string, filter record.Filter) (record.Record, error) {
	for _, doc := range m.docs[collection] {
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

func (m *memRepo) Search(ctx context.Context, collection string, query string) ([]record.Record, error) {
	return nil, nil
}

func (m *memRepo) Update(ctx context.Context, collection string, filter record.Filter, changes record.Record) (int64, error) {
	return 0, nil
}

func (m *memRepo) Delete(ctx context.Context, collection string, filter record.Filter) (int64, error) {
	return 0, nil
}

func (m *memRepo) Collections(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func TestDefaultsSeedAllCollections(t *testing.T) {
	repo := newMemRepo()
	r := Runner{Seeders: Defaults()}

	if err := r.Run(context.Background(), repo); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, collection := range []string{record.CollectionMentees, record.CollectionMentors, record.CollectionResources} {
		if len(repo.docs[collection]) == 0 {
			t.Fatalf("collection %s not seeded", collection)
		}
	}
}

func TestReseedingIsIdempotent(t *testing.T) {
	repo := newMemRepo()
	r := Runner{Seeders: Defaults()}

	if err := r.Run(context.Background(), repo); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}
	before := len(repo.docs[record.CollectionMentees])

	if err := r.Run(context.Background(), repo); err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	if got := len(repo.docs[record.CollectionMentees]); got != before {
		t.Fatalf("reseed duplicated mentees: %d -> %d", before, got)
	}
}
