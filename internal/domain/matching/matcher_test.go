package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mentor-match/internal/domain/record"
)

// fakeRepo serves fixed collections. Search filters by shared terms
// with the query and keeps slice order, mimicking relevance order.
type fakeRepo struct {
	collections map[string][]record.Record
}

func (f *fakeRepo) Create(context.Context, string, record.Record) (record.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Read(_ context.Context, collection string, filter record.Filter) ([]record.Record, error) {
	out := make([]record.Record, 0)
	for _, doc := range f.collections[collection] {
		if matchesFilter(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeRepo) First(ctx context.Context, collection string, filter record.Filter) (record.Record, error) {
	docs, err := f.Read(ctx, collection, filter)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, record.ErrNotFound
	}
	return docs[0], nil
}

func (f *fakeRepo) Search(_ context.Context, collection string, query string) ([]record.Record, error) {
	terms := strings.Fields(strings.ToLower(query))
	out := make([]record.Record, 0)
	for _, doc := range f.collections[collection] {
		subject, _ := doc["subject"].(string)
		subject = strings.ToLower(subject)
		for _, t := range terms {
			if strings.Contains(subject, t) {
				out = append(out, doc)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(context.Context, string, record.Filter, record.Record) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeRepo) Delete(context.Context, string, record.Filter) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeRepo) Collections(context.Context) (map[string]int64, error) {
	return nil, errors.New("not implemented")
}

func matchesFilter(doc record.Record, filter record.Filter) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func mentor(id, subject, level string, pair, industry bool) record.Record {
	return record.Record{
		"profile_id":         id,
		"subject":            subject,
		"experience_level":   level,
		"pair_programming":   pair,
		"industry_knowledge": industry,
	}
}

func mentee(id, subject, level string, pair bool) record.Record {
	return record.Record{
		"profile_id":       id,
		"subject":          subject,
		"experience_level": level,
		"pair_programming": pair,
	}
}

func webRepo() *fakeRepo {
	return &fakeRepo{collections: map[string][]record.Record{
		record.CollectionMentees: {
			mentee("m1", "Web", "Beginner", true),
		},
		record.CollectionMentors: {
			mentor("1", "Web", "Beginner", true, false),
			mentor("2", "Web", "Advanced", true, false),
			mentor("3", "Data", "Beginner", true, false),
		},
	}}
}

func TestSort_RanksFullMatchFirst(t *testing.T) {
	m := NewSort(webRepo())

	got, err := m.Match(context.Background(), 2, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestSort_NMatchesExceedsPopulation(t *testing.T) {
	m := NewSort(webRepo())

	got, err := m.Match(context.Background(), 5, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all 3 mentors, got %v", got)
	}
	if got[0] != "1" || got[1] != "2" || got[2] != "3" {
		t.Fatalf("expected ranked order [1 2 3], got %v", got)
	}
}

func TestSort_StableAcrossRuns(t *testing.T) {
	m := NewSort(webRepo())

	first, err := m.Match(context.Background(), 3, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := m.Match(context.Background(), 3, "m1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: order changed: %v vs %v", i, first, again)
			}
		}
	}
}

func TestSort_MenteeNotFound(t *testing.T) {
	m := NewSort(webRepo())

	got, err := m.Match(context.Background(), 3, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial result, got %v", got)
	}
}

func TestSort_ZeroCandidates(t *testing.T) {
	repo := webRepo()
	repo.collections[record.CollectionMentors] = nil
	m := NewSort(repo)

	got, err := m.Match(context.Background(), 3, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestSort_MalformedMentor(t *testing.T) {
	repo := webRepo()
	repo.collections[record.CollectionMentors] = append(
		repo.collections[record.CollectionMentors],
		record.Record{"profile_id": "broken", "experience_level": "Beginner"},
	)
	m := NewSort(repo)

	_, err := m.Match(context.Background(), 3, "m1")
	if !errors.Is(err, record.ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField, got %v", err)
	}
}

func TestSearch_KeepsRelevanceOrder(t *testing.T) {
	m := NewSearch(webRepo())

	got, err := m.Match(context.Background(), 5, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Only the Web mentors match, in candidate-set order.
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestSortSearch_SubsetOfSearch(t *testing.T) {
	repo := webRepo()
	searchIDs := map[string]struct{}{}
	docs, err := repo.Search(context.Background(), record.CollectionMentors, "Web")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, d := range docs {
		id, _ := d.StringField("profile_id")
		searchIDs[id] = struct{}{}
	}

	m := NewSortSearch(repo)
	got, err := m.Match(context.Background(), 10, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, id := range got {
		if _, ok := searchIDs[id]; !ok {
			t.Fatalf("id %q not in search result set", id)
		}
	}
}

func TestSortSearch_PairProgrammingAndIndustryTieBreaks(t *testing.T) {
	repo := &fakeRepo{collections: map[string][]record.Record{
		record.CollectionMentees: {
			mentee("m1", "Web", "Beginner", true),
		},
		record.CollectionMentors: {
			mentor("a", "Web", "Beginner", true, true),
			mentor("b", "Web", "Beginner", true, false),
			mentor("c", "Web", "Beginner", false, false),
		},
	}}
	m := NewSortSearch(repo)

	got, err := m.Match(context.Background(), 3, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// b: all preferences match, no industry flag. a: industry flag
	// ranks it after b. c: pair programming mismatch ranks last.
	if got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("expected [b a c], got %v", got)
	}
}

func TestRandom_SampleSizeAndUniqueness(t *testing.T) {
	m := NewRandom(webRepo())

	got, err := m.Match(context.Background(), 2, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ids, got %v", got)
	}
	seen := map[string]struct{}{}
	for _, id := range got {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q in sample %v", id, got)
		}
		seen[id] = struct{}{}
	}
}

func TestRandom_InsufficientCandidates(t *testing.T) {
	m := NewRandom(webRepo())

	_, err := m.Match(context.Background(), 4, "m1")
	if !errors.Is(err, ErrInsufficientCandidates) {
		t.Fatalf("expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestRandom_ZeroFromZeroIsEmpty(t *testing.T) {
	repo := webRepo()
	repo.collections[record.CollectionMentors] = nil
	m := NewRandom(repo)

	got, err := m.Match(context.Background(), 0, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sample, got %v", got)
	}
}

func TestResource_MatchesMenteesBySubject(t *testing.T) {
	repo := &fakeRepo{collections: map[string][]record.Record{
		record.CollectionResources: {
			{"item_id": "r1", "name": "Intro to Web", "subject": "Web"},
		},
		record.CollectionMentees: {
			mentee("m1", "Web", "Beginner", true),
			mentee("m2", "Data", "Beginner", false),
			mentee("m3", "Web", "Advanced", true),
		},
	}}
	m := NewResource(repo)

	got, err := m.Match(context.Background(), 5, "r1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0] != "m1" || got[1] != "m3" {
		t.Fatalf("expected [m1 m3], got %v", got)
	}
}

func TestResource_NotFound(t *testing.T) {
	m := NewResource(&fakeRepo{collections: map[string][]record.Record{}})

	_, err := m.Match(context.Background(), 3, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNew_StrategySelection(t *testing.T) {
	repo := webRepo()

	cases := []struct {
		strategy string
		want     string
	}{
		{StrategySort, "*matching.Sort"},
		{StrategySearch, "*matching.Search"},
		{StrategySortSearch, "*matching.SortSearch"},
		{StrategyRandom, "*matching.Random"},
	}
	for _, tc := range cases {
		m, err := New(tc.strategy, repo)
		if err != nil {
			t.Fatalf("strategy %q: unexpected err: %v", tc.strategy, err)
		}
		if got := typeName(m); got != tc.want {
			t.Fatalf("strategy %q: expected %s, got %s", tc.strategy, tc.want, got)
		}
	}

	if _, err := New("bogus", repo); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *Sort:
		return "*matching.Sort"
	case *Search:
		return "*matching.Search"
	case *SortSearch:
		return "*matching.SortSearch"
	case *Random:
		return "*matching.Random"
	default:
		return "unknown"
	}
}
