package matching

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"mentor-match/internal/domain/record"
)

var (
	ErrNotFound               = errors.New("profile not found")
	ErrInsufficientCandidates = errors.New("not enough candidates to sample")
	ErrInvalidMatchCount      = errors.New("n_matches must be positive")
	ErrUnknownStrategy        = errors.New("unknown match strategy")
)

// Matcher maps a mentee profile id to an ordered list of mentor
// profile ids, at most nMatches long. Implementations are read-only
// over the record store and hold no other state.
type Matcher interface {
	Match(ctx context.Context, nMatches int, profileID string) ([]string, error)
}

const (
	StrategySort       = "sort"
	StrategySearch     = "search"
	StrategySortSearch = "sort_search"
	StrategyRandom     = "random"
)

// New returns the mentor matcher for the named strategy.
func New(strategy string, repo record.Repository) (Matcher, error) {
	switch strings.TrimSpace(strategy) {
	case StrategySort:
		return &Sort{repo: repo}, nil
	case StrategySearch:
		return &Search{repo: repo}, nil
	case StrategySortSearch, "":
		return &SortSearch{repo: repo}, nil
	case StrategyRandom:
		return &Random{repo: repo}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// Sort ranks the full mentor list by subject match, then experience
// level match.
type Sort struct {
	repo record.Repository
}

func NewSort(repo record.Repository) *Sort { return &Sort{repo: repo} }

func (m *Sort) Match(ctx context.Context, nMatches int, profileID string) ([]string, error) {
	mentee, err := loadMentee(ctx, m.repo, profileID)
	if err != nil {
		return nil, err
	}

	mentors, err := m.repo.Read(ctx, record.CollectionMentors, nil)
	if err != nil {
		return nil, err
	}

	ranked, err := rankMentors(mentee, mentors, rankSubjectExperience)
	if err != nil {
		return nil, err
	}
	return truncate(ranked, nMatches)
}

// Search returns mentors whose documents fuzzy-match the mentee's
// subject, in the store's relevance order.
type Search struct {
	repo record.Repository
}

func NewSearch(repo record.Repository) *Search { return &Search{repo: repo} }

func (m *Search) Match(ctx context.Context, nMatches int, profileID string) ([]string, error) {
	mentee, err := loadMentee(ctx, m.repo, profileID)
	if err != nil {
		return nil, err
	}
	subject, err := mentee.StringField("subject")
	if err != nil {
		return nil, err
	}

	mentors, err := m.repo.Search(ctx, record.CollectionMentors, subject)
	if err != nil {
		return nil, err
	}

	ids, err := profileIDs(mentors)
	if err != nil {
		return nil, err
	}
	return truncate(ids, nMatches)
}

// SortSearch narrows candidates with a subject search, then ranks by
// subject, experience level, pair programming preference and finally
// industry knowledge.
type SortSearch struct {
	repo record.Repository
}

func NewSortSearch(repo record.Repository) *SortSearch { return &SortSearch{repo: repo} }

func (m *SortSearch) Match(ctx context.Context, nMatches int, profileID string) ([]string, error) {
	mentee, err := loadMentee(ctx, m.repo, profileID)
	if err != nil {
		return nil, err
	}
	subject, err := mentee.StringField("subject")
	if err != nil {
		return nil, err
	}

	mentors, err := m.repo.Search(ctx, record.CollectionMentors, subject)
	if err != nil {
		return nil, err
	}

	ranked, err := rankMentors(mentee, mentors, rankFull)
	if err != nil {
		return nil, err
	}
	return truncate(ranked, nMatches)
}

// Random samples nMatches mentors uniformly without replacement,
// ignoring the mentee's profile beyond existence.
type Random struct {
	repo record.Repository
}

func NewRandom(repo record.Repository) *Random { return &Random{repo: repo} }

func (m *Random) Match(ctx context.Context, nMatches int, profileID string) ([]string, error) {
	if nMatches < 0 {
		return nil, ErrInvalidMatchCount
	}
	if _, err := loadMentee(ctx, m.repo, profileID); err != nil {
		return nil, err
	}

	mentors, err := m.repo.Read(ctx, record.CollectionMentors, nil)
	if err != nil {
		return nil, err
	}
	if nMatches > len(mentors) {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrInsufficientCandidates, nMatches, len(mentors))
	}

	ids, err := profileIDs(mentors)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, nMatches)
	for _, i := range rand.Perm(len(ids))[:nMatches] {
		out = append(out, ids[i])
	}
	return out, nil
}

// Resource matches mentees to a resource item: roles are inverted
// relative to the mentor matchers, keyed by item_id.
type Resource struct {
	repo record.Repository
}

func NewResource(repo record.Repository) *Resource { return &Resource{repo: repo} }

func (m *Resource) Match(ctx context.Context, nMatches int, itemID string) ([]string, error) {
	if nMatches <= 0 {
		return nil, ErrInvalidMatchCount
	}

	res, err := m.repo.First(ctx, record.CollectionResources, record.Filter{"item_id": itemID})
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, fmt.Errorf("%w: resource %q", ErrNotFound, itemID)
		}
		return nil, err
	}
	subject, err := res.StringField("subject")
	if err != nil {
		return nil, err
	}

	mentees, err := m.repo.Search(ctx, record.CollectionMentees, subject)
	if err != nil {
		return nil, err
	}

	ranked, err := rankCandidates(mentees, func(c record.Record) ([]bool, error) {
		s, err := c.StringField("subject")
		if err != nil {
			return nil, err
		}
		return []bool{s != subject}, nil
	})
	if err != nil {
		return nil, err
	}
	return truncate(ranked, nMatches)
}

func loadMentee(ctx context.Context, repo record.Repository, profileID string) (record.Record, error) {
	mentee, err := repo.First(ctx, record.CollectionMentees, record.Filter{"profile_id": profileID})
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, fmt.Errorf("%w: mentee %q", ErrNotFound, profileID)
		}
		return nil, err
	}
	return mentee, nil
}

// rankSubjectExperience orders by subject match, then experience level
// match (false sorts first, so matches rank ahead of mismatches).
func rankSubjectExperience(mentee, mentor record.Record) ([]bool, error) {
	menteeSubject, err := mentee.StringField("subject")
	if err != nil {
		return nil, err
	}
	menteeLevel, err := mentee.StringField("experience_level")
	if err != nil {
		return nil, err
	}
	mentorSubject, err := mentor.StringField("subject")
	if err != nil {
		return nil, err
	}
	mentorLevel, err := mentor.StringField("experience_level")
	if err != nil {
		return nil, err
	}
	return []bool{
		menteeSubject != mentorSubject,
		menteeLevel != mentorLevel,
	}, nil
}

// rankFull extends rankSubjectExperience with the pair programming
// preference and the mentor's industry knowledge. A mentor with
// industry knowledge ranks later within otherwise equal keys.
// TODO: confirm the intended direction of the industry tie-break.
func rankFull(mentee, mentor record.Record) ([]bool, error) {
	key, err := rankSubjectExperience(mentee, mentor)
	if err != nil {
		return nil, err
	}

	menteePair, err := mentee.BoolField("pair_programming")
	if err != nil {
		return nil, err
	}
	mentorPair, err := mentor.BoolField("pair_programming")
	if err != nil {
		return nil, err
	}
	industry, err := mentor.BoolField("industry_knowledge")
	if err != nil {
		return nil, err
	}

	return append(key, menteePair != mentorPair, industry), nil
}

func rankMentors(mentee record.Record, mentors []record.Record, key func(mentee, mentor record.Record) ([]bool, error)) ([]string, error) {
	return rankCandidates(mentors, func(c record.Record) ([]bool, error) {
		return key(mentee, c)
	})
}

// rankCandidates sorts candidates by their boolean key tuples
// (ascending, false < true) with a stable sort, so ties keep the
// candidate set's order, and returns the profile ids.
func rankCandidates(candidates []record.Record, key func(record.Record) ([]bool, error)) ([]string, error) {
	type ranked struct {
		id  string
		key []bool
	}

	items := make([]ranked, 0, len(candidates))
	for _, c := range candidates {
		id, err := c.StringField("profile_id")
		if err != nil {
			return nil, err
		}
		k, err := key(c)
		if err != nil {
			return nil, err
		}
		items = append(items, ranked{id: id, key: k})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return lessBoolTuple(items[i].key, items[j].key)
	})

	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out, nil
}

func lessBoolTuple(a, b []bool) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return !a[i]
		}
	}
	return false
}

func profileIDs(docs []record.Record) ([]string, error) {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		id, err := d.StringField("profile_id")
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func truncate(ids []string, nMatches int) ([]string, error) {
	if nMatches <= 0 {
		return nil, ErrInvalidMatchCount
	}
	if nMatches < len(ids) {
		return ids[:nMatches], nil
	}
	return ids, nil
}
