package record

import (
	"context"
	"errors"
	"fmt"
)

// Well-known collections. Clients may create additional collections
// freely; these are the ones the matching and aid features depend on.
const (
	CollectionMentees   = "Mentees"
	CollectionMentors   = "Mentors"
	CollectionResources = "Resources"
	CollectionUsers     = "Users"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrMalformedField signals a document missing a field the caller
	// requires, or carrying it with the wrong type. Ranking code fails
	// fast on it instead of treating the document as a wildcard match.
	ErrMalformedField = errors.New("malformed record field")
)

// Record is a schemaless document as stored in a collection.
type Record map[string]any

// StringField returns the named field as a string.
func (r Record) StringField(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", ErrMalformedField, key)
	}
	return s, nil
}

// BoolField returns the named field as a bool.
func (r Record) BoolField(key string) (bool, error) {
	v, ok := r[key]
	if !ok {
		return false, fmt.Errorf("%w: missing %q", ErrMalformedField, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q is not a bool", ErrMalformedField, key)
	}
	return b, nil
}

// Filter is an exact-match containment query: a document matches when
// every key/value pair in the filter is present in the document.
type Filter map[string]any

// Repository is the document store boundary. Read and Search return
// candidates in a deterministic order: insertion order for Read,
// descending relevance for Search.
type Repository interface {
	Create(ctx context.Context, collection string, doc Record) (Record, error)
	Read(ctx context.Context, collection string, filter Filter) ([]Record, error)
	First(ctx context.Context, collection string, filter Filter) (Record, error)
	Search(ctx context.Context, collection string, query string) ([]Record, error)
	Update(ctx context.Context, collection string, filter Filter, changes Record) (int64, error)
	Delete(ctx context.Context, collection string, filter Filter) (int64, error)
	Collections(ctx context.Context) (map[string]int64, error)
}
