package usecase

import (
	"context"
	"strings"

	"mentor-match/internal/domain/record"
)

// ChangeNotifier receives record change events after successful
// writes. The websocket hub implements it; a nil notifier is allowed.
type ChangeNotifier interface {
	NotifyChange(collection, action, profileID string)
}

type CollectionUsecase interface {
	Create(ctx context.Context, collection string, doc record.Record) (record.Record, error)
	Read(ctx context.Context, collection string, filter record.Filter) ([]record.Record, error)
	Search(ctx context.Context, collection string, query string) ([]record.Record, error)
	Update(ctx context.Context, collection string, filter record.Filter, changes record.Record) (int64, error)
	Delete(ctx context.Context, collection string, profileID string) (int64, error)
	Collections(ctx context.Context) (map[string]int64, error)
}

type Collection struct {
	repo     record.Repository
	cache    SearchCache
	notifier ChangeNotifier
}

func NewCollectionUsecase(repo record.Repository, cache SearchCache, notifier ChangeNotifier) *Collection {
	return &Collection{repo: repo, cache: cache, notifier: notifier}
}

func (u *Collection) Create(ctx context.Context, collection string, doc record.Record) (record.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" || len(doc) == 0 {
		return nil, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, collection, doc)
	if err != nil {
		return nil, err
	}

	u.invalidate(ctx, collection)
	u.notify(collection, "created", doc)
	return created, nil
}

func (u *Collection) Read(ctx context.Context, collection string, filter record.Filter) ([]record.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, ErrInvalidInput
	}
	return u.repo.Read(ctx, collection, filter)
}

func (u *Collection) Search(ctx context.Context, collection string, query string) ([]record.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" || strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}

	key := SearchCacheKey(collection, query)
	if u.cache != nil {
		var cached []record.Record
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	docs, err := u.repo.Search(ctx, collection, query)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, docs, 0)
	}
	return docs, nil
}

func (u *Collection) Update(ctx context.Context, collection string, filter record.Filter, changes record.Record) (int64, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" || len(changes) == 0 {
		return 0, ErrInvalidInput
	}

	n, err := u.repo.Update(ctx, collection, filter, changes)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.invalidate(ctx, collection)
		u.notify(collection, "updated", record.Record(filter))
	}
	return n, nil
}

func (u *Collection) Delete(ctx context.Context, collection string, profileID string) (int64, error) {
	collection = strings.TrimSpace(collection)
	profileID = strings.TrimSpace(profileID)
	if collection == "" || profileID == "" {
		return 0, ErrInvalidInput
	}

	n, err := u.repo.Delete(ctx, collection, record.Filter{"profile_id": profileID})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.invalidate(ctx, collection)
		if u.notifier != nil {
			u.notifier.NotifyChange(collection, "deleted", profileID)
		}
	}
	return n, nil
}

func (u *Collection) Collections(ctx context.Context) (map[string]int64, error) {
	return u.repo.Collections(ctx)
}

func (u *Collection) invalidate(ctx context.Context, collection string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, SearchCachePattern(collection))
}

func (u *Collection) notify(collection, action string, doc record.Record) {
	if u.notifier == nil {
		return
	}
	id, _ := doc["profile_id"].(string)
	u.notifier.NotifyChange(collection, action, id)
}
