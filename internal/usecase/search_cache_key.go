package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// SearchCacheKey namespaces cached search results per collection so
// writes can invalidate only the collection they touched.
func SearchCacheKey(collection, query string) string {
	sum := sha256.Sum256([]byte(normalizeSearchValue(query)))
	return "records:search:" + strings.TrimSpace(collection) + ":" + hex.EncodeToString(sum[:])
}

func SearchCachePattern(collection string) string {
	return "records:search:" + strings.TrimSpace(collection) + ":*"
}
