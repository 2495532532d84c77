package middleware

import (
	"net/http"
	"strings"
	"testing"

	"github.com/andesair/checkin-api/internal/config"
)

func cacheCfg(strategy string) config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		KeyStrategy: strategy,
		Prefix:      "flight",
	}
}

func TestCacheKeyDistinctPerPath(t *testing.T) {
	cfg := cacheCfg("path_query")
	k1 := CacheKey(cfg, http.MethodGet, "/v1/flights/1/passengers", "")
	k2 := CacheKey(cfg, http.MethodGet, "/v1/flights/2/passengers", "")
	if k1 == k2 {
		t.Fatal("different flights must not share a cache key")
	}
}

// Invalidation scans for prefix:pathhash:q:*, so every query variant
// of one path must carry that prefix while the variants themselves
// stay distinct entries.
func TestCacheKeyQueryVariantsShareInvalidationPrefix(t *testing.T) {
	cfg := cacheCfg("path_query")
	path := "/v1/flights/7/passengers"

	bare := CacheKey(cfg, http.MethodGet, path, "")
	v1 := CacheKey(cfg, http.MethodGet, path, "verbose=1")
	v2 := CacheKey(cfg, http.MethodGet, path, "verbose=2")

	if v1 == v2 || v1 == bare {
		t.Fatal("distinct query strings must cache separately")
	}

	pattern := invalidationPattern(cfg, http.MethodGet, path)
	prefix := strings.TrimSuffix(pattern, "*")
	for _, k := range []string{bare, v1, v2} {
		if !strings.HasPrefix(k, prefix) {
			t.Errorf("key %q not matched by invalidation pattern %q", k, pattern)
		}
	}
}

func TestCacheKeyPathStrategyIgnoresQuery(t *testing.T) {
	cfg := cacheCfg("path")
	path := "/v1/flights/7/passengers"
	if CacheKey(cfg, http.MethodGet, path, "a=1") != CacheKey(cfg, http.MethodGet, path, "") {
		t.Fatal("path strategy must ignore the query string")
	}
}
