package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/andesair/checkin-api/internal/config"
)

// captureWriter tees the response body so a 200 can be stored after the
// handler has already streamed it to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 {
		cw.buf.Write(b)
	} else if cw.size < cw.limit {
		remain := cw.limit - cw.size
		if int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// cachePathHash hashes the part of the key every query variant of a
// path shares. The concrete URL path goes in (not the route pattern)
// so /v1/flights/1/... and /v1/flights/2/... never share an entry.
func cachePathHash(cfg config.CacheConfig, method, path string) string {
	tail := "path:" + path
	if strings.ToLower(cfg.KeyStrategy) == "method_path" {
		tail = "method:" + method + ":" + tail
	}
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%x", sum[:])
}

// CacheKey builds the Redis key for a request. The query string hashes
// into its own trailing segment, so every cached variant of one path
// shares the prefix InvalidateCache scans for.
func CacheKey(cfg config.CacheConfig, method, path, rawQuery string) string {
	key := cfg.Prefix + ":" + cachePathHash(cfg, method, path) + ":q:"
	if strings.ToLower(cfg.KeyStrategy) == "path_query" && rawQuery != "" {
		sum := sha1.Sum([]byte(rawQuery))
		return key + fmt.Sprintf("%x", sum[:])
	}
	return key + "-"
}

// invalidationPattern matches every cached query variant of a path.
func invalidationPattern(cfg config.CacheConfig, method, path string) string {
	return cfg.Prefix + ":" + cachePathHash(cfg, method, path) + ":q:*"
}

// InvalidateCache deletes every cached GET response for a path,
// whatever query string it was fetched with. Write handlers call this
// so the next read reflects the new seat map.
func InvalidateCache(ctx context.Context, cfg config.CacheConfig, rdb *redis.Client, path string) {
	if rdb == nil || !cfg.Enabled {
		return
	}
	iter := rdb.Scan(ctx, 0, invalidationPattern(cfg, http.MethodGet, path), 100).Iterator()
	for iter.Next(ctx) {
		rdb.Del(ctx, iter.Val())
	}
}

// Entries pack status, headers and body into one value:
// [4 bytes status][4 bytes headerLen][headerJSON][body].
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// NewRedisCache caches successful responses for the configured methods.
// A bulk check-in computes the full seat allocation for a flight, so
// repeated polls of the same flight should not re-run it within the TTL.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			if !cfg.Methods[strings.ToUpper(r.Method)] {
				return next(c)
			}

			ctx := r.Context()
			key := CacheKey(cfg, r.Method, r.URL.Path, r.URL.RawQuery)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, hdr, body, ok := decodePayload(bs); ok {
					for k, vals := range hdr {
						if strings.EqualFold(k, "Content-Length") {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					if len(body) > 0 {
						_, _ = c.Response().Write(body)
					}
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only full, successful bodies are cached; a truncated
			// capture means the response outgrew the limit.
			if cw.status == http.StatusOK && (maxBody <= 0 || cw.size <= maxBody) {
				hdr := make(http.Header, len(c.Response().Header()))
				for k, vals := range c.Response().Header() {
					vv := make([]string, len(vals))
					copy(vv, vals)
					hdr[k] = vv
				}
				if payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes()); err == nil {
					_ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
				}
			}
			return nil
		}
	}
}
