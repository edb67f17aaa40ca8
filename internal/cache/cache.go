package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// Cache defines the interface for API response caching. An entry past its
// TTL is treated as absent on read.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a deterministic cache key from an endpoint and its parameter
// set. Parameters are serialized sorted by name so logically identical
// requests map to the same entry regardless of construction order.
func Key(endpoint string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(endpoint)
	for _, name := range names {
		b.WriteByte('&')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}

	hash := sha256.Sum256([]byte(b.String()))
	return "precedent:v1:" + hex.EncodeToString(hash[:])
}
