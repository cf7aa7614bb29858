package domain

import "time"

// CacheEntry is a rendered result held by a cache compartment. It is handed
// out to callers as a shared read-only view; neither the entry nor its bytes
// may be mutated after creation. LastAccessedAt is maintained by the owning
// compartment under its own lock.
type CacheEntry struct {
	Bytes          []byte
	Size           int64
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// CacheStats is a point-in-time snapshot of one compartment's counters.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Expiries  int64 `json:"expiries"`
	Entries   int64 `json:"entries"`
	Bytes     int64 `json:"bytes"`
	Budget    int64 `json:"budget,omitempty"`
}
