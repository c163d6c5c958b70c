package cache

import "time"

// Defaults for a process-wide audio cache.
const (
	// DefaultCapacity is the maximum number of entries kept at once.
	DefaultCapacity = 100

	// DefaultTTL is the age after which an entry is treated as absent.
	DefaultTTL = 24 * time.Hour
)

// Stats holds cache performance counters.
type Stats struct {
	// Configuration
	Capacity int
	TTL      time.Duration

	// Current state
	Entries int

	// Performance metrics
	Hits        int64
	Misses      int64
	Evictions   int64
	Expirations int64
	HitRate     float64
}
