package pagecache

import "time"

const defaultMemoryCleanupInterval = 10 * time.Minute

// StoreConfig controls how a Store is constructed.
type StoreConfig struct {
	Driver Driver

	// MemoryCleanupInterval controls in-process eviction of expired entries.
	MemoryCleanupInterval time.Duration

	// Prefix namespaces keys on shared backends (redis) as "<prefix>:<key>".
	// Empty keeps keys untouched.
	Prefix string

	// RedisClient is required when DriverRedis is used.
	RedisClient RedisClient
}

func (c StoreConfig) withDefaults() StoreConfig {
	if c.Driver == "" {
		c.Driver = DriverMemory
	}
	if c.MemoryCleanupInterval <= 0 {
		c.MemoryCleanupInterval = defaultMemoryCleanupInterval
	}
	return c
}

func prefixed(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + ":" + key
}
