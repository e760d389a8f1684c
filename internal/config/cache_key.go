package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CoordinatorSessionKey returns the cache key for a coordinator's active session.
func (r *CacheKeyStruct) CoordinatorSessionKey(coordinatorID int) string {
	return fmt.Sprintf("login:%d", coordinatorID)
}

var CacheKey = NewCacheKeyStruct()
