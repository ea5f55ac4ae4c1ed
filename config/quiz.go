package config

import "time"

// Quiz 测验定义的本地缓存
type Quiz struct {
	CacheSize int `json:"cache_size" yaml:"cache_size"`
	CacheTTL  int `json:"cache_ttl" yaml:"cache_ttl"` // 秒
}

func (q *Quiz) GetCacheSize() int {
	if q.CacheSize <= 0 {
		return 256
	}
	return q.CacheSize
}

func (q *Quiz) GetCacheTTL() time.Duration {
	if q.CacheTTL <= 0 {
		return time.Minute
	}
	return time.Duration(q.CacheTTL) * time.Second
}
