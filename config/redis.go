package config

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// CacheTTL is the lifetime of cached relation counters, in seconds.
	CacheTTL int `json:"cache_ttl" yaml:"cache_ttl"`
}
