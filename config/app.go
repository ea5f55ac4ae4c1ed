package config

type App struct {
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	Name     string `json:"name" yaml:"name"`
	NodeID   int64  `json:"node_id" yaml:"node_id"`     // snowflake 节点号
	LogLevel string `json:"log_level" yaml:"log_level"` // debug/info/warn/error
}
