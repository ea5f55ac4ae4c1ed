package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	Database *Database       `json:"database" yaml:"database"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Queue    *Queue          `json:"queue" yaml:"queue"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Notify   *Notify         `json:"notify" yaml:"notify"`
	Mail     *Mail           `json:"mail" yaml:"mail"`
	Quiz     *Quiz           `json:"quiz" yaml:"quiz"`
}

type Server struct {
	Http      int `json:"http" yaml:"http"`
	Websocket int `json:"websocket" yaml:"websocket"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	conf.fill()
	conf.applyEnv()

	return &conf
}

// applyEnv 密钥类配置允许用环境变量(.env)覆盖
func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		c.Mail.ApiKey = v
	}
}

// fill 缺省的配置段补齐默认值
func (c *Config) fill() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{Http: 8080, Websocket: 8081}
	}
	if c.Database == nil {
		c.Database = &Database{Driver: DriverSqlite, Path: "learnhub.db"}
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Queue == nil {
		c.Queue = &Queue{}
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.Notify == nil {
		c.Notify = &Notify{}
	}
	if c.Mail == nil {
		c.Mail = &Mail{}
	}
	if c.Quiz == nil {
		c.Quiz = &Quiz{}
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
