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
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Mail     *Mail           `json:"mail" yaml:"mail"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

// Parse decodes yaml content and fills in defaults for omitted sections.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	if conf.App == nil {
		conf.App = &App{Env: "dev"}
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 3000
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if conf.Jwt.ExpiresIn == 0 {
		conf.Jwt.ExpiresIn = 86400
	}
	if conf.Mail == nil {
		conf.Mail = &Mail{}
	}
	if conf.Mail.VerifyTTL == 0 {
		conf.Mail.VerifyTTL = 86400
	}
	if conf.Mail.ResetTTL == 0 {
		conf.Mail.ResetTTL = 3600
	}
	if conf.RocketMQ == nil {
		conf.RocketMQ = &RocketMQConfig{}
	}
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
