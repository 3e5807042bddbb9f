package feed

import (
	"os"

	"gopkg.in/yaml.v3"

	"freshcart/internal/app"
)

const DefaultHistory = 50

type Config struct {
	ServerPort string          `yaml:"srv_port"`
	CfgRedis   app.ConfigRedis `yaml:"redis"`
	CfgKafka   app.ConfigKafka `yaml:"kafka"`
	History    int             `yaml:"history"`
}

func NewConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":8082"
	}
	if cfg.History < 1 {
		cfg.History = DefaultHistory
	}
	if cfg.CfgKafka.Topic == "" {
		cfg.CfgKafka.Topic = "cart-notifications"
	}
	if cfg.CfgKafka.GroupID == "" {
		cfg.CfgKafka.GroupID = "cart-notifier"
	}

	return &cfg, nil
}
