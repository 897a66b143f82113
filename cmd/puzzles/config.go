package main

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Mode    string `json:"mode"`
	Addr    string `json:"addr"`
	LogFile string `json:"log_file"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":     c.Mode,
		"addr":     c.Addr,
		"log_file": c.LogFile,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
