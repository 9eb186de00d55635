package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	assistantpkg "frank-api/pkg/assistant"
	coinbasepkg "frank-api/pkg/coinbase"
	"frank-api/pkg/confkit"
	llmpkg "frank-api/pkg/llm"
)

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod.
	Env string `json:",default=test"`

	LLM       confkit.Section[llmpkg.Config]       `json:",optional"`
	Exchange  confkit.Section[coinbasepkg.Config]  `json:",optional"`
	Assistant confkit.Section[assistantpkg.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test" || c.Env == ""
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "test"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	return nil
}

func (c *Config) hydrateSections() error {
	base := c.baseDir
	if err := c.LLM.Hydrate(base, llmpkg.LoadConfig); err != nil {
		return err
	}
	if err := c.Exchange.Hydrate(base, coinbasepkg.LoadConfig); err != nil {
		return err
	}
	if err := c.Assistant.Hydrate(base, assistantpkg.LoadConfig); err != nil {
		return err
	}
	return nil
}

// MainPath returns the absolute path of the loaded main config file.
func (c *Config) MainPath() string { return c.mainPath }
