package shared

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Catalog struct {
		Path string `yaml:"path"` // "" (built-in catalog)
	} `yaml:"catalog"`

	Audit struct {
		Include       []string `yaml:"include"`        // report glob patterns, empty = all
		Exclude       []string `yaml:"exclude"`        // directory names to skip
		DisabledRules []string `yaml:"disabled_rules"` // rule ids to drop
		Workers       int      `yaml:"workers"`        // 0 (GOMAXPROCS)
		MaxFileSize   int64    `yaml:"max_file_size"`  // 0 (default cap)
	} `yaml:"audit"`

	Reporting struct {
		OutDir      string `yaml:"out_dir"`      // "./reports"
		Format      string `yaml:"format"`       // "text"|"json"
		MinSeverity string `yaml:"min_severity"` // ""|"low"|"medium"|"high"
		FailOn      string `yaml:"fail_on"`      // "high"|"medium"|"low"|"none"
	} `yaml:"reporting"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Reporting.OutDir = "./reports"
	c.Reporting.Format = "text"
	c.Reporting.FailOn = "high"
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

// LoadConfig merges defaults, the optional YAML file at path, and
// UILINT_* environment overrides, in that order.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("UILINT_CATALOG"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("UILINT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audit.Workers = n
		}
	}
	if v := os.Getenv("UILINT_OUT_DIR"); v != "" {
		c.Reporting.OutDir = v
	}
	if v := os.Getenv("UILINT_FORMAT"); v != "" {
		c.Reporting.Format = v
	}
	if v := os.Getenv("UILINT_MIN_SEVERITY"); v != "" {
		c.Reporting.MinSeverity = v
	}
	if v := os.Getenv("UILINT_FAIL_ON"); v != "" {
		c.Reporting.FailOn = v
	}
	if v := os.Getenv("UILINT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("UILINT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return c, nil
}
