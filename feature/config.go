package feature

import (
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Config tunes the content-template extraction heuristics. The defaults are
// calibrated against Chinese meeting-minutes and request documents; a
// deployment working from a different corpus can load its own values from
// YAML.
type Config struct {
	// SuffixWindow is how many trailing nodes are scanned for the first
	// role-marker line (主持/参加/发送 etc.) when locating the suffix block
	// (default: 20).
	SuffixWindow int `json:"suffix_window" yaml:"suffix_window"`

	// BlockCap limits the size of the extracted leading and trailing blocks.
	// Leading nodes keep the BlockCap entries closest to the body, trailing
	// nodes the BlockCap closest to the end (default: 20).
	BlockCap int `json:"block_cap" yaml:"block_cap"`

	// BodyPlaceholder is the placeholder paragraph text spliced between the
	// leading and trailing blocks when a new document is generated.
	BodyPlaceholder string `json:"body_placeholder" yaml:"body_placeholder"`

	// Logger for debug messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.SuffixWindow <= 0 {
		c.SuffixWindow = 20
	}
	if c.BlockCap <= 0 {
		c.BlockCap = 20
	}
	if c.BodyPlaceholder == "" {
		c.BodyPlaceholder = DefaultBodyPlaceholder
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// DefaultBodyPlaceholder is the editable body stand-in used when a document
// is scaffolded from a content template.
const DefaultBodyPlaceholder = "（请在此输入正文）"

// ParseConfig reads a Config from YAML bytes. Zero or missing values fall
// back to the defaults at extraction time.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
