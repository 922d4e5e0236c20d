package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "config/config.toml"

var (
	ErrUnknownProvider = errors.New("unsupported llm provider")
	ErrMissingAPIKey   = errors.New("llm api key is required")
)

type LLMConfig struct {
	Provider              string   `toml:"provider"`
	Model                 string   `toml:"model"`
	APIKey                string   `toml:"api_key"`
	BaseURL               string   `toml:"base_url"`
	Temperature           float32  `toml:"temperature"`
	RegenerateTemperature float32  `toml:"regenerate_temperature"`
	MaxTokens             int      `toml:"max_tokens"`
	Timeout               Duration `toml:"timeout"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type SegmentationConfig struct {
	// LongTranscriptChars triggers a warning, roughly 25k tokens by default.
	LongTranscriptChars int `toml:"long_transcript_chars"`
}

type PathsConfig struct {
	Transcript    string `toml:"transcript"`
	Topics        string `toml:"topics"`
	Structured    string `toml:"structured"`
	Filtered      string `toml:"filtered"`
	RegenerateDir string `toml:"regenerate_dir"`
}

type Config struct {
	LLM          LLMConfig          `toml:"llm"`
	Memgraph     MemgraphConfig     `toml:"memgraph"`
	Server       ServerConfig       `toml:"server"`
	Segmentation SegmentationConfig `toml:"segmentation"`
	Paths        PathsConfig        `toml:"paths"`
	Prompts      Prompts            `toml:"prompts"`
}

// Default mirrors the settings the pipeline was tuned with.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:              "openai",
			Model:                 "gpt-4o",
			Temperature:           0.3,
			RegenerateTemperature: 0.7,
		},
		Memgraph: MemgraphConfig{URI: "bolt://localhost:7687"},
		Server:   ServerConfig{Port: "8080"},
		Segmentation: SegmentationConfig{
			LongTranscriptChars: 100000,
		},
		Paths: PathsConfig{
			Transcript:    "transcription.txt",
			Topics:        "transcription_topics.json",
			Structured:    "structured_output.json",
			Filtered:      "final_result.json",
			RegenerateDir: "Regenerated_Podcasts",
		},
		Prompts: DefaultPrompts(),
	}
}

// Load reads path over the defaults. An empty path means DefaultPath, and a
// missing DefaultPath is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	cfg.Prompts.fillDefaults()

	return cfg, nil
}

// ApplyEnv overrides file settings with environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLM.Timeout = Duration(d)
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = os.Getenv(providerKeyEnv(c.LLM.Provider))
	}

	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	return nil
}

func providerKeyEnv(provider string) string {
	switch strings.ToLower(provider) {
	case "claude":
		return "ANTHROPIC_API_KEY"
	case "gemini":
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// Validate checks what the oracle client needs before the first call.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LLM.Provider) {
	case "ollama":
		// no key needed
	case "openai", "claude", "gemini":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("%w (provider %s, set LLM_API_KEY or %s)", ErrMissingAPIKey, c.LLM.Provider, providerKeyEnv(c.LLM.Provider))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return errors.New("llm model is required")
	}
	return nil
}

// Duration is a time.Duration written as "90s" in TOML.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}
