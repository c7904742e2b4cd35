package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for contract generation and preference extraction"`
	Memory   MemoryConfig   `yaml:"memory" json:"memory" jsonschema:"description=Client memory settings"`
	Notify   NotifyConfig   `yaml:"notify" json:"notify" jsonschema:"description=Webhook notification settings"`
	Auth     AuthConfig     `yaml:"auth" json:"auth" jsonschema:"description=Request authentication"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=HTTP server timeout"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:proposalfast.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// LLMConfig holds LLM configuration
type LLMConfig struct {
	Endpoint     string           `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey       string           `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string           `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature  float64          `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for contract generation"`
	MaxTokens    int              `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in generated contract"`
	Timeout      time.Duration    `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt string           `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for contract generation (optional)"`
	Extraction   ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Preference extraction settings"`
}

// ExtractionConfig holds preference extraction settings
type ExtractionConfig struct {
	Temperature      float64 `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for preference extraction"`
	MaxTokens        int     `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in extraction reply"`
	MaxChars         int     `yaml:"max_chars" json:"max_chars" jsonschema:"default=2000,minimum=1,description=Characters of contract text sent for extraction"`
	StructuredOutput bool    `yaml:"structured_output" json:"structured_output" jsonschema:"default=false,description=Request JSON schema constrained output (not all models support this)"`
}

// MemoryConfig holds client memory settings
type MemoryConfig struct {
	LearnTimeout time.Duration `yaml:"learn_timeout" json:"learn_timeout" jsonschema:"default=60s,description=Time budget for background preference learning"`
}

// NotifyConfig holds webhook delivery settings
type NotifyConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5s,description=Delivery timeout per webhook"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,minimum=1,description=Maximum concurrent deliveries"`
	AllowPrivate  bool          `yaml:"allow_private" json:"allow_private" jsonschema:"default=false,description=Allow webhook targets on loopback and private networks"`
}

// AuthConfig holds request authentication settings
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" json:"jwt_secret" jsonschema:"description=HS256 secret for bearer tokens; empty enables X-User-ID header mode"`
	Issuer    string `yaml:"issuer" json:"issuer" jsonschema:"description=Expected token issuer (optional)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 60 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:proposalfast.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2000
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.Extraction.Temperature == 0 {
		c.LLM.Extraction.Temperature = 0.3
	}
	if c.LLM.Extraction.MaxTokens == 0 {
		c.LLM.Extraction.MaxTokens = 300
	}
	if c.LLM.Extraction.MaxChars == 0 {
		c.LLM.Extraction.MaxChars = 2000
	}

	if c.Memory.LearnTimeout == 0 {
		c.Memory.LearnTimeout = 60 * time.Second
	}

	if c.Notify.Timeout == 0 {
		c.Notify.Timeout = 5 * time.Second
	}
	if c.Notify.MaxConcurrent == 0 {
		c.Notify.MaxConcurrent = 5
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.Extraction.Temperature < 0 || cfg.LLM.Extraction.Temperature > 2 {
		return fmt.Errorf("llm.extraction.temperature must be between 0 and 2")
	}
	if cfg.LLM.Extraction.MaxChars < 1 {
		return fmt.Errorf("llm.extraction.max_chars must be at least 1")
	}
	if cfg.Notify.MaxConcurrent < 1 {
		return fmt.Errorf("notify.max_concurrent must be at least 1")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// AllowPrivateWebhooks reports whether webhooks may target loopback and private networks
func (c *Config) AllowPrivateWebhooks() bool {
	return c.Notify.AllowPrivate
}

// GetAuthConfig returns authentication settings
func (c *Config) GetAuthConfig() (jwtSecret, issuer string) {
	return c.Auth.JWTSecret, c.Auth.Issuer
}
