package model

import "time"

// Config is the complete runtime configuration of the worker.
// Field tags serve both viper (mapstructure) and `config show` (yaml).
type Config struct {
	ProjectID      string `yaml:"project_id" mapstructure:"project_id"`               // Google Cloud project (Vertex AI + GCS)
	Location       string `yaml:"location" mapstructure:"location"`                   // Vertex AI region
	InputBucket    string `yaml:"input_bucket" mapstructure:"input_bucket"`           // gs://bucket, bare bucket name, or file:// directory
	OutputBucket   string `yaml:"output_bucket" mapstructure:"output_bucket"`         // same forms as input_bucket
	DryRun         bool   `yaml:"dry_run" mapstructure:"dry_run"`                     // print records instead of writing them
	DryRunMaxFiles int    `yaml:"dry_run_max_files" mapstructure:"dry_run_max_files"` // listing cap while dry running

	Personas   PersonaConfig    `yaml:"personas" mapstructure:"personas"`
	LLM        LLMConfig        `yaml:"llm" mapstructure:"llm"`
	Retry      RetryConfig      `yaml:"retry" mapstructure:"retry"`
	Poll       PollConfig       `yaml:"poll" mapstructure:"poll"`
	Web        WebConfig        `yaml:"web" mapstructure:"web"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
	Validation ValidationConfig `yaml:"validation" mapstructure:"validation"`
	Consume    ConsumeConfig    `yaml:"consume" mapstructure:"consume"`
	Annotation AnnotationConfig `yaml:"annotation" mapstructure:"annotation"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" mapstructure:"telemetry"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// PersonaConfig sizes the synthetic evaluator pool.
type PersonaConfig struct {
	Count int `yaml:"count" mapstructure:"count"`
}

// LLMConfig selects and configures the generative model.
type LLMConfig struct {
	Provider          string        `yaml:"provider" mapstructure:"provider"` // gemini, vertex, openai, ollama, anthropic
	Model             string        `yaml:"model" mapstructure:"model"`
	APIKey            string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL           string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"` // per attempt
	MaxTokens         int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerMinute float64       `yaml:"requests_per_minute" mapstructure:"requests_per_minute"` // 0 disables
}

// RetryConfig shapes the backoff around each model call.
type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff" mapstructure:"initial_backoff"`
	Multiplier     float64       `yaml:"multiplier" mapstructure:"multiplier"`
	MaxBackoff     time.Duration `yaml:"max_backoff" mapstructure:"max_backoff"`
}

// PollConfig controls the polling loop cadence.
type PollConfig struct {
	Suffix        string        `yaml:"suffix" mapstructure:"suffix"`                 // only objects ending with this are tasks
	IdleInterval  time.Duration `yaml:"idle_interval" mapstructure:"idle_interval"`   // sleep when nothing is pending
	BatchInterval time.Duration `yaml:"batch_interval" mapstructure:"batch_interval"` // sleep after a batch
}

// WebConfig configures webpage extraction.
type WebConfig struct {
	MaxChars          int           `yaml:"max_chars" mapstructure:"max_chars"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	MaxAttempts       int           `yaml:"max_attempts" mapstructure:"max_attempts"`
	RespectRobots     bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"` // per host
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	HTTPProxy         string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy           string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig configures the extracted-page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // empty keeps the cache in memory only
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ValidationConfig governs how model output is checked.
type ValidationConfig struct {
	RatingPolicy string `yaml:"rating_policy" mapstructure:"rating_policy"` // passthrough, clamp, reject
}

// ConsumeConfig decides what happens to input objects once processed.
type ConsumeConfig struct {
	Mode        string `yaml:"mode" mapstructure:"mode"` // ledger or none
	LedgerPath  string `yaml:"ledger_path" mapstructure:"ledger_path"`
	MaxAttempts int    `yaml:"max_attempts" mapstructure:"max_attempts"` // skipped objects are parked after this many tries
}

// AnnotationConfig holds labeling-project constants stamped on every record.
type AnnotationConfig struct {
	Project int    `yaml:"project" mapstructure:"project"`
	ToName  string `yaml:"to_name" mapstructure:"to_name"`
}

// TelemetryConfig points OTLP exporters at a collector. Empty endpoint means no export.
type TelemetryConfig struct {
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Headers  string `yaml:"headers,omitempty" mapstructure:"headers"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // json or console
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Location:       "us-central1",
		DryRunMaxFiles: 100,
		Personas:       PersonaConfig{Count: 5},
		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "gemini-1.5-pro",
			Timeout:   2 * time.Minute,
			MaxTokens: 2048,
		},
		Retry: RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: 4 * time.Second,
			Multiplier:     2,
			MaxBackoff:     10 * time.Second,
		},
		Poll: PollConfig{
			Suffix:        ".json",
			IdleInterval:  60 * time.Second,
			BatchInterval: 10 * time.Second,
		},
		Web: WebConfig{
			MaxChars:          100000,
			Timeout:           30 * time.Second,
			UserAgent:         "synthfeedback/0.3 (+https://github.com/openpaws/synthfeedback)",
			MaxBodyBytes:      5_000_000,
			MaxAttempts:       3,
			RespectRobots:     true,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Validation: ValidationConfig{RatingPolicy: "passthrough"},
		Consume: ConsumeConfig{
			Mode:        "ledger",
			LedgerPath:  "synthfeedback.db",
			MaxAttempts: 5,
		},
		Annotation: AnnotationConfig{Project: 7, ToName: "chat"},
		Log:        LogConfig{Level: "info", Format: "json"},
	}
}
