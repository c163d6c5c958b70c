package speech

import (
	"fmt"
	"strings"
	"time"
)

// Config contains all speech pipeline configuration options.
type Config struct {
	// Engine selects the synthesis backend.
	Engine string `yaml:"engine" env:"KINDKEEPER_ENGINE" envDefault:"elevenlabs"`

	// Volume is the playback volume (0.0 to 2.0).
	Volume float64 `yaml:"volume" env:"KINDKEEPER_VOLUME" envDefault:"1.0"`

	// Cache holds audio cache settings.
	Cache CacheConfig `yaml:"cache"`

	// Engine-specific configurations
	ElevenLabs ElevenLabsConfig `yaml:"elevenlabs"`
	Mock       MockConfig       `yaml:"mock"`
}

// CacheConfig holds audio response cache settings.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled" env:"KINDKEEPER_CACHE_ENABLED" envDefault:"true"`
	Capacity int           `yaml:"capacity" env:"KINDKEEPER_CACHE_CAPACITY" envDefault:"100"`
	TTL      time.Duration `yaml:"ttl" env:"KINDKEEPER_CACHE_TTL" envDefault:"24h"`
}

// ElevenLabsConfig contains hosted synthesis engine settings.
type ElevenLabsConfig struct {
	APIKey            string        `yaml:"api_key" env:"KINDKEEPER_ELEVENLABS_API_KEY"`
	BaseURL           string        `yaml:"base_url" env:"KINDKEEPER_ELEVENLABS_BASE_URL" envDefault:"https://api.elevenlabs.io"`
	VoiceID           string        `yaml:"voice_id" env:"KINDKEEPER_ELEVENLABS_VOICE_ID" envDefault:"EXAVITQu4vr4xnSDxMaL"`
	ModelID           string        `yaml:"model_id" env:"KINDKEEPER_ELEVENLABS_MODEL_ID" envDefault:"eleven_multilingual_v2"`
	SampleRate        int           `yaml:"sample_rate" env:"KINDKEEPER_ELEVENLABS_SAMPLE_RATE" envDefault:"22050"`
	Timeout           time.Duration `yaml:"timeout" env:"KINDKEEPER_ELEVENLABS_TIMEOUT" envDefault:"30s"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"KINDKEEPER_ELEVENLABS_RPM" envDefault:"60"`
}

// MockConfig contains mock engine settings for testing.
type MockConfig struct {
	GenerationDelay time.Duration `yaml:"generation_delay" env:"KINDKEEPER_MOCK_GENERATION_DELAY" envDefault:"0ms"`
	WordsPerMinute  int           `yaml:"words_per_minute" env:"KINDKEEPER_MOCK_WORDS_PER_MINUTE" envDefault:"150"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Engine: "elevenlabs",
		Volume: 1.0,
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 100,
			TTL:      24 * time.Hour,
		},
		ElevenLabs: DefaultElevenLabsConfig(),
		Mock:       DefaultMockConfig(),
	}
}

// DefaultElevenLabsConfig returns default hosted engine configuration.
func DefaultElevenLabsConfig() ElevenLabsConfig {
	return ElevenLabsConfig{
		BaseURL:           "https://api.elevenlabs.io",
		VoiceID:           "EXAVITQu4vr4xnSDxMaL",
		ModelID:           "eleven_multilingual_v2",
		SampleRate:        22050,
		Timeout:           30 * time.Second,
		RequestsPerMinute: 60,
	}
}

// DefaultMockConfig returns default mock engine configuration.
func DefaultMockConfig() MockConfig {
	return MockConfig{
		GenerationDelay: 0,
		WordsPerMinute:  150,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validEngines := []string{"elevenlabs", "mock"}
	engineValid := false
	for _, e := range validEngines {
		if strings.EqualFold(c.Engine, e) {
			engineValid = true
			c.Engine = strings.ToLower(c.Engine)
			break
		}
	}
	if !engineValid {
		return fmt.Errorf("%w %q: must be one of %v", ErrUnknownEngine, c.Engine, validEngines)
	}

	if c.Volume < 0.0 || c.Volume > 2.0 {
		return fmt.Errorf("volume must be between 0.0 and 2.0, got %f", c.Volume)
	}

	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config: %w", err)
	}

	switch c.Engine {
	case "elevenlabs":
		if err := c.ElevenLabs.Validate(); err != nil {
			return fmt.Errorf("elevenlabs config: %w", err)
		}
	case "mock":
		if err := c.Mock.Validate(); err != nil {
			return fmt.Errorf("mock config: %w", err)
		}
	}

	return nil
}

// Validate checks if the cache configuration is valid.
func (c *CacheConfig) Validate() error {
	if c.Capacity < 1 || c.Capacity > 10000 {
		return fmt.Errorf("capacity must be between 1 and 10000 entries, got %d", c.Capacity)
	}
	if c.TTL < time.Minute {
		return fmt.Errorf("ttl must be at least 1 minute, got %v", c.TTL)
	}
	return nil
}

// Validate checks if the hosted engine configuration is valid.
func (c *ElevenLabsConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if c.VoiceID == "" {
		return ErrInvalidVoiceID
	}
	if c.SampleRate != 16000 && c.SampleRate != 22050 && c.SampleRate != 24000 && c.SampleRate != 44100 {
		return fmt.Errorf("invalid sample rate %d: must be one of [16000 22050 24000 44100]", c.SampleRate)
	}
	if c.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second, got %v", c.Timeout)
	}
	if c.RequestsPerMinute < 1 || c.RequestsPerMinute > 600 {
		return fmt.Errorf("requests_per_minute must be between 1 and 600, got %d", c.RequestsPerMinute)
	}
	return nil
}

// Validate checks if the mock configuration is valid.
func (c *MockConfig) Validate() error {
	if c.WordsPerMinute < 50 || c.WordsPerMinute > 500 {
		return fmt.Errorf("words_per_minute must be between 50 and 500, got %d", c.WordsPerMinute)
	}
	return nil
}
