package speech

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// LoadConfigFromEnv parses configuration from KINDKEEPER_* environment
// variables alone, for running without a config file.
func LoadConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("error parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid speech configuration: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromViper loads speech configuration from Viper.
func LoadConfigFromViper() (Config, error) {
	cfg := DefaultConfig()

	if viper.IsSet("speech.engine") {
		cfg.Engine = viper.GetString("speech.engine")
	}
	if viper.IsSet("speech.volume") {
		cfg.Volume = viper.GetFloat64("speech.volume")
	}

	cfg.Cache = loadCacheConfig()
	cfg.ElevenLabs = loadElevenLabsConfig()
	cfg.Mock = loadMockConfig()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid speech configuration: %w", err)
	}

	return cfg, nil
}

// loadCacheConfig loads audio cache configuration from Viper.
func loadCacheConfig() CacheConfig {
	cfg := DefaultConfig().Cache

	if viper.IsSet("speech.cache.enabled") {
		cfg.Enabled = viper.GetBool("speech.cache.enabled")
	}
	if viper.IsSet("speech.cache.capacity") {
		cfg.Capacity = viper.GetInt("speech.cache.capacity")
	}
	if viper.IsSet("speech.cache.ttl") {
		if d, err := time.ParseDuration(viper.GetString("speech.cache.ttl")); err == nil {
			cfg.TTL = d
		}
	}

	return cfg
}

// loadElevenLabsConfig loads hosted engine configuration from Viper.
func loadElevenLabsConfig() ElevenLabsConfig {
	cfg := DefaultElevenLabsConfig()

	if viper.IsSet("speech.elevenlabs.api_key") {
		cfg.APIKey = viper.GetString("speech.elevenlabs.api_key")
	}
	if viper.IsSet("speech.elevenlabs.base_url") {
		cfg.BaseURL = viper.GetString("speech.elevenlabs.base_url")
	}
	if viper.IsSet("speech.elevenlabs.voice_id") {
		cfg.VoiceID = viper.GetString("speech.elevenlabs.voice_id")
	}
	if viper.IsSet("speech.elevenlabs.model_id") {
		cfg.ModelID = viper.GetString("speech.elevenlabs.model_id")
	}
	if viper.IsSet("speech.elevenlabs.sample_rate") {
		cfg.SampleRate = viper.GetInt("speech.elevenlabs.sample_rate")
	}
	if viper.IsSet("speech.elevenlabs.timeout") {
		if d, err := time.ParseDuration(viper.GetString("speech.elevenlabs.timeout")); err == nil {
			cfg.Timeout = d
		}
	}
	if viper.IsSet("speech.elevenlabs.requests_per_minute") {
		cfg.RequestsPerMinute = viper.GetInt("speech.elevenlabs.requests_per_minute")
	}

	return cfg
}

// loadMockConfig loads mock engine configuration from Viper.
func loadMockConfig() MockConfig {
	cfg := DefaultMockConfig()

	if viper.IsSet("speech.mock.generation_delay") {
		if d, err := time.ParseDuration(viper.GetString("speech.mock.generation_delay")); err == nil {
			cfg.GenerationDelay = d
		}
	}
	if viper.IsSet("speech.mock.words_per_minute") {
		cfg.WordsPerMinute = viper.GetInt("speech.mock.words_per_minute")
	}

	return cfg
}

// SetDefaults sets default values in Viper for speech configuration.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("speech.engine", defaults.Engine)
	viper.SetDefault("speech.volume", defaults.Volume)

	viper.SetDefault("speech.cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("speech.cache.capacity", defaults.Cache.Capacity)
	viper.SetDefault("speech.cache.ttl", defaults.Cache.TTL.String())

	viper.SetDefault("speech.elevenlabs.base_url", defaults.ElevenLabs.BaseURL)
	viper.SetDefault("speech.elevenlabs.voice_id", defaults.ElevenLabs.VoiceID)
	viper.SetDefault("speech.elevenlabs.model_id", defaults.ElevenLabs.ModelID)
	viper.SetDefault("speech.elevenlabs.sample_rate", defaults.ElevenLabs.SampleRate)
	viper.SetDefault("speech.elevenlabs.timeout", defaults.ElevenLabs.Timeout.String())
	viper.SetDefault("speech.elevenlabs.requests_per_minute", defaults.ElevenLabs.RequestsPerMinute)

	viper.SetDefault("speech.mock.generation_delay", defaults.Mock.GenerationDelay.String())
	viper.SetDefault("speech.mock.words_per_minute", defaults.Mock.WordsPerMinute)
}
