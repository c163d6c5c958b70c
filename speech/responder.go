// Package speech turns assistant reply text into spoken audio. It wires the
// response classifier, the voice-settings selector, the audio response cache,
// and a synthesis engine into one pipeline.
package speech

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/kindkeeper/kindkeeper/internal/cache"
	"github.com/kindkeeper/kindkeeper/speech/classify"
)

// Reply is the outcome of speaking one response text.
type Reply struct {
	// Audio is the synthesized payload, either fresh or from cache.
	Audio []byte

	// Result is the classification that selected the voice settings.
	Result classify.Result

	// Settings are the synthesis parameters used.
	Settings VoiceSettings

	// CacheHit reports whether the audio came from the cache.
	CacheHit bool
}

// Responder is the text-to-speech request handler. It owns the process-wide
// audio cache instance and consults it before invoking the engine; cache
// misses synthesize and memoize. A Responder is safe for concurrent use as
// long as its engine is.
type Responder struct {
	engine Engine
	cache  *cache.Cache
	logger *log.Logger
}

// NewResponder creates a Responder around the given engine. A nil audioCache
// disables memoization entirely; the pipeline still works, it just pays for
// every synthesis call.
func NewResponder(engine Engine, audioCache *cache.Cache, logger *log.Logger) *Responder {
	if logger == nil {
		logger = log.Default()
	}
	return &Responder{
		engine: engine,
		cache:  audioCache,
		logger: logger,
	}
}

// Speak classifies text, selects voice settings, and returns the audio for
// it, reusing cached audio when the classification marks the text cacheable.
// Failed synthesis caches nothing and is reported as-is.
func (r *Responder) Speak(ctx context.Context, text string) (*Reply, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	result := classify.Classify(text)
	settings := SettingsFor(result.Kind)

	reply := &Reply{
		Result:   result,
		Settings: settings,
	}

	var key string
	if r.cache != nil && result.Cacheable {
		key = cache.Key(text, settings.Stability, settings.Similarity, settings.Style, settings.Rate)
		if audio, ok := r.cache.Get(key); ok {
			r.logger.Debug("audio cache hit", "key", key, "kind", result.Kind)
			reply.Audio = audio
			reply.CacheHit = true
			return reply, nil
		}
		r.logger.Debug("audio cache miss", "key", key, "kind", result.Kind)
	}

	audio, err := r.engine.Synthesize(ctx, text, settings)
	if err != nil {
		return nil, fmt.Errorf("synthesis failed: %w", err)
	}

	if key != "" {
		r.cache.Put(key, audio)
	}

	reply.Audio = audio
	return reply, nil
}

// CacheStats returns the audio cache counters, or a zero value when caching
// is disabled.
func (r *Responder) CacheStats() cache.Stats {
	if r.cache == nil {
		return cache.Stats{}
	}
	return r.cache.Stats()
}
