// Package mock provides a deterministic speech engine for testing.
package mock

import (
	"context"
	"crypto/sha256"
	"strings"
	"sync"
	"time"

	"github.com/kindkeeper/kindkeeper/speech"
)

const sampleRate = 22050

// Engine implements the speech engine interface for testing. Payloads are
// derived deterministically from the input so tests can assert on reuse.
type Engine struct {
	// Configuration
	delay          time.Duration
	wordsPerMinute int

	// Control for testing
	mu           sync.Mutex
	shouldFail   bool
	failureError error
	callCount    int
}

// New creates a mock engine from configuration.
func New(cfg speech.MockConfig) *Engine {
	wpm := cfg.WordsPerMinute
	if wpm <= 0 {
		wpm = 150
	}
	return &Engine{
		delay:          cfg.GenerationDelay,
		wordsPerMinute: wpm,
	}
}

// Synthesize produces deterministic PCM-shaped bytes for text. The payload
// length tracks the estimated speaking duration and its content is seeded
// from the text and settings, so different inputs yield different audio.
func (e *Engine) Synthesize(ctx context.Context, text string, settings speech.VoiceSettings) ([]byte, error) {
	e.mu.Lock()
	e.callCount++
	shouldFail, failureErr := e.shouldFail, e.failureError
	delay := e.delay
	e.mu.Unlock()

	if shouldFail {
		return nil, failureErr
	}
	if text == "" {
		return nil, speech.ErrEmptyText
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	duration := e.estimateDuration(text, settings.Rate)
	samples := int(duration.Seconds() * float64(sampleRate))
	if samples < sampleRate/10 {
		samples = sampleRate / 10 // at least 100ms of audio
	}

	seed := sha256.Sum256([]byte(text))
	audio := make([]byte, samples*2) // 16-bit mono
	for i := range audio {
		audio[i] = seed[i%len(seed)]
	}

	return audio, nil
}

// estimateDuration estimates speaking time from word count and rate.
func (e *Engine) estimateDuration(text string, rate float64) time.Duration {
	words := len(strings.Fields(text))
	if words == 0 {
		words = 1
	}
	if rate <= 0 {
		rate = 1.0
	}
	perWord := time.Minute / time.Duration(float64(e.wordsPerMinute)*rate)
	return time.Duration(words) * perWord
}

// Info describes the mock engine.
func (e *Engine) Info() speech.EngineInfo {
	return speech.EngineInfo{
		Name:        "mock",
		SampleRate:  sampleRate,
		Channels:    1,
		BitDepth:    16,
		MaxTextSize: 5000,
		Online:      false,
	}
}

// Validate always succeeds; the mock engine has no external requirements.
func (e *Engine) Validate() error {
	return nil
}

// Close is a no-op.
func (e *Engine) Close() error {
	return nil
}

// SetFailure makes subsequent Synthesize calls fail with err.
func (e *Engine) SetFailure(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shouldFail = err != nil
	e.failureError = err
}

// CallCount returns how many times Synthesize has been called.
func (e *Engine) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.callCount
}

// Ensure Engine implements the speech.Engine interface
var _ speech.Engine = (*Engine)(nil)
