// Package elevenlabs implements the speech.Engine interface against the
// hosted ElevenLabs synthesis API. Audio is requested as raw PCM so it can
// be played back directly without transcoding.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/kindkeeper/kindkeeper/speech"
)

// maxTextSize is the request text limit enforced before calling out.
const maxTextSize = 5000

// errorBodyLimit caps how much of an error response is quoted back.
const errorBodyLimit = 512

// Engine is an HTTP client for the hosted synthesis API.
type Engine struct {
	cfg    speech.ElevenLabsConfig
	client *http.Client

	// Rate limiting to stay inside the subscription quota
	limiter *rate.Limiter

	mu     sync.RWMutex
	closed bool
}

// New creates a hosted synthesis engine from configuration.
func New(cfg speech.ElevenLabsConfig) (*Engine, error) {
	if cfg.APIKey == "" {
		return nil, speech.ErrMissingAPIKey
	}
	if cfg.VoiceID == "" {
		return nil, speech.ErrInvalidVoiceID
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Engine{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
	}, nil
}

// synthesisRequest is the request payload for the text-to-speech endpoint.
type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id,omitempty"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// voiceSettings mirrors the provider's voice_settings object.
type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	Speed           float64 `json:"speed"`
}

// Synthesize converts text to PCM audio via the hosted API.
func (e *Engine) Synthesize(ctx context.Context, text string, settings speech.VoiceSettings) ([]byte, error) {
	e.mu.RLock()
	closed := e.closed
	e.mu.RUnlock()
	if closed {
		return nil, speech.ErrEngineClosed
	}

	if text == "" {
		return nil, speech.ErrEmptyText
	}
	if len(text) > maxTextSize {
		return nil, fmt.Errorf("%w: %d characters (max %d)", speech.ErrTextTooLong, len(text), maxTextSize)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	body, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: e.cfg.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       settings.Stability,
			SimilarityBoost: settings.Similarity,
			Style:           settings.Style,
			Speed:           settings.Rate,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode synthesis request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=pcm_%d",
		e.cfg.BaseURL, e.cfg.VoiceID, e.cfg.SampleRate)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("xi-api-key", e.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("synthesis API returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesis response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("synthesis API returned no audio")
	}

	return audio, nil
}

// Info describes the engine and its PCM output.
func (e *Engine) Info() speech.EngineInfo {
	return speech.EngineInfo{
		Name:        "elevenlabs",
		SampleRate:  e.cfg.SampleRate,
		Channels:    1,
		BitDepth:    16,
		MaxTextSize: maxTextSize,
		Online:      true,
	}
}

// Validate checks that the engine is configured well enough to make calls.
// It does not perform a test synthesis; quota is too precious to burn on
// startup.
func (e *Engine) Validate() error {
	if e.cfg.APIKey == "" {
		return speech.ErrMissingAPIKey
	}
	if e.cfg.VoiceID == "" {
		return speech.ErrInvalidVoiceID
	}
	if e.cfg.BaseURL == "" {
		return fmt.Errorf("%w: base URL missing", speech.ErrInvalidConfig)
	}
	return nil
}

// Close marks the engine closed; later Synthesize calls fail fast.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// Ensure Engine implements the speech.Engine interface
var _ speech.Engine = (*Engine)(nil)
