package audio

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/kindkeeper/kindkeeper/speech"
)

// Playback errors.
var (
	ErrEmptyAudio   = errors.New("audio data is empty")
	ErrPlayerClosed = errors.New("player is closed")
)

// pollInterval is how often Play checks whether the device has drained.
const pollInterval = 10 * time.Millisecond

// Config describes the PCM format the player accepts. It normally comes
// straight from the engine's Info so the two always agree.
type Config struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Volume     float64
}

// DefaultConfig returns a playback configuration for 16-bit mono speech.
func DefaultConfig() Config {
	return Config{
		SampleRate: 22050,
		Channels:   1,
		BitDepth:   16,
		Volume:     1.0,
	}
}

// Validate checks the configuration against what the audio backend supports.
func (c Config) Validate() error {
	if c.SampleRate < 8000 || c.SampleRate > 48000 {
		return fmt.Errorf("sample rate must be between 8000 and 48000 Hz, got %d", c.SampleRate)
	}
	if c.Channels != 1 && c.Channels != 2 {
		return fmt.Errorf("channels must be 1 (mono) or 2 (stereo), got %d", c.Channels)
	}
	if c.BitDepth != 16 {
		return fmt.Errorf("bit depth must be 16, got %d", c.BitDepth)
	}
	if c.Volume < 0.0 || c.Volume > 2.0 {
		return fmt.Errorf("volume must be between 0.0 and 2.0, got %f", c.Volume)
	}
	return nil
}

// Player plays PCM audio through the system device. Play blocks until the
// sample has drained, which keeps responses from talking over each other.
type Player struct {
	context *oto.Context
	cfg     Config

	mu     sync.Mutex
	closed bool
}

// NewPlayer opens the system audio device for the given PCM format.
func NewPlayer(cfg Config) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid player config: %w", err)
	}

	op := &oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	return &Player{context: ctx, cfg: cfg}, nil
}

// Play writes pcm to the device and blocks until playback finishes.
// The data is copied first so the caller may reuse its buffer; the copy
// stays referenced for the whole playback to keep it from being collected
// out from under the device.
func (p *Player) Play(pcm []byte) error {
	if len(pcm) == 0 {
		return ErrEmptyAudio
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPlayerClosed
	}

	data := make([]byte, len(pcm))
	copy(data, pcm)

	player := p.context.NewPlayer(bytes.NewReader(data))
	player.SetVolume(p.cfg.Volume)
	player.Play()

	for player.IsPlaying() {
		time.Sleep(pollInterval)
	}

	err := player.Close()
	// Keep data alive until the device is done with it.
	_ = data
	if err != nil {
		return fmt.Errorf("failed to close device player: %w", err)
	}
	return nil
}

// Duration reports how long pcm will take to play at the configured format.
func (p *Player) Duration(pcm []byte) time.Duration {
	bytesPerSample := p.cfg.BitDepth / 8
	samples := len(pcm) / (p.cfg.Channels * bytesPerSample)
	return time.Duration(samples) * time.Second / time.Duration(p.cfg.SampleRate)
}

// Close releases the audio device. Later Play calls fail fast.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	// oto v3 contexts have no Close; dropping the reference is all we can do.
	p.context = nil
	return nil
}

// Ensure Player implements the speech.Player interface
var _ speech.Player = (*Player)(nil)

