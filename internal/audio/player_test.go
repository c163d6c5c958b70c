package audio

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"stereo", func(c *Config) { c.Channels = 2 }, false},
		{"sample rate too low", func(c *Config) { c.SampleRate = 4000 }, true},
		{"sample rate too high", func(c *Config) { c.SampleRate = 96000 }, true},
		{"bad channels", func(c *Config) { c.Channels = 3 }, true},
		{"bad bit depth", func(c *Config) { c.BitDepth = 8 }, true},
		{"volume too high", func(c *Config) { c.Volume = 2.5 }, true},
		{"volume negative", func(c *Config) { c.Volume = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayerDuration(t *testing.T) {
	p := &Player{cfg: DefaultConfig()}

	// One second of 16-bit mono at 22050 Hz.
	pcm := make([]byte, 22050*2)
	if got := p.Duration(pcm); got != time.Second {
		t.Errorf("Duration() = %v, want %v", got, time.Second)
	}

	if got := p.Duration(nil); got != 0 {
		t.Errorf("Duration(nil) = %v, want 0", got)
	}
}

func TestMockPlayerRecordsPlayback(t *testing.T) {
	m := NewMockPlayer()

	if err := m.Play([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if err := m.Play([]byte{4, 5}); err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if got := m.PlayCount(); got != 2 {
		t.Errorf("PlayCount() = %d, want 2", got)
	}
	if got := m.LastPlayed(); len(got) != 2 || got[0] != 4 {
		t.Errorf("LastPlayed() = %v, want [4 5]", got)
	}
}

func TestMockPlayerEmptyAudio(t *testing.T) {
	m := NewMockPlayer()
	if err := m.Play(nil); !errors.Is(err, ErrEmptyAudio) {
		t.Errorf("error = %v, want %v", err, ErrEmptyAudio)
	}
}

func TestMockPlayerFailure(t *testing.T) {
	m := NewMockPlayer()
	wantErr := errors.New("device unavailable")
	m.SetFailure(wantErr)

	if err := m.Play([]byte{1}); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
	if got := m.PlayCount(); got != 0 {
		t.Errorf("failed play was recorded: count = %d", got)
	}
}

func TestMockPlayerAfterClose(t *testing.T) {
	m := NewMockPlayer()
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := m.Play([]byte{1}); !errors.Is(err, ErrPlayerClosed) {
		t.Errorf("error = %v, want %v", err, ErrPlayerClosed)
	}
}
