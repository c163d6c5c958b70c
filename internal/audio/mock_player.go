package audio

import (
	"sync"

	"github.com/kindkeeper/kindkeeper/speech"
)

// MockPlayer records what would have been played. It exists so callers can
// be tested without an audio device.
type MockPlayer struct {
	mu         sync.Mutex
	played     [][]byte
	shouldFail error
	closed     bool
}

// NewMockPlayer creates a recording player.
func NewMockPlayer() *MockPlayer {
	return &MockPlayer{}
}

// Play records the payload without touching any device.
func (m *MockPlayer) Play(pcm []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrPlayerClosed
	}
	if m.shouldFail != nil {
		return m.shouldFail
	}
	if len(pcm) == 0 {
		return ErrEmptyAudio
	}

	data := make([]byte, len(pcm))
	copy(data, pcm)
	m.played = append(m.played, data)
	return nil
}

// Close marks the player closed.
func (m *MockPlayer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetFailure makes subsequent Play calls fail with err.
func (m *MockPlayer) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = err
}

// PlayCount returns how many payloads were played.
func (m *MockPlayer) PlayCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.played)
}

// LastPlayed returns the most recent payload, or nil.
func (m *MockPlayer) LastPlayed() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.played) == 0 {
		return nil
	}
	return m.played[len(m.played)-1]
}

// Ensure MockPlayer implements the speech.Player interface
var _ speech.Player = (*MockPlayer)(nil)

