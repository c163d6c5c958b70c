package speech

import "context"

// Engine is the interface speech-synthesis backends implement.
type Engine interface {
	// Synthesize converts text to raw audio using the given voice
	// settings. The returned payload is opaque to the caller; its format
	// is described by Info. Synthesize blocks until the audio is ready
	// or ctx is done.
	Synthesize(ctx context.Context, text string, settings VoiceSettings) ([]byte, error)

	// Info describes the engine and the audio it produces.
	Info() EngineInfo

	// Validate checks if the engine is properly configured and usable.
	Validate() error

	// Close releases resources held by the engine.
	Close() error
}

// EngineInfo describes engine capabilities and output format.
type EngineInfo struct {
	Name        string // Engine name (e.g., "elevenlabs", "mock")
	SampleRate  int    // Output sample rate in Hz
	Channels    int    // Number of audio channels
	BitDepth    int    // Bits per sample
	MaxTextSize int    // Maximum text length per request
	Online      bool   // Needs internet connection
}

// Player is the playback surface the CLI hands synthesized audio to.
type Player interface {
	// Play blocks until the PCM payload has finished playing.
	Play(pcm []byte) error

	// Close releases the audio device.
	Close() error
}
