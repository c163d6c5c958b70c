// Package audio plays raw PCM responses through the system's audio device.
package audio
