package speech

import "github.com/kindkeeper/kindkeeper/speech/classify"

// VoiceSettings are the numeric synthesis parameters that shape the exact
// audio output for a given text. They are part of the cache key: any change
// to any field invalidates reuse of previously synthesized audio.
type VoiceSettings struct {
	// Stability controls delivery steadiness (0.0 to 1.0). Higher values
	// sound calmer and more monotone.
	Stability float64 `yaml:"stability" env:"KINDKEEPER_VOICE_STABILITY"`

	// Similarity controls adherence to the reference voice (0.0 to 1.0).
	Similarity float64 `yaml:"similarity" env:"KINDKEEPER_VOICE_SIMILARITY"`

	// Style controls expressiveness (0.0 to 1.0).
	Style float64 `yaml:"style" env:"KINDKEEPER_VOICE_STYLE"`

	// Rate is the speech speed multiplier (1.0 = normal). Replies for
	// senior listeners are deliberately read a touch slower.
	Rate float64 `yaml:"rate" env:"KINDKEEPER_VOICE_RATE"`
}

// Per-kind presets. Errors are read calmly and slowly so they reassure
// rather than alarm; long financial summaries slow down too; questions get
// a brighter, more expressive delivery.
var kindSettings = map[classify.Kind]VoiceSettings{
	classify.KindSimple:  {Stability: 0.50, Similarity: 0.75, Style: 0.00, Rate: 1.00},
	classify.KindComplex: {Stability: 0.65, Similarity: 0.80, Style: 0.10, Rate: 0.92},
	classify.KindQuery:   {Stability: 0.45, Similarity: 0.75, Style: 0.30, Rate: 1.00},
	classify.KindError:   {Stability: 0.80, Similarity: 0.85, Style: 0.00, Rate: 0.90},
}

// SettingsFor maps a response kind to its synthesis parameters. The mapping
// is pure and total: unknown kinds fall back to the simple preset.
func SettingsFor(kind classify.Kind) VoiceSettings {
	if s, ok := kindSettings[kind]; ok {
		return s
	}
	return kindSettings[classify.KindSimple]
}
