// Package classify assigns a response category, an emotional tone, and a
// cache-worthiness flag to assistant reply text. Classification is pure
// pattern matching over fixed vocabularies: no external calls, deterministic,
// and it never fails — unmatched input falls through to the defaults.
package classify

import (
	"regexp"
	"strings"
)

// Kind is the response category. Categories are mutually exclusive and
// resolved in priority order: error > query > complex > simple.
type Kind int

const (
	// KindSimple is the default category for short, plain responses.
	KindSimple Kind = iota

	// KindComplex marks responses with financial or reminder content, or
	// long responses that benefit from slower, steadier delivery.
	KindComplex

	// KindQuery marks responses that ask the user something.
	KindQuery

	// KindError marks apologies, failures, and retry prompts.
	KindError
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindComplex:
		return "complex"
	case KindQuery:
		return "query"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Emotion is the tone the voice reply should carry.
type Emotion int

const (
	// EmotionNeutral is the default tone.
	EmotionNeutral Emotion = iota

	// EmotionConcerned is used for error responses.
	EmotionConcerned

	// EmotionFriendly is used for gratitude and confirmations.
	EmotionFriendly
)

// String returns the string representation of the emotion.
func (e Emotion) String() string {
	switch e {
	case EmotionNeutral:
		return "neutral"
	case EmotionConcerned:
		return "concerned"
	case EmotionFriendly:
		return "friendly"
	default:
		return "unknown"
	}
}

// Result is the complete classification of a single response text. It is
// computed fresh per input and carries no state.
type Result struct {
	Kind      Kind
	Emotion   Emotion
	Cacheable bool
}

// Thresholds above which a response counts as complex regardless of
// vocabulary.
const (
	complexCharThreshold = 100
	complexWordThreshold = 20
)

// Vocabulary patterns. All matching is case-insensitive substring matching;
// no stemming or locale-aware folding beyond case folding.
var (
	errorPattern = regexp.MustCompile(
		`(?i)sorry|apolog|couldn't|could not|didn't understand|did not understand|unable to|failed|went wrong|try again|please repeat`)

	questionLeadPattern = regexp.MustCompile(
		`(?i)could you|would you|can you|should i`)

	financialPattern = regexp.MustCompile(
		`(?i)₹|rupee|\brs\b|paid|gave|received|spent|amount|balance|hundred|thousand|lakh`)

	reminderPattern = regexp.MustCompile(
		`(?i)remind|remember|don't forget|do not forget|upcoming|schedule`)

	gratitudePattern = regexp.MustCompile(
		`(?i)thank|thanks|great|excellent`)

	confirmationPattern = regexp.MustCompile(
		`(?i)got it|understood|i'll|i will|sure`)
)

// Classify maps response text to a Result. It always succeeds; empty or
// unrecognized input yields the defaults (simple, neutral, not cacheable).
func Classify(text string) Result {
	isError := errorPattern.MatchString(text)
	isQuestion := strings.Contains(text, "?") || questionLeadPattern.MatchString(text)
	isFinancial := financialPattern.MatchString(text)
	isReminder := reminderPattern.MatchString(text)
	isLong := len(text) > complexCharThreshold || len(strings.Fields(text)) > complexWordThreshold

	kind := KindSimple
	switch {
	case isError:
		kind = KindError
	case isQuestion:
		kind = KindQuery
	case isFinancial || isReminder || isLong:
		kind = KindComplex
	}

	emotion := EmotionNeutral
	switch {
	case isError:
		emotion = EmotionConcerned
	case gratitudePattern.MatchString(text) || confirmationPattern.MatchString(text):
		emotion = EmotionFriendly
	}

	// Cacheable is keyed on content, not strictly on kind: a query that
	// mentions money or a reminder is still worth memoizing.
	cacheable := kind == KindComplex || isFinancial || isReminder

	return Result{
		Kind:      kind,
		Emotion:   emotion,
		Cacheable: cacheable,
	}
}
