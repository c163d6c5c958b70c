// Package intent extracts structured meaning from transcribed utterances.
// Seniors speak amounts the way they say them aloud, so the parser handles
// spoken number words and Indian units alongside plain digits.
package intent

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the coarse category of an utterance.
type Kind int

const (
	KindUnknown Kind = iota
	KindTransaction
	KindReminder
	KindQuery
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTransaction:
		return "transaction"
	case KindReminder:
		return "reminder"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Result holds what was understood from an utterance.
type Result struct {
	Kind      Kind
	Amount    decimal.Decimal
	HasAmount bool
	Category  string
}

var (
	reminderPattern    = regexp.MustCompile(`(?i)remind|remember to|don't forget|do not forget`)
	queryPattern       = regexp.MustCompile(`(?i)^(how|what|when|where|did i|have i|do i|is there|show|tell me)\b`)
	transactionPattern = regexp.MustCompile(`(?i)\b(paid|gave|spent|received|got|bought|sent|transferred)\b`)

	// Digits, optionally with a currency marker and Indian comma grouping.
	digitAmountPattern = regexp.MustCompile(`(?i)(?:₹|\brs\.?\s*|\brupees?\s*)?([0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]+)?)`)
)

// Spoken number vocabulary. Units set the running value, multipliers scale
// it, so "two thousand five hundred" parses as 2500.
var numberWords = map[string]int64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var multiplierWords = map[string]int64{
	"hundred":  100,
	"thousand": 1000,
	"lakh":     100000,
	"lakhs":    100000,
}

// Household expense categories recognised by keyword.
var categoryKeywords = map[string]string{
	"maid":        "household help",
	"servant":     "household help",
	"milk":        "groceries",
	"milkman":     "groceries",
	"vegetable":   "groceries",
	"vegetables":  "groceries",
	"grocery":     "groceries",
	"groceries":   "groceries",
	"medicine":    "medical",
	"medicines":   "medical",
	"doctor":      "medical",
	"hospital":    "medical",
	"electricity": "utilities",
	"water":       "utilities",
	"gas":         "utilities",
	"phone":       "utilities",
	"rent":        "rent",
	"pension":     "income",
}

// Parse extracts the intent of a transcribed utterance. It never fails;
// an utterance the parser does not understand comes back as KindUnknown.
func Parse(text string) Result {
	result := Result{Kind: classifyKind(text)}

	if amount, ok := extractAmount(text); ok {
		result.Amount = amount
		result.HasAmount = true
	}
	result.Category = extractCategory(text)

	return result
}

func classifyKind(text string) Kind {
	switch {
	case reminderPattern.MatchString(text):
		return KindReminder
	case queryPattern.MatchString(strings.TrimSpace(text)) || strings.HasSuffix(strings.TrimSpace(text), "?"):
		return KindQuery
	case transactionPattern.MatchString(text):
		return KindTransaction
	default:
		return KindUnknown
	}
}

// extractAmount finds a monetary amount, preferring digits over words.
func extractAmount(text string) (decimal.Decimal, bool) {
	if m := digitAmountPattern.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err == nil {
			return amount, true
		}
	}
	return wordsToAmount(text)
}

// wordsToAmount parses spoken numbers like "two thousand five hundred".
func wordsToAmount(text string) (decimal.Decimal, bool) {
	var (
		total   int64
		current int64
		found   bool
	)

	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(field, ".,!?")

		if unit, ok := numberWords[word]; ok {
			current += unit
			found = true
			continue
		}
		if scale, ok := multiplierWords[word]; ok {
			if current == 0 {
				current = 1
			}
			total += current * scale
			current = 0
			found = true
		}
	}
	total += current

	if !found || total == 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(total), true
}

func extractCategory(text string) string {
	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(field, ".,!?")
		if category, ok := categoryKeywords[word]; ok {
			return category
		}
	}
	return ""
}
