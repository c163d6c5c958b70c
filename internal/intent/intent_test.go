package intent

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"I gave the maid two thousand yesterday", KindTransaction},
		{"Paid 500 rupees for milk", KindTransaction},
		{"Received my pension today", KindTransaction},
		{"Remind me about the electricity bill", KindReminder},
		{"Please remember to pay the rent", KindReminder},
		{"Don't forget the doctor appointment", KindReminder},
		{"How much did I spend this month", KindQuery},
		{"What is my balance?", KindQuery},
		{"Did I pay the milkman?", KindQuery},
		{"Good morning", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Parse(tt.text).Kind; got != tt.want {
				t.Errorf("Parse(%q).Kind = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_Amounts(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I gave the maid two thousand yesterday", "2000"},
		{"Paid five hundred for vegetables", "500"},
		{"Spent two thousand five hundred on medicines", "2500"},
		{"Received one lakh from the fixed deposit", "100000"},
		{"Paid ₹500 for milk", "500"},
		{"Gave Rs. 1,200 to the electrician", "1200"},
		{"Rent is 12,500 this month", "12500"},
		{"Paid 99.50 for the auto", "99.5"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result := Parse(tt.text)
			if !result.HasAmount {
				t.Fatalf("Parse(%q) found no amount", tt.text)
			}
			want := decimal.RequireFromString(tt.want)
			if !result.Amount.Equal(want) {
				t.Errorf("Parse(%q).Amount = %s, want %s", tt.text, result.Amount, want)
			}
		})
	}
}

func TestParse_NoAmount(t *testing.T) {
	result := Parse("Remind me about the electricity bill")
	if result.HasAmount {
		t.Errorf("unexpected amount %s", result.Amount)
	}
}

func TestParse_Categories(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I gave the maid two thousand yesterday", "household help"},
		{"Paid 500 for milk", "groceries"},
		{"Bought medicines for 300", "medical"},
		{"Remind me about the electricity bill", "utilities"},
		{"Paid the rent today", "rent"},
		{"Received my pension", "income"},
		{"Gave 200 to my grandson", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Parse(tt.text).Category; got != tt.want {
				t.Errorf("Parse(%q).Category = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTransaction, "transaction"},
		{KindReminder, "reminder"},
		{KindQuery, "query"},
		{KindUnknown, "unknown"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
