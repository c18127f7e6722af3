package words

import "testing"

func TestSignature(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{"cat", "act"},
		{"act", "act"},
		{"Tea", "aet"},
		{"eat", "aet"},
		{"letter", "eelrtt"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Signature(tt.literal); got != tt.want {
			t.Errorf("Signature(%q) = %q, want %q", tt.literal, got, tt.want)
		}
	}
}

func TestLength_CountsRunes(t *testing.T) {
	if got := Length("café"); got != 4 {
		t.Errorf("Length(café) = %d, want 4", got)
	}
	if got := Length("at"); got != 2 {
		t.Errorf("Length(at) = %d, want 2", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Apple\t"); got != "apple" {
		t.Errorf("Normalize() = %q, want %q", got, "apple")
	}
}

func TestFilterAccept(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		raw    string
		want   string
		ok     bool
	}{
		{"plain word", Filter{}, "cat", "cat", true},
		{"trims and lowercases", Filter{}, "  Cat \n", "cat", true},
		{"blank line", Filter{}, "   ", "", false},
		{"strict rejects proper noun", Filter{Strict: true}, "Paris", "", false},
		{"strict rejects apostrophe", Filter{Strict: true}, "don't", "", false},
		{"strict rejects digits", Filter{Strict: true}, "b2b", "", false},
		{"lenient keeps apostrophe", Filter{}, "don't", "don't", true},
		{"too short", Filter{MinLetters: 3}, "at", "", false},
		{"too long", Filter{MaxLetters: 4}, "tables", "", false},
		{"max zero is unbounded", Filter{MaxLetters: 0}, "extraordinary", "extraordinary", true},
		{"at bounds", Filter{MinLetters: 3, MaxLetters: 3}, "cat", "cat", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.filter.Accept(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Accept(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Accept(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
