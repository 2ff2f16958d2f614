package token

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"share token length", ShareTokenLength},
		{"session token length", SessionTokenLength},
		{"single char", 1},
		{"long", 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.n)
			if err != nil {
				t.Fatalf("Generate(%d) error: %v", tt.n, err)
			}
			if len(got) != tt.n {
				t.Errorf("len = %d, want %d", len(got), tt.n)
			}
		})
	}
}

func TestGenerateAlphabet(t *testing.T) {
	got, err := Generate(256)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range got {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("character %q not in alphabet", c)
		}
	}
}

func TestGenerateRejectsNonPositive(t *testing.T) {
	if _, err := Generate(0); err == nil {
		t.Error("expected error for n=0")
	}
	if _, err := Generate(-5); err == nil {
		t.Error("expected error for negative n")
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewSessionToken()
		if err != nil {
			t.Fatal(err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token after %d draws: %s", i, tok)
		}
		seen[tok] = true
	}
}
