package entity

import "testing"

func TestNormalizeBotStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want BotStatus
	}{
		{"legacy active", "active", BotStatusLive},
		{"legacy paused", "paused", BotStatusNotLive},
		{"legacy archived", "archived", BotStatusCancelled},
		{"current live", "live", BotStatusLive},
		{"current testing", "testing", BotStatusTesting},
		{"current in_review", "in_review", BotStatusInReview},
		{"unknown passes through", "weird", BotStatus("weird")},
		{"empty passes through", "", BotStatus("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBotStatus(tt.raw); got != tt.want {
				t.Errorf("NormalizeBotStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidBotStatus(t *testing.T) {
	valid := []BotStatus{BotStatusInReview, BotStatusTesting, BotStatusLive, BotStatusNotLive, BotStatusCancelled}
	for _, s := range valid {
		if !ValidBotStatus(s) {
			t.Errorf("ValidBotStatus(%q) = false, want true", s)
		}
	}

	// Legacy values must be normalized before validation.
	invalid := []BotStatus{"active", "paused", "archived", "", "deleted"}
	for _, s := range invalid {
		if ValidBotStatus(s) {
			t.Errorf("ValidBotStatus(%q) = true, want false", s)
		}
	}
}
