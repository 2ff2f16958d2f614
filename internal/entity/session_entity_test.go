package entity

import "testing"

func TestValidSessionStatus(t *testing.T) {
	valid := []SessionStatus{SessionStatusLive, SessionStatusCompleted, SessionStatusReviewed}
	for _, s := range valid {
		if !ValidSessionStatus(s) {
			t.Errorf("ValidSessionStatus(%q) = false, want true", s)
		}
	}

	invalid := []SessionStatus{"", "archived", "paused"}
	for _, s := range invalid {
		if ValidSessionStatus(s) {
			t.Errorf("ValidSessionStatus(%q) = true, want false", s)
		}
	}
}
