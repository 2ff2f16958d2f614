package mapper

import "time"

// updatedAtPtr converts GORM's zero-valued autoUpdateTime into a nullable
// entity field.
func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	out := t
	return &out
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
