package trip

import "time"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
