package editor

import "strings"

// Text fields are stored exactly as typed. Escaping happens on output in
// html/template, so "Map<K, V>" or "a<b" survive the round trip.

// sanitizePhone keeps digits and dashes only.
func sanitizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseItems splits comma separated skills, trimming each item and dropping
// empty segments.
func ParseItems(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
