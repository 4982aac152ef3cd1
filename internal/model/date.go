package model

import (
	"strings"
	"time"
)

const monthLayout = "2006-01"

// FormatMonth renders a stored YYYY-MM value as "Jan 2006". Empty or
// unparseable input yields "".
func FormatMonth(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	t, err := time.Parse(monthLayout, v)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// ValidMonth reports whether v is a well-formed YYYY-MM value.
func ValidMonth(v string) bool {
	_, err := time.Parse(monthLayout, strings.TrimSpace(v))
	return err == nil
}
