package ai

import (
	"regexp"
	"strings"
)

const (
	emailMask = "[EMAIL]"
	phoneMask = "[PHONE]"
	fieldMask = "[MASKED]"
	nameMask  = "Employee"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`\b\d{10,}\b`)

	maskedKeys = map[string]struct{}{
		"email":         {},
		"phone":         {},
		"password":      {},
		"password_hash": {},
	}
)

// MaskText replaces email addresses and long digit runs.
func MaskText(s string) string {
	s = emailPattern.ReplaceAllString(s, emailMask)
	return phonePattern.ReplaceAllString(s, phoneMask)
}

// MaskValue walks maps and slices and masks personal data in place of a copy.
// Keys are matched case-insensitively except "name", which must match exactly.
func MaskValue(v any) any {
	switch t := v.(type) {
	case string:
		return MaskText(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if _, ok := maskedKeys[strings.ToLower(k)]; ok {
				out[k] = fieldMask
				continue
			}
			if k == "name" {
				out[k] = nameMask
				continue
			}
			out[k] = MaskValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = MaskValue(val)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = MaskValue(val)
		}
		return out
	default:
		return v
	}
}
