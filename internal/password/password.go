// Package password implements the local password policy checked before any
// registration attempt reaches the identity provider.
package password

import (
	"strings"
	"unicode/utf8"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

const minLength = 8

// Requirements reports the outcome of each individual policy predicate.
type Requirements struct {
	HasLowerCase   bool `json:"hasLowerCase"`
	HasUpperCase   bool `json:"hasUpperCase"`
	HasNumber      bool `json:"hasNumber"`
	HasSpecialChar bool `json:"hasSpecialChar"`
	HasMinLength   bool `json:"hasMinLength"`
}

// Result bundles the overall verdict with the per-predicate breakdown.
type Result struct {
	Valid        bool         `json:"isValid"`
	Requirements Requirements `json:"requirements"`
}

// Validate evaluates the candidate against the fixed policy. An empty
// candidate fails every predicate.
func Validate(candidate string) Result {
	if candidate == "" {
		return Result{}
	}

	req := Requirements{
		HasMinLength: utf8.RuneCountInString(candidate) >= minLength,
	}
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			req.HasLowerCase = true
		case r >= 'A' && r <= 'Z':
			req.HasUpperCase = true
		case r >= '0' && r <= '9':
			req.HasNumber = true
		case strings.ContainsRune(specialChars, r):
			req.HasSpecialChar = true
		}
	}

	valid := req.HasLowerCase && req.HasUpperCase && req.HasNumber &&
		req.HasSpecialChar && req.HasMinLength

	return Result{Valid: valid, Requirements: req}
}
