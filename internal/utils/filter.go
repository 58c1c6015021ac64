package utils

import (
	"errors"
	"strings"
)

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrInputTooLong  = errors.New("input too long")
	ErrNotSearchable = errors.New("input has no letters or digits")
)

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// HasSearchableChars reports whether s contains at least one byte the
// tokenizer keeps.
func HasSearchableChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if IsAlnum(s[i]) {
			return true
		}
	}
	return false
}

// CheckInput validates a query, prefix or word before it reaches the engine.
// maxLen <= 0 disables the length check.
func CheckInput(s string, maxLen int) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmptyInput
	}
	if maxLen > 0 && len(s) > maxLen {
		return ErrInputTooLong
	}
	if !HasSearchableChars(s) {
		return ErrNotSearchable
	}
	return nil
}

// IsRepetitive checks if a string is one character repeated 3+ times
// (e.g. "aaa"). Such words are not worth spelling suggestions.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}
