package fields

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

const (
	UsernamePattern = `^[a-zA-Z0-9_]{4,20}$`
	EmailPattern    = `^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`

	UsernameMinLength = 4
	UsernameMaxLength = 20
	PasswordMinLength = 8
)

var (
	usernameRe = regexp.MustCompile(UsernamePattern)
	emailRe    = regexp.MustCompile(EmailPattern)
)

// Username reports whether value is 4-20 letters, digits or underscores.
func Username(value string) bool {
	return usernameRe.MatchString(value)
}

// Password reports whether value has at least eight characters, counted as
// UTF-16 code units the way browsers measure input length.
func Password(value string) bool {
	return utf16Len(value) >= PasswordMinLength
}

func utf16Len(value string) int {
	n := 0
	for _, r := range value {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// StrongPassword extends Password with the server-side rule requiring at
// least one letter and one digit.
func StrongPassword(value string) bool {
	if !Password(value) {
		return false
	}
	var letter, digit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// Email reports whether value looks like local@domain.tld without
// whitespace or repeated at-signs.
func Email(value string) bool {
	return emailRe.MatchString(value)
}

// Address reports whether value has any non-whitespace content.
func Address(value string) bool {
	return strings.TrimSpace(value) != ""
}
