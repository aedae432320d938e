// Package validation contains the input rules for registration, login and
// note authoring. All functions are pure: deterministic, no state, no I/O.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Symbols accepted (and required, at least one) in passwords.
const passwordSymbols = "@$!%*?&"

var (
	emailLocalRegexp  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+$`)
	emailDomainRegexp = regexp.MustCompile(`^[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	nonDigitRegexp    = regexp.MustCompile(`[^0-9]`)
)

// Email reports whether s is a well-formed address: a 4-25 character local
// part of letters, digits or +_.-, an @, and a 4-25 character domain ending
// in a dot followed by a TLD of at least two letters.
func Email(s string) bool {
	at := strings.IndexByte(s, '@')
	if at < 0 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) < 4 || len(local) > 25 {
		return false
	}
	if len(domain) < 4 || len(domain) > 25 {
		return false
	}
	return emailLocalRegexp.MatchString(local) && emailDomainRegexp.MatchString(domain)
}

// Mobile strips every non-digit character from s and reports whether what
// remains is exactly ten digits starting with 6, 7, 8 or 9.
func Mobile(s string) bool {
	digits := nonDigitRegexp.ReplaceAllString(s, "")
	if len(digits) != 10 {
		return false
	}
	return digits[0] >= '6' && digits[0] <= '9'
}

// NormalizeMobile strips every non-digit character from s. Stored mobile
// numbers and lookups both go through this, so exact-match works regardless
// of the formatting the user typed.
func NormalizeMobile(s string) string {
	return nonDigitRegexp.ReplaceAllString(s, "")
}

// Password reports whether s satisfies the account password policy:
// 8-15 characters drawn only from letters, digits and passwordSymbols,
// with at least one lowercase letter, two uppercase letters, two digits and
// one symbol. The password must not contain ownerName, compared
// case-insensitively; an empty ownerName imposes no such constraint.
func Password(s, ownerName string) bool {
	if n := utf8.RuneCountInString(s); n < 8 || n > 15 {
		return false
	}

	var lower, upper, digit, symbol int
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower++
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= '0' && r <= '9':
			digit++
		case strings.ContainsRune(passwordSymbols, r):
			symbol++
		default:
			return false
		}
	}
	if lower < 1 || upper < 2 || digit < 2 || symbol < 1 {
		return false
	}

	if ownerName != "" &&
		strings.Contains(strings.ToLower(s), strings.ToLower(ownerName)) {
		return false
	}
	return true
}

// NoteTitle reports whether s is 5-100 characters long (rune count).
func NoteTitle(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 5 && n <= 100
}

// NoteDescription reports whether s is 100-1000 characters long (rune count).
func NoteDescription(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 100 && n <= 1000
}
