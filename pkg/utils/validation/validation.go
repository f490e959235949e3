package validation

import (
	"html"
	"net/mail"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9\s()+-]+$`)

// SanitizeText trims surrounding whitespace and escapes characters with
// special meaning in HTML. Unescaping first keeps the function idempotent:
// sanitizing already-sanitized text returns it unchanged.
func SanitizeText(input string) string {
	return html.EscapeString(html.UnescapeString(strings.TrimSpace(input)))
}

// IsValidEmail reports whether s is a plain address of the form
// local-part@domain with at least one dot in the domain and no whitespace.
// Display-name forms ("Jo <jo@x.co>") are rejected.
func IsValidEmail(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	domain := s[strings.LastIndex(s, "@")+1:]
	return strings.Contains(domain, ".")
}

// IsValidPhone accepts digits, spaces, "-", "+", "(" and ")" with a minimum
// length of 10. Deliberately loose: it admits plenty of non-dialable strings,
// which is accepted behaviour for this form traffic rather than a gap to
// tighten.
func IsValidPhone(s string) bool {
	return len(s) >= 10 && phonePattern.MatchString(s)
}
