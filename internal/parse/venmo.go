package parse

import (
	"regexp"
	"strings"
)

// Subject format: "cj v paid you $19.00"
var venmoSubjectRe = regexp.MustCompile(`(?i)^(.+?)\s+paid you \$([0-9,.]+)$`)

// The donor note sits in a <p> (or <div>) carrying a transaction-note class.
var venmoNoteRe = regexp.MustCompile(`(?is)class="transaction-note[^"]*"[^>]*>(.*?)</p>`)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// VenmoFieldsFromSubject matches the fixed "<name> paid you $<amount>"
// subject shape. Anything else is not a Venmo donation; group payments and
// summary emails deliberately fall through as no-match.
func VenmoFieldsFromSubject(subject string) (Fields, bool) {
	m := venmoSubjectRe.FindStringSubmatch(subject)
	if m == nil {
		return Fields{}, false
	}
	amount, ok := parseAmount(m[2])
	if !ok {
		return Fields{}, false
	}
	return Fields{Name: strings.TrimSpace(m[1]), Amount: amount}, true
}

// VenmoNote pulls the donor note out of the HTML body. Returns "" when the
// email has no transaction-note element.
func VenmoNote(body string) string {
	m := venmoNoteRe.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(m[1], ""))
}
