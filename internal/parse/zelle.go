package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Body contains "HARPER NADLMAN sent you $500.00" inside the top heading.
var zelleBodyRe = regexp.MustCompile(`(?i)>\s*([A-Za-z][A-Za-z .'-]+?)\s+sent you \$([0-9,.]+)\s*</h1>`)

var zelleMemoRe = regexp.MustCompile(`(?i)Memo:\s*<strong>([^<]*)</strong>`)

// ZelleFieldsFromBody matches the "<NAME> sent you $<amount>" heading. The
// source renders names in all caps, so the name is title-cased here.
func ZelleFieldsFromBody(body string) (Fields, bool) {
	m := zelleBodyRe.FindStringSubmatch(body)
	if m == nil {
		return Fields{}, false
	}
	amount, ok := parseAmount(m[2])
	if !ok {
		return Fields{}, false
	}
	return Fields{Name: titleCase(strings.TrimSpace(m[1])), Amount: amount}, true
}

// ZelleMemo pulls the donor memo out of the "Memo: <strong>...</strong>"
// label. Returns "" when absent.
func ZelleMemo(body string) string {
	m := zelleMemoRe.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// parseAmount converts "1,234.56" to a float. A pattern match with an
// unparseable number is treated as no-match rather than emitting a bogus
// amount.
func parseAmount(raw string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
