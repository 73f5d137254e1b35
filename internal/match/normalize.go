package match

import (
	"strings"
	"unicode"
)

// qualifiers are trailing wire-key words that carry a unit or a role rather
// than the property's meaning: "customer_id", "ordered_at", "total_cents".
var qualifiers = map[string]bool{
	"id":        true,
	"ids":       true,
	"at":        true,
	"utc":       true,
	"timestamp": true,
	"cents":     true,
	"kg":        true,
	"pct":       true,
}

// Tokens splits a Go identifier or wire key into lower-case words.
// Separators are '_', '-', '.' and spaces; case changes start a new word and
// an acronym ends before the next capitalised word:
//   - "OrderID" -> ["order", "id"]
//   - "postal_code" -> ["postal", "code"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "customer.full_name" -> ["customer", "full", "name"]
func Tokens(s string) []string {
	var (
		tokens []string
		word   []rune
	)

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && wordBoundary(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return tokens
}

// NormalizeIdent folds an identifier or wire key to its joined lower-case words,
// so "PostalCode", "postal_code" and "postal-code" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(Tokens(s), "")
}

// StripQualifier normalizes s and drops a trailing qualifier word such as
// "id" or "cents". A key made of the qualifier alone is kept.
func StripQualifier(s string) string {
	tokens := Tokens(s)
	if n := len(tokens); n > 1 && qualifiers[tokens[n-1]] {
		tokens = tokens[:n-1]
	}

	return strings.Join(tokens, "")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

func wordBoundary(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": lower to upper.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": the last capital of an acronym starts the next word.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
