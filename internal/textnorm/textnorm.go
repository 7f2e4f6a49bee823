// Package textnorm produces the canonical matching form of user-visible text.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s and strips combining marks, so "Santé" and "sante"
// share a key. Lower-casing runs first because some upper-case letters lower
// into a base letter plus a combining mark.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	lowered := strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return result
}

// Terms splits a query on whitespace and normalizes each term. Blank input
// yields nil.
func Terms(query string) []string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return nil
	}
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if n := Normalize(f); n != "" {
			terms = append(terms, n)
		}
	}
	return terms
}
