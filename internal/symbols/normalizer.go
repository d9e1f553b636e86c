// Package symbols maps free-text stock input to canonical NSE-suffixed
// tickers. Normalization is pure and total: it never fails, and for input it
// cannot place it returns the upper-cased trimmed input unchanged. Whether a
// symbol is actually valid is established downstream by a successful remote
// resolution or price fetch.
package symbols

import "strings"

// MarketSuffix is the domestic market suffix appended to known NSE tickers.
const MarketSuffix = ".NS"

// Normalize maps free-text or shorthand ticker input to a canonical symbol.
//
// Resolution order:
//  1. alias table hit on the loose form of the input (wins over everything)
//  2. input already carries a market-suffix delimiter — returned as-is
//  3. known NSE ticker — domestic suffix appended
//  4. otherwise the upper-cased input unchanged (assumed already canonical,
//     e.g. a foreign ticker)
//
// Normalize(Normalize(s)) == Normalize(s) for all s.
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if canonical, ok := aliases[looseKey(trimmed)]; ok {
		return canonical
	}

	upper := strings.ToUpper(trimmed)
	if strings.Contains(upper, ".") {
		return upper
	}

	if _, ok := nseTickers[upper]; ok {
		return upper + MarketSuffix
	}

	return upper
}

// DisplayName returns the human-readable company name for a canonical
// symbol, falling back to the bare ticker when the symbol is unknown.
func DisplayName(canonical string) string {
	if name, ok := displayNames[canonical]; ok {
		return name
	}
	base, _, _ := strings.Cut(canonical, ".")
	return base
}

// looseKey reduces input to the form the alias table is keyed by:
// upper-cased, '&' treated as a word break, every other non-alphanumeric
// replaced by a space, whitespace collapsed.
func looseKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToUpper(s) {
		switch {
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			// '&' and all other punctuation collapse to a single space
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}
