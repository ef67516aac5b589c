package lexer

import "golang.org/x/text/unicode/norm"

const (
	highSurrogateStart = 0xD800
	highSurrogateEnd   = 0xDBFF
	lowSurrogateStart  = 0xDC00
	lowSurrogateEnd    = 0xDFFF
	maxScalar          = 0x10FFFF
)

func isHighSurrogate(r rune) bool {
	return r >= highSurrogateStart && r <= highSurrogateEnd
}

func isLowSurrogate(r rune) bool {
	return r >= lowSurrogateStart && r <= lowSurrogateEnd
}

// combineSurrogates assembles a supplementary-plane scalar from a
// UTF-16 surrogate pair, the same arithmetic golang.org/x/text's
// UTF-16 transformer uses when decoding a byte stream instead of two
// `\u` escapes.
func combineSurrogates(high, low rune) rune {
	return 0x10000 + (high-highSurrogateStart)<<10 + (low - lowSurrogateStart)
}

func isValidScalar(r rune) bool {
	if r < 0 || r > maxScalar {
		return false
	}
	if isHighSurrogate(r) || isLowSurrogate(r) {
		return false
	}
	return true
}

// normalizeUnicodeName applies NFC normalization to a `\N{NAME}` body
// before table lookup, matching the normalize-before-compare
// discipline of internal/interp/string_helpers.go. Unicode character
// names are ASCII in practice, so this is a no-op for the common case
// and only matters for dialects that allow non-ASCII aliases.
func normalizeUnicodeName(name string) string {
	return norm.NFC.String(name)
}
