package tint

import (
	"strconv"
	"strings"
)

// tokenMatcher recognizes one shape of the color token grammar. The
// matchers are tried in a fixed priority order, both when scanning an
// expression for token substrings and when dispatching a single token to
// its sub-parser.
type tokenMatcher struct {
	name string

	// scan reports the length of a token of this shape at the start of s,
	// or 0 when the shape is not present. Call-shaped tokens match their
	// whole balanced-paren span so nested calls are captured as one token
	// rather than split on internal commas.
	scan func(s string) int

	// owns reports whether a complete token should be parsed by this
	// matcher even if it turns out to be malformed. This separates "not
	// this token type" from "this token type but invalid".
	owns func(tok string) bool

	// parse converts a full token of this shape into a color, returning
	// the shape-specific error kind on malformed input.
	parse func(tok string, active bool) (RGBA, error)
}

// tokenMatchers is the grammar's priority order. Bare identifiers come
// last so call syntax and literals are never misread as names. The table
// is assigned in init: the shade parsers recurse through parseToken,
// which walks this table.
var tokenMatchers []tokenMatcher

func init() {
	tokenMatchers = []tokenMatcher{
		{name: "hex", scan: scanHex, owns: ownsPrefix("#"), parse: parseHexToken},
		{name: "rgb", scan: scanCall("rgb("), owns: ownsPrefix("rgb("), parse: parseRGBToken},
		{name: "rgba", scan: scanCall("rgba("), owns: ownsPrefix("rgba("), parse: parseRGBToken},
		{name: "darken", scan: scanCall("darken("), owns: ownsPrefix("darken("), parse: parseShadeToken},
		{name: "lighten", scan: scanCall("lighten("), owns: ownsPrefix("lighten("), parse: parseShadeToken},
		{name: "accent", scan: scanAccent, owns: ownsAccent, parse: parseAccentToken},
		{name: "named", scan: scanNamed, owns: ownsNamed, parse: parseNamedToken},
	}
}

// parseToken parses a single color token. Tokens that match no shape at
// all fall through to the default color rather than erroring; tokens that
// match a shape but are malformed return that shape's error kind.
func parseToken(tok string, active bool) (RGBA, error) {
	for _, m := range tokenMatchers {
		if m.owns(tok) {
			return m.parse(tok, active)
		}
	}
	return defaultRGBA(), nil
}

// scanTokens finds all color-token substrings in s, left to right. It
// returns the tokens and the end offset of the last one, which delimits
// the remainder searched for a gradient direction. Identifier runs that
// are not color names are skipped whole so a name never matches inside a
// longer word.
func scanTokens(s string) (tokens []string, lastEnd int) {
	i := 0
	for i < len(s) {
		matched := false
		for _, m := range tokenMatchers {
			if n := m.scan(s[i:]); n > 0 {
				tokens = append(tokens, s[i:i+n])
				i += n
				lastEnd = i
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if isAlpha(s[i]) {
			i += alphaRunLen(s[i:])
			continue
		}
		i++
	}
	return tokens, lastEnd
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// alphaRunLen returns the length of the leading ASCII letter run.
func alphaRunLen(s string) int {
	n := 0
	for n < len(s) && isAlpha(s[n]) {
		n++
	}
	return n
}

// scanHex matches "#" followed by 3 to 8 hex digits. Runs longer than 8
// digits are cut at 8; runs shorter than 3 are not a hex token.
func scanHex(s string) int {
	if len(s) == 0 || s[0] != '#' {
		return 0
	}
	n := 0
	for n < len(s)-1 && n < 8 && isHexDigit(s[1+n]) {
		n++
	}
	if n < 3 {
		return 0
	}
	return 1 + n
}

// scanCall returns a scan function matching prefix through its balanced
// closing paren. An unbalanced call is not a token.
func scanCall(prefix string) func(string) int {
	return func(s string) int {
		if !strings.HasPrefix(s, prefix) {
			return 0
		}
		depth := 0
		for i := len(prefix) - 1; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return i + 1
				}
			}
		}
		return 0
	}
}

func scanAccent(s string) int {
	if alphaRunLen(s) == len("accent") && strings.HasPrefix(s, "accent") {
		return len("accent")
	}
	return 0
}

// scanNamed matches a whole identifier run that is a known color name.
func scanNamed(s string) int {
	n := alphaRunLen(s)
	if n == 0 {
		return 0
	}
	if _, ok := NamedColor(s[:n]); ok {
		return n
	}
	return 0
}

func ownsPrefix(prefix string) func(string) bool {
	return func(tok string) bool { return strings.HasPrefix(tok, prefix) }
}

func ownsAccent(tok string) bool { return tok == "accent" }

func ownsNamed(tok string) bool {
	_, ok := NamedColor(tok)
	return ok
}

func parseNamedToken(tok string, _ bool) (RGBA, error) {
	c, _ := NamedColor(tok)
	return c, nil
}

func parseAccentToken(_ string, active bool) (RGBA, error) {
	return accentColor(active)
}

// parseHexToken parses hex tokens of 3, 4, 6, or 8 digits after the "#".
// The 3- and 4-digit forms duplicate each nibble before byte parsing.
func parseHexToken(tok string, _ bool) (RGBA, error) {
	digits := tok[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] >= 0x80 {
			return RGBA{}, newParseError(KindInvalidHex, digits)
		}
	}

	switch len(digits) {
	case 3, 4:
		r, err := hexNibble(digits[0:1])
		if err != nil {
			return RGBA{}, err
		}
		g, err := hexNibble(digits[1:2])
		if err != nil {
			return RGBA{}, err
		}
		b, err := hexNibble(digits[2:3])
		if err != nil {
			return RGBA{}, err
		}
		a := 1.0
		if len(digits) == 4 {
			if a, err = hexNibble(digits[3:4]); err != nil {
				return RGBA{}, err
			}
		}
		return RGBA{R: r, G: g, B: b, A: a}, nil

	case 6, 8:
		r, err := hexByte(digits[0:2], digits)
		if err != nil {
			return RGBA{}, err
		}
		g, err := hexByte(digits[2:4], digits)
		if err != nil {
			return RGBA{}, err
		}
		b, err := hexByte(digits[4:6], digits)
		if err != nil {
			return RGBA{}, err
		}
		a := 1.0
		if len(digits) == 8 {
			if a, err = hexByte(digits[6:8], digits); err != nil {
				return RGBA{}, err
			}
		}
		return RGBA{R: r, G: g, B: b, A: a}, nil

	default:
		return RGBA{}, newParseError(KindInvalidHex, digits)
	}
}

// hexNibble parses a single hex digit and duplicates it into a byte, so
// "a" becomes 0xaa.
func hexNibble(digit string) (float64, error) {
	v, err := strconv.ParseUint(digit, 16, 8)
	if err != nil {
		return 0, newParseError(KindInvalidHex, digit)
	}
	return float64((v<<4)|v) / 255, nil
}

func hexByte(pair, digits string) (float64, error) {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, newParseError(KindInvalidHex, digits)
	}
	return float64(v) / 255, nil
}

// parseRGBToken parses rgb() and rgba() calls. The first three components
// are percentages (n/100) or bytes (n/255) and must all use the same
// representation; the optional alpha is a percentage or a bare float.
// Channels are clamped to [0, 1].
func parseRGBToken(tok string, _ bool) (RGBA, error) {
	content := strings.TrimSuffix(stripCallPrefix(tok, "rgb(", "rgba("), ")")
	parts := strings.Split(content, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	isRGBA := strings.HasPrefix(tok, "rgba(")
	if isRGBA {
		if len(parts) != 3 && len(parts) != 4 {
			return RGBA{}, newParseError(KindInvalidRgb, tok)
		}
	} else if len(parts) != 3 {
		return RGBA{}, newParseError(KindInvalidRgb, tok)
	}

	r, rPct, ok := percentOrByte(parts[0])
	if !ok {
		return RGBA{}, newParseError(KindInvalidRgb, tok)
	}
	g, gPct, ok := percentOrByte(parts[1])
	if !ok {
		return RGBA{}, newParseError(KindInvalidRgb, tok)
	}
	b, bPct, ok := percentOrByte(parts[2])
	if !ok {
		return RGBA{}, newParseError(KindInvalidRgb, tok)
	}
	if rPct != gPct || gPct != bPct {
		return RGBA{}, newParseError(KindInvalidRgb, tok)
	}

	a := 1.0
	if len(parts) == 4 {
		var ok bool
		if a, _, ok = percentOrFloat(parts[3]); !ok {
			return RGBA{}, newParseError(KindInvalidRgb, tok)
		}
	}

	return RGBA{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}, nil
}

// stripCallPrefix removes the first matching call prefix from tok.
func stripCallPrefix(tok string, prefixes ...string) string {
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(tok, p); ok {
			return rest
		}
	}
	return tok
}

// percentOrByte parses "n%" as n/100 or a bare number as n/255, reporting
// which representation was used.
func percentOrByte(s string) (val float64, percent, ok bool) {
	if rest, found := strings.CutSuffix(s, "%"); found {
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, false, false
		}
		return v / 100, true, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, false
	}
	return v / 255, false, true
}

// percentOrFloat parses "n%" as n/100 or a bare number as-is.
func percentOrFloat(s string) (val float64, percent, ok bool) {
	if rest, found := strings.CutSuffix(s, "%"); found {
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, false, false
		}
		return v / 100, true, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, false
	}
	return v, false, true
}

// parseShadeToken parses darken(color, pct) and lighten(color, pct). The
// inner color is parsed recursively through the token grammar, so calls
// nest to arbitrary depth. The split is at the last comma so the inner
// color may itself contain commas. The percentage defaults to 10 when it
// does not parse as a float; a missing close paren, missing comma, or
// empty color argument is a malformed call.
func parseShadeToken(tok string, active bool) (RGBA, error) {
	kind := KindInvalidDarken
	prefix := "darken("
	shade := Darken
	if strings.HasPrefix(tok, "lighten(") {
		kind = KindInvalidLighten
		prefix = "lighten("
		shade = Lighten
	}

	inner, ok := strings.CutSuffix(tok[len(prefix):], ")")
	if !ok {
		return RGBA{}, newParseError(kind, tok)
	}
	cut := strings.LastIndex(inner, ",")
	if cut < 0 {
		return RGBA{}, newParseError(kind, tok)
	}

	colorStr := strings.TrimSpace(inner[:cut])
	if colorStr == "" {
		return RGBA{}, newParseError(kind, tok)
	}
	pctStr := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(inner[cut+1:]), "%"))
	pct, err := strconv.ParseFloat(pctStr, 64)
	if err != nil {
		pct = 10.0
	}

	c, err := parseToken(colorStr, active)
	if err != nil {
		return RGBA{}, wrapParseError(kind, tok, err)
	}
	return shade(c, pct), nil
}
