package rename

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidCountFormat is returned when a count format can't be parsed
var ErrInvalidCountFormat = errors.New("invalid count format")

// FormatCount renders value using a numeric format string.
//
// A format made of one letter and optional precision digits is a standard
// format:
//
//	D, d   decimal, zero padded to the precision      (D3: 007)
//	X, x   hexadecimal, zero padded to the precision  (X2: 0F)
//	N, n   thousands separators, precision decimals   (N0: 1,234)
//	F, f   fixed point, precision decimals            (F1: 7.0)
//	G, g   plain decimal; with a precision, rounded to that many
//	       significant digits and written as 1.23E+04 when it doesn't fit
//
// Anything else is a custom format built from:
//
//	0      digit, padded with zeros
//	#      digit, left out when not significant
//	.      decimal point
//	,      thousands separator when placed between digit placeholders;
//	       right after the last integer placeholder each one divides by 1000
//	%      multiplies by 100 and prints a percent sign
//	\c     the literal character c
//	'…' "…"  literal text
//	;      separates positive;negative;zero sections
//
// Every other character is copied as is, so "_00" formats 5 as "_05".
// An empty format renders the plain decimal value.
func FormatCount(value int, format string) (string, error) {
	if format == "" {
		return strconv.Itoa(value), nil
	}
	if letter, precision, ok := standardFormat(format); ok {
		return formatStandard(value, letter, precision)
	}
	return formatCustom(value, format)
}

// ValidCountFormat reports whether format can be used with FormatCount
func ValidCountFormat(format string) bool {
	_, err := FormatCount(0, format)
	return err == nil
}

func standardFormat(format string) (letter byte, precision int, ok bool) {
	c := format[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return 0, 0, false
	}
	rest := format[1:]
	if len(rest) > 9 {
		return 0, 0, false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return 0, 0, false
		}
	}
	precision = -1
	if rest != "" {
		precision, _ = strconv.Atoi(rest)
	}
	return c, precision, true
}

func formatStandard(value int, letter byte, precision int) (string, error) {
	neg := value < 0
	mag := magnitude(value)

	var out string
	switch letter {
	case 'D', 'd':
		out = padLeft(strconv.FormatUint(mag, 10), precision)
	case 'X', 'x':
		var bits uint64
		if value >= math.MinInt32 && value <= math.MaxInt32 {
			bits = uint64(uint32(int32(value)))
		} else {
			bits = uint64(value)
		}
		out = padLeft(strconv.FormatUint(bits, 16), precision)
		if letter == 'X' {
			out = strings.ToUpper(out)
		}
		return out, nil
	case 'N', 'n':
		if precision < 0 {
			precision = 2
		}
		out = groupThousands(strconv.FormatUint(mag, 10)) + decimals(precision)
	case 'F', 'f':
		if precision < 0 {
			precision = 2
		}
		out = strconv.FormatUint(mag, 10) + decimals(precision)
	case 'G', 'g':
		out = formatGeneral(mag, letter, precision)
	default:
		return "", fmt.Errorf("%w: unknown standard format %q", ErrInvalidCountFormat, string(letter))
	}

	if neg {
		out = "-" + out
	}
	return out, nil
}

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenZero
	tokenHash
	tokenPoint
	tokenGroup
	tokenPercent
)

type formatToken struct {
	kind tokenKind
	text string
}

func formatCustom(value int, format string) (string, error) {
	sections, err := splitSections(format)
	if err != nil {
		return "", err
	}

	section := sections[0]
	explicitNegative := false
	switch {
	case value < 0 && len(sections) >= 2 && sections[1] != "":
		section = sections[1]
		explicitNegative = true
	case value == 0 && len(sections) >= 3 && sections[2] != "":
		section = sections[2]
	}

	tokens := tokenize(section)

	var intPart, fracPart []formatToken
	seenPoint := false
	hasPercent := false
	for _, tok := range tokens {
		if tok.kind == tokenPercent {
			hasPercent = true
		}
		if tok.kind == tokenPoint {
			seenPoint = true
			continue
		}
		if seenPoint {
			fracPart = append(fracPart, tok)
		} else {
			intPart = append(intPart, tok)
		}
	}

	mag := magnitude(value)
	if hasPercent {
		mag *= 100
	}

	placeholders := 0
	firstZero := -1
	grouping := false
	lastWasPlaceholder := false
	pendingGroup := false
	scale := 0
	for _, tok := range intPart {
		switch tok.kind {
		case tokenZero, tokenHash:
			if tok.kind == tokenZero && firstZero < 0 {
				firstZero = placeholders
			}
			if pendingGroup {
				grouping = true
			}
			placeholders++
			lastWasPlaceholder = true
			pendingGroup = false
			scale = 0
		case tokenGroup:
			pendingGroup = lastWasPlaceholder
			if lastWasPlaceholder || scale > 0 {
				scale++
			}
		default:
			lastWasPlaceholder = false
			pendingGroup = false
		}
	}

	fractionPlaces, fractionMin := 0, 0
	for _, tok := range fracPart {
		switch tok.kind {
		case tokenZero:
			fractionPlaces++
			fractionMin = fractionPlaces
		case tokenHash:
			fractionPlaces++
		}
	}

	whole, fraction := scaleDigits(mag, scale, fractionPlaces)
	for len(fraction) > fractionMin && fraction[len(fraction)-1] == '0' {
		fraction = fraction[:len(fraction)-1]
	}

	digits := ""
	if whole != "0" {
		digits = whole
	}
	if firstZero >= 0 {
		digits = padLeft(digits, placeholders-firstZero)
	}
	if grouping {
		digits = groupThousands(digits)
	}

	var sb strings.Builder
	index := 0
	for _, tok := range intPart {
		switch tok.kind {
		case tokenZero, tokenHash:
			sb.WriteString(placeDigits(digits, placeholders, index, grouping))
			index++
		case tokenLiteral, tokenPercent:
			sb.WriteString(tok.text)
		}
	}

	if placeholders == 0 && seenPoint {
		sb.WriteString(digits)
	}

	if fraction != "" {
		sb.WriteByte('.')
	}
	place := 0
	for _, tok := range fracPart {
		switch tok.kind {
		case tokenZero, tokenHash:
			if place < len(fraction) {
				sb.WriteByte(fraction[place])
			}
			place++
		case tokenLiteral, tokenPercent:
			sb.WriteString(tok.text)
		}
	}

	roundedToZero := whole == "0" && strings.Trim(fraction, "0") == ""

	out := sb.String()
	if value < 0 && !explicitNegative && !roundedToZero {
		out = "-" + out
	}
	return out, nil
}

// placeDigits returns the digits placeholder k of n shows. Digits are right
// aligned against the placeholders and the first one takes any overflow.
func placeDigits(digits string, n, k int, grouped bool) string {
	if grouped {
		if k == 0 {
			return digits
		}
		return ""
	}
	l := len(digits)
	if k == 0 {
		end := l - n + 1
		if end <= 0 {
			return ""
		}
		return digits[:end]
	}
	idx := l - n + k
	if idx < 0 {
		return ""
	}
	return digits[idx : idx+1]
}

// splitSections splits a custom format on unquoted semicolons and checks
// that quotes and escapes are terminated
func splitSections(format string) ([]string, error) {
	var sections []string
	var current strings.Builder
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("%w: trailing escape in %q", ErrInvalidCountFormat, format)
			}
			current.WriteRune(r)
			current.WriteRune(runes[i+1])
			i++
		case '\'', '"':
			end := i + 1
			for end < len(runes) && runes[end] != r {
				end++
			}
			if end >= len(runes) {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidCountFormat, format)
			}
			current.WriteString(string(runes[i : end+1]))
			i = end
		case ';':
			sections = append(sections, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	sections = append(sections, current.String())
	return sections, nil
}

// tokenize turns one validated section into tokens
func tokenize(section string) []formatToken {
	var tokens []formatToken
	runes := []rune(section)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '0':
			tokens = append(tokens, formatToken{kind: tokenZero})
		case '#':
			tokens = append(tokens, formatToken{kind: tokenHash})
		case '.':
			tokens = append(tokens, formatToken{kind: tokenPoint})
		case ',':
			tokens = append(tokens, formatToken{kind: tokenGroup})
		case '%':
			tokens = append(tokens, formatToken{kind: tokenPercent, text: "%"})
		case '\\':
			tokens = append(tokens, formatToken{kind: tokenLiteral, text: string(runes[i+1])})
			i++
		case '\'', '"':
			end := i + 1
			for runes[end] != r {
				end++
			}
			tokens = append(tokens, formatToken{kind: tokenLiteral, text: string(runes[i+1 : end])})
			i = end
		default:
			tokens = append(tokens, formatToken{kind: tokenLiteral, text: string(r)})
		}
	}
	return tokens
}

// scaleDigits divides mag by 1000 for every scaling comma and rounds it,
// half away from zero, to places fraction digits
func scaleDigits(mag uint64, scale, places int) (whole, fraction string) {
	n := new(big.Int).SetUint64(mag)
	ten := big.NewInt(10)
	n.Mul(n, new(big.Int).Exp(ten, big.NewInt(int64(places)), nil))

	if scale > 0 {
		div := new(big.Int).Exp(ten, big.NewInt(int64(3*scale)), nil)
		q, r := new(big.Int).QuoRem(n, div, new(big.Int))
		if r.Mul(r, big.NewInt(2)).Cmp(div) >= 0 {
			q.Add(q, big.NewInt(1))
		}
		n = q
	}

	digits := padLeft(n.String(), places+1)
	return digits[:len(digits)-places], digits[len(digits)-places:]
}

// formatGeneral writes mag with at most precision significant digits,
// switching to scientific notation when the exponent reaches precision
func formatGeneral(mag uint64, letter byte, precision int) string {
	digits := strconv.FormatUint(mag, 10)
	if precision <= 0 || len(digits) <= precision {
		return digits
	}

	exponent := len(digits) - 1
	kept, _ := strconv.ParseUint(digits[:precision], 10, 64)
	if digits[precision] >= '5' {
		kept++
	}
	mantissa := strconv.FormatUint(kept, 10)
	if len(mantissa) > precision {
		exponent++
		mantissa = mantissa[:precision]
	}
	mantissa = strings.TrimRight(mantissa, "0")

	out := mantissa[:1]
	if len(mantissa) > 1 {
		out += "." + mantissa[1:]
	}
	e := "E"
	if letter == 'g' {
		e = "e"
	}
	return fmt.Sprintf("%s%s+%02d", out, e, exponent)
}

func magnitude(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func padLeft(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

func decimals(precision int) string {
	if precision <= 0 {
		return ""
	}
	return "." + strings.Repeat("0", precision)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
