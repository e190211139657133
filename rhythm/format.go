// Package rhythm formats rhythm notation entered as plain text into
// musical glyphs. Input is tokenized on runs of comma/space/pipe; each
// token may carry an accent marker (>), a staccato marker (x), trailing
// duration dots, and either a rest (r1..r16), a bare duration code
// (1..32), or a tie of two duration codes joined by '-'. Tokens that do
// not parse pass through unchanged so no user input is ever lost.
package rhythm

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Accent", Pattern: `>`},
		{Name: "Staccato", Pattern: `x`},
		{Name: "Rest", Pattern: `r(?:16|8|4|2|1)`},
		{Name: "Duration", Pattern: `32|16|8|4|2|1`},
		{Name: "Tie", Pattern: `-`},
		{Name: "Dot", Pattern: `\.`},
	})

	symbols           = tokenLexer.Symbols()
	accentTokenType   = symbols["Accent"]
	staccatoTokenType = symbols["Staccato"]
	restTokenType     = symbols["Rest"]
	durationTokenType = symbols["Duration"]
	tieTokenType      = symbols["Tie"]
	dotTokenType      = symbols["Dot"]
)

// Glyph tables. Duration codes map to note glyphs, rest codes to rest
// glyphs, from the Unicode Musical Symbols block.
var (
	noteGlyphs = map[string]string{
		"1":  "\U0001D15D", // whole
		"2":  "\U0001D15E", // half
		"4":  "\U0001D15F", // quarter
		"8":  "\U0001D160", // eighth
		"16": "\U0001D161", // sixteenth
		"32": "\U0001D162", // thirty-second
	}
	restGlyphs = map[string]string{
		"r1":  "\U0001D13B",
		"r2":  "\U0001D13C",
		"r4":  "\U0001D13D",
		"r8":  "\U0001D13E",
		"r16": "\U0001D13F",
	}
)

const (
	dotGlyph      = "\U0001D16D" // augmentation dot
	tieGlyph      = "‿"     // undertie
	accentGlyph   = "›"
	staccatoGlyph = "·"
)

// Format renders a raw rhythm pattern as a space-joined glyph sequence.
// Empty input yields the empty string.
func Format(raw string) string {
	tokens := strings.FieldsFunc(raw, isSeparator)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if rendered, ok := renderToken(tok); ok {
			out = append(out, rendered)
		} else {
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '|'
}

// renderToken lexes one token and renders it if it forms a valid pattern:
// [accent] [staccato] (rest | duration [tie duration]) dots. Ties render
// both sides joined by the tie glyph; accent, staccato and dots are
// ignored on tie tokens.
func renderToken(tok string) (string, bool) {
	lx, err := tokenLexer.LexString("", tok)
	if err != nil {
		return "", false
	}

	var (
		accent, staccato bool
		first, second    string // duration codes; second set only for ties
		rest             string
		dots             int
	)

	// state walks the token left to right; any out-of-order part fails.
	const (
		atStart = iota
		atBody
		atTie
		atDots
	)
	state := atStart

	for {
		t, err := lx.Next()
		if err != nil {
			return "", false
		}
		if t.EOF() {
			break
		}
		switch t.Type {
		case accentTokenType:
			if state != atStart || accent || staccato {
				return "", false
			}
			accent = true
		case staccatoTokenType:
			if state != atStart || staccato {
				return "", false
			}
			staccato = true
		case restTokenType:
			if state != atStart {
				return "", false
			}
			rest = t.Value
			state = atDots
		case durationTokenType:
			switch state {
			case atStart:
				first = t.Value
				state = atBody
			case atTie:
				second = t.Value
				state = atDots
			default:
				return "", false
			}
		case tieTokenType:
			if state != atBody {
				return "", false
			}
			state = atTie
		case dotTokenType:
			if state != atBody && state != atDots {
				return "", false
			}
			if rest == "" && first == "" {
				return "", false
			}
			state = atDots
			dots++
		default:
			return "", false
		}
	}
	if state == atStart || state == atTie {
		return "", false
	}

	if second != "" {
		// Tie: both sides rendered independently, markers dropped.
		return noteGlyphs[first] + tieGlyph + noteGlyphs[second], true
	}

	var b strings.Builder
	if accent {
		b.WriteString(accentGlyph)
	}
	if rest != "" {
		b.WriteString(restGlyphs[rest])
	} else {
		b.WriteString(noteGlyphs[first])
	}
	if staccato {
		b.WriteString(staccatoGlyph)
	}
	for i := 0; i < dots; i++ {
		b.WriteString(dotGlyph)
	}
	return b.String(), true
}
