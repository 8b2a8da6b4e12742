package progression

import (
	"strings"
	"unicode"

	"github.com/gigstand/gigstand/chord"
	"github.com/gigstand/gigstand/pitch"
)

// Style records how a free-text progression was delimited so the output can
// round-trip in the same shape the user typed.
type Style int

const (
	SpaceSeparated Style = iota
	CommaSeparated
)

// Split tokenizes free text on runs of whitespace and commas, dropping empty
// tokens. The returned Style is CommaSeparated if the text contained a comma
// anywhere.
func Split(text string) ([]string, Style) {
	style := SpaceSeparated
	if strings.Contains(text, ",") {
		style = CommaSeparated
	}
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return tokens, style
}

func Join(chords []string, style Style) string {
	if style == CommaSeparated {
		return strings.Join(chords, ", ")
	}
	return strings.Join(chords, " ")
}

// TransposeAll maps chord transposition over a sequence of symbols.
func TransposeAll(chords []string, semitones int, notation pitch.Notation) []string {
	res := make([]string, len(chords))
	for i, c := range chords {
		res[i] = chord.Transpose(c, semitones, notation)
	}
	return res
}

// TransposeText transposes a free-text progression, preserving the
// separator style it arrived with.
func TransposeText(text string, semitones int, notation pitch.Notation) string {
	tokens, style := Split(text)
	return Join(TransposeAll(tokens, semitones, notation), style)
}
