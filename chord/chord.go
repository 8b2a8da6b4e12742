package chord

import (
	"strings"

	"github.com/gigstand/gigstand/pitch"
)

// Chord is a chord symbol split into its transposable parts. Quality is
// whatever sits between the root and the optional slash bass; it is never
// rewritten.
type Chord struct {
	Root    string
	Quality string
	Bass    string
}

// Parse splits symbol into root, quality and optional bass. ok is false when
// the symbol does not start with a note token.
func Parse(symbol string) (Chord, bool) {
	root, rest, ok := pitch.SplitNote(symbol)
	if !ok {
		return Chord{}, false
	}
	c := Chord{Root: root, Quality: rest}
	// a trailing /X where X is a whole note token is a slash bass; any other
	// slash stays in the quality (e.g. C6/9)
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		if bass := rest[i+1:]; pitch.Index(bass) >= 0 {
			c.Quality = rest[:i]
			c.Bass = bass
		}
	}
	return c, true
}

func (c Chord) String() string {
	if c.Bass == "" {
		return c.Root + c.Quality
	}
	return c.Root + c.Quality + "/" + c.Bass
}

// Transpose moves the root and bass of a chord symbol by semitones, leaving
// the quality byte-for-byte intact. Symbols with no recognizable root pass
// through unchanged.
func Transpose(symbol string, semitones int, notation pitch.Notation) string {
	c, ok := Parse(symbol)
	if !ok {
		return symbol
	}
	c.Root = pitch.Transpose(c.Root, semitones, notation)
	if c.Bass != "" {
		c.Bass = pitch.Transpose(c.Bass, semitones, notation)
	}
	return c.String()
}
