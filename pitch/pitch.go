package pitch

import (
	"github.com/gigstand/gigstand/util"
)

// Notation selects which spelling table renders a pitch class. It is a
// rendering preference, not a property of the pitch class itself.
type Notation string

const (
	Sharp Notation = "sharp"
	Flat  Notation = "flat"
)

// Index 0 is C in both tables. UI pickers enumerate these directly.
var SharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var FlatNames = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// enharmonics maps every valid spelling that is absent from the sharp table
// to the equivalent that is present.
var enharmonics = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"B#": "C",
	"E#": "F",
}

// SplitNote peels the leading note token off s: a letter A-G optionally
// followed by a single # or b.
func SplitNote(s string) (token string, rest string, ok bool) {
	if len(s) == 0 || s[0] < 'A' || s[0] > 'G' {
		return "", s, false
	}
	n := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		n = 2
	}
	return s[:n], s[n:], true
}

// Index resolves a note spelling to its pitch class 0..11. Anything that is
// not exactly one note token ("", "c", "H", "C##") comes back as -1.
func Index(note string) int {
	token, rest, ok := SplitNote(note)
	if !ok || rest != "" {
		return -1
	}
	if sharp, found := enharmonics[token]; found {
		token = sharp
	}
	for i, name := range SharpNames {
		if name == token {
			return i
		}
	}
	return -1
}

// Name renders a pitch class in the requested notation. Any integer is
// accepted and reduced mod 12 first.
func Name(class int, notation Notation) string {
	idx := util.Mod(class, 12)
	if notation == Flat {
		return FlatNames[idx]
	}
	return SharpNames[idx]
}

// Transpose shifts note by semitones and re-spells it in notation. The
// re-spelling happens even at zero shift, so this doubles as sharp/flat
// conversion. Text that does not resolve to a pitch class comes back
// unchanged.
func Transpose(note string, semitones int, notation Notation) string {
	idx := Index(note)
	if idx < 0 {
		return note
	}
	return Name(idx+semitones, notation)
}
