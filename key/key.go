package key

import (
	"strings"

	"github.com/gigstand/gigstand/pitch"
	"github.com/gigstand/gigstand/util"
	"golang.org/x/exp/slices"
)

// Keys whose signatures spell with flats. This is a fixed table, not a
// circle-of-fifths computation; it intentionally has no sharp-side
// counterpart.
var flatMajorKeys = []string{"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb"}
var flatMinorKeys = []string{"Dm", "Gm", "Cm", "Fm", "Bbm", "Ebm", "Abm"}

var majorOffsets = []int{0, 2, 4, 5, 7, 9, 11}
var minorOffsets = []int{0, 2, 3, 5, 7, 8, 10}

// Interval is the upward distance in semitones from one note to another,
// always in 0..11. Interval(x, y) + Interval(y, x) is 12 unless x and y share
// a pitch class. Key text is accepted; only the leading note token counts.
// Unresolvable input yields 0.
func Interval(from string, to string) int {
	a := leadingIndex(from)
	b := leadingIndex(to)
	if a < 0 || b < 0 {
		return 0
	}
	return util.Mod(b-a, 12)
}

func leadingIndex(s string) int {
	token, _, ok := pitch.SplitNote(s)
	if !ok {
		return -1
	}
	return pitch.Index(token)
}

// PreferredNotation reports whether a key conventionally spells with sharps
// or flats. Minor keys are recognized by an m right after the root ("Dm",
// "Dmin"). Unrecognized text defaults to sharp.
func PreferredNotation(k string) pitch.Notation {
	root, rest, ok := pitch.SplitNote(k)
	if !ok {
		return pitch.Sharp
	}
	if strings.HasPrefix(rest, "m") {
		if slices.Contains(flatMinorKeys, root+"m") {
			return pitch.Flat
		}
	} else if slices.Contains(flatMajorKeys, root) {
		return pitch.Flat
	}
	if strings.Contains(root, "b") {
		return pitch.Flat
	}
	return pitch.Sharp
}

// MajorScale spells the seven notes of the major scale on root. Without an
// explicit notation it follows PreferredNotation of the root.
func MajorScale(root string, notation ...pitch.Notation) []string {
	return scale(root, majorOffsets, notationOr(notation, PreferredNotation(root)))
}

// MinorScale spells the natural minor scale on root, defaulting to the
// notation its minor key prefers.
func MinorScale(root string, notation ...pitch.Notation) []string {
	return scale(root, minorOffsets, notationOr(notation, PreferredNotation(root+"m")))
}

func notationOr(given []pitch.Notation, fallback pitch.Notation) pitch.Notation {
	if len(given) > 0 {
		return given[0]
	}
	return fallback
}

func scale(root string, offsets []int, notation pitch.Notation) []string {
	res := make([]string, len(offsets))
	for i, off := range offsets {
		res[i] = pitch.Transpose(root, off, notation)
	}
	return res
}

// splitMinor takes the minor suffix off the end of key text.
func splitMinor(k string) (root string, minor bool) {
	switch {
	case strings.HasSuffix(k, "min"):
		return k[:len(k)-3], true
	case strings.HasSuffix(k, "m"):
		return k[:len(k)-1], true
	}
	return k, false
}

// RelativeKey crosses to the key sharing the same scale notes: up a minor
// third from a minor key, down a minor third (up 9) from a major one. The
// result spells in the input key's preferred notation. Unrecognized text
// comes back unchanged.
func RelativeKey(k string) string {
	root, minor := splitMinor(k)
	if pitch.Index(root) < 0 {
		return k
	}
	notation := PreferredNotation(k)
	if minor {
		return pitch.Transpose(root, 3, notation)
	}
	return pitch.Transpose(root, 9, notation) + "m"
}

// ParallelKey toggles major/minor on the same root.
func ParallelKey(k string) string {
	root, minor := splitMinor(k)
	if pitch.Index(root) < 0 {
		return k
	}
	if minor {
		return root
	}
	return root + "m"
}
