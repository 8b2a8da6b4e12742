package voicing

import (
	"strconv"

	"github.com/gigstand/gigstand/chord"
	"github.com/gigstand/gigstand/pitch"
	"github.com/gigstand/gigstand/util"
)

// qualityIntervals maps a chord quality suffix to semitone offsets above the
// root. Qualities outside the table audition as a plain major triad.
var qualityIntervals = map[string][]int{
	"":     {0, 4, 7},
	"m":    {0, 3, 7},
	"5":    {0, 7},
	"dim":  {0, 3, 6},
	"dim7": {0, 3, 6, 9},
	"aug":  {0, 4, 8},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},
	"6":    {0, 4, 7, 9},
	"m6":   {0, 3, 7, 9},
	"7":    {0, 4, 7, 10},
	"maj7": {0, 4, 7, 11},
	"m7":   {0, 3, 7, 10},
	"m7b5": {0, 3, 6, 10},
	"9":    {0, 4, 7, 10, 14},
	"maj9": {0, 4, 7, 11, 14},
	"m9":   {0, 3, 7, 10, 14},
	"add9": {0, 4, 7, 14},
}

// KeysFor voices a chord symbol as MIDI key numbers with the root placed in
// the given octave (octave 4 holds middle C). A slash bass lands in the
// octave below the root. ok is false only when the symbol has no
// recognizable root at all.
func KeysFor(symbol string, octave int) ([]uint8, bool) {
	c, ok := chord.Parse(symbol)
	if !ok {
		return nil, false
	}
	rootIdx := pitch.Index(c.Root)
	if rootIdx < 0 {
		return nil, false
	}
	intervals, found := qualityIntervals[c.Quality]
	if !found {
		intervals = qualityIntervals[""]
	}

	base := (octave+1)*12 + rootIdx
	var keys []uint8
	// anything outside the midi key range is silently dropped
	add := func(k int) {
		if k >= 0 && k <= 127 {
			keys = append(keys, uint8(k))
		}
	}
	if c.Bass != "" {
		if bassIdx := pitch.Index(c.Bass); bassIdx >= 0 {
			add(base - 12 + util.Mod(bassIdx-rootIdx, 12))
		}
	}
	for _, iv := range intervals {
		add(base + iv)
	}
	return keys, true
}

// KeyName spells a MIDI key number with its octave, e.g. 61 -> C#4 or Db4.
func KeyName(key uint8, notation pitch.Notation) string {
	return pitch.Name(int(key)%12, notation) + strconv.Itoa(int(key)/12-1)
}
