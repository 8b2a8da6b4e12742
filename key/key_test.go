package key

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigstand/gigstand/pitch"
)

func TestIntervalIdentity(t *testing.T) {
	assert := assert.New(t)
	for _, n := range pitch.SharpNames {
		assert.Equal(0, Interval(n, n))
	}
}

func TestIntervalIsAlwaysUpward(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, Interval("C", "G"))
	assert.Equal(5, Interval("G", "C"))
	assert.Equal(1, Interval("B", "C"))
	assert.Equal(11, Interval("C", "B"))
}

func TestIntervalComplementsSumToTwelve(t *testing.T) {
	for _, x := range pitch.SharpNames {
		for _, y := range pitch.SharpNames {
			if pitch.Index(x) == pitch.Index(y) {
				continue
			}
			t.Run(fmt.Sprintf("%v %v", x, y), func(t *testing.T) {
				if Interval(x, y)+Interval(y, x) != 12 {
					t.Errorf("%v and %v", Interval(x, y), Interval(y, x))
				}
			})
		}
	}
}

func TestIntervalAcceptsKeyText(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Interval("Am", "C"))
	assert.Equal(2, Interval("Bbm", "C"))
}

func TestIntervalOfUnresolvableTextIsZero(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Interval("??", "C"))
	assert.Equal(0, Interval("C", ""))
}

func TestPreferredNotationFlatKeyTables(t *testing.T) {
	assert := assert.New(t)
	for _, k := range flatMajorKeys {
		assert.Equal(pitch.Flat, PreferredNotation(k), "key: %v", k)
	}
	for _, k := range flatMinorKeys {
		assert.Equal(pitch.Flat, PreferredNotation(k), "key: %v", k)
	}
}

func TestPreferredNotationSharpSide(t *testing.T) {
	assert := assert.New(t)
	for _, k := range []string{"C", "G", "D", "A", "E", "B", "F#", "Em", "Am", "Bm", "F#m", "C#m"} {
		assert.Equal(pitch.Sharp, PreferredNotation(k), "key: %v", k)
	}
}

func TestPreferredNotationFlatRootFallback(t *testing.T) {
	assert := assert.New(t)
	// not in either table, but spelled with a flat
	assert.Equal(pitch.Flat, PreferredNotation("Dbm"))
	assert.Equal(pitch.Flat, PreferredNotation("Gbm"))
}

func TestPreferredNotationConcreteScenarios(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(pitch.Flat, PreferredNotation("Bbm"))
	assert.Equal(pitch.Sharp, PreferredNotation("E"))
	assert.Equal(pitch.Flat, PreferredNotation("Fmin"))
	assert.Equal(pitch.Sharp, PreferredNotation("??"))
}

func TestMajorScales(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, MajorScale("C"))
	// F prefers flats without being told
	assert.Equal([]string{"F", "G", "A", "Bb", "C", "D", "E"}, MajorScale("F"))
	assert.Equal([]string{"E", "F#", "G#", "A", "B", "C#", "D#"}, MajorScale("E"))
	// explicit notation overrides the preference
	assert.Equal([]string{"F", "G", "A", "A#", "C", "D", "E"}, MajorScale("F", pitch.Sharp))
}

func TestMinorScales(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"A", "B", "C", "D", "E", "F", "G"}, MinorScale("A"))
	// Cm is a flat key even though C major is not
	assert.Equal([]string{"C", "D", "Eb", "F", "G", "Ab", "Bb"}, MinorScale("C"))
	assert.Equal([]string{"E", "F#", "G", "A", "B", "C", "D"}, MinorScale("E"))
}

func TestScaleOnUnparseableRootEchoesInput(t *testing.T) {
	assert := assert.New(t)
	for _, n := range MajorScale("??") {
		assert.Equal("??", n)
	}
}

func TestRelativeKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", RelativeKey("Am"))
	assert.Equal("Am", RelativeKey("C"))
	assert.Equal("Dm", RelativeKey("F"))
	assert.Equal("Gb", RelativeKey("Ebm"))
	assert.Equal("Gm", RelativeKey("Bb"))
	assert.Equal("C", RelativeKey("Amin"))
	assert.Equal("??", RelativeKey("??"))
}

func TestParallelKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Cm", ParallelKey("C"))
	assert.Equal("C", ParallelKey("Cm"))
	assert.Equal("Bb", ParallelKey("Bbm"))
	assert.Equal("F#m", ParallelKey("F#"))
	assert.Equal("A", ParallelKey("Amin"))
	assert.Equal("??", ParallelKey("??"))
}
