package constants

import (
	"os"
	"strconv"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetMidiPort() int {
	v := os.Getenv("MIDI_PORT")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic("MIDI_PORT must be a number: " + err.Error())
	}
	return n
}

// PreviewOctave is where chord roots land when auditioning (octave of
// middle C).
const PreviewOctave = 4

// PreviewChordMillis is how long each auditioned chord rings.
const PreviewChordMillis = 600
