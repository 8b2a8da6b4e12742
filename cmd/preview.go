package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/gigstand/gigstand/constants"
	"github.com/gigstand/gigstand/progression"
	"github.com/gigstand/gigstand/voicing"
)

var previewNotation string
var previewKey string
var previewOctave int

func init() {
	previewCmd.Flags().StringVar(&previewNotation, "notation", "", "sharp or flat")
	previewCmd.Flags().StringVar(&previewKey, "key", "", "spell output the way this key does")
	previewCmd.Flags().IntVar(&previewOctave, "octave", constants.PreviewOctave, "octave for chord roots")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <semitones> <chords...>",
	Short: "Plays a transposed progression",
	Long:  `Transposes a progression and sends it to a midi out port, one chord per beat`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need semitones and at least one chord...")
		}
		semitones, err := strconv.Atoi(args[0])
		if err != nil {
			panic(err)
		}
		preview(semitones, strings.Join(args[1:], " "))
	},
}

func preview(semitones int, text string) {
	defer midi.CloseDriver()

	out, err := midi.OutPort(constants.GetMidiPort())
	if err != nil {
		fmt.Println("can't find midi out port")
		return
	}
	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	notation := resolveNotation(previewNotation, previewKey)
	chords, style := progression.Split(text)
	chords = progression.TransposeAll(chords, semitones, notation)
	fmt.Println(progression.Join(chords, style))

	for _, symbol := range chords {
		keys, ok := voicing.KeysFor(symbol, previewOctave)
		if !ok {
			// half-typed chords are expected, just skip them
			continue
		}
		for _, k := range keys {
			send(midi.NoteOn(0, k, 100))
		}
		time.Sleep(time.Millisecond * constants.PreviewChordMillis)
		for _, k := range keys {
			send(midi.NoteOff(0, k))
		}
	}
}
