package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"golang.org/x/exp/slices"

	"github.com/gigstand/gigstand/constants"
	"github.com/gigstand/gigstand/pitch"
	"github.com/gigstand/gigstand/util"
	"github.com/gigstand/gigstand/voicing"
)

var listenNotation string
var listenKey string

func init() {
	listenCmd.Flags().StringVar(&listenNotation, "notation", "", "sharp or flat")
	listenCmd.Flags().StringVar(&listenKey, "key", "", "spell notes the way this key does")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints what you play",
	Long:  `Prints held midi-in notes as spellings`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

// heldNotes tracks what the player is holding. Updates arrive on the midi
// listener goroutine; the debounced print only ever sees snapshots taken on
// that same goroutine, so the timer never touches the map.
type heldNotes struct {
	notation  pitch.Notation
	held      map[uint8]bool
	debounced func(f func())
	print     func(names []string)
}

func newHeldNotes(notation pitch.Notation, wait time.Duration, print func([]string)) *heldNotes {
	return &heldNotes{
		notation:  notation,
		held:      make(map[uint8]bool),
		debounced: debounce.New(wait),
		print:     print,
	}
}

func (h *heldNotes) noteOn(k uint8) {
	h.held[k] = true
	h.flush()
}

func (h *heldNotes) noteOff(k uint8) {
	delete(h.held, k)
	h.flush()
}

func (h *heldNotes) flush() {
	keys := util.GetKeys(h.held)
	slices.Sort(keys)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, voicing.KeyName(k, h.notation))
	}
	h.debounced(func() {
		h.print(names)
	})
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(constants.GetMidiPort())
	if err != nil {
		fmt.Println("can't find midi in port")
		return
	}

	// keyboards arpeggiate chords slightly; wait for the hand to settle
	// before printing
	notation := resolveNotation(listenNotation, listenKey)
	held := newHeldNotes(notation, time.Millisecond*50, func(names []string) {
		fmt.Printf("held: %v\n", strings.Join(names, " "))
	})

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, k, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &k, &vel):
			held.noteOn(k)
		case msg.GetNoteEnd(&ch, &k):
			held.noteOff(k)
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
