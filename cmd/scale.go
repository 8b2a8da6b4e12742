package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gigstand/gigstand/key"
	"github.com/gigstand/gigstand/pitch"
)

var scaleMinor bool
var scaleNotation string

func init() {
	scaleCmd.Flags().BoolVar(&scaleMinor, "minor", false, "natural minor instead of major")
	scaleCmd.Flags().StringVar(&scaleNotation, "notation", "", "sharp or flat")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root>",
	Short: "Prints a scale",
	Long:  `Prints the major or natural minor scale on a root`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		var explicit []pitch.Notation
		if scaleNotation != "" {
			explicit = append(explicit, resolveNotation(scaleNotation, ""))
		}
		var notes []string
		if scaleMinor {
			notes = key.MinorScale(args[0], explicit...)
		} else {
			notes = key.MajorScale(args[0], explicit...)
		}
		fmt.Println(strings.Join(notes, " "))
	},
}
