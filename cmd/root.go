package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gigstand/gigstand/key"
	"github.com/gigstand/gigstand/pitch"
)

var rootCmd = &cobra.Command{
	Use:   "gigstand",
	Short: "gigstand practice tools",
	Long:  `Transposition tools behind the gigstand practice app.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// resolveNotation turns the --notation/--key flag pair into a rendering
// preference. An explicit key wins, so output spells the way that key does.
func resolveNotation(notation string, keyText string) pitch.Notation {
	if keyText != "" {
		return key.PreferredNotation(keyText)
	}
	if notation == string(pitch.Flat) {
		return pitch.Flat
	}
	return pitch.Sharp
}
