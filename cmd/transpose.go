package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gigstand/gigstand/progression"
)

var transposeNotation string
var transposeKey string

func init() {
	transposeCmd.Flags().StringVar(&transposeNotation, "notation", "", "sharp or flat")
	transposeCmd.Flags().StringVar(&transposeKey, "key", "", "spell output the way this key does")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <semitones> <chords...>",
	Short: "Transposes chords",
	Long:  `Transposes a chord or a whole progression by some semitones`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need semitones and at least one chord...")
		}
		semitones, err := strconv.Atoi(args[0])
		if err != nil {
			panic(err)
		}
		notation := resolveNotation(transposeNotation, transposeKey)
		text := strings.Join(args[1:], " ")
		fmt.Println(progression.TransposeText(text, semitones, notation))
	},
}
