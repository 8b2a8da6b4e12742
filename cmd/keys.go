package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gigstand/gigstand/key"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys <key>",
	Short: "Describes a key",
	Long:  `Prints the relative key, parallel key and preferred notation`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		k := args[0]
		fmt.Printf("relative: %v\n", key.RelativeKey(k))
		fmt.Printf("parallel: %v\n", key.ParallelKey(k))
		fmt.Printf("notation: %v\n", key.PreferredNotation(k))
	},
}
