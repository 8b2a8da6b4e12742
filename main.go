package main

import (
	"github.com/gigstand/gigstand/cmd"
)

func main() {
	cmd.Execute()
}
