package main

import (
	"github.com/McClain-Thiel/plasmid-space/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
