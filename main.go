package main

import (
	"github.com/mfawzysami/sitefinder/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
