package main

import (
	"os"

	"github.com/moasq/xcodeproj-modify/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
