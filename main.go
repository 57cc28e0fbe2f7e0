package main

import (
	"github.com/pstuifzand/tui-renamer/internal/commands"
)

func main() {
	commands.Execute()
}
