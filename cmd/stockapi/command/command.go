package command

import (
	"github.com/urfave/cli/v3"
)

// Commander provide a sub command
type Commander interface {
	Command() *cli.Command
}

// Commands registered sub commands
var Commands = []Commander{}

// RegisterCommand register sub command
func RegisterCommand(cmd Commander) {
	Commands = append(Commands, cmd)
}
