// Package commands holds the product commands routed through the dispatcher
// and the handlers that serve them.
package commands

// Command marks a value as a dispatchable product command.
type Command interface {
	isCommand()
}

type DeactivateCommand struct {
	ProductID int
	Reason    string
}

type ReactivateCommand struct {
	ID     int
	Reason string
}

func (DeactivateCommand) isCommand() {}
func (ReactivateCommand) isCommand() {}
