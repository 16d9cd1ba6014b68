package keymap

import "fmt"

// Action identifies something the game does in response to a key.
type Action string

const (
	ActionMoveUp    Action = "move.up"
	ActionMoveDown  Action = "move.down"
	ActionMoveLeft  Action = "move.left"
	ActionMoveRight Action = "move.right"
	ActionSay       Action = "log.say"
	ActionNewline   Action = "log.newline"
	ActionClearLog  Action = "log.clear"
	ActionQuit      Action = "game.quit"
)

var knownActions = map[Action]bool{
	ActionMoveUp:    true,
	ActionMoveDown:  true,
	ActionMoveLeft:  true,
	ActionMoveRight: true,
	ActionSay:       true,
	ActionNewline:   true,
	ActionClearLog:  true,
	ActionQuit:      true,
}

// ParseAction validates an action name.
func ParseAction(name string) (Action, error) {
	a := Action(name)
	if !knownActions[a] {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}
