package probearm

import "strings"

// Command is a single input character. Any rune is a valid Command;
// unrecognized ones have no effect when applied.
type Command rune

const (
	CommandUp    Command = 'w'
	CommandLeft  Command = 'a'
	CommandDown  Command = 's'
	CommandRight Command = 'd'
	CommandGrab  Command = 'k'
	CommandDrop  Command = 'l'
)

// String returns the command character.
func (c Command) String() string {
	return string(c)
}

// Delta returns the arm displacement for a movement command.
// ok is false for every other command.
func (c Command) Delta() (dx, dy int, ok bool) {
	switch c {
	case CommandUp:
		return 0, -1, true
	case CommandDown:
		return 0, 1, true
	case CommandLeft:
		return -1, 0, true
	case CommandRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// ParseCommands lower-cases input and splits it into one Command per
// character, preserving order. Unrecognized characters are kept.
func ParseCommands(input string) []Command {
	lower := strings.ToLower(input)
	cmds := make([]Command, 0, len(lower))
	for _, r := range lower {
		cmds = append(cmds, Command(r))
	}
	return cmds
}
