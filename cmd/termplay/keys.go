package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bridgefall/obj"
)

type command int

const (
	commandNone command = iota
	commandAction
	commandQuit
	commandReset
)

// translateKey maps a terminal key event to a game action or a host command.
func translateKey(ev *tcell.EventKey) (command, obj.Action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return commandQuit, 0
	case tcell.KeyLeft:
		return commandAction, obj.ActionMoveLeft
	case tcell.KeyRight:
		return commandAction, obj.ActionMoveRight
	case tcell.KeyUp:
		return commandAction, obj.ActionJumpUp
	case tcell.KeyEnter:
		return commandAction, obj.ActionActivate
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return commandAction, obj.ActionMoveLeft
		case 'd', 'D':
			return commandAction, obj.ActionMoveRight
		case 'w', 'W':
			return commandAction, obj.ActionJumpW
		case ' ':
			return commandAction, obj.ActionJumpSpace
		case 'r', 'R':
			return commandReset, 0
		case 'q', 'Q':
			return commandQuit, 0
		}
	}
	return commandNone, 0
}
