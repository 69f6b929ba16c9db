package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bridgefall/obj"
)

const stickDeadzone = 0.3

var keyBindings = map[obj.Action][]ebiten.Key{
	obj.ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	obj.ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	obj.ActionJumpUp:    {ebiten.KeyArrowUp},
	obj.ActionJumpSpace: {ebiten.KeySpace},
	obj.ActionJumpW:     {ebiten.KeyW},
	obj.ActionActivate:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

var buttonBindings = map[obj.Action]ebiten.StandardGamepadButton{
	obj.ActionJumpSpace: ebiten.StandardGamepadButtonRightBottom,
	obj.ActionActivate:  ebiten.StandardGamepadButtonRightLeft,
}

// pollInput copies the keyboard and first gamepad onto the action state.
func pollInput(state *obj.InputState) {
	pressed := make(map[obj.Action]bool, len(keyBindings))
	for action, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				pressed[action] = true
				break
			}
		}
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			if leftX > 0 {
				pressed[obj.ActionMoveRight] = true
			} else {
				pressed[obj.ActionMoveLeft] = true
			}
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			pressed[obj.ActionMoveRight] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			pressed[obj.ActionMoveLeft] = true
		}
		for action, button := range buttonBindings {
			if ebiten.IsStandardGamepadButtonPressed(id, button) {
				pressed[action] = true
			}
		}
	}

	for action := range keyBindings {
		state.Set(action, pressed[action])
	}
}
