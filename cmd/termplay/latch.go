package main

import (
	"sync"

	"github.com/milk9111/bridgefall/obj"
)

// keyLatch turns terminal key presses into held actions. Terminals report
// presses (and auto-repeats) but never releases, so an action stays pressed
// for holdTicks ticks after its most recent press.
type keyLatch struct {
	mu        sync.Mutex
	input     *obj.InputState
	holdTicks int
	remaining map[obj.Action]int
}

func newKeyLatch(input *obj.InputState, holdTicks int) *keyLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &keyLatch{
		input:     input,
		holdTicks: holdTicks,
		remaining: make(map[obj.Action]int),
	}
}

// press holds a for holdTicks ticks. A horizontal press drops the opposite
// direction, since the terminal never tells us that key was let go.
func (l *keyLatch) press(a obj.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if opp, ok := opposite(a); ok {
		delete(l.remaining, opp)
		l.input.Release(opp)
	}
	l.remaining[a] = l.holdTicks
	l.input.Press(a)
}

// tick ages every held action and releases the ones that ran out.
func (l *keyLatch) tick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for a, n := range l.remaining {
		n--
		if n <= 0 {
			delete(l.remaining, a)
			l.input.Release(a)
			continue
		}
		l.remaining[a] = n
	}
}

func (l *keyLatch) releaseAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.remaining)
	l.input.Reset()
}

func opposite(a obj.Action) (obj.Action, bool) {
	switch a {
	case obj.ActionMoveLeft:
		return obj.ActionMoveRight, true
	case obj.ActionMoveRight:
		return obj.ActionMoveLeft, true
	}
	return a, false
}
