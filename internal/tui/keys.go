package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionToggleHelp
	ActionToggleStats
	ActionToggleWrap
	ActionToggleBinary
	ActionReload
	ActionOpenSearch
	ActionSearchNext
	ActionSearchPrevious
	ActionScrollLeft
	ActionScrollRight
	ActionScrollHome
	ActionLineDown
	ActionLineUp
	ActionPageDown
	ActionPageUp
	ActionHalfPageDown
	ActionHalfPageUp
	ActionGoToTop
	ActionGoToBottom
)

// KeyHandler turns key presses into actions, with a vim-style numeric
// count buffer for line movement.
type KeyHandler struct {
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action plus its count.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	key := msg.String()

	if isNumericKey(key) {
		k.keyBuffer += key
		return ActionNone, 0
	}

	count := 1
	if k.keyBuffer != "" {
		if n, err := strconv.Atoi(k.keyBuffer); err == nil && n > 0 {
			count = n
		}
	}
	k.keyBuffer = ""

	return keyToAction(key), count
}

// KeyBuffer returns the pending numeric prefix.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

func keyToAction(key string) KeyAction {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "h":
		return ActionToggleHelp
	case "v":
		return ActionToggleStats
	case "w":
		return ActionToggleWrap
	case "b":
		return ActionToggleBinary
	case "r":
		return ActionReload
	case "/":
		return ActionOpenSearch
	case "n":
		return ActionSearchNext
	case "N":
		return ActionSearchPrevious
	case "left", "{":
		return ActionScrollLeft
	case "right", "}":
		return ActionScrollRight
	case "home":
		return ActionScrollHome
	case "j", "down", "ctrl+e":
		return ActionLineDown
	case "k", "up", "ctrl+y":
		return ActionLineUp
	case "pgdown":
		return ActionPageDown
	case "pgup":
		return ActionPageUp
	case "J", "ctrl+d":
		return ActionHalfPageDown
	case "K", "ctrl+u":
		return ActionHalfPageUp
	case "g":
		return ActionGoToTop
	case "G":
		return ActionGoToBottom
	default:
		return ActionNone
	}
}

func isNumericKey(key string) bool {
	return len(key) == 1 && key >= "0" && key <= "9"
}
