package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/core-defense/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// gameBindings are matched in order; quit comes first.
var gameBindings = []actionBinding{
	{key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")), core.ActionQuit},
	{key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "aim")), core.ActionAimLeft},
	{key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "aim")), core.ActionAimRight},
	{key.NewBinding(key.WithKeys(" ", "e"), key.WithHelp("space", "ult")), core.ActionUltimate},
	{key.NewBinding(key.WithKeys("1"), key.WithHelp("1-3", "pick")), core.ActionChoice1},
	{key.NewBinding(key.WithKeys("2")), core.ActionChoice2},
	{key.NewBinding(key.WithKeys("3")), core.ActionChoice3},
	{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "relic")), core.ActionConfirm},
	{key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")), core.ActionPause},
	{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
}

// MenuAction is a navigation command on list screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

var menuBindings = []menuBinding{
	{key.NewBinding(key.WithKeys("ctrl+c", "q")), MenuActionQuit},
	{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
	{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
	{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
	{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
}

// KeyMapper turns key presses into game actions and menu commands.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameBindings, menu: menuBindings}
}

// MapKey returns the game action bound to msg, or ActionNone. isQuit
// reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action bound to msg in frame and reports
// whether it was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction returns the menu command bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// HelpLine lists the game bindings, for the paused screen footer.
func (km *KeyMapper) HelpLine() string {
	var parts []string
	for _, b := range km.game {
		if h := b.binding.Help(); h.Key != "" {
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return strings.Join(parts, "  ")
}
