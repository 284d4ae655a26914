package tui

import (
	"slices"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// View modes a binding can be limited to.
const (
	ViewModeNormal = iota
	ViewModeEditing
)

// KeyHandler reacts to a key press. Returning false passes the key on to
// the next binding registered for it.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

// KeyBinding ties one key to a handler. Empty Modes means every mode;
// empty Help keeps the key out of the footer.
type KeyBinding struct {
	Key      string
	Help     string
	Modes    []int
	Priority int
	Handler  KeyHandler
}

func (b KeyBinding) activeIn(mode int) bool {
	return len(b.Modes) == 0 || slices.Contains(b.Modes, mode)
}

// HandlerRegistry indexes bindings by key, highest priority first.
type HandlerRegistry struct {
	byKey map[string][]KeyBinding
	order []string
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{byKey: make(map[string][]KeyBinding)}
}

func (r *HandlerRegistry) Register(bindings ...KeyBinding) {
	for _, b := range bindings {
		list, seen := r.byKey[b.Key]
		if !seen {
			r.order = append(r.order, b.Key)
		}
		list = append(list, b)
		sort.SliceStable(list, func(i, j int) bool { return list[i].Priority > list[j].Priority })
		r.byKey[b.Key] = list
	}
}

// Dispatch offers key to its bindings active in the model's view mode
// until one handles it.
func (r *HandlerRegistry) Dispatch(m Model, key string) (Model, tea.Cmd, bool) {
	mode := m.viewMode()
	for _, b := range r.byKey[key] {
		if !b.activeIn(mode) {
			continue
		}
		if next, cmd, ok := b.Handler(m, key); ok {
			return next, cmd, true
		}
	}
	return m, nil, false
}

// Help renders one footer hint per key usable in mode.
func (r *HandlerRegistry) Help(mode int) string {
	var parts []string
	for _, key := range r.order {
		for _, b := range r.byKey[key] {
			if b.Help != "" && b.activeIn(mode) {
				parts = append(parts, "["+keyLabel(key)+"]"+b.Help)
				break
			}
		}
	}
	return strings.Join(parts, " ")
}
