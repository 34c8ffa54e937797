// Package router keeps the navigation stack of the sorter app. Screens ask
// for navigation by returning one of the *ScreenMsg messages from a command.
package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/crittersort/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen, so Esc skips it.
// The splash and the scenario picker use it to hand over to their successor.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// trailSep joins screen titles in Trail.
const trailSep = " › "

// Router is a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New returns a router showing root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push opens s and runs its Init. A nil screen is ignored.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the active screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	if r.top() > 0 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// Replace puts s in place of the active screen and runs its Init.
// The depth stays the same. A nil screen is ignored.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[r.top()] = s
	return s.Init()
}

// Active returns the screen on top, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth is the number of open screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail joins the titles of the open screens from the root up, skipping
// screens without a title.
func (r *Router) Trail() string {
	titles := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		if t := s.Title(); t != "" {
			titles = append(titles, t)
		}
	}
	return strings.Join(titles, trailSep)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// View renders the active screen into width x height cells.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
