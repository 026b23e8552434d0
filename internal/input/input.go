// Package input maps physical keys and mouse movement onto logical
// game actions.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical game action, decoupled from physical keys.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionAscend
	ActionDescend
	ActionToggleProfiling
	ActionQuit

	ActionCount // sentinel for array sizing
)

// Manager tracks per-frame action state and accumulates mouse motion.
type Manager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool

	mouseDX, mouseDY float64
	lastX, lastY     float64
	firstMouse       bool
}

// NewManager returns a manager with the default key bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
		firstMouse:   true,
	}

	m.bind(glfw.KeyW, ActionMoveForward)
	m.bind(glfw.KeyS, ActionMoveBackward)
	m.bind(glfw.KeyA, ActionMoveLeft)
	m.bind(glfw.KeyD, ActionMoveRight)
	m.bind(glfw.KeySpace, ActionAscend)
	m.bind(glfw.KeyLeftShift, ActionDescend)
	m.bind(glfw.KeyP, ActionToggleProfiling)
	m.bind(glfw.KeyEscape, ActionQuit)

	return m
}

func (m *Manager) bind(key glfw.Key, action Action) {
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// InstallCallbacks hooks the manager into the window's key and cursor
// events.
func (m *Manager) InstallCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, a := range m.keyToActions[key] {
			switch action {
			case glfw.Press:
				if !m.currentState[a] {
					m.justPressed[a] = true
				}
				m.currentState[a] = true
			case glfw.Release:
				m.currentState[a] = false
			}
		}
	})

	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.firstMouse {
			m.lastX, m.lastY = xpos, ypos
			m.firstMouse = false
			return
		}
		m.mouseDX += xpos - m.lastX
		m.mouseDY += m.lastY - ypos // screen Y grows downward
		m.lastX, m.lastY = xpos, ypos
	})
}

// IsPressed reports whether the action is currently held.
func (m *Manager) IsPressed(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[a]
}

// JustPressed reports whether the action went down since the last
// PostUpdate.
func (m *Manager) JustPressed(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[a]
}

// ConsumeMouseDelta returns and clears the mouse motion accumulated
// since the previous call.
func (m *Manager) ConsumeMouseDelta() (dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dx, dy = m.mouseDX, m.mouseDY
	m.mouseDX, m.mouseDY = 0, 0
	return dx, dy
}

// PostUpdate clears edge-triggered flags. Call once per frame after
// input has been handled.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.justPressed {
		m.justPressed[i] = false
	}
}
