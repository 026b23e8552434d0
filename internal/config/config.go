// Package config holds process-wide runtime settings behind clamped,
// mutex-guarded accessors.
package config

import (
	"runtime"
	"sync"
)

// WorldProfile selects the placeholder world fed to the generation
// workers.
type WorldProfile int

const (
	// WorldSuperflat is a solid ground layer with a grass top.
	WorldSuperflat WorldProfile = iota
	// WorldHalfStone fills ground sectors halfway with stone, leaving
	// a renderable surface at mid-height.
	WorldHalfStone
)

type settings struct {
	mu sync.RWMutex

	genWorkers       int
	genSpanXZ        int // half-extent of the generated square, in sectors
	worldProfile     WorldProfile
	workerPanicFatal bool

	fov              float32
	fpsLimit         int
	mouseSensitivity float64
	moveSpeed        float32
}

var global = &settings{
	genWorkers:       1,
	genSpanXZ:        12,
	worldProfile:     WorldHalfStone,
	workerPanicFatal: true,
	fov:              60.0,
	fpsLimit:         120,
	mouseSensitivity: 0.1,
	moveSpeed:        8.0,
}

// GetGenWorkers returns the generation worker pool size.
func GetGenWorkers() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.genWorkers
}

// SetGenWorkers sets the pool size, clamped to [1, NumCPU].
func SetGenWorkers(n int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if cpus := runtime.NumCPU(); n > cpus {
		n = cpus
	}
	global.genWorkers = n
}

// GetGenSpanXZ returns the half-extent, in sectors, of the square of
// ground generated around the origin.
func GetGenSpanXZ() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.genSpanXZ
}

// SetGenSpanXZ clamps the half-extent to [1, 300].
func SetGenSpanXZ(n int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if n > 300 {
		n = 300
	}
	global.genSpanXZ = n
}

// GetWorldProfile returns the active placeholder world.
func GetWorldProfile() WorldProfile {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.worldProfile
}

// SetWorldProfile selects the placeholder world.
func SetWorldProfile(p WorldProfile) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.worldProfile = p
}

// GetWorkerPanicFatal reports whether a generation worker panic aborts
// the process at controller teardown (the default) or is surfaced as
// an error and isolated to that worker.
func GetWorkerPanicFatal() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.workerPanicFatal
}

// SetWorkerPanicFatal names the worker panic policy.
func SetWorkerPanicFatal(fatal bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.workerPanicFatal = fatal
}

// GetFOV returns the vertical field of view in degrees.
func GetFOV() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fov
}

// SetFOV clamps the field of view to [30, 110] degrees.
func SetFOV(fov float32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if fov < 30 {
		fov = 30
	}
	if fov > 110 {
		fov = 110
	}
	global.fov = fov
}

// GetFPSLimit returns the frame-rate cap; zero or negative disables it.
func GetFPSLimit() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fpsLimit
}

// SetFPSLimit sets the frame-rate cap.
func SetFPSLimit(limit int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fpsLimit = limit
}

// GetMouseSensitivity returns degrees of rotation per pixel of mouse
// travel.
func GetMouseSensitivity() float64 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.mouseSensitivity
}

// SetMouseSensitivity clamps sensitivity to (0, 2].
func SetMouseSensitivity(s float64) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if s <= 0 {
		s = 0.01
	}
	if s > 2 {
		s = 2
	}
	global.mouseSensitivity = s
}

// GetMoveSpeed returns the fly speed in blocks per second.
func GetMoveSpeed() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.moveSpeed
}

// SetMoveSpeed clamps the fly speed to [0.5, 64].
func SetMoveSpeed(s float32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if s < 0.5 {
		s = 0.5
	}
	if s > 64 {
		s = 64
	}
	global.moveSpeed = s
}
