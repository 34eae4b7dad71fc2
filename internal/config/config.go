package config

import (
	"sync"
	"time"
)

const (
	minWindowWidth  = 320
	minWindowHeight = 240
	maxWindowWidth  = 7680
	maxWindowHeight = 4320
)

// ViewerSettings holds viewer configuration
type ViewerSettings struct {
	mu           sync.RWMutex
	windowWidth  int
	windowHeight int
	nearClip     float64
	farClip      float64
	clipStep     float64
	slowFrame    time.Duration
}

var globalViewerSettings = &ViewerSettings{
	windowWidth:  900,
	windowHeight: 600,
	nearClip:     0.1,
	farClip:      100.0,
	clipStep:     1.0,
	slowFrame:    16 * time.Millisecond,
}

// GetWindowSize returns the initial window size in pixels
func GetWindowSize() (width, height int) {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.windowWidth, globalViewerSettings.windowHeight
}

// SetWindowSize sets the initial window size in pixels
func SetWindowSize(width, height int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	// Clamp to reasonable values
	globalViewerSettings.windowWidth = clamp(width, minWindowWidth, maxWindowWidth)
	globalViewerSettings.windowHeight = clamp(height, minWindowHeight, maxWindowHeight)
}

// GetClipPlanes returns the clip planes the viewer camera starts with
func GetClipPlanes() (near, far float64) {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.nearClip, globalViewerSettings.farClip
}

// SetClipPlanes stores the clip planes verbatim; the camera does not validate
// them either.
func SetClipPlanes(near, far float64) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.nearClip = near
	globalViewerSettings.farClip = far
}

// GetClipStep returns how much one key press moves a clip plane
func GetClipStep() float64 {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.clipStep
}

// SetClipStep sets the clip plane key step; non-positive values are ignored
func SetClipStep(step float64) {
	if step <= 0 {
		return
	}
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.clipStep = step
}

// GetSlowFrameThreshold returns the frame time above which a frame is logged
func GetSlowFrameThreshold() time.Duration {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.slowFrame
}

// SetSlowFrameThreshold sets the slow frame threshold
func SetSlowFrameThreshold(d time.Duration) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.slowFrame = d
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
