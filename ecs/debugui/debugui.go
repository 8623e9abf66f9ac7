// Package debugui draws Dear ImGui debug windows for scheduler-driven applications.
// Windows are plain values with a Render method; an Overlay renders them in
// registration order between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Window is anything that draws one or more ImGui windows.
type Window interface {
	Render()
}

// WindowFunc adapts a function to Window.
type WindowFunc func()

func (f WindowFunc) Render() {
	f()
}

// InputState reports whether ImGui is consuming mouse or keyboard input.
// Hosts check it before forwarding input to the simulation.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInputState reads the capture flags for the current ImGui frame.
func CurrentInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Overlay is an ordered set of debug windows that can be toggled as a whole.
type Overlay struct {
	windows []Window
	Visible bool
}

// NewOverlay creates a visible overlay.
func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{windows: windows, Visible: true}
}

// Add appends a window.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Len returns the number of registered windows.
func (o *Overlay) Len() int {
	return len(o.windows)
}

// Render draws every window when the overlay is visible.
func (o *Overlay) Render() {
	if !o.Visible {
		return
	}
	for _, w := range o.windows {
		w.Render()
	}
}
