// Package debugui provides immediate-mode GUI integration for worlds using
// Dear ImGui. Render functions live in ImguiItem components, a dependent
// system runs them once per tick, and ImGui's input capture state is
// published through a shared cell so the host loop can yield input to the UI.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/loam/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each tick.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state. Share one cell
// of it between the render system and the host loop to decide when ImGui
// is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem runs every ImguiItem render function once per tick and
// refreshes the input state cell with ImGui's current capture flags.
// Register it as a dependent system and wrap the world's tick in the
// backend's BeginFrame and EndFrame calls.
type ImguiSystem struct {
	input *ecs.Cell[ImguiInputState]
}

// NewImguiSystem returns the render system. input may be nil when the
// host loop does not track capture state.
func NewImguiSystem(input *ecs.Cell[ImguiInputState]) *ImguiSystem {
	return &ImguiSystem{input: input}
}

// Execute updates the capture flags and calls each render function.
func (s *ImguiSystem) Execute(q *ecs.Query) {
	if s.input != nil {
		s.input.Do(func(state *ImguiInputState) {
			state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
			state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
		})
	}

	ecs.Each(q, func(_ ecs.Entity, item *ImguiItem) {
		if item.Render != nil {
			item.Render()
		}
	})
}

// Components declares the single table the system reads.
func (s *ImguiSystem) Components() ecs.TypeSet {
	return ecs.NewTypeSet(ecs.Key[ImguiItem]())
}

func (s *ImguiSystem) Name() string { return "imgui" }
