package object

// The Environment is a stack of frames, each mapping variable names
// to values. Frame 0 is the base frame of the program and can never
// be closed. Lookup walks from the innermost frame outwards, so an
// inner binding shadows an outer one.
type Environment struct {
	frames []map[string]Object
}

func NewEnvironment() *Environment {
	return &Environment{frames: []map[string]Object{{}}}
}

// Depth returns the number of open frames. It never drops below 1.
func (e *Environment) Depth() int {
	return len(e.frames)
}

func (e *Environment) OpenScope() {
	e.frames = append(e.frames, map[string]Object{})
}

// CloseScope pops the innermost frame. It refuses to close the base
// frame and leaves the store unchanged in that case.
func (e *Environment) CloseScope() bool {
	if len(e.frames) <= 1 {
		return false
	}
	e.frames = e.frames[:len(e.frames)-1]
	return true
}

// Define inserts a binding into the innermost frame and returns the
// frame's id, or -1 if the name is already bound there.
func (e *Environment) Define(name string, val Object) int {
	frame := len(e.frames) - 1
	if _, ok := e.frames[frame][name]; ok {
		return -1
	}
	e.frames[frame][name] = val
	return frame
}

// SetInFrame overwrites the binding in the identified frame. The
// curve samplers use this to move the hidden sample point without
// redefining it each step.
func (e *Environment) SetInFrame(name string, val Object, frame int) bool {
	if frame < 0 || frame >= len(e.frames) {
		return false
	}
	if _, ok := e.frames[frame][name]; !ok {
		return false
	}
	e.frames[frame][name] = val
	return true
}

// Set reassigns an existing binding, wherever it lives.
func (e *Environment) Set(name string, val Object) bool {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = val
			return true
		}
	}
	return false
}

func (e *Environment) Get(name string) (Object, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if val, ok := e.frames[i][name]; ok {
			return val, true
		}
	}
	return nil, false
}

// GetLocal looks a name up in the innermost frame only.
func (e *Environment) GetLocal(name string) (Object, bool) {
	val, ok := e.frames[len(e.frames)-1][name]
	return val, ok
}

func (e *Environment) Exists(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// HiddenVariableName is the name under which the curve samplers
// expose the current sample point to argument expressions.
const HiddenVariableName = "_p"

// A HiddenScope holds the frame opened for the hidden sample-point
// variable. Release closes the frame and must be called exactly once
// on every exit path of the operation that opened it; callers defer
// it immediately after opening.
type HiddenScope struct {
	env      *Environment
	frame    int
	released bool
}

// OpenHiddenScope opens a fresh frame and defines the hidden variable
// in it.
func (e *Environment) OpenHiddenScope(point Object) *HiddenScope {
	e.OpenScope()
	frame := e.Define(HiddenVariableName, point)
	return &HiddenScope{env: e, frame: frame}
}

// Update rebinds the hidden variable in place.
func (h *HiddenScope) Update(point Object) {
	h.env.SetInFrame(HiddenVariableName, point, h.frame)
}

func (h *HiddenScope) Release() bool {
	if h.released {
		return true
	}
	h.released = true
	return h.env.CloseScope()
}
