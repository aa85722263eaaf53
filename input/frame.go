package input

// Frame is the input snapshot consumed by one tick
// Presses are edge-triggered: each press is seen by exactly one frame
type Frame struct {
	pressed [actionCount]bool
	axes    [axisCount]float64
}

// Pressed reports whether the action was pressed since the previous frame
func (f *Frame) Pressed(a Action) bool {
	if f == nil || a >= actionCount {
		return false
	}
	return f.pressed[a]
}

// Axis returns the axis value for this frame
func (f *Frame) Axis(a Axis) float64 {
	if f == nil || a >= axisCount {
		return 0
	}
	return f.axes[a]
}

// NewFrame builds a frame directly, used by scripted drivers and tests
func NewFrame(pressed []Action, axes map[Axis]float64) *Frame {
	f := &Frame{}
	for _, a := range pressed {
		if a < actionCount {
			f.pressed[a] = true
		}
	}
	for a, v := range axes {
		if a < axisCount {
			f.axes[a] = clampAxis(v)
		}
	}
	return f
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
