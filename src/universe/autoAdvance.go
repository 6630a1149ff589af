package universe

//DefFramesPerStep is the cadence of the original window: one generation every 300 frames
const DefFramesPerStep = 300

//AutoAdvance is the frame driven timer of the automatic mode
//the window calls Tick once per frame and steps the universe when it returns true
type AutoAdvance struct {
	enabled       bool
	frames        int
	framesPerStep int
}

//NewAutoAdvance creates the disabled timer which fires every framesPerStep frames
func NewAutoAdvance(framesPerStep int) *AutoAdvance {
	if framesPerStep <= 0 {
		framesPerStep = DefFramesPerStep
	}
	return &AutoAdvance{framesPerStep: framesPerStep}
}

//Toggle switches the automatic mode on or off and restarts the frame count
func (a *AutoAdvance) Toggle() {
	a.enabled = !a.enabled
	a.frames = 0
}

//Enabled reports whether the automatic mode is on
func (a *AutoAdvance) Enabled() bool {
	return a.enabled
}

//Tick counts one frame, returns true when the next generation is due
func (a *AutoAdvance) Tick() bool {
	if !a.enabled {
		return false
	}
	a.frames++
	if a.frames < a.framesPerStep {
		return false
	}
	a.frames = 0
	return true
}
