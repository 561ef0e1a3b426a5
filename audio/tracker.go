package audio

// Transition is the progress source a Tracker watches
type Transition interface {
	// Raw is linear progress in [0,1]
	Raw() float64
	// Settled reports rest at either end
	Settled() bool
}

// Tracker turns a per-frame transition state into settle cues
// A cue fires once on arrival at an end, and re-arms after leaving it
type Tracker struct {
	last  Cue
	armed bool
}

// Observe feeds the current transition state
func (t *Tracker) Observe(tr Transition) Cue {
	at := CueNone
	if tr.Settled() {
		at = CueSettledEnd
		if tr.Raw() < 0.5 {
			at = CueSettledStart
		}
	}

	if at == CueNone {
		t.armed = true
		t.last = CueNone
		return CueNone
	}
	if at == t.last {
		return CueNone
	}
	t.last = at
	if !t.armed {
		// Initial resting position is silent
		return CueNone
	}
	return at
}
