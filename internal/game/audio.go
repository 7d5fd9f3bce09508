package game

// CuePlayer plays the three audio cues of a run. Implementations must not
// block and must swallow their own playback errors.
type CuePlayer interface {
	StartMusic()
	StopMusic()
	SetEngine(on bool)
	PlayCrash()
	Close() error
}

// NopCues is the silent player used when audio is disabled or unavailable.
type NopCues struct{}

func (NopCues) StartMusic() {}
func (NopCues) StopMusic() {}
func (NopCues) SetEngine(bool) {}
func (NopCues) PlayCrash() {}
func (NopCues) Close() error { return nil }

// AttachAudio wires run events to cues: music for the length of a run, the
// engine while the throttle is held, and a crash on game over.
func AttachAudio(bus *EventBus, cues CuePlayer) {
	if cues == nil {
		cues = NopCues{}
	}
	bus.Subscribe(EventRunStarted, func(Event) {
		cues.StartMusic()
	})
	bus.Subscribe(EventThrottle, func(e Event) {
		cues.SetEngine(e.Data != 0)
	})
	bus.Subscribe(EventGameOver, func(Event) {
		cues.StopMusic()
		cues.SetEngine(false)
		cues.PlayCrash()
	})
}
