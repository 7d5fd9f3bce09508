package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCues struct {
	calls []string
}

func (r *recordingCues) StartMusic() { r.calls = append(r.calls, "music:on") }
func (r *recordingCues) StopMusic() { r.calls = append(r.calls, "music:off") }
func (r *recordingCues) SetEngine(on bool) {
	if on {
		r.calls = append(r.calls, "engine:on")
	} else {
		r.calls = append(r.calls, "engine:off")
	}
}
func (r *recordingCues) PlayCrash() { r.calls = append(r.calls, "crash") }
func (r *recordingCues) Close() error { return nil }

func TestAttachAudio_FollowsRun(t *testing.T) {
	s, _ := newTestSession(t)
	cues := &recordingCues{}
	AttachAudio(s.Bus, cues)

	require.NoError(t, s.PickCar(2))
	s.Input.Set(ControlAccelerate, true)
	s.Tick()
	s.Tick()
	s.Input.Set(ControlAccelerate, false)
	s.Tick()
	s.Input.Set(ControlAccelerate, true)
	s.Tick()
	crashNextTick(s)
	require.True(t, s.Tick())

	assert.Equal(t, []string{
		"music:on",
		"engine:on",
		"engine:off",
		"engine:on",
		"music:off",
		"engine:off",
		"crash",
	}, cues.calls)
}

func TestAttachAudio_NilPlayerIsSilent(t *testing.T) {
	s, _ := newTestSession(t)
	AttachAudio(s.Bus, nil)
	require.NoError(t, s.PickCar(1))
	crashNextTick(s)
	assert.NotPanics(t, func() { s.Tick() })
}
