// Package beepout plays the game's cues through the beep speaker.
package beepout

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"roadrush/internal/audio"
)

const sampleRate = beep.SampleRate(audio.SampleRate)

// voiceStreamer adapts an audio.Voice to beep.Streamer.
type voiceStreamer struct {
	v    audio.Voice
	gain float64
}

func (s *voiceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		l, r, more := s.v.Frame()
		if !more {
			return i, i > 0
		}
		samples[i][0] = l * s.gain
		samples[i][1] = r * s.gain
	}
	return len(samples), true
}

func (s *voiceStreamer) Err() error { return nil }

// Player implements game.CuePlayer on a beep mixer.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	music    *beep.Ctrl
	engine   *audio.Engine
	engineOn bool // engine voice has joined the mixer
	opts     audio.Options
	log      *zap.SugaredLogger
	seed     uint64
	crash    []float64 // rendered once; cues only wrap it

	lock, unlock func()
	closer       func()
}

// New initialises the speaker and starts the mixer.
func New(opts audio.Options, log *zap.SugaredLogger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	p := newPlayer(opts, log)
	p.lock, p.unlock, p.closer = speaker.Lock, speaker.Unlock, speaker.Close
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(opts audio.Options, log *zap.SugaredLogger) *Player {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	opts = opts.Clamp()
	return &Player{
		mixer:  &beep.Mixer{},
		engine: audio.NewEngine(opts.Seed ^ 0xE9),
		opts:   opts,
		log:    log,
		seed:   opts.Seed,
		crash:  audio.GenCrash(opts.Seed),
		lock:   func() {},
		unlock: func() {},
		closer: func() {},
	}
}

func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()
	if p.music != nil {
		p.music.Streamer = nil
	}
	p.seed++
	p.music = &beep.Ctrl{Streamer: &voiceStreamer{v: audio.NewMusic(p.seed), gain: p.opts.MusicVolume}}
	p.mixer.Add(p.music)
}

func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music == nil {
		return
	}
	p.lock()
	// A nil streamer makes the Ctrl report done, so the mixer drops it.
	p.music.Streamer = nil
	p.unlock()
	p.music = nil
}

// SetEngine adds the engine voice on first use and flips its throttle flag.
// Released, the voice fades to silence but stays in the mixer.
func (p *Player) SetEngine(on bool) {
	p.engine.SetOn(on)
	if !on {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.engineOn {
		return
	}
	p.lock()
	p.mixer.Add(&voiceStreamer{v: p.engine, gain: p.opts.SFXVolume})
	p.unlock()
	p.engineOn = true
}

// PlayCrash mixes in the pre-rendered collision clip.
func (p *Player) PlayCrash() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clip := audio.NewClip(p.crash, 1)
	p.lock()
	p.mixer.Add(&voiceStreamer{v: clip, gain: p.opts.SFXVolume})
	p.unlock()
}

// Playing reports how many streamers the mixer still holds.
func (p *Player) Playing() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.music = nil
	p.engineOn = false
	p.closer()
	return nil
}
