// Package otoout plays the game's cues through an oto v2 context.
package otoout

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"go.uber.org/zap"

	"roadrush/internal/audio"
)

// maxCrashes caps overlapping collision cues.
const maxCrashes = 2

// Player implements game.CuePlayer on top of oto.
type Player struct {
	ctx   *oto.Context
	ready chan struct{}
	opts  audio.Options
	log   *zap.SugaredLogger

	mu           sync.Mutex
	music        oto.Player
	engine       *audio.Engine
	enginePlayer oto.Player
	crashes      atomic.Int32
	crashSeed    uint64
	closed       bool
}

// New opens the audio device. The context finishes warming up in the
// background; cues requested before it is ready are dropped.
func New(opts audio.Options, log *zap.SugaredLogger) (*Player, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	opts = opts.Clamp()
	p := &Player{
		ctx:       ctx,
		ready:     ready,
		opts:      opts,
		log:       log,
		engine:    audio.NewEngine(opts.Seed ^ 0xE9),
		crashSeed: opts.Seed,
	}
	// The engine is silent until the throttle is held, so it can run from
	// the moment the device is up.
	go func() {
		<-ready
		p.startEngine()
	}()
	return p, nil
}

func (p *Player) isReady() bool {
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

func (p *Player) StartMusic() {
	if !p.isReady() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.music != nil {
		p.music.Close()
	}
	player := p.ctx.NewPlayer(audio.NewPCMReader(audio.NewMusic(uint64(time.Now().UnixNano()))))
	player.SetVolume(p.opts.MusicVolume)
	player.Play()
	p.music = player
}

func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music != nil {
		if err := p.music.Close(); err != nil {
			p.log.Debugw("close music player", "error", err)
		}
		p.music = nil
	}
}

// SetEngine flips the throttle flag of the always-running engine voice.
func (p *Player) SetEngine(on bool) {
	p.engine.SetOn(on)
	if on && p.isReady() {
		p.startEngine()
	}
}

func (p *Player) startEngine() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.enginePlayer != nil {
		return
	}
	player := p.ctx.NewPlayer(audio.NewPCMReader(p.engine))
	player.SetVolume(p.opts.SFXVolume)
	player.Play()
	p.enginePlayer = player
}

// PlayCrash fires the collision cue. At most two overlap.
func (p *Player) PlayCrash() {
	if !p.isReady() {
		return
	}
	if !p.reserveCrash() {
		return
	}

	p.mu.Lock()
	p.crashSeed++
	seed := p.crashSeed
	closed := p.closed
	p.mu.Unlock()
	if closed {
		p.crashes.Add(-1)
		return
	}

	go func() {
		defer p.crashes.Add(-1)
		clip := audio.NewClip(audio.GenCrash(seed^uint64(time.Now().UnixNano())), 1)
		player := p.ctx.NewPlayer(audio.NewPCMReader(clip))
		player.SetVolume(p.opts.SFXVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Err(); err != nil {
			p.log.Debugw("crash cue", "error", err)
		}
		player.Close()
	}()
}

// reserveCrash claims one of the maxCrashes overlap slots.
func (p *Player) reserveCrash() bool {
	for {
		n := p.crashes.Load()
		if n >= maxCrashes {
			return false
		}
		if p.crashes.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	var firstErr error
	for _, pl := range []oto.Player{p.music, p.enginePlayer} {
		if pl == nil {
			continue
		}
		if err := pl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.music, p.enginePlayer = nil, nil
	if err := p.ctx.Suspend(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
