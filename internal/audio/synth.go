// Package audio synthesises every sound the game plays. Nothing is loaded
// from disk; backends pull stereo frames from a Voice.
package audio

import (
	"io"
	"math"
	"sync/atomic"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = 8 // stereo float32 LE
)

// Voice produces stereo frames in [-1,1]. ok is false once a finite voice
// has nothing left.
type Voice interface {
	Frame() (left, right float64, ok bool)
}

// Options are the mix levels shared by every backend.
type Options struct {
	MusicVolume float64
	SFXVolume   float64
	Seed        uint64
}

func DefaultOptions() Options {
	return Options{MusicVolume: 0.14, SFXVolume: 0.58}
}

// Clamp keeps volumes inside [0,1].
func (o Options) Clamp() Options {
	o.MusicVolume = clamp01(o.MusicVolume)
	o.SFXVolume = clamp01(o.SFXVolume)
	return o
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ---- Byte stream -----------------------------------------------------------

// PCMReader renders a Voice as interleaved float32 LE stereo, the format
// oto's FormatFloat32LE expects.
type PCMReader struct {
	v Voice
}

func NewPCMReader(v Voice) *PCMReader { return &PCMReader{v: v} }

func (r *PCMReader) Read(p []byte) (int, error) {
	frames := len(p) / BytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	for i := 0; i < frames; i++ {
		l, rr, ok := r.v.Frame()
		if !ok {
			if i == 0 {
				return 0, io.EOF
			}
			return i * BytesPerFrame, nil
		}
		putStereoF32LR(p, i, l, rr)
	}
	return frames * BytesPerFrame, nil
}

// putStereoF32LR writes independent left/right samples at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// ---- Building blocks -------------------------------------------------------

// softSat is a gentle tanh-like saturator.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalised progress [0,1].
// attack, decay and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns noise in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func softSquareWave(phase float64) float64 {
	return math.Tanh(math.Sin(phase) * 3.4)
}

// ---- Clips -----------------------------------------------------------------

// Clip is a finite mono voice.
type Clip struct {
	samples []float64
	pos     int
	gain    float64
}

func NewClip(samples []float64, gain float64) *Clip {
	return &Clip{samples: samples, gain: gain}
}

func (c *Clip) Frame() (float64, float64, bool) {
	if c.pos >= len(c.samples) {
		return 0, 0, false
	}
	s := c.samples[c.pos] * c.gain
	c.pos++
	return s, s, true
}

// Len is the clip length in frames.
func (c *Clip) Len() int { return len(c.samples) }

// GenCrash renders the collision cue: a noisy impact with a sub thump, then
// a falling three-note sting.
func GenCrash(seed uint64) []float64 {
	const dur = 1.1
	n := int(dur * SampleRate)
	out := make([]float64, n)
	if seed == 0 {
		seed = 0xC0FFEE
	}

	// Impact.
	impact := int(0.45 * SampleRate)
	lp1, lp2 := 0.0, 0.0
	subPhase := 0.0
	for i := 0; i < impact; i++ {
		p := float64(i) / float64(impact)
		subFreq := 120.0 * math.Pow(30.0/120.0, p*2)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*5) * 0.6

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*6) * 0.45

		crack := 0.0
		if p < 0.03 {
			crack = lcg(&seed) * (1 - p/0.03) * 0.8
		}
		out[i] = sub + body + crack
	}

	// Sting: E4, C4, A3.
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.30},
		{261.63, 0.44},
		{220.00, 0.58},
	}
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.08
			out[i] += s
		}
	}

	for i := range out {
		out[i] = softSat(out[i])
	}
	return out
}

// ---- Engine ----------------------------------------------------------------

// Engine is an endless voice that swells while the throttle is held and
// fades to silence once it is released. SetOn is safe from any goroutine.
type Engine struct {
	on    atomic.Bool
	level float64
	phase float64
	t     float64
	seed  uint64
	lp    float64
}

// engineGate is the released level below which the engine outputs silence.
const engineGate = 0.01

func NewEngine(seed uint64) *Engine {
	return &Engine{seed: seed | 1}
}

func (e *Engine) SetOn(on bool) { e.on.Store(on) }

func (e *Engine) On() bool { return e.on.Load() }

func (e *Engine) Frame() (float64, float64, bool) {
	target := 0.0
	if e.on.Load() {
		target = 1.0
	}
	// About 80ms to swell and 200ms to settle.
	if target > e.level {
		e.level += (target - e.level) * 0.0003
	} else {
		e.level += (target - e.level) * 0.00012
	}
	e.t += 1.0 / SampleRate
	if target == 0 && e.level < engineGate {
		e.level = 0
		return 0, 0, true
	}

	freq := 55 + 55*e.level
	e.phase += 2 * math.Pi * freq / SampleRate
	if e.phase > 2*math.Pi {
		e.phase -= 2 * math.Pi
	}
	e.lp = e.lp*0.96 + lcg(&e.seed)*0.04
	throb := 0.75 + 0.25*math.Sin(2*math.Pi*(6+10*e.level)*e.t)
	s := (softSquareWave(e.phase)*0.5 + triWave(e.phase*2)*0.25 + e.lp*0.6) * throb
	s *= 0.4 * e.level
	s = softSat(s)
	return s, s, true
}

// Level is the current swell in [0,1].
func (e *Engine) Level() float64 { return e.level }

// ---- Music -----------------------------------------------------------------

// Music is an endless driving loop: four-on-the-floor kick, off-beat hats,
// a pulse bass and a pluck arpeggio over an eight-chord cycle.
type Music struct {
	t    float64
	seed uint64
}

func NewMusic(seed uint64) *Music {
	return &Music{seed: seed | 1}
}

var musicChords = [][]float64{
	{220.0, 261.6, 329.6, 392.0}, // Am7
	{174.6, 220.0, 261.6, 349.2}, // Fmaj7
	{261.6, 329.6, 392.0, 493.9}, // Cmaj7
	{196.0, 246.9, 293.7, 392.0}, // G
	{220.0, 261.6, 329.6, 440.0}, // Am
	{146.8, 174.6, 220.0, 293.7}, // Dm7
	{164.8, 207.7, 246.9, 329.6}, // E7
	{164.8, 207.7, 246.9, 293.7}, // E7sus
}

const (
	musicTempo     = 2.2 // 132 BPM
	beatsPerChord  = 4
	musicStep16Len = 1.0 / (musicTempo * 4.0)
	musicStep8Len  = 1.0 / (musicTempo * 2.0)
)

var (
	snarePattern = [16]bool{
		false, false, false, false,
		true, false, false, false,
		false, false, false, false,
		true, false, false, true,
	}
	bassPattern = [8]bool{true, true, false, true, true, false, true, true}
	arpOrder    = [8]int{0, 1, 2, 3, 2, 1, 2, 3}
)

func (m *Music) Frame() (float64, float64, bool) {
	m.t += 1.0 / SampleRate
	beatLen := 1.0 / musicTempo
	beatTrig := math.Mod(m.t, beatLen)
	step16Trig := math.Mod(m.t, musicStep16Len)
	step8Trig := math.Mod(m.t, musicStep8Len)
	step16 := int(m.t*musicTempo*4) % 16
	step8 := int(m.t*musicTempo*2) % 8
	beat := int(m.t * musicTempo)
	chord := musicChords[(beat/beatsPerChord)%len(musicChords)]

	s := 0.0

	s += kick(beatTrig) * 0.55
	if snarePattern[step16] {
		s += snare(step16Trig, &m.seed) * 0.45
	}
	if step8%2 == 1 {
		s += hihat(step8Trig, step16%4 == 3, &m.seed)
	}

	if bassPattern[step8] {
		freq := chord[0] / 2
		env := adsr(math.Mod(m.t*musicTempo*2, 1.0), 0.02, 0.5, 0.3, 0.2)
		ph := 2 * math.Pi * freq * m.t
		s += (triWave(ph)*0.6 + softSquareWave(ph*0.5)*0.2) * env * 0.4
	}

	arpFreq := chord[arpOrder[step8]] * 2
	arpEnv := adsr(math.Mod(m.t*musicTempo*2, 1.0), 0.01, 0.34, 0.14, 0.2)
	s += fm(m.t, arpFreq, 2.0, 2.4*arpEnv) * arpEnv * 0.12

	duck := 1.0 - 0.25*math.Exp(-beatTrig*12.0)
	s = softSat(s * duck * 0.9)
	pan := 0.1 * math.Sin(2*math.Pi*0.12*m.t)
	return softSat(s * (1 - pan)), softSat(s * (1 + pan)), true
}

// kick is a pitch-swept sine with a click, given seconds since trigger.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	noise := (lcg(seed) - lcg(seed)*0.55) * env * 0.6
	return softSat(body + noise)
}

func hihat(trig float64, open bool, seed *uint64) float64 {
	decay, limit := 42.0, 0.06
	if open {
		decay, limit = 15.0, 0.18
	}
	if trig > limit {
		return 0
	}
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	return softSat((lcg(seed)*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07)
}
