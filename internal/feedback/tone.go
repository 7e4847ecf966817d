package feedback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// Tone defaults.
const (
	DefaultToneFrequency = 880.0
	DefaultToneLength    = 18 * time.Millisecond
	DefaultToneVolume    = -2.0

	toneSampleRate = beep.SampleRate(44100)
)

// Tone plays a short sine click through the audio speaker.
// The speaker is initialised on the first pulse.
type Tone struct {
	Frequency float64
	Length    time.Duration
	Volume    float64 // base-2 exponent, 0 is unchanged

	initOnce sync.Once
	initErr  error
}

// NewTone returns a tone backend with the default click settings.
func NewTone() *Tone {
	return &Tone{
		Frequency: DefaultToneFrequency,
		Length:    DefaultToneLength,
		Volume:    DefaultToneVolume,
	}
}

// Perform queues the click on the speaker and returns without waiting for it.
func (t *Tone) Perform() error {
	t.initOnce.Do(func() {
		t.initErr = speaker.Init(toneSampleRate, toneSampleRate.N(time.Second/20))
	})
	if t.initErr != nil {
		return fmt.Errorf("init speaker: %w", t.initErr)
	}

	streamer, err := t.streamer()
	if err != nil {
		return err
	}
	speaker.Play(streamer)
	return nil
}

func (t *Tone) streamer() (beep.Streamer, error) {
	freq := t.Frequency
	if freq <= 0 {
		freq = DefaultToneFrequency
	}
	length := t.Length
	if length <= 0 {
		length = DefaultToneLength
	}

	sine, err := generators.SineTone(toneSampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}

	return &effects.Volume{
		Streamer: beep.Take(toneSampleRate.N(length), sine),
		Base:     2,
		Volume:   t.Volume,
	}, nil
}
