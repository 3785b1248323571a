package hal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleFreq = 48000
	toneFreq   = 440

	// One frame worth of samples is queued at a time; refilled whenever
	// the queue runs below this while the tone is on.
	toneChunk = sampleFreq / 60
)

// beeper plays the machine's single tone through an SDL audio device: a
// square wave queued while the sound timer is running, silence otherwise.
type beeper struct {
	id      sdl.AudioDeviceID
	silence uint8
	wave    []uint8
	playing bool
}

func newBeeper() (*beeper, error) {
	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var obtained sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &obtained, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	b := &beeper{
		id:      id,
		silence: obtained.Silence,
	}
	b.wave = b.squareWave(toneChunk)

	sdl.PauseAudioDevice(id, true)
	return b, nil
}

// squareWave renders n samples of the tone around the device's silence
// level.
func (b *beeper) squareWave(n int) []uint8 {
	const amplitude = 24

	wave := make([]uint8, n)
	period := sampleFreq / toneFreq
	for i := range wave {
		if (i/(period/2))%2 == 0 {
			wave[i] = b.silence + amplitude
		} else {
			wave[i] = b.silence - amplitude
		}
	}
	return wave
}

func (b *beeper) setTone(on bool) error {
	if !on {
		if b.playing {
			sdl.PauseAudioDevice(b.id, true)
			sdl.ClearQueuedAudio(b.id)
			b.playing = false
		}
		return nil
	}

	if sdl.GetQueuedAudioSize(b.id) < toneChunk {
		if err := sdl.QueueAudio(b.id, b.wave); err != nil {
			return fmt.Errorf("failed to queue audio: %w", err)
		}
	}
	if !b.playing {
		sdl.PauseAudioDevice(b.id, false)
		b.playing = true
	}
	return nil
}

func (b *beeper) close() {
	sdl.ClearQueuedAudio(b.id)
	sdl.CloseAudioDevice(b.id)
}
