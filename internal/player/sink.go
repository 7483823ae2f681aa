package player

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// sink is the playback-control handle bound to the output device. It
// supports play, pause and absolute seek. Exactly one sink exists per
// running player, owned by the worker; tests substitute a fake.
type sink interface {
	play()
	pause()
	paused() bool
	position() time.Duration
	length() time.Duration
	seekTo(target time.Duration) error
	close() error
}

// The speaker binding is the live connection to the system audio output.
// It is opened once per process and outlives every sink bound to it.
var (
	deviceOpen       bool
	deviceSampleRate beep.SampleRate
)

const (
	// deviceBuffer is the speaker buffer length. A tenth of a second keeps
	// pause/seek latency low without audio dropouts.
	deviceBuffer = time.Second / 10

	resampleQuality = 4

	// seekSettle is how long the device buffer needs to flush stale audio
	// after a seek before unmuting.
	seekSettle = 100 * time.Millisecond
)

// openOutputDevice initializes the speaker for the given format. Subsequent
// calls reuse the already-open device; tracks with a different sample rate
// are resampled to the device rate.
func openOutputDevice(format beep.Format) error {
	if deviceOpen {
		return nil
	}
	deviceSampleRate = format.SampleRate
	if err := speaker.Init(deviceSampleRate, deviceSampleRate.N(deviceBuffer)); err != nil {
		return err
	}
	deviceOpen = true
	return nil
}

// beepSink drives a decoded source through the speaker. All mutable fields
// shared with the speaker goroutine are touched only under speaker.Lock,
// and the lock is held only across a single read or state flip, never
// across a sleep.
type beepSink struct {
	source *Source
	ctrl   *beep.Ctrl
	volume *effects.Volume
	total  time.Duration
	closed bool // guarded by speaker.Lock
}

// newBeepSink opens the output device, wraps the source in pause and volume
// controls, and starts it on the speaker. onDrained fires once the source
// has been fully consumed.
func newBeepSink(src *Source, onDrained func()) (*beepSink, error) {
	if err := openOutputDevice(src.Format); err != nil {
		return nil, err
	}

	var streamer beep.Streamer = src.Streamer
	if src.Format.SampleRate != deviceSampleRate {
		streamer = beep.Resample(resampleQuality, src.Format.SampleRate, deviceSampleRate, src.Streamer)
	}

	s := &beepSink{
		source: src,
		total:  src.Duration,
	}
	s.ctrl = &beep.Ctrl{Streamer: streamer}
	// Volume sits outermost so seeks can mute the decoder refill glitch.
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: 2}

	speaker.Play(beep.Seq(s.volume, beep.Callback(onDrained)))

	return s, nil
}

func (s *beepSink) play() {
	speaker.Lock()
	if !s.closed {
		s.ctrl.Paused = false
	}
	speaker.Unlock()
}

func (s *beepSink) pause() {
	speaker.Lock()
	if !s.closed {
		s.ctrl.Paused = true
	}
	speaker.Unlock()
}

func (s *beepSink) paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return s.ctrl.Paused
}

func (s *beepSink) position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	if s.closed {
		return 0
	}
	return s.source.Format.SampleRate.D(s.source.Streamer.Position())
}

func (s *beepSink) length() time.Duration {
	return s.total
}

// seekTo issues an absolute seek. The streamer is muted around the seek,
// then unmuted after the device buffer has flushed.
func (s *beepSink) seekTo(target time.Duration) error {
	speaker.Lock()
	if s.closed {
		speaker.Unlock()
		return nil
	}
	s.volume.Silent = true
	err := s.source.Streamer.Seek(s.source.Format.SampleRate.N(target))
	speaker.Unlock()

	time.Sleep(seekSettle)

	speaker.Lock()
	if !s.closed {
		s.volume.Silent = false
	}
	speaker.Unlock()

	return err
}

func (s *beepSink) close() error {
	speaker.Clear()
	speaker.Lock()
	s.closed = true
	speaker.Unlock()
	return s.source.Close()
}
