// Package sim provides in-memory driver implementations. They record
// every actuation for inspection, which makes them the drivers of
// choice for tests and for running the firmware without hardware.
package sim

import (
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/firmware/drivers"
)

// Motor records wheel-speed commands and explicit stops.
type Motor struct {
	// StopErr is returned from Stop when set, to exercise the
	// stop-failure tolerance of callers.
	StopErr error

	mu    sync.Mutex
	left  int
	right int
	stops int
	trace [][2]int
}

// SetSpeeds implements Motor.
func (m *Motor) SetSpeeds(left, right int) error {
	m.mu.Lock()
	m.left, m.right = left, right
	m.trace = append(m.trace, [2]int{left, right})
	m.mu.Unlock()
	glog.V(2).Infof("motor %d/%d", left, right)
	return nil
}

// Stop implements Motor.
func (m *Motor) Stop() error {
	m.mu.Lock()
	m.stops++
	err := m.StopErr
	m.mu.Unlock()
	glog.V(2).Info("motor stop")
	return err
}

// Speeds reports the last commanded speeds.
func (m *Motor) Speeds() (left, right int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.left, m.right
}

// Stops reports how many times Stop was called.
func (m *Motor) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// Trace reports all speed commands in order.
func (m *Motor) Trace() [][2]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	trace := make([][2]int, len(m.trace))
	copy(trace, m.trace)
	return trace
}

// Lights records the last color set.
type Lights struct {
	mu      sync.Mutex
	r, g, b byte
	sets    int
}

// SetColor implements Lights.
func (l *Lights) SetColor(r, g, b byte) error {
	l.mu.Lock()
	l.r, l.g, l.b = r, g, b
	l.sets++
	l.mu.Unlock()
	glog.V(2).Infof("lights #%02x%02x%02x", r, g, b)
	return nil
}

// Color reports the last color set.
func (l *Lights) Color() (r, g, b byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r, l.g, l.b
}

// Sets reports how many times the color was set.
func (l *Lights) Sets() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sets
}

// Buzzer records the last tone played.
type Buzzer struct {
	mu       sync.Mutex
	freqHz   int
	duration time.Duration
	tones    int
}

// Tone implements Buzzer.
func (b *Buzzer) Tone(freqHz int, duration time.Duration) error {
	b.mu.Lock()
	b.freqHz, b.duration = freqHz, duration
	b.tones++
	b.mu.Unlock()
	glog.V(2).Infof("tone %dHz for %s", freqHz, duration)
	return nil
}

// LastTone reports the last tone played.
func (b *Buzzer) LastTone() (freqHz int, duration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.freqHz, b.duration
}

// Tones reports how many tones were played.
func (b *Buzzer) Tones() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tones
}

// LineSensors reports a settable sensor state.
type LineSensors struct {
	mu          sync.Mutex
	left, right bool
}

// Set updates the simulated sensor state.
func (s *LineSensors) Set(left, right bool) {
	s.mu.Lock()
	s.left, s.right = left, right
	s.mu.Unlock()
}

// Read implements LineSensors.
func (s *LineSensors) Read() (left, right bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.left, s.right, nil
}

// Display records shown indicators.
type Display struct {
	mu      sync.Mutex
	current drivers.Indicator
	trace   []drivers.Indicator
}

// Show implements Display.
func (d *Display) Show(ind drivers.Indicator) error {
	d.mu.Lock()
	d.current = ind
	d.trace = append(d.trace, ind)
	d.mu.Unlock()
	glog.V(2).Infof("display %v", ind)
	return nil
}

// Current reports the indicator currently shown.
func (d *Display) Current() drivers.Indicator {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Trace reports all indicators shown in order.
func (d *Display) Trace() []drivers.Indicator {
	d.mu.Lock()
	defer d.mu.Unlock()
	trace := make([]drivers.Indicator, len(d.trace))
	copy(trace, d.trace)
	return trace
}
