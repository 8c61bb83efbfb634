// internal/player/mock.go
package player

import "time"

// Mock is a test double for Handle.
type Mock struct {
	source     string
	state      State
	position   time.Duration
	duration   time.Duration
	level      float64
	closed     bool
	playErr    error
	sourceErr  error
	playCalls  int
	pauseCalls int
	sources    []string
	volumes    []float64
	seeks      []time.Duration
	finishedCh chan struct{}
}

// NewMock creates a new mock handle for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		level:      1,
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) SetSource(url string) error {
	m.sources = append(m.sources, url)
	if m.sourceErr != nil {
		return m.sourceErr
	}
	m.source = url
	m.position = 0
	m.state = Paused
	return nil
}

func (m *Mock) Source() string { return m.source }

func (m *Mock) Play() error {
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.state == Stopped {
		return ErrNoSource
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) SetPosition(pos time.Duration) {
	m.seeks = append(m.seeks, pos)
	m.position = pos
}

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetVolume(level float64) {
	m.level = clampLevel(level)
	m.volumes = append(m.volumes, m.level)
}

func (m *Mock) Volume() float64 { return m.level }

func (m *Mock) Finished() <-chan struct{} { return m.finishedCh }

func (m *Mock) Close() {
	m.closed = true
	m.source = ""
	m.state = Stopped
}

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetSourceError(err error) { m.sourceErr = err }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) Sources() []string { return m.sources }

func (m *Mock) Volumes() []float64 { return m.volumes }

func (m *Mock) Seeks() []time.Duration { return m.seeks }

func (m *Mock) Closed() bool { return m.closed }

// SimulateFinished simulates the source playing to its end.
func (m *Mock) SimulateFinished() {
	m.state = Paused
	m.position = m.duration
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// Verify Mock implements Handle at compile time.
var _ Handle = (*Mock)(nil)

// MockFactory hands out Mock handles and remembers them.
type MockFactory struct {
	created []*Mock
	err     error
	prepare func(*Mock)
}

// NewMockFactory creates a factory of mock handles.
func NewMockFactory() *MockFactory {
	return &MockFactory{}
}

// Factory returns the Factory function to inject.
func (f *MockFactory) Factory() Factory {
	return func() (Handle, error) {
		if f.err != nil {
			return nil, f.err
		}
		m := NewMock()
		if f.prepare != nil {
			f.prepare(m)
		}
		f.created = append(f.created, m)
		return m, nil
	}
}

// SetError makes the factory fail.
func (f *MockFactory) SetError(err error) { f.err = err }

// Prepare configures each new mock before it is handed out.
func (f *MockFactory) Prepare(fn func(*Mock)) { f.prepare = fn }

// Created returns every mock handed out so far.
func (f *MockFactory) Created() []*Mock { return f.created }

// Last returns the most recent mock, or nil.
func (f *MockFactory) Last() *Mock {
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}
