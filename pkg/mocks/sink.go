package mocks

import (
	"image"
	"sync"

	"github.com/user/h5tomp4/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	StackJSON    []byte
	Frames       map[int]image.Image
	ContactSheet image.Image

	SaveFrameErr error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Frames:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveStackJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StackJSON = data
	return nil
}

func (m *DebugSink) SaveFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveFrameErr != nil {
		return m.SaveFrameErr
	}
	m.Frames[index] = img
	return nil
}

func (m *DebugSink) SaveContactSheet(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ContactSheet = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
