package mocks

import (
	"github.com/user/h5tomp4/pkg/ports"
)

// VideoWriter is a mock implementation of ports.VideoWriter.
type VideoWriter struct {
	OpenFunc       func(path string, opts ports.WriterOptions) error
	WriteFrameFunc func(index int, bgr []byte) error
	CloseFunc      func() error

	// Recorded calls for verification
	OpenPath    string
	OpenOptions ports.WriterOptions
	OpenCalled  bool
	Frames      [][]byte
	CloseCount  int
}

func (m *VideoWriter) Open(path string, opts ports.WriterOptions) error {
	m.OpenCalled = true
	m.OpenPath = path
	m.OpenOptions = opts
	if m.OpenFunc != nil {
		return m.OpenFunc(path, opts)
	}
	return nil
}

func (m *VideoWriter) WriteFrame(bgr []byte) error {
	index := len(m.Frames)
	m.Frames = append(m.Frames, append([]byte(nil), bgr...))
	if m.WriteFrameFunc != nil {
		return m.WriteFrameFunc(index, bgr)
	}
	return nil
}

func (m *VideoWriter) Close() error {
	m.CloseCount++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.VideoWriter = (*VideoWriter)(nil)
