package mocks

import (
	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource.
type FrameSource struct {
	LoadFunc func(path, dataset string) (framestack.Stack, error)
	ListFunc func(path string) ([]ports.DatasetInfo, error)

	// Recorded calls for verification
	LoadCalls int
	LastPath  string
	LastName  string
}

func (m *FrameSource) Load(path, dataset string) (framestack.Stack, error) {
	m.LoadCalls++
	m.LastPath = path
	m.LastName = dataset
	if m.LoadFunc != nil {
		return m.LoadFunc(path, dataset)
	}
	return framestack.Zeros(1, 2, 2), nil
}

func (m *FrameSource) List(path string) ([]ports.DatasetInfo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(path)
	}
	return nil, nil
}

var _ ports.FrameSource = (*FrameSource)(nil)
