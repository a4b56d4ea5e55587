package mocks

import (
	"github.com/user/h5tomp4/pkg/ports"
)

// VideoProber is a mock implementation of ports.VideoProber.
type VideoProber struct {
	ProbeFunc func(path string) (ports.VideoInfo, error)
}

func (m *VideoProber) Probe(path string) (ports.VideoInfo, error) {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(path)
	}
	return ports.VideoInfo{Codec: ports.CodecMP4V}, nil
}

var _ ports.VideoProber = (*VideoProber)(nil)
