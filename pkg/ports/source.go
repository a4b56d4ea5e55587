package ports

import "github.com/user/h5tomp4/pkg/framestack"

// FrameSource reads a named frame array out of a container file.
type FrameSource interface {
	// Load materializes the whole dataset in memory.
	// The container is closed before Load returns.
	Load(path, dataset string) (framestack.Stack, error)

	// List describes the top-level datasets of a container.
	List(path string) ([]DatasetInfo, error)
}

// DatasetInfo describes one dataset of a container.
type DatasetInfo struct {
	Name  string
	Shape []int
	Type  string // Element class and size, e.g. "uint8"
}
