// Package hdf5source reads frame arrays out of HDF5 containers.
package hdf5source

import (
	"fmt"

	"gonum.org/v1/hdf5"

	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/ports"
)

// Source implements ports.FrameSource on top of the HDF5 C library.
type Source struct{}

// New creates a new Source.
func New() *Source {
	return &Source{}
}

// Load reads the whole top-level dataset into memory.
//
// Integers and floats are read at a precision that holds every source
// value and cast to bytes with modulo-256 wraparound, so uint8 data comes
// back unchanged and int8 -1 becomes 255.
func (s *Source) Load(path, dataset string) (framestack.Stack, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return framestack.Stack{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if !f.LinkExists(dataset) {
		return framestack.Stack{}, fmt.Errorf("%w: '%s' not in %s", ports.ErrMissingKey, dataset, path)
	}

	dset, err := f.OpenDataset(dataset)
	if err != nil {
		return framestack.Stack{}, fmt.Errorf("open dataset %s: %w", dataset, err)
	}
	defer dset.Close()

	shape, err := datasetShape(dset)
	if err != nil {
		return framestack.Stack{}, fmt.Errorf("read shape of %s: %w", dataset, err)
	}

	dtype, err := dset.Datatype()
	if err != nil {
		return framestack.Stack{}, fmt.Errorf("read type of %s: %w", dataset, err)
	}
	defer dtype.Close()

	pix, err := readBytes(dset, dtype, elements(shape))
	if err != nil {
		return framestack.Stack{}, fmt.Errorf("read dataset %s: %w", dataset, err)
	}

	return framestack.New(pix, shape...), nil
}

// List describes every top-level dataset of the container.
func (s *Source) List(path string) ([]ports.DatasetInfo, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := f.NumObjects()
	if err != nil {
		return nil, fmt.Errorf("count objects: %w", err)
	}

	var infos []ports.DatasetInfo
	for i := uint(0); i < n; i++ {
		kind, err := f.ObjectTypeByIndex(i)
		if err != nil || kind != hdf5.H5G_DATASET {
			continue
		}
		name, err := f.ObjectNameByIndex(i)
		if err != nil {
			return nil, fmt.Errorf("object %d name: %w", i, err)
		}
		info, err := describe(f, name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}

func describe(f *hdf5.File, name string) (ports.DatasetInfo, error) {
	dset, err := f.OpenDataset(name)
	if err != nil {
		return ports.DatasetInfo{}, fmt.Errorf("open dataset %s: %w", name, err)
	}
	defer dset.Close()

	shape, err := datasetShape(dset)
	if err != nil {
		return ports.DatasetInfo{}, fmt.Errorf("read shape of %s: %w", name, err)
	}

	dtype, err := dset.Datatype()
	if err != nil {
		return ports.DatasetInfo{}, fmt.Errorf("read type of %s: %w", name, err)
	}
	defer dtype.Close()

	return ports.DatasetInfo{
		Name:  name,
		Shape: shape,
		Type:  typeName(dtype),
	}, nil
}

func datasetShape(dset *hdf5.Dataset) ([]int, error) {
	space := dset.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, err
	}

	shape := make([]int, len(dims))
	for i, d := range dims {
		shape[i] = int(d)
	}
	return shape, nil
}

func readBytes(dset *hdf5.Dataset, dtype *hdf5.Datatype, n int) ([]uint8, error) {
	switch dtype.Class() {
	case hdf5.T_INTEGER:
		// HDF5 saturates int8 to uint8 on read; int16 holds both
		// single-byte kinds exactly so Cast can wrap them.
		if dtype.Size() == 1 {
			vals := make([]int16, n)
			if err := dset.Read(&vals); err != nil {
				return nil, err
			}
			return framestack.Cast(vals), nil
		}
		vals := make([]int64, n)
		if err := dset.Read(&vals); err != nil {
			return nil, err
		}
		return framestack.Cast(vals), nil
	case hdf5.T_FLOAT:
		vals := make([]float64, n)
		if err := dset.Read(&vals); err != nil {
			return nil, err
		}
		return framestack.Cast(vals), nil
	default:
		return nil, fmt.Errorf("unsupported element type %s", typeName(dtype))
	}
}

func typeName(dtype *hdf5.Datatype) string {
	bits := dtype.Size() * 8
	switch dtype.Class() {
	case hdf5.T_INTEGER:
		if unsigned(dtype) {
			return fmt.Sprintf("uint%d", bits)
		}
		return fmt.Sprintf("int%d", bits)
	case hdf5.T_FLOAT:
		return fmt.Sprintf("float%d", bits)
	default:
		return fmt.Sprintf("class%d", int(dtype.Class()))
	}
}

func unsigned(dtype *hdf5.Datatype) bool {
	for _, u := range []*hdf5.Datatype{
		hdf5.T_STD_U8LE, hdf5.T_STD_U8BE,
		hdf5.T_STD_U16LE, hdf5.T_STD_U16BE,
		hdf5.T_STD_U32LE, hdf5.T_STD_U32BE,
		hdf5.T_STD_U64LE, hdf5.T_STD_U64BE,
	} {
		if dtype.Equal(u) {
			return true
		}
	}
	return false
}

func elements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// Ensure Source implements ports.FrameSource
var _ ports.FrameSource = (*Source)(nil)
