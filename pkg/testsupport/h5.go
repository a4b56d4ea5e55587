// Package testsupport provides fixtures shared by package tests.
package testsupport

import (
	"testing"

	"gonum.org/v1/hdf5"
)

// Dataset describes one dataset to write into a fixture container.
// Data must be a pointer to a slice whose element type matches Type.
type Dataset struct {
	Name string
	Type *hdf5.Datatype
	Dims []int
	Data any
}

// Uint8 is shorthand for a uint8 dataset.
func Uint8(name string, pix []uint8, dims ...int) Dataset {
	return Dataset{Name: name, Type: hdf5.T_NATIVE_UINT8, Dims: dims, Data: &pix}
}

// Int8 is shorthand for a signed 8-bit dataset.
func Int8(name string, vals []int8, dims ...int) Dataset {
	return Dataset{Name: name, Type: hdf5.T_NATIVE_INT8, Dims: dims, Data: &vals}
}

// Int32 is shorthand for an int32 dataset.
func Int32(name string, vals []int32, dims ...int) Dataset {
	return Dataset{Name: name, Type: hdf5.T_NATIVE_INT32, Dims: dims, Data: &vals}
}

// Float64 is shorthand for a float64 dataset.
func Float64(name string, vals []float64, dims ...int) Dataset {
	return Dataset{Name: name, Type: hdf5.T_NATIVE_DOUBLE, Dims: dims, Data: &vals}
}

// WriteH5 creates an HDF5 container at path holding the given datasets.
func WriteH5(t testing.TB, path string, datasets ...Dataset) {
	t.Helper()

	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	for _, ds := range datasets {
		dims := make([]uint, len(ds.Dims))
		for i, d := range ds.Dims {
			dims[i] = uint(d)
		}

		space, err := hdf5.CreateSimpleDataspace(dims, nil)
		if err != nil {
			t.Fatalf("dataspace for %s: %v", ds.Name, err)
		}

		dset, err := f.CreateDataset(ds.Name, ds.Type, space)
		if err != nil {
			space.Close()
			t.Fatalf("create dataset %s: %v", ds.Name, err)
		}

		if err := dset.Write(ds.Data); err != nil {
			dset.Close()
			space.Close()
			t.Fatalf("write dataset %s: %v", ds.Name, err)
		}

		dset.Close()
		space.Close()
	}
}

// SinglePixelStack returns t frames of h*w zero bytes with one pixel of
// frame 0 set to 255.
func SinglePixelStack(t, h, w, x, y int) []uint8 {
	pix := make([]uint8, t*h*w)
	pix[y*w+x] = 255
	return pix
}
