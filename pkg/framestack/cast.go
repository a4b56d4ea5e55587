package framestack

// Number is any element type a container dataset can be read as.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Cast converts values to bytes the way a native uint8 cast does: integers
// wrap modulo 256 and floats are truncated toward zero first. Out of range
// values are not clamped and no warning is raised.
func Cast[T Number](vals []T) []uint8 {
	out := make([]uint8, len(vals))
	for i, v := range vals {
		out[i] = uint8(int64(v))
	}
	return out
}
