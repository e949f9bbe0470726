package mdarray

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/robert-malhotra/go-multiarray/typenat"
)

// RowMajorStrides returns the element strides of a contiguous row-major
// array with the given shape: strides[d] is the product of shape[d+1:].
// The last stride is 1.
func RowMajorStrides[A typenat.IxArray](shape A) A {
	var strides A
	acc := uint(1)
	for d := len(shape) - 1; d >= 0; d-- {
		*typenat.RefUnchecked(&strides, d) = acc
		acc *= typenat.AtUnchecked(&shape, d)
	}
	return strides
}

// NumElements returns the product of the extents in shape. A rank-0 shape
// has one element.
func NumElements[A typenat.IxArray](shape A) (int, error) {
	n := uint(1)
	for d := 0; d < len(shape); d++ {
		hi, lo := bits.Mul(n, typenat.AtUnchecked(&shape, d))
		if hi != 0 || lo > math.MaxInt {
			return 0, fmt.Errorf("%w: shape %v", ErrShapeOverflow, shape)
		}
		n = lo
	}
	return int(n), nil
}

// isEmpty reports whether any extent in shape is zero.
func isEmpty[A typenat.IxArray](shape *A) bool {
	for d := 0; d < len(*shape); d++ {
		if typenat.AtUnchecked(shape, d) == 0 {
			return true
		}
	}
	return false
}

// outOfRange returns the first dimension at which idx is not below shape, or
// -1 when idx is inside shape.
func outOfRange[A typenat.IxArray](shape, idx *A) int {
	for d := 0; d < len(*shape); d++ {
		if typenat.AtUnchecked(idx, d) >= typenat.AtUnchecked(shape, d) {
			return d
		}
	}
	return -1
}

// offsetOf returns the element offset of idx relative to the first element.
func offsetOf[A typenat.IxArray](strides, idx *A) int {
	off := uint(0)
	for d := 0; d < len(*strides); d++ {
		off += typenat.AtUnchecked(idx, d) * typenat.AtUnchecked(strides, d)
	}
	return int(off)
}

// checkIndex panics with a descriptive message when idx is outside shape.
func checkIndex[A typenat.IxArray](shape, idx *A) {
	if d := outOfRange(shape, idx); d >= 0 {
		panic(fmt.Sprintf("mdarray: index %v out of range for shape %v (dimension %d)", *idx, *shape, d))
	}
}

// indexError is the error form of checkIndex.
func indexError[A typenat.IxArray](shape, idx *A) error {
	if d := outOfRange(shape, idx); d >= 0 {
		return fmt.Errorf("%w: index %v, shape %v (dimension %d)", ErrIndexOutOfRange, *idx, *shape, d)
	}
	return nil
}
