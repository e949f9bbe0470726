package mdarray

import (
	"fmt"

	"github.com/robert-malhotra/go-multiarray/typenat"
)

// Slice fixes axis at index i and returns the remaining dimensions as a view
// of rank N-1. The result shares storage with v.
func Slice[T any, N typenat.PosNat[A, P], A typenat.IxArray, P typenat.Nat[PA], PA typenat.IxArray](
	v View[T, N, A], axis int, i uint,
) (View[T, P, PA], error) {
	rank := typenat.Value[N, A]()
	if axis < 0 || axis >= rank {
		return View[T, P, PA]{}, fmt.Errorf("%w: axis %d for rank %d", ErrInvalidArgument, axis, rank)
	}
	if extent := typenat.AtUnchecked(&v.shape, axis); i >= extent {
		return View[T, P, PA]{}, fmt.Errorf("%w: index %d on axis %d of extent %d", ErrIndexOutOfRange, i, axis, extent)
	}

	out := View[T, P, PA]{
		data:   v.data,
		offset: v.offset + int(i*typenat.AtUnchecked(&v.strides, axis)),
	}
	for d, o := 0, 0; d < rank; d++ {
		if d == axis {
			continue
		}
		*typenat.RefUnchecked(&out.shape, o) = typenat.AtUnchecked(&v.shape, d)
		*typenat.RefUnchecked(&out.strides, o) = typenat.AtUnchecked(&v.strides, d)
		o++
	}
	return out, nil
}

// NewAxis inserts a dimension of extent 1 before axis and returns a view of
// rank N+1. axis may equal Rank(), which appends the new dimension.
func NewAxis[T any, N typenat.SucNat[A, S], A typenat.IxArray, S typenat.Nat[SA], SA typenat.IxArray](
	v View[T, N, A], axis int,
) (View[T, S, SA], error) {
	rank := typenat.Value[N, A]()
	if axis < 0 || axis > rank {
		return View[T, S, SA]{}, fmt.Errorf("%w: axis %d for rank %d", ErrInvalidArgument, axis, rank)
	}

	out := View[T, S, SA]{
		data:   v.data,
		offset: v.offset,
	}
	for d, o := 0, 0; d <= rank; d++ {
		if d == axis {
			*typenat.RefUnchecked(&out.shape, d) = 1
			stride := uint(1)
			if axis < rank {
				stride = typenat.AtUnchecked(&v.shape, axis) * typenat.AtUnchecked(&v.strides, axis)
			}
			*typenat.RefUnchecked(&out.strides, d) = stride
			continue
		}
		*typenat.RefUnchecked(&out.shape, d) = typenat.AtUnchecked(&v.shape, o)
		*typenat.RefUnchecked(&out.strides, d) = typenat.AtUnchecked(&v.strides, o)
		o++
	}
	return out, nil
}

// Reshape returns a buffer of rank M with the given shape sharing b's
// elements. The new shape must hold exactly b.Len() elements.
//
// The target numeral comes first so callers can name only it:
//
//	flat, err := mdarray.Reshape[typenat.N1](b, [1]uint{24})
func Reshape[M typenat.Nat[B], B typenat.IxArray, T any, N typenat.Nat[A], A typenat.IxArray](
	b *Buf[T, N, A], shape B,
) (*Buf[T, M, B], error) {
	n, err := NumElements(shape)
	if err != nil {
		return nil, err
	}
	if n != len(b.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrLengthMismatch, b.shape, len(b.data), shape, n)
	}
	return &Buf[T, M, B]{
		data:    b.data,
		shape:   shape,
		strides: RowMajorStrides(shape),
	}, nil
}
