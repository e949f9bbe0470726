package mdarray

import (
	"fmt"
	"iter"

	"github.com/robert-malhotra/go-multiarray/typenat"
)

// Buf is an owning, contiguous, row-major array of rank N.
type Buf[T any, N typenat.Nat[A], A typenat.IxArray] struct {
	data    []T
	shape   A
	strides A
}

// New returns a zero-filled buffer with the given shape.
func New[T any, N typenat.Nat[A], A typenat.IxArray](shape A) (*Buf[T, N, A], error) {
	n, err := NumElements(shape)
	if err != nil {
		return nil, err
	}
	return &Buf[T, N, A]{
		data:    make([]T, n),
		shape:   shape,
		strides: RowMajorStrides(shape),
	}, nil
}

// FromSlice wraps data, laid out in row-major order, in a buffer with the
// given shape. The buffer takes ownership of data; it is not copied.
func FromSlice[T any, N typenat.Nat[A], A typenat.IxArray](data []T, shape A) (*Buf[T, N, A], error) {
	n, err := NumElements(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d elements for shape %v (want %d)", ErrLengthMismatch, len(data), shape, n)
	}
	return &Buf[T, N, A]{
		data:    data,
		shape:   shape,
		strides: RowMajorStrides(shape),
	}, nil
}

// Rank returns the number of dimensions, N's value.
func (b *Buf[T, N, A]) Rank() int {
	return typenat.Value[N, A]()
}

// Shape returns the extent of each dimension.
func (b *Buf[T, N, A]) Shape() A {
	return b.shape
}

// Strides returns the element stride of each dimension.
func (b *Buf[T, N, A]) Strides() A {
	return b.strides
}

// Len returns the number of elements.
func (b *Buf[T, N, A]) Len() int {
	return len(b.data)
}

// Data returns the underlying row-major element slice.
func (b *Buf[T, N, A]) Data() []T {
	return b.data
}

// At returns the element at idx. It panics if idx is out of range.
func (b *Buf[T, N, A]) At(idx A) T {
	checkIndex(&b.shape, &idx)
	return b.data[offsetOf(&b.strides, &idx)]
}

// Set stores v at idx. It panics if idx is out of range.
func (b *Buf[T, N, A]) Set(idx A, v T) {
	checkIndex(&b.shape, &idx)
	b.data[offsetOf(&b.strides, &idx)] = v
}

// Ptr returns a pointer to the element at idx. It panics if idx is out of
// range.
func (b *Buf[T, N, A]) Ptr(idx A) *T {
	checkIndex(&b.shape, &idx)
	return &b.data[offsetOf(&b.strides, &idx)]
}

// Get returns the element at idx, or ErrIndexOutOfRange.
func (b *Buf[T, N, A]) Get(idx A) (T, error) {
	if err := indexError(&b.shape, &idx); err != nil {
		var zero T
		return zero, err
	}
	return b.data[offsetOf(&b.strides, &idx)], nil
}

// AtUnchecked returns the element at idx without validating idx against the
// shape. An index outside the shape may return an unrelated element.
func (b *Buf[T, N, A]) AtUnchecked(idx A) T {
	return b.data[offsetOf(&b.strides, &idx)]
}

// SetUnchecked stores v at idx without validating idx against the shape.
func (b *Buf[T, N, A]) SetUnchecked(idx A, v T) {
	b.data[offsetOf(&b.strides, &idx)] = v
}

// Fill sets every element to v.
func (b *Buf[T, N, A]) Fill(v T) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Clone returns a deep copy of b.
func (b *Buf[T, N, A]) Clone() *Buf[T, N, A] {
	data := make([]T, len(b.data))
	copy(data, b.data)
	return &Buf[T, N, A]{
		data:    data,
		shape:   b.shape,
		strides: b.strides,
	}
}

// View returns a view of the whole buffer. Writes through the view are
// visible in b.
func (b *Buf[T, N, A]) View() View[T, N, A] {
	return View[T, N, A]{
		data:    b.data,
		shape:   b.shape,
		strides: b.strides,
	}
}

// All yields every index and element in row-major order.
func (b *Buf[T, N, A]) All() iter.Seq2[A, T] {
	return b.View().All()
}

func (b *Buf[T, N, A]) String() string {
	return b.View().String()
}
