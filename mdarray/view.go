package mdarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/robert-malhotra/go-multiarray/typenat"
)

// View is a non-owning, strided window of rank N onto an element slice.
// Views are small values; copying one does not copy elements.
type View[T any, N typenat.Nat[A], A typenat.IxArray] struct {
	data    []T
	offset  int
	shape   A
	strides A
}

// Rank returns the number of dimensions, N's value.
func (v View[T, N, A]) Rank() int {
	return typenat.Value[N, A]()
}

// Shape returns the extent of each dimension.
func (v View[T, N, A]) Shape() A {
	return v.shape
}

// Strides returns the element stride of each dimension in the underlying
// slice.
func (v View[T, N, A]) Strides() A {
	return v.strides
}

// Len returns the number of elements in the view.
func (v View[T, N, A]) Len() int {
	n, _ := NumElements(v.shape)
	return n
}

// At returns the element at idx. It panics if idx is out of range.
func (v View[T, N, A]) At(idx A) T {
	checkIndex(&v.shape, &idx)
	return v.data[v.offset+offsetOf(&v.strides, &idx)]
}

// Set stores x at idx. It panics if idx is out of range.
func (v View[T, N, A]) Set(idx A, x T) {
	checkIndex(&v.shape, &idx)
	v.data[v.offset+offsetOf(&v.strides, &idx)] = x
}

// Ptr returns a pointer to the element at idx. It panics if idx is out of
// range.
func (v View[T, N, A]) Ptr(idx A) *T {
	checkIndex(&v.shape, &idx)
	return &v.data[v.offset+offsetOf(&v.strides, &idx)]
}

// Get returns the element at idx, or ErrIndexOutOfRange.
func (v View[T, N, A]) Get(idx A) (T, error) {
	if err := indexError(&v.shape, &idx); err != nil {
		var zero T
		return zero, err
	}
	return v.data[v.offset+offsetOf(&v.strides, &idx)], nil
}

// AtUnchecked returns the element at idx without validating idx against the
// shape.
func (v View[T, N, A]) AtUnchecked(idx A) T {
	return v.data[v.offset+offsetOf(&v.strides, &idx)]
}

// SetUnchecked stores x at idx without validating idx against the shape.
func (v View[T, N, A]) SetUnchecked(idx A, x T) {
	v.data[v.offset+offsetOf(&v.strides, &idx)] = x
}

// SubView returns the rectangular selection of count[d] elements starting at
// start[d] in every dimension.
func (v View[T, N, A]) SubView(start, count A) (View[T, N, A], error) {
	out := v
	for d := 0; d < len(v.shape); d++ {
		s := typenat.AtUnchecked(&start, d)
		c := typenat.AtUnchecked(&count, d)
		extent := typenat.AtUnchecked(&v.shape, d)
		if s > extent || c > extent-s {
			return View[T, N, A]{}, fmt.Errorf("%w: selection start %v count %v exceeds shape %v (dimension %d)",
				ErrIndexOutOfRange, start, count, v.shape, d)
		}
		out.offset += int(s * typenat.AtUnchecked(&v.strides, d))
	}
	out.shape = count
	return out, nil
}

// Step returns a view of every step[d]-th element along each dimension,
// starting with the first.
func (v View[T, N, A]) Step(step A) (View[T, N, A], error) {
	out := v
	for d := 0; d < len(v.shape); d++ {
		s := typenat.AtUnchecked(&step, d)
		if s == 0 {
			return View[T, N, A]{}, fmt.Errorf("%w: zero step %v (dimension %d)", ErrInvalidArgument, step, d)
		}
		extent := typenat.RefUnchecked(&out.shape, d)
		*extent = (*extent + s - 1) / s
		*typenat.RefUnchecked(&out.strides, d) *= s
	}
	return out, nil
}

// Permute returns a view whose dimension d is dimension axes[d] of v.
// axes must be a permutation of 0..Rank()-1.
func (v View[T, N, A]) Permute(axes A) (View[T, N, A], error) {
	out := v
	var seen uint64
	for d := 0; d < len(axes); d++ {
		a := typenat.AtUnchecked(&axes, d)
		if a >= uint(len(axes)) || seen&(1<<a) != 0 {
			return View[T, N, A]{}, fmt.Errorf("%w: %v is not a permutation of %d axes", ErrInvalidArgument, axes, len(axes))
		}
		seen |= 1 << a
		*typenat.RefUnchecked(&out.shape, d) = typenat.AtUnchecked(&v.shape, int(a))
		*typenat.RefUnchecked(&out.strides, d) = typenat.AtUnchecked(&v.strides, int(a))
	}
	return out, nil
}

// IsContiguous reports whether the elements of v are laid out row-major
// without gaps. Dimensions of extent 1 are ignored.
func (v View[T, N, A]) IsContiguous() bool {
	want := RowMajorStrides(v.shape)
	for d := 0; d < len(v.shape); d++ {
		if typenat.AtUnchecked(&v.shape, d) <= 1 {
			continue
		}
		if typenat.AtUnchecked(&v.strides, d) != typenat.AtUnchecked(&want, d) {
			return false
		}
	}
	return true
}

// ToBuf copies the elements of v into a new contiguous buffer.
func (v View[T, N, A]) ToBuf() *Buf[T, N, A] {
	data := make([]T, 0, v.Len())
	for _, x := range v.All() {
		data = append(data, x)
	}
	return &Buf[T, N, A]{
		data:    data,
		shape:   v.shape,
		strides: RowMajorStrides(v.shape),
	}
}

// CopyTo copies the elements of v into dst, which must have the same shape.
func (v View[T, N, A]) CopyTo(dst View[T, N, A]) error {
	if v.shape != dst.shape {
		return fmt.Errorf("%w: copying %v into %v", ErrShapeMismatch, v.shape, dst.shape)
	}
	// an empty view's offset may lie past the end of its data
	if isEmpty(&v.shape) {
		return nil
	}
	if v.IsContiguous() && dst.IsContiguous() {
		n := v.Len()
		copy(dst.data[dst.offset:dst.offset+n], v.data[v.offset:v.offset+n])
		return nil
	}
	for idx, x := range v.All() {
		dst.data[dst.offset+offsetOf(&dst.strides, &idx)] = x
	}
	return nil
}

// All yields every index and element of v in row-major order.
func (v View[T, N, A]) All() iter.Seq2[A, T] {
	return func(yield func(A, T) bool) {
		if isEmpty(&v.shape) {
			return
		}
		var idx A
		off := v.offset
		for {
			if !yield(idx, v.data[off]) {
				return
			}
			d := len(idx) - 1
			for ; d >= 0; d-- {
				stride := typenat.AtUnchecked(&v.strides, d)
				i := typenat.RefUnchecked(&idx, d)
				*i++
				off += int(stride)
				if *i < typenat.AtUnchecked(&v.shape, d) {
					break
				}
				off -= int(*i * stride)
				*i = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// String formats v as nested brackets, one level per dimension:
// a 2x3 view prints as [[0 1 2] [3 4 5]]. A rank-0 view prints its element.
func (v View[T, N, A]) String() string {
	var sb strings.Builder
	v.format(&sb, v.offset, 0)
	return sb.String()
}

func (v View[T, N, A]) format(sb *strings.Builder, off, d int) {
	if d == len(v.shape) {
		fmt.Fprint(sb, v.data[off])
		return
	}
	extent := typenat.AtUnchecked(&v.shape, d)
	stride := int(typenat.AtUnchecked(&v.strides, d))
	sb.WriteByte('[')
	for i := uint(0); i < extent; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v.format(sb, off+int(i)*stride, d+1)
	}
	sb.WriteByte(']')
}
