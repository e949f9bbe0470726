// Package mdarray provides multidimensional arrays whose rank is part of
// their type.
//
// Arrays are indexed in row-major order: the leftmost index is the most
// slowly varying. This matches C and NumPy, and differs from Fortran, Julia
// and MATLAB.
//
// # Types
//
// Both array types take three type parameters: the element type T, a rank
// numeral N from package typenat, and N's index array A. The shape, strides
// and indices of a rank-3 array are all [3]uint:
//
//	b, err := mdarray.New[float64, typenat.N3]([3]uint{2, 3, 4})
//	b.Set([3]uint{1, 2, 3}, 42)
//
// Using a numeral with an index array of a different length does not compile.
//
//   - [Buf] owns a contiguous, heap-allocated element slice.
//   - [View] is a strided window onto a slice owned by something else,
//     usually a Buf. Views share storage with their source.
//
// # Indexing
//
// At, Set and Ptr panic when an index is outside the shape, like Go slice
// indexing. Get returns [ErrIndexOutOfRange] instead and is meant for
// indices from untrusted input. AtUnchecked and SetUnchecked skip the
// per-dimension validation; use them only after bounding the index yourself.
//
// # Changing rank
//
// [Slice] fixes one axis and returns a view of rank N-1, [NewAxis] inserts a
// length-1 axis and returns a view of rank N+1, and [Reshape] reinterprets a
// buffer with a new shape of any rank holding the same number of elements.
// The result rank is derived from N by the compiler: slicing a rank-0 view
// does not compile.
package mdarray
