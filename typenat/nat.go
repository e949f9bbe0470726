package typenat

import (
	"fmt"
	"unsafe"
)

//go:generate go run ../cmd/natgen -o nat_gen.go --package typenat --max 32

// Nat is implemented by the numerals N0 through N32. A is the index array of
// the numeral, [k]uint for Nk.
type Nat[A IxArray] interface {
	// Value returns the number the numeral represents, which is also len(A).
	Value() int

	ix() A
}

// PosNat is a numeral with a predecessor. N0 does not satisfy it.
type PosNat[A IxArray, P any] interface {
	Nat[A]

	// Pre returns the numeral one less than the receiver.
	Pre() P
}

// SucNat is a numeral with a successor. N32 does not satisfy it.
type SucNat[A IxArray, S any] interface {
	Nat[A]

	// Suc returns the numeral one greater than the receiver.
	Suc() S
}

// Value returns the value of the numeral N without needing an instance.
func Value[N Nat[A], A IxArray]() int {
	var n N
	return n.Value()
}

// Len returns the length of a.
func Len[A IxArray](a *A) int {
	return len(*a)
}

// At returns a[i]. It panics if i is not in [0, len(a)), which includes every
// index into a zero-length array.
func At[A IxArray](a *A, i int) uint {
	checkIndex(len(*a), i)
	return (*a)[i]
}

// Ref returns a pointer to a[i] with the same bounds rule as At.
func Ref[A IxArray](a *A, i int) *uint {
	checkIndex(len(*a), i)
	return &(*a)[i]
}

// AtUnchecked returns a[i] without a bounds check. The caller must have
// established 0 <= i < len(a); any other index is undefined behavior.
func AtUnchecked[A IxArray](a *A, i int) uint {
	if debugChecks {
		checkIndex(len(*a), i)
	}
	return *elem(a, i)
}

// RefUnchecked returns a pointer to a[i] without a bounds check. The
// precondition is the same as for AtUnchecked.
func RefUnchecked[A IxArray](a *A, i int) *uint {
	if debugChecks {
		checkIndex(len(*a), i)
	}
	return elem(a, i)
}

func elem[A IxArray](a *A, i int) *uint {
	return (*uint)(unsafe.Add(unsafe.Pointer(a), uintptr(i)*unsafe.Sizeof(uint(0))))
}

// checkIndex panics unless 0 <= i < n.
func checkIndex(n, i int) {
	if n == 0 {
		panic(fmt.Sprintf("typenat: cannot index a rank-0 index array (index %d)", i))
	}
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("typenat: index %d out of range for rank-%d index array", i, n))
	}
}
