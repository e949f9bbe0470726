// Package typenat provides type-level natural numbers used to parameterize
// the rank of the array types in this module.
//
// The numbers are [N0], [N1], ... [N32]. Each numeral is a zero-size struct
// type whose Value method returns the number it represents, and each one is
// tied to an index array of exactly that length: [N3] implements
// Nat[[3]uint]. Array types store their shape and strides in that array, so
// rank is checked by the compiler and no shape slice is ever allocated.
//
// # Numerals
//
// Numerals are sealed: the association between a numeral and its index array
// is carried by an unexported method, so only this package can declare them.
// Generic code names the pair as a constraint:
//
//	func Rank[N typenat.Nat[A], A typenat.IxArray]() int {
//		var n N
//		return n.Value()
//	}
//
// Pairing a numeral with an array of the wrong length does not compile.
//
// # Successor relation
//
// Every numeral except [N0] has a Pre method returning its predecessor, and
// every numeral except [N32] has a Suc method returning its successor. The
// [PosNat] and [SucNat] constraints let generic code lower or raise rank.
// Asking for the predecessor of N0 is a compile error.
//
// # Index storage
//
// [IxArray] is the set of index arrays [0]uint through [32]uint. [At] and
// [Ref] are checked and panic on an out-of-range index; indexing a
// zero-length array always panics. [AtUnchecked] and [RefUnchecked] skip the
// check and are only valid after the caller has bounded the index with
// Value. Building with the typenatdebug tag turns the unchecked precondition
// into an assertion.
//
// The numeral family lives in nat_gen.go and is produced by cmd/natgen.
package typenat
