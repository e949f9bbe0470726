// Package natgen generates the type-level numeral family of package typenat.
//
// Go generics have no integer-valued type parameters, so each rank needs its
// own named type. Writing thirty-three near-identical declarations by hand
// invites drift; this package emits them from a single description instead.
//
// For every k in [0, Max] the output declares:
//
//   - type Nk struct{}, with Value() int returning k
//   - the sealed association ix() [k]uint
//   - Pre() for k >= 1 and Suc() for k < Max
//   - String() returning "Nk"
//
// plus the MaxRank constant and the IxArray type-set constraint listing
// [0]uint through [Max]uint. The result is formatted with
// golang.org/x/tools/imports before it is returned.
package natgen
