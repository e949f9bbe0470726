//go:build typenatdebug

package typenat

// debugChecks makes the unchecked accessors assert their precondition.
const debugChecks = true
