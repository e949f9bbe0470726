//go:build !typenatdebug

package typenat

const debugChecks = false
