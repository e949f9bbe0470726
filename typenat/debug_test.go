//go:build typenatdebug

package typenat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUncheckedAssertsInDebugBuilds(t *testing.T) {
	a := [2]uint{1, 2}

	assert.PanicsWithValue(t, "typenat: index 2 out of range for rank-2 index array", func() {
		AtUnchecked(&a, 2)
	})
	assert.Panics(t, func() {
		RefUnchecked(&a, -1)
	})
}
