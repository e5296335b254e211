package seq

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	name string
	next *node
	pad  [64]byte
}

func TestUnowned_Alive(t *testing.T) {
	n := &node{name: "head"}
	u := NewUnowned(n)

	got, ok := u.Get()
	require.True(t, ok)
	assert.Same(t, n, got)
	assert.Same(t, n, u.Value())
	assert.Same(t, n, u.MustValue())
	runtime.KeepAlive(n)
}

func TestUnowned_Nil(t *testing.T) {
	u := NewUnowned[node](nil)
	assert.Nil(t, u.Value())
	_, ok := u.Get()
	assert.False(t, ok)
	assert.PanicsWithValue(t, ErrDangling, func() { u.MustValue() })

	var zero Unowned[node]
	assert.Nil(t, zero.Value())
}

func TestUnowned_DoesNotOwn(t *testing.T) {
	u := func() Unowned[node] {
		return NewUnowned(&node{name: "temp"})
	}()
	for i := 0; i < 10 && u.Value() != nil; i++ {
		runtime.GC()
	}
	assert.Nil(t, u.Value())
	assert.PanicsWithValue(t, ErrDangling, func() { u.MustValue() })
}
