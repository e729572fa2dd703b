package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeferStack(t *testing.T) {
	d := &DeferStack{}
	var order []string

	assert.True(t, d.Push(func() { order = append(order, "a") }))
	assert.True(t, d.Push(func() { order = append(order, "b") }))
	assert.False(t, d.Push(nil))
	assert.Equal(t, 2, d.Len())

	d.Drain(func(action func()) { action() })
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, 0, d.Len())

	assert.False(t, d.Push(func() {}), "sealed stack must reject actions")
}
