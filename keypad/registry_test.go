package keypad_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infinity/keypad"
)

func TestDefaultRegistry(t *testing.T) {
	r := keypad.DefaultRegistry()
	assert.Equal(t, []string{keypad.SquareName, keypad.DiamondName}, r.Names())
	assert.Equal(t, 2, r.Len())

	l, err := r.Lookup(keypad.DiamondName)
	require.NoError(t, err)
	assert.Equal(t, 13, l.Keys())
}

func TestRegistry_Unknown(t *testing.T) {
	r := keypad.DefaultRegistry()
	_, err := r.Lookup("phone")
	require.Error(t, err)
	assert.True(t, errors.Is(err, keypad.ErrUnknownLayout))

	var ule *keypad.UnknownLayoutError
	require.True(t, errors.As(err, &ule))
	assert.Equal(t, "phone", ule.Name)
	assert.Equal(t, []string{"square", "diamond"}, ule.Available)
	assert.Contains(t, err.Error(), "available: square, diamond")
}

func TestRegistry_Register(t *testing.T) {
	var r keypad.Registry
	_, err := r.Lookup("square")
	assert.ErrorIs(t, err, keypad.ErrUnknownLayout)

	require.NoError(t, r.Register(keypad.Square()))
	assert.ErrorIs(t, r.Register(keypad.Square()), keypad.ErrDuplicateLayout)

	unnamed := keypad.MustLayout("", [][]string{{"1"}}, keypad.Position{})
	assert.ErrorIs(t, r.Register(unnamed), keypad.ErrUnnamedLayout)

	custom := keypad.MustLayout("line", [][]string{{"a", "b", "c"}}, keypad.Position{})
	require.NoError(t, r.Register(custom))
	assert.Equal(t, []string{"square", "line"}, r.Names())
	layouts := r.Layouts()
	require.Len(t, layouts, 2)
	assert.Same(t, custom, layouts[1])
}

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := keypad.NewRegistry(keypad.Diamond(), keypad.Diamond())
	assert.ErrorIs(t, err, keypad.ErrDuplicateLayout)
}

func TestRegistry_NilLayout(t *testing.T) {
	var r keypad.Registry
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, r.Register(nil), keypad.ErrUnnamedLayout)
	})
	assert.Zero(t, r.Len())

	_, err := keypad.NewRegistry(keypad.Square(), nil)
	assert.ErrorIs(t, err, keypad.ErrUnnamedLayout)
}

func TestMustLayout_Panics(t *testing.T) {
	assert.Panics(t, func() {
		keypad.MustLayout("bad", nil, keypad.Position{})
	})
}
