package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_New(t *testing.T) {
	assert := assert.New(t)

	r := NewRegisters(0)
	assert.Equal(DEFAULT_REGISTERS, len(r.Data))

	r = NewRegisters(4)
	assert.Equal(4, len(r.Data))
}

func TestRegisters_GetSet(t *testing.T) {
	assert := assert.New(t)

	r := NewRegisters(6)

	assert.NoError(r.Set(0, 10))
	assert.NoError(r.Set(5, -3))

	val, err := r.Get(0)
	assert.NoError(err)
	assert.Equal(10, val)

	val, err = r.Get(5)
	assert.NoError(err)
	assert.Equal(-3, val)
}

func TestRegisters_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	r := NewRegisters(6)

	_, err := r.Get(6)
	assert.ErrorIs(err, ErrRegisterInvalid)

	_, err = r.Get(-1)
	assert.ErrorIs(err, ErrRegisterInvalid)

	assert.ErrorIs(r.Set(6, 1), ErrRegisterInvalid)
	assert.ErrorIs(r.Set(-1, 1), ErrRegisterInvalid)
}

func TestRegisters_Reset(t *testing.T) {
	assert := assert.New(t)

	r := NewRegisters(6)
	assert.NoError(r.Set(2, 7))

	r.Reset()

	val, err := r.Get(2)
	assert.NoError(err)
	assert.Equal(0, val)
}
