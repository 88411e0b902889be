package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeap_New(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(0)
	assert.Equal(DEFAULT_HEAP, len(h.Data))
	assert.Equal(DEFAULT_HEAP-1, h.Pointer)

	h = NewHeap(10)
	assert.Equal(10, len(h.Data))
	assert.Equal(9, h.Pointer)
}

func TestHeap_Alloc(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(10)

	assert.NoError(h.Alloc(4))
	assert.Equal(5, h.Pointer)

	assert.NoError(h.Alloc(5))
	assert.Equal(0, h.Pointer)
}

func TestHeap_Alloc_OutOfMemory(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(10)

	assert.NoError(h.Alloc(9))
	assert.Equal(0, h.Pointer)

	err := h.Alloc(1)
	assert.ErrorIs(err, ErrOutOfMemory)
	assert.Equal(0, h.Pointer)
}

func TestHeap_StoreLoad(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(10)

	assert.NoError(h.Store(0, 42))
	assert.NoError(h.Store(9, -7))

	val, err := h.Load(0)
	assert.NoError(err)
	assert.Equal(42, val)

	val, err = h.Load(9)
	assert.NoError(err)
	assert.Equal(-7, val)
}

func TestHeap_Load_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(10)

	_, err := h.Load(10)
	assert.ErrorIs(err, ErrAddressInvalid)

	_, err = h.Load(-1)
	assert.ErrorIs(err, ErrAddressInvalid)
}

func TestHeap_Store_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(10)

	assert.ErrorIs(h.Store(10, 1), ErrAddressInvalid)
	assert.ErrorIs(h.Store(-1, 1), ErrAddressInvalid)
}

// Store and Load address cells by absolute index regardless of the
// allocation pointer.
func TestHeap_AddressingIndependentOfAlloc(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(10)

	assert.NoError(h.Store(7, 99))
	assert.NoError(h.Alloc(8))

	val, err := h.Load(7)
	assert.NoError(err)
	assert.Equal(99, val)

	assert.NoError(h.Store(9, 1))
	val, err = h.Load(9)
	assert.NoError(err)
	assert.Equal(1, val)
}

func TestHeap_Reset(t *testing.T) {
	assert := assert.New(t)

	h := NewHeap(10)
	assert.NoError(h.Store(3, 5))
	assert.NoError(h.Alloc(4))

	h.Reset()
	assert.Equal(9, h.Pointer)

	val, err := h.Load(3)
	assert.NoError(err)
	assert.Equal(0, val)
}
