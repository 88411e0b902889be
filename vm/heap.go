package vm

const (
	DEFAULT_HEAP = 100 // Default heap capacity in cells.
)

// Heap is the fixed-capacity simulated memory region.
//
// The allocation pointer counts remaining capacity down from the top of
// the heap. Load and Store address cells by absolute index, independent
// of the pointer: allocation only tracks remaining capacity, it never
// hands out addresses.
type Heap struct {
	Data    []int // Heap cells, addressed 0..capacity-1.
	Pointer int   // Highest unallocated address.
}

// NewHeap creates a heap with the given capacity.
// A capacity of zero or less selects DEFAULT_HEAP.
func NewHeap(capacity int) (heap *Heap) {
	if capacity <= 0 {
		capacity = DEFAULT_HEAP
	}

	heap = &Heap{
		Data:    make([]int, capacity),
		Pointer: capacity - 1,
	}

	return
}

// Alloc reserves size cells of remaining capacity.
func (h *Heap) Alloc(size int) (err error) {
	if h.Pointer-size < 0 {
		err = ErrOutOfMemory
		return
	}

	h.Pointer -= size

	return
}

// Load reads the cell at an absolute address.
func (h *Heap) Load(addr int) (value int, err error) {
	if addr < 0 || addr >= len(h.Data) {
		err = ErrAddressInvalid
		return
	}

	value = h.Data[addr]

	return
}

// Store writes the cell at an absolute address.
func (h *Heap) Store(addr int, value int) (err error) {
	if addr < 0 || addr >= len(h.Data) {
		err = ErrAddressInvalid
		return
	}

	h.Data[addr] = value

	return
}

// Reset zeroes all cells and restores the allocation pointer to the top.
func (h *Heap) Reset() {
	clear(h.Data)
	h.Pointer = len(h.Data) - 1
}
