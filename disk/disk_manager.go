package disk

import (
	"errors"
)

var ErrInsufficientSpace = errors.New("insufficient space")
var ErrInvalidCount = errors.New("block count cannot be negative")

// IDiskManager grants and reclaims block indices of a virtual device.
type IDiskManager interface {
	Allocate(count int) ([]int, error)
	Free(blocks []int)
	FreeSpace() int
	Occupied() int
	Size() int
}

var _ IDiskManager = &VirtualDisk{}

/*
	VirtualDisk keeps one occupancy flag per block. Allocation is first fit over block indices: the lowest free
	indices are handed out whether they are adjacent or not. Allocation never partially succeeds, either every
	requested block is granted or occupancy is left untouched.
*/

type VirtualDisk struct {
	occupancy []bool
	free      int
}

func NewVirtualDisk(size int) *VirtualDisk {
	if size < 0 {
		size = 0
	}

	return &VirtualDisk{
		occupancy: make([]bool, size),
		free:      size,
	}
}

// Allocate scans the device in ascending order and grants the first count free blocks.
func (d *VirtualDisk) Allocate(count int) ([]int, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}

	if count > d.free {
		return nil, ErrInsufficientSpace
	}

	blocks := make([]int, 0, count)
	for i := 0; i < len(d.occupancy) && len(blocks) < count; i++ {
		if !d.occupancy[i] {
			blocks = append(blocks, i)
		}
	}

	for _, b := range blocks {
		d.occupancy[b] = true
	}
	d.free -= len(blocks)

	return blocks, nil
}

// Free releases given blocks. Indices out of device range are ignored and freeing an already free block is a noop,
// so blocks of a file can be released more than once without corrupting the counter.
func (d *VirtualDisk) Free(blocks []int) {
	for _, b := range blocks {
		if b < 0 || b >= len(d.occupancy) {
			continue
		}

		if d.occupancy[b] {
			d.occupancy[b] = false
			d.free++
		}
	}
}

func (d *VirtualDisk) FreeSpace() int {
	return d.free
}

func (d *VirtualDisk) Occupied() int {
	return len(d.occupancy) - d.free
}

func (d *VirtualDisk) Size() int {
	return len(d.occupancy)
}

// IsOccupied returns false for indices that are out of device range.
func (d *VirtualDisk) IsOccupied(block int) bool {
	if block < 0 || block >= len(d.occupancy) {
		return false
	}

	return d.occupancy[block]
}

// Snapshot returns a copy of the occupancy table.
func (d *VirtualDisk) Snapshot() []bool {
	s := make([]bool, len(d.occupancy))
	copy(s, d.occupancy)
	return s
}
