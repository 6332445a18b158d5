// Package memory defines the address space the simulator's CPU and UART
// peripheral share: a single flat bank, addressed by the full 16 bit bus.
package memory

import (
	"math/rand"
	"time"
)

// Bank is the interface the cpu and uart packages read and write through.
// Unlike a banked memory map there is exactly one implementation in this
// simulator and no parent/child chaining.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn resets the bank to its post-reset contents.
	PowerOn()
}

// RAM implements Bank as a flat 64 KiB array with no aliasing and no
// memory-mapped regions of its own; the uart package layers its two
// registers on top of this same Bank rather than the bank special-casing
// their addresses.
type RAM struct {
	mem [1 << 16]uint8
}

// NewRAM returns a zeroed 64 KiB RAM bank.
func NewRAM() *RAM {
	return &RAM{}
}

// Read implements Bank.
func (r *RAM) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Bank.
func (r *RAM) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// PowerOn randomizes RAM contents, matching real hardware's undefined
// power-on state.
func (r *RAM) PowerOn() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range r.mem {
		r.mem[i] = uint8(rnd.Intn(256))
	}
}
