package cpu

// addrMode enumerates the fourteen 6502 addressing modes.
type addrMode uint8

const (
	modeACC addrMode = iota
	modeABS
	modeABSX
	modeABSY
	modeIMM
	modeIMPL
	modeIND
	modeXIND
	modeINDY
	modeREL
	modeZP
	modeZPX
	modeZPY
	modeJMPINDBUG
)

// modeLength gives the instruction byte length for each addressing mode.
var modeLength = [...]int{
	modeACC:       1,
	modeABS:       3,
	modeABSX:      3,
	modeABSY:      3,
	modeIMM:       2,
	modeIMPL:      1,
	modeIND:       3,
	modeXIND:      2,
	modeINDY:      2,
	modeREL:       2,
	modeZP:        2,
	modeZPX:       2,
	modeZPY:       2,
	modeJMPINDBUG: 3,
}

// imm8 returns the raw byte following the opcode, without touching the
// observer slots -- only the top level effective address of an instruction
// is observable, not the operand bytes used to compute it.
func (c *Chip) imm8() uint8 {
	return c.Peek(c.PC + 1)
}

// imm16 returns the little-endian word following the opcode.
func (c *Chip) imm16() uint16 {
	lo := uint16(c.Peek(c.PC + 1))
	hi := uint16(c.Peek(c.PC + 2))
	return lo | hi<<8
}

// readWordPageWrap reads a little-endian word starting at ptr, but sources
// the high byte from (ptr&0xFF00)|((ptr+1)&0xFF) instead of ptr+1. For a
// zero-page pointer (ptr <= 0xFF) this is the classic XIND/INDY wrap at
// 0xFF; for a full 16 bit pointer this is the 6502's indirect-JMP page
// boundary bug, where the high byte is read from the start of the same
// page instead of spilling into the next one.
func (c *Chip) readWordPageWrap(ptr uint16) uint16 {
	lo := uint16(c.Peek(ptr))
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	hi := uint16(c.Peek(hiAddr))
	return lo | hi<<8
}

// effectiveAddr computes the effective address for every addressing mode
// except ACC, which has no memory address, and REL, whose target depends
// on taken/not-taken branch semantics and is computed by takeBranch.
func (c *Chip) effectiveAddr(mode addrMode) uint16 {
	switch mode {
	case modeIMPL:
		// Sentinel; handlers in IMPL mode must not dereference this
		// except the NOP handler, which discards the result.
		return 0
	case modeIMM:
		return c.PC + 1
	case modeZP:
		return uint16(c.imm8())
	case modeZPX:
		return uint16(c.imm8() + c.X)
	case modeZPY:
		return uint16(c.imm8() + c.Y)
	case modeABS:
		return c.imm16()
	case modeABSX:
		base := c.imm16()
		addr := base + uint16(c.X)
		if uint8(addr) < c.X {
			c.extraCycles++
		}
		return addr
	case modeABSY:
		base := c.imm16()
		addr := base + uint16(c.Y)
		if uint8(addr) < c.Y {
			c.extraCycles++
		}
		return addr
	case modeIND:
		ptr := c.imm16()
		lo := uint16(c.Peek(ptr))
		hi := uint16(c.Peek(ptr + 1))
		return lo | hi<<8
	case modeXIND:
		p := uint16(c.imm8() + c.X)
		return c.readWordPageWrap(p)
	case modeINDY:
		p := uint16(c.imm8())
		base := c.readWordPageWrap(p)
		addr := base + uint16(c.Y)
		if uint8(addr) < c.Y {
			c.extraCycles++
		}
		return addr
	case modeJMPINDBUG:
		ptr := c.imm16()
		return c.readWordPageWrap(ptr)
	}
	return 0
}

// loadOperand fetches the value an instruction operates on, handling the
// accumulator alias for ACC mode.
func (c *Chip) loadOperand(mode addrMode) uint8 {
	if mode == modeACC {
		return c.A
	}
	return c.readMem(c.effectiveAddr(mode))
}

// storeOperand writes the result of an instruction back to its operand
// location, handling the accumulator alias for ACC mode.
func (c *Chip) storeOperand(mode addrMode, val uint8) {
	if mode == modeACC {
		c.A = val
		return
	}
	c.writeMem(c.effectiveAddr(mode), val)
}

// rmwLoad reads an operand for a read-modify-write instruction, returning
// enough state for the matching rmwStore call to write back to the same
// location.
func (c *Chip) rmwLoad(mode addrMode) (isAcc bool, addr uint16, val uint8) {
	if mode == modeACC {
		return true, 0, c.A
	}
	addr = c.effectiveAddr(mode)
	val = c.readMem(addr)
	return false, addr, val
}

func (c *Chip) rmwStore(isAcc bool, addr uint16, val uint8) {
	if isAcc {
		c.A = val
		return
	}
	c.writeMem(addr, val)
}

// takeBranch implements the shared branch-taken logic: compute the target
// relative to the address of the instruction following the 2-byte branch,
// apply the always-taken cycle penalty, and an additional penalty if the
// branch crosses a page boundary.
func (c *Chip) takeBranch() {
	old := c.PC + 2
	offset := int8(c.imm8())
	target := uint16(int32(old) + int32(offset))
	c.PC = target
	c.jumped = true
	c.extraCycles++
	if (target^old)&0xFF00 != 0 {
		c.extraCycles++
	}
}
