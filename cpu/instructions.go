package cpu

// handlerFunc implements the semantics of one opcode given its addressing
// mode. It returns an error only for internal precondition violations,
// which cannot occur through normal dispatch since every entry in the
// opcode table names a defined handler.
type handlerFunc func(c *Chip, mode addrMode) error

// iADC implements binary and decimal-mode ADC. N, Z and V always reflect
// the binary sum of A, the operand and carry-in; only A and C follow the
// BCD-adjusted result when the decimal flag is set, matching the NMOS
// 6502's documented decimal-mode quirk.
func iADC(c *Chip, mode addrMode) error {
	m := c.loadOperand(mode)
	carry := uint16(0)
	if c.flag(PCarry) {
		carry = 1
	}
	binTmp := uint16(c.A) + uint16(m) + carry
	binRes := uint8(binTmp)
	c.negativeCheck(binRes)
	c.zeroCheck(binRes)
	c.overflowCheck(c.A, m, binRes)

	if c.flag(PDecimal) {
		lo := uint16(c.A&0x0F) + uint16(m&0x0F) + carry
		if lo >= 10 {
			lo = ((lo + 6) & 0x0F) + 0x10
		}
		tmp := uint16(c.A&0xF0) + uint16(m&0xF0) + lo
		if tmp >= 0xA0 {
			tmp += 0x60
		}
		c.carryCheck(tmp)
		c.A = uint8(tmp)
	} else {
		c.carryCheck(binTmp)
		c.A = binRes
	}
	return nil
}

func iAND(c *Chip, mode addrMode) error {
	c.A &= c.loadOperand(mode)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func iASL(c *Chip, mode addrMode) error {
	isAcc, addr, val := c.rmwLoad(mode)
	c.setFlag(PCarry, val&0x80 != 0)
	val <<= 1
	c.negativeCheck(val)
	c.zeroCheck(val)
	c.rmwStore(isAcc, addr, val)
	return nil
}

func iBCC(c *Chip, mode addrMode) error {
	if !c.flag(PCarry) {
		c.takeBranch()
	}
	return nil
}

func iBCS(c *Chip, mode addrMode) error {
	if c.flag(PCarry) {
		c.takeBranch()
	}
	return nil
}

func iBEQ(c *Chip, mode addrMode) error {
	if c.flag(PZero) {
		c.takeBranch()
	}
	return nil
}

func iBIT(c *Chip, mode addrMode) error {
	m := c.loadOperand(mode)
	c.negativeCheck(m)
	c.setFlag(POverflow, m&0x40 != 0)
	c.zeroCheck(m & c.A)
	return nil
}

func iBMI(c *Chip, mode addrMode) error {
	if c.flag(PNegative) {
		c.takeBranch()
	}
	return nil
}

func iBNE(c *Chip, mode addrMode) error {
	if !c.flag(PZero) {
		c.takeBranch()
	}
	return nil
}

func iBPL(c *Chip, mode addrMode) error {
	if !c.flag(PNegative) {
		c.takeBranch()
	}
	return nil
}

func iBRK(c *Chip, mode addrMode) error {
	target := c.readWord(IRQVector)
	c.PC += 2
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC & 0xFF))
	c.setFlag(PBreak, true)
	c.push(c.P)
	c.setFlag(PInterrupt, true)
	c.PC = target
	c.jumped = true
	return nil
}

func iBVC(c *Chip, mode addrMode) error {
	if !c.flag(POverflow) {
		c.takeBranch()
	}
	return nil
}

func iBVS(c *Chip, mode addrMode) error {
	if c.flag(POverflow) {
		c.takeBranch()
	}
	return nil
}

func iCLC(c *Chip, mode addrMode) error {
	c.setFlag(PCarry, false)
	return nil
}

func iCLD(c *Chip, mode addrMode) error {
	c.setFlag(PDecimal, false)
	return nil
}

func iCLI(c *Chip, mode addrMode) error {
	c.setFlag(PInterrupt, false)
	return nil
}

func iCLV(c *Chip, mode addrMode) error {
	c.setFlag(POverflow, false)
	return nil
}

func compare(c *Chip, reg, m uint8) {
	diff := reg - m
	c.negativeCheck(diff)
	c.zeroCheck(diff)
	c.setFlag(PCarry, reg >= m)
}

func iCMP(c *Chip, mode addrMode) error {
	compare(c, c.A, c.loadOperand(mode))
	return nil
}

func iCPX(c *Chip, mode addrMode) error {
	compare(c, c.X, c.loadOperand(mode))
	return nil
}

func iCPY(c *Chip, mode addrMode) error {
	compare(c, c.Y, c.loadOperand(mode))
	return nil
}

func iDEC(c *Chip, mode addrMode) error {
	isAcc, addr, val := c.rmwLoad(mode)
	val--
	c.negativeCheck(val)
	c.zeroCheck(val)
	c.rmwStore(isAcc, addr, val)
	return nil
}

func iDEX(c *Chip, mode addrMode) error {
	c.X--
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func iDEY(c *Chip, mode addrMode) error {
	c.Y--
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}

func iEOR(c *Chip, mode addrMode) error {
	c.A ^= c.loadOperand(mode)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func iINC(c *Chip, mode addrMode) error {
	isAcc, addr, val := c.rmwLoad(mode)
	val++
	c.negativeCheck(val)
	c.zeroCheck(val)
	c.rmwStore(isAcc, addr, val)
	return nil
}

func iINX(c *Chip, mode addrMode) error {
	c.X++
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func iINY(c *Chip, mode addrMode) error {
	c.Y++
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}

func iJMP(c *Chip, mode addrMode) error {
	c.PC = c.effectiveAddr(mode)
	c.jumped = true
	return nil
}

func iJSR(c *Chip, mode addrMode) error {
	target := c.effectiveAddr(mode)
	c.PC += 2
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC & 0xFF))
	c.PC = target
	c.jumped = true
	return nil
}

func iLDA(c *Chip, mode addrMode) error {
	c.A = c.loadOperand(mode)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func iLDX(c *Chip, mode addrMode) error {
	c.X = c.loadOperand(mode)
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func iLDY(c *Chip, mode addrMode) error {
	c.Y = c.loadOperand(mode)
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}

func iLSR(c *Chip, mode addrMode) error {
	isAcc, addr, val := c.rmwLoad(mode)
	c.setFlag(PCarry, val&0x01 != 0)
	val >>= 1
	c.negativeCheck(val)
	c.zeroCheck(val)
	c.rmwStore(isAcc, addr, val)
	return nil
}

// iNOP implements both the official NOP and every illegal-opcode entry
// that the table maps to NOP with a mode chosen to match that opcode's
// true byte length. It resolves the addressing mode unconditionally and
// discards the result, matching the quirk called out in spec.md section 9
// where an IMPL-mode illegal NOP computes (and discards) address 0.
func iNOP(c *Chip, mode addrMode) error {
	if mode == modeACC {
		_ = c.A
		return nil
	}
	_ = c.readMem(c.effectiveAddr(mode))
	return nil
}

func iORA(c *Chip, mode addrMode) error {
	c.A |= c.loadOperand(mode)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func iPHA(c *Chip, mode addrMode) error {
	c.push(c.A)
	return nil
}

func iPHP(c *Chip, mode addrMode) error {
	c.push(c.P | PBreak)
	return nil
}

func iPLA(c *Chip, mode addrMode) error {
	c.A = c.pull()
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func iPLP(c *Chip, mode addrMode) error {
	c.P = c.pull()
	c.setFlag(PUnused, true)
	c.setFlag(PBreak, false)
	return nil
}

func iROL(c *Chip, mode addrMode) error {
	isAcc, addr, val := c.rmwLoad(mode)
	res := uint16(val) << 1
	if c.flag(PCarry) {
		res |= 1
	}
	c.carryCheck(res)
	out := uint8(res)
	c.negativeCheck(out)
	c.zeroCheck(out)
	c.rmwStore(isAcc, addr, out)
	return nil
}

func iROR(c *Chip, mode addrMode) error {
	isAcc, addr, val := c.rmwLoad(mode)
	res := uint16(val)
	if c.flag(PCarry) {
		res |= 0x100
	}
	c.setFlag(PCarry, res&0x01 != 0)
	res >>= 1
	out := uint8(res)
	c.negativeCheck(out)
	c.zeroCheck(out)
	c.rmwStore(isAcc, addr, out)
	return nil
}

func iRTI(c *Chip, mode addrMode) error {
	c.P = c.pull()
	c.setFlag(PUnused, true)
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	c.PC = lo | hi<<8
	c.jumped = true
	return nil
}

func iRTS(c *Chip, mode addrMode) error {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	c.PC = (lo | hi<<8) + 1
	c.jumped = true
	return nil
}

// iSBC implements binary and decimal-mode SBC. C and V are pinned to the
// binary subtraction even in decimal mode; N and Z follow the final A,
// which in decimal mode is the BCD-adjusted result.
func iSBC(c *Chip, mode addrMode) error {
	m := c.loadOperand(mode)
	carry := uint16(0)
	if c.flag(PCarry) {
		carry = 1
	}
	tmp := uint16(c.A) - uint16(m) - 1 + carry
	binRes := uint8(tmp)
	c.setFlag(PCarry, tmp < 0x100)
	c.setFlag(POverflow, (c.A^m)&(c.A^binRes)&0x80 != 0)

	if c.flag(PDecimal) {
		lo := int16(c.A&0x0F) - int16(m&0x0F) - 1 + int16(carry)
		hi := int16(c.A>>4) - int16(m>>4)
		if lo < 0 {
			lo -= 6
			hi--
		}
		if hi < 0 {
			hi -= 6
		}
		c.A = uint8(hi<<4&0xF0) | uint8(lo&0x0F)
	} else {
		c.A = binRes
	}
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func iSEC(c *Chip, mode addrMode) error {
	c.setFlag(PCarry, true)
	return nil
}

func iSED(c *Chip, mode addrMode) error {
	c.setFlag(PDecimal, true)
	return nil
}

func iSEI(c *Chip, mode addrMode) error {
	c.setFlag(PInterrupt, true)
	return nil
}

func iSTA(c *Chip, mode addrMode) error {
	c.storeOperand(mode, c.A)
	// Stores always take the maximum cycle count for their addressing
	// mode regardless of page crossing; abs,X/abs,Y/(ind),Y never incur
	// the indexed-read penalty that loadOperand would have charged.
	c.extraCycles = 0
	return nil
}

func iSTX(c *Chip, mode addrMode) error {
	c.storeOperand(mode, c.X)
	return nil
}

func iSTY(c *Chip, mode addrMode) error {
	c.storeOperand(mode, c.Y)
	return nil
}

func iTAX(c *Chip, mode addrMode) error {
	c.X = c.A
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func iTAY(c *Chip, mode addrMode) error {
	c.Y = c.A
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}

func iTSX(c *Chip, mode addrMode) error {
	c.X = c.SP
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func iTXA(c *Chip, mode addrMode) error {
	c.A = c.X
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func iTXS(c *Chip, mode addrMode) error {
	c.SP = c.X
	return nil
}

func iTYA(c *Chip, mode addrMode) error {
	c.A = c.Y
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}
