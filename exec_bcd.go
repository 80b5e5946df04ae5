package m68k

// exec_bcd.go implements ABCD/SBCD/NBCD packed-BCD arithmetic. All three
// use the X-using-arithmetic Z-cleared-only rule (spec.md §4.4), applied
// inline in each handler, since a multi-byte BCD chain must only see Z
// set once the whole chain is zero.

func registerBCDExec() {
	execTable[KindABCD] = execABCD
	execTable[KindSBCD] = execSBCD
	execTable[KindNBCD] = execNBCD
}

// bcdAdd adds two packed-BCD bytes plus an extend-carry-in, per nibble,
// with decimal correction, returning the result and the decimal carry out.
func bcdAdd(src, dst, x uint8) (result uint8, carry bool) {
	lo := (src & 0xF) + (dst & 0xF) + x
	var loCarry uint8
	if lo > 9 {
		lo += 6
	}
	if lo > 0xF {
		loCarry = 1
		lo &= 0xF
	}
	hi := (src >> 4) + (dst >> 4) + loCarry
	var hiCarry bool
	if hi > 9 {
		hi += 6
	}
	if hi > 0xF {
		hiCarry = true
		hi &= 0xF
	}
	return hi<<4 | lo, hiCarry
}

// bcdSub subtracts two packed-BCD bytes with an extend-borrow-in, with
// decimal correction, returning the result and the decimal borrow out.
func bcdSub(src, dst, x uint8) (result uint8, borrow bool) {
	lo := int(dst&0xF) - int(src&0xF) - int(x)
	var loBorrow uint8
	if lo < 0 {
		lo -= 6
		loBorrow = 1
	}
	hi := int(dst>>4) - int(src>>4) - int(loBorrow)
	var hiBorrow bool
	if hi < 0 {
		hi -= 6
		hiBorrow = true
	}
	return uint8(hi<<4) | uint8(lo&0xF), hiBorrow
}

func execABCD(c *CPU, inst Instruction) {
	o := inst.Operands
	src := uint8(o.Src.read(c, Byte))
	dst := uint8(o.Dst.read(c, Byte))
	x := uint8(0)
	if c.flagSet(flagX) {
		x = 1
	}
	result, carry := bcdAdd(src, dst, x)
	o.Dst.write(c, Byte, uint32(result))

	wasZ := c.flagSet(flagZ)
	c.reg.SR &^= flagX | flagN | flagZ | flagV | flagC
	if wasZ && result == 0 {
		c.reg.SR |= flagZ
	}
	if result&0x80 != 0 {
		c.reg.SR |= flagN
	}
	if carry {
		c.reg.SR |= flagC | flagX
	}
}

func execSBCD(c *CPU, inst Instruction) {
	o := inst.Operands
	src := uint8(o.Src.read(c, Byte))
	dst := uint8(o.Dst.read(c, Byte))
	x := uint8(0)
	if c.flagSet(flagX) {
		x = 1
	}
	result, borrow := bcdSub(src, dst, x)
	o.Dst.write(c, Byte, uint32(result))

	wasZ := c.flagSet(flagZ)
	c.reg.SR &^= flagX | flagN | flagZ | flagV | flagC
	if wasZ && result == 0 {
		c.reg.SR |= flagZ
	}
	if result&0x80 != 0 {
		c.reg.SR |= flagN
	}
	if borrow {
		c.reg.SR |= flagC | flagX
	}
}

func execNBCD(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := uint8(o.Dst.read(c, Byte))
	x := uint8(0)
	if c.flagSet(flagX) {
		x = 1
	}
	result, borrow := bcdSub(dst, 0, x)
	o.Dst.write(c, Byte, uint32(result))
	c.chargeEA(o.Dst, true)

	wasZ := c.flagSet(flagZ)
	c.reg.SR &^= flagX | flagN | flagZ | flagV | flagC
	if wasZ && result == 0 {
		c.reg.SR |= flagZ
	}
	if result&0x80 != 0 {
		c.reg.SR |= flagN
	}
	if borrow {
		c.reg.SR |= flagC | flagX
	}
}
