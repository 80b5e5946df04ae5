package m68k

// exec_bit.go implements BTST/BCHG/BCLR/BSET. Bit number modulo 32 for a
// data-register destination, modulo 8 for a memory destination (spec.md
// §4.4's bit-manipulation family).

func registerBitExec() {
	execTable[KindBTST] = execBTST
	execTable[KindBCHG] = execBCHG
	execTable[KindBCLR] = execBCLR
	execTable[KindBSET] = execBSET
}

func bitNumber(c *CPU, o Operands) uint8 {
	var n uint8
	if o.MemToReg {
		n = uint8(c.reg.D[o.Reg])
	} else {
		n = uint8(o.Imm)
	}
	if o.Dst.Mode.Tag == AMDataReg {
		return n & 31
	}
	return n & 7
}

func execBTST(c *CPU, inst Instruction) {
	o := inst.Operands
	n := bitNumber(c, o)
	val := o.Dst.read(c, o.Size)
	c.chargeEA(o.Dst, false)
	if val&(1<<n) == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
}

func execBCHG(c *CPU, inst Instruction) {
	o := inst.Operands
	n := bitNumber(c, o)
	val := o.Dst.read(c, o.Size)
	bit := val & (1 << n)
	if bit == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	o.Dst.write(c, o.Size, val^(1<<n))
	c.chargeEA(o.Dst, true)
}

func execBCLR(c *CPU, inst Instruction) {
	o := inst.Operands
	n := bitNumber(c, o)
	val := o.Dst.read(c, o.Size)
	bit := val & (1 << n)
	if bit == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	o.Dst.write(c, o.Size, val&^(1<<n))
	c.chargeEA(o.Dst, true)
}

func execBSET(c *CPU, inst Instruction) {
	o := inst.Operands
	n := bitNumber(c, o)
	val := o.Dst.read(c, o.Size)
	bit := val & (1 << n)
	if bit == 0 {
		c.reg.SR |= flagZ
	} else {
		c.reg.SR &^= flagZ
	}
	o.Dst.write(c, o.Size, val|(1<<n))
	c.chargeEA(o.Dst, true)
}
