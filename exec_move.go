package m68k

// exec_move.go implements the data-movement family: MOVE, MOVEA, MOVEQ,
// MOVEP, LEA, PEA, EXG, SWAP, and the SR/CCR/USP accessors.

func registerMoveExec() {
	execTable[KindMOVE] = execMOVE
	execTable[KindMOVEA] = execMOVEA
	execTable[KindMOVEQ] = execMOVEQ
	execTable[KindMOVEP] = execMOVEP
	execTable[KindLEA] = execLEA
	execTable[KindPEA] = execPEA
	execTable[KindEXG] = execEXG
	execTable[KindSWAP] = execSWAP
	execTable[KindMOVEtoCCR] = execMOVEtoCCR
	execTable[KindMOVEtoSR] = execMOVEtoSR
	execTable[KindMOVEfromSR] = execMOVEfromSR
	execTable[KindMOVEUSP] = execMOVEUSP
}

func execMOVE(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src
	val := src.read(c, o.Size)
	c.chargeEA(src, false)
	dst := o.Dst
	dst.write(c, o.Size, val)
	c.chargeEA(dst, true)
	c.setFlagsLogical(val, o.Size)
}

func execMOVEA(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src
	val := src.read(c, o.Size)
	c.chargeEA(src, false)
	if o.Size == Word {
		val = signExtendWord(uint16(val))
	}
	c.setEffectiveA(o.Reg, val)
}

func execMOVEQ(c *CPU, inst Instruction) {
	o := inst.Operands
	val := uint32(o.Imm)
	c.reg.D[o.Reg] = val
	c.setFlagsLogical(val, Long)
}

func execMOVEP(c *CPU, inst Instruction) {
	o := inst.Operands
	base := c.reg.A[o.RegY]
	addr := uint32(int32(base) + o.Disp)
	if o.MemToReg {
		var val uint32
		val = uint32(c.readBus(Byte, addr)) << 8
		val |= uint32(c.readBus(Byte, addr+2))
		if o.Size == Long {
			val <<= 16
			val |= uint32(c.readBus(Byte, addr+4)) << 8
			val |= uint32(c.readBus(Byte, addr+6))
		}
		mask := o.Size.Mask()
		c.reg.D[o.Reg] = (c.reg.D[o.Reg] &^ mask) | (val & mask)
		return
	}
	val := c.reg.D[o.Reg]
	if o.Size == Long {
		c.writeBus(Byte, addr, (val>>24)&0xFF)
		c.writeBus(Byte, addr+2, (val>>16)&0xFF)
		c.writeBus(Byte, addr+4, (val>>8)&0xFF)
		c.writeBus(Byte, addr+6, val&0xFF)
		return
	}
	c.writeBus(Byte, addr, (val>>8)&0xFF)
	c.writeBus(Byte, addr+2, val&0xFF)
}

func execLEA(c *CPU, inst Instruction) {
	o := inst.Operands
	addr := o.Src.address(c)
	c.setEffectiveA(o.Reg, addr)
}

func execPEA(c *CPU, inst Instruction) {
	o := inst.Operands
	addr := o.Src.address(c)
	c.pushLong(addr)
}

func execEXG(c *CPU, inst Instruction) {
	o := inst.Operands
	switch o.Imm {
	case 0x08: // Dx,Dy
		c.reg.D[o.Reg], c.reg.D[o.RegY] = c.reg.D[o.RegY], c.reg.D[o.Reg]
	case 0x09: // Ax,Ay
		c.reg.A[o.Reg], c.reg.A[o.RegY] = c.reg.A[o.RegY], c.reg.A[o.Reg]
	case 0x11: // Dx,Ay
		c.reg.D[o.Reg], c.reg.A[o.RegY] = c.reg.A[o.RegY], c.reg.D[o.Reg]
	}
}

func execSWAP(c *CPU, inst Instruction) {
	o := inst.Operands
	v := c.reg.D[o.Reg]
	v = v<<16 | v>>16
	c.reg.D[o.Reg] = v
	c.setFlagsLogical(v, Long)
}

func execMOVEtoCCR(c *CPU, inst Instruction) {
	o := inst.Operands
	val := o.Src.read(c, Word)
	c.chargeEA(o.Src, false)
	c.setCCR(uint8(val))
}

func execMOVEtoSR(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	o := inst.Operands
	val := o.Src.read(c, Word)
	c.chargeEA(o.Src, false)
	c.setSR(uint16(val))
}

func execMOVEfromSR(c *CPU, inst Instruction) {
	o := inst.Operands
	o.Dst.write(c, Word, uint32(c.reg.SR))
	c.chargeEA(o.Dst, true)
}

func execMOVEUSP(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	o := inst.Operands
	if o.MemToReg { // An -> USP
		c.reg.USP = c.reg.A[o.Reg]
	} else { // USP -> An
		c.reg.A[o.Reg] = c.reg.USP
	}
}
