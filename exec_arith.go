package m68k

// exec_arith.go implements ADD/SUB/CMP and their immediate/quick/address/
// extend variants, plus NEG/NEGX/CLR/TST/EXT/CHK/MULU/MULS/DIVU/DIVS.

func registerArithExec() {
	execTable[KindADD] = execADD
	execTable[KindSUB] = execSUB
	execTable[KindCMP] = execCMP
	execTable[KindADDA] = execADDA
	execTable[KindSUBA] = execSUBA
	execTable[KindCMPA] = execCMPA
	execTable[KindADDI] = execADDI
	execTable[KindSUBI] = execSUBI
	execTable[KindCMPI] = execCMPI
	execTable[KindADDQ] = execADDQ
	execTable[KindSUBQ] = execSUBQ
	execTable[KindADDX] = execADDX
	execTable[KindSUBX] = execSUBX
	execTable[KindCMPM] = execCMPM
	execTable[KindNEG] = execNEG
	execTable[KindNEGX] = execNEGX
	execTable[KindCLR] = execCLR
	execTable[KindTST] = execTST
	execTable[KindEXT] = execEXT
	execTable[KindCHK] = execCHK
	execTable[KindMULU] = execMULU
	execTable[KindMULS] = execMULS
	execTable[KindDIVU] = execDIVU
	execTable[KindDIVS] = execDIVS
}

func execADD(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	c.chargeEA(o.Src, false)
	dst := o.Dst.read(c, o.Size)
	result, _, _ := addCarry(src, dst, 0, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsAdd(src, dst, result, o.Size)
}

func execSUB(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	dst := o.Dst.read(c, o.Size)
	c.chargeEA(o.Src, false)
	result, _, _ := subCarry(src, dst, 0, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsSub(src, dst, result, o.Size)
}

func execCMP(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	c.chargeEA(o.Src, false)
	dst := o.Dst.read(c, o.Size)
	result, _, _ := subCarry(src, dst, 0, o.Size)
	c.setFlagsCmp(src, dst, result, o.Size)
}

func execADDA(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	c.chargeEA(o.Src, false)
	if o.Size == Word {
		src = signExtendWord(uint16(src))
	}
	c.setEffectiveA(o.Reg, c.effectiveA(o.Reg)+src)
}

func execSUBA(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	c.chargeEA(o.Src, false)
	if o.Size == Word {
		src = signExtendWord(uint16(src))
	}
	c.setEffectiveA(o.Reg, c.effectiveA(o.Reg)-src)
}

func execCMPA(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	c.chargeEA(o.Src, false)
	if o.Size == Word {
		src = signExtendWord(uint16(src))
	}
	dst := c.effectiveA(o.Reg)
	result, _, _ := subCarry(src, dst, 0, Long)
	c.setFlagsCmp(src, dst, result, Long)
}

func execADDI(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	src := uint32(o.Imm)
	result, _, _ := addCarry(src, dst, 0, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsAdd(src, dst, result, o.Size)
}

func execSUBI(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	src := uint32(o.Imm)
	result, _, _ := subCarry(src, dst, 0, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsSub(src, dst, result, o.Size)
}

func execCMPI(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	src := uint32(o.Imm)
	result, _, _ := subCarry(src, dst, 0, o.Size)
	c.chargeEA(o.Dst, false)
	c.setFlagsCmp(src, dst, result, o.Size)
}

func execADDQ(c *CPU, inst Instruction) {
	o := inst.Operands
	src := uint32(o.Imm)
	if o.Dst.Mode.Tag == AMAddrReg {
		c.setEffectiveA(o.Dst.Mode.Reg, c.effectiveA(o.Dst.Mode.Reg)+src)
		return
	}
	dst := o.Dst.read(c, o.Size)
	result, _, _ := addCarry(src, dst, 0, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsAdd(src, dst, result, o.Size)
}

func execSUBQ(c *CPU, inst Instruction) {
	o := inst.Operands
	src := uint32(o.Imm)
	if o.Dst.Mode.Tag == AMAddrReg {
		c.setEffectiveA(o.Dst.Mode.Reg, c.effectiveA(o.Dst.Mode.Reg)-src)
		return
	}
	dst := o.Dst.read(c, o.Size)
	result, _, _ := subCarry(src, dst, 0, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsSub(src, dst, result, o.Size)
}

func execADDX(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	dst := o.Dst.read(c, o.Size)
	x := uint32(0)
	if c.flagSet(flagX) {
		x = 1
	}
	result, _, _ := addCarry(src, dst, x, o.Size)
	o.Dst.write(c, o.Size, result)
	c.setFlagsAddX(src, dst, x, result, o.Size)
}

func execSUBX(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	dst := o.Dst.read(c, o.Size)
	x := uint32(0)
	if c.flagSet(flagX) {
		x = 1
	}
	result, _, _ := subCarry(src, dst, x, o.Size)
	o.Dst.write(c, o.Size, result)
	c.setFlagsSubX(src, dst, x, result, o.Size)
}

func execCMPM(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	dst := o.Dst.read(c, o.Size)
	result, _, _ := subCarry(src, dst, 0, o.Size)
	c.setFlagsCmp(src, dst, result, o.Size)
}

func execNEG(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	result, _, _ := subCarry(dst, 0, 0, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsSub(dst, 0, result, o.Size)
}

func execNEGX(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	x := uint32(0)
	if c.flagSet(flagX) {
		x = 1
	}
	result, _, _ := subCarry(dst, 0, x, o.Size)
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsSubX(dst, 0, x, result, o.Size)
}

func execCLR(c *CPU, inst Instruction) {
	o := inst.Operands
	o.Dst.read(c, o.Size) // CLR still performs the read cycle on real hardware
	o.Dst.write(c, o.Size, 0)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(0, o.Size)
}

func execTST(c *CPU, inst Instruction) {
	o := inst.Operands
	val := o.Dst.read(c, o.Size)
	c.chargeEA(o.Dst, false)
	c.setFlagsLogical(val, o.Size)
}

func execEXT(c *CPU, inst Instruction) {
	o := inst.Operands
	d := c.reg.D[o.Reg]
	var result uint32
	if o.Size == Word {
		result = (d &^ 0xFFFF) | signExtendByte(uint8(d))&0xFFFF
	} else {
		result = signExtendWord(uint16(d))
	}
	c.reg.D[o.Reg] = result
	c.setFlagsLogical(result, o.Size)
}

func execCHK(c *CPU, inst Instruction) {
	o := inst.Operands
	bound := int32(int16(o.Src.read(c, Word)))
	c.chargeEA(o.Src, false)
	val := int32(int16(c.reg.D[o.Reg]))
	if val < 0 {
		c.reg.SR |= flagN
		c.exception(vecCHK)
		return
	}
	if val > bound {
		c.reg.SR &^= flagN
		c.exception(vecCHK)
	}
}

func execMULU(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, Word) & 0xFFFF
	c.chargeEA(o.Src, false)
	dst := c.reg.D[o.Reg] & 0xFFFF
	result := src * dst
	c.reg.D[o.Reg] = result
	c.setFlagsLogical(result, Long)
}

func execMULS(c *CPU, inst Instruction) {
	o := inst.Operands
	src := int32(int16(o.Src.read(c, Word)))
	c.chargeEA(o.Src, false)
	dst := int32(int16(c.reg.D[o.Reg]))
	result := uint32(src * dst)
	c.reg.D[o.Reg] = result
	c.setFlagsLogical(result, Long)
}

func execDIVU(c *CPU, inst Instruction) {
	o := inst.Operands
	divisor := o.Src.read(c, Word) & 0xFFFF
	c.chargeEA(o.Src, false)
	if divisor == 0 {
		c.exception(vecDivideByZero)
		return
	}
	dividend := c.reg.D[o.Reg]
	q := dividend / divisor
	r := dividend % divisor
	c.reg.SR &^= flagN | flagZ | flagV | flagC
	if q > 0xFFFF {
		c.reg.SR |= flagV
		return
	}
	c.reg.D[o.Reg] = (r << 16) | (q & 0xFFFF)
	if q == 0 {
		c.reg.SR |= flagZ
	}
	if q&0x8000 != 0 {
		c.reg.SR |= flagN
	}
}

func execDIVS(c *CPU, inst Instruction) {
	o := inst.Operands
	divisor := int32(int16(o.Src.read(c, Word)))
	c.chargeEA(o.Src, false)
	if divisor == 0 {
		c.exception(vecDivideByZero)
		return
	}
	dividend := int32(c.reg.D[o.Reg])
	q := dividend / divisor
	r := dividend % divisor
	c.reg.SR &^= flagN | flagZ | flagV | flagC
	if q > 32767 || q < -32768 {
		c.reg.SR |= flagV
		return
	}
	c.reg.D[o.Reg] = (uint32(r) << 16) | (uint32(q) & 0xFFFF)
	if q == 0 {
		c.reg.SR |= flagZ
	}
	if q < 0 {
		c.reg.SR |= flagN
	}
}
