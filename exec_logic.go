package m68k

// exec_logic.go implements AND/OR/EOR and their immediate forms, NOT, and
// the CCR/SR immediate-logical variants.

func registerLogicExec() {
	execTable[KindAND] = execAND
	execTable[KindOR] = execOR
	execTable[KindEOR] = execEOR
	execTable[KindANDI] = execANDI
	execTable[KindORI] = execORI
	execTable[KindEORI] = execEORI
	execTable[KindNOT] = execNOT
	execTable[KindANDItoCCR] = execANDItoCCR
	execTable[KindORItoCCR] = execORItoCCR
	execTable[KindEORItoCCR] = execEORItoCCR
	execTable[KindANDItoSR] = execANDItoSR
	execTable[KindORItoSR] = execORItoSR
	execTable[KindEORItoSR] = execEORItoSR
}

func execAND(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	c.chargeEA(o.Src, false)
	dst := o.Dst.read(c, o.Size)
	result := src & dst
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(result, o.Size)
}

func execOR(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	c.chargeEA(o.Src, false)
	dst := o.Dst.read(c, o.Size)
	result := src | dst
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(result, o.Size)
}

func execEOR(c *CPU, inst Instruction) {
	o := inst.Operands
	src := o.Src.read(c, o.Size)
	dst := o.Dst.read(c, o.Size)
	result := src ^ dst
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(result, o.Size)
}

func execANDI(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	result := uint32(o.Imm) & dst
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(result, o.Size)
}

func execORI(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	result := uint32(o.Imm) | dst
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(result, o.Size)
}

func execEORI(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	result := uint32(o.Imm) ^ dst
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(result, o.Size)
}

func execNOT(c *CPU, inst Instruction) {
	o := inst.Operands
	dst := o.Dst.read(c, o.Size)
	result := ^dst
	o.Dst.write(c, o.Size, result)
	c.chargeEA(o.Dst, true)
	c.setFlagsLogical(result, o.Size)
}

func execANDItoCCR(c *CPU, inst Instruction) {
	c.setCCR(uint8(c.reg.SR) & uint8(inst.Operands.Imm))
}

func execORItoCCR(c *CPU, inst Instruction) {
	c.setCCR(uint8(c.reg.SR) | uint8(inst.Operands.Imm))
}

func execEORItoCCR(c *CPU, inst Instruction) {
	c.setCCR(uint8(c.reg.SR) ^ uint8(inst.Operands.Imm))
}

func execANDItoSR(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	c.setSR(c.reg.SR & uint16(inst.Operands.Imm))
}

func execORItoSR(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	c.setSR(c.reg.SR | uint16(inst.Operands.Imm))
}

func execEORItoSR(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	c.setSR(c.reg.SR ^ uint16(inst.Operands.Imm))
}
