package m68k

// exec_ctrl.go implements JMP/JSR/RTS/RTE/RTR, TRAP/TRAPV, STOP/RESET/NOP,
// TAS, and LINK/UNLK.

func registerCtrlExec() {
	execTable[KindJMP] = execJMP
	execTable[KindJSR] = execJSR
	execTable[KindRTS] = execRTS
	execTable[KindRTE] = execRTE
	execTable[KindRTR] = execRTR
	execTable[KindTRAP] = execTRAP
	execTable[KindTRAPV] = execTRAPV
	execTable[KindSTOP] = execSTOP
	execTable[KindRESET] = execRESET
	execTable[KindNOP] = execNOP
	execTable[KindTAS] = execTAS
	execTable[KindLINK] = execLINK
	execTable[KindUNLK] = execUNLK
}

func execJMP(c *CPU, inst Instruction) {
	c.reg.PC = inst.Operands.Dst.address(c)
}

func execJSR(c *CPU, inst Instruction) {
	target := inst.Operands.Dst.address(c)
	c.pushLong(c.reg.PC)
	c.reg.PC = target
}

func execRTS(c *CPU, inst Instruction) {
	c.reg.PC = c.popLong()
}

// execRTE restores PC and SR from the exception stack frame, consuming
// the variant's frame format: the short MC68000 frame, or the SCC68070
// format word followed by its optional long-format extension (spec.md
// §4.5 "RTE variant handling").
func execRTE(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	switch c.variant.Frame {
	case FrameSCC68070:
		// Frame was pushed zero-words(if long), PC, SR, format -- so the
		// format word is on top and pops first, mirroring pushFrame.
		format := c.popWord()
		sr := c.popWord()
		pc := c.popLong()
		if format&0xF000 == 0xF000 {
			for i := 0; i < 13; i++ {
				c.popWord()
			}
		}
		c.setSR(sr)
		c.reg.PC = pc
	default: // FrameMC68000
		// Frame was pushed PC, SR (plus a fault-only trailer this core
		// never auto-pops) -- SR is on top and pops first.
		sr := c.popWord()
		pc := c.popLong()
		c.setSR(sr)
		c.reg.PC = pc
	}
}

func execRTR(c *CPU, inst Instruction) {
	ccr := c.popWord()
	pc := c.popLong()
	c.setCCR(uint8(ccr))
	c.reg.PC = pc
}

func execTRAP(c *CPU, inst Instruction) {
	c.exception(vecTrap0 + uint8(inst.Operands.Imm))
}

func execTRAPV(c *CPU, inst Instruction) {
	if c.flagSet(flagV) {
		c.exception(vecTRAPV)
	}
}

func execSTOP(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	c.setSR(uint16(inst.Operands.Imm))
	c.stopped = true
}

func execRESET(c *CPU, inst Instruction) {
	if !c.requirePrivileged() {
		return
	}
	c.bus.ResetInstruction()
}

func execNOP(c *CPU, inst Instruction) {}

func execTAS(c *CPU, inst Instruction) {
	o := inst.Operands
	val := uint8(o.Dst.read(c, Byte))
	c.chargeEA(o.Dst, false)
	c.reg.SR &^= flagN | flagZ | flagV | flagC
	if val == 0 {
		c.reg.SR |= flagZ
	}
	if val&0x80 != 0 {
		c.reg.SR |= flagN
	}
	o.Dst.write(c, Byte, uint32(val)|0x80)
	c.chargeEA(o.Dst, true)
}

func execLINK(c *CPU, inst Instruction) {
	o := inst.Operands
	c.pushLong(c.reg.A[o.Reg])
	c.reg.A[o.Reg] = c.reg.A[7]
	c.reg.A[7] = uint32(int32(c.reg.A[7]) + o.Disp)
}

func execUNLK(c *CPU, inst Instruction) {
	o := inst.Operands
	c.reg.A[7] = c.reg.A[o.Reg]
	c.reg.A[o.Reg] = c.popLong()
}
