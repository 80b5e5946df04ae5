package m68k

// exec_branch.go implements Bcc/BRA/BSR/DBcc/Scc. Branch displacements are
// relative to the address of the opcode word plus 2 (spec.md §4.4), which
// is inst.PC+2 regardless of how many extension words the displacement
// itself consumed.

func registerBranchExec() {
	execTable[KindBcc] = execBcc
	execTable[KindBRA] = execBRA
	execTable[KindBSR] = execBSR
	execTable[KindDBcc] = execDBcc
	execTable[KindScc] = execScc
}

func execBcc(c *CPU, inst Instruction) {
	o := inst.Operands
	if c.testCondition(o.Cond) {
		c.reg.PC = uint32(int32(inst.PC) + 2 + o.Disp)
	}
}

func execBRA(c *CPU, inst Instruction) {
	o := inst.Operands
	c.reg.PC = uint32(int32(inst.PC) + 2 + o.Disp)
}

func execBSR(c *CPU, inst Instruction) {
	o := inst.Operands
	c.pushLong(c.reg.PC)
	c.reg.PC = uint32(int32(inst.PC) + 2 + o.Disp)
}

func execDBcc(c *CPU, inst Instruction) {
	o := inst.Operands
	if c.testCondition(o.Cond) {
		return
	}
	dn := c.reg.D[o.Reg]
	result := uint16(dn) - 1
	c.reg.D[o.Reg] = (dn &^ 0xFFFF) | uint32(result)
	if result != 0xFFFF {
		c.reg.PC = uint32(int32(inst.PC) + 2 + o.Disp)
	}
}

func execScc(c *CPU, inst Instruction) {
	o := inst.Operands
	var val uint32
	if c.testCondition(o.Cond) {
		val = 0xFF
	}
	o.Dst.write(c, Byte, val)
	c.chargeEA(o.Dst, true)
}
