package m68k

// execFunc executes the semantics of a decoded Instruction, charging
// c.cycles for the base instruction cost and any resolved EA cost
// (spec.md §4.4, §3.5).
type execFunc func(c *CPU, inst Instruction)

var execTable [kindCount]execFunc

func init() {
	execTable[KindIllegal] = func(c *CPU, inst Instruction) { c.exception(vecIllegalInstruction) }

	registerMoveExec()
	registerArithExec()
	registerLogicExec()
	registerShiftExec()
	registerBitExec()
	registerBCDExec()
	registerBranchExec()
	registerCtrlExec()
	registerMovemExec()
}

// Execute runs one decoded instruction to completion, including its cycle
// charge (spec.md §4.4 "execute advances state and accounts cycles
// atomically").
func (c *CPU) Execute(inst Instruction) {
	c.cycles += c.variant.InstrCycles(inst.Kind, inst.Operands.Size)
	if fn := execTable[inst.Kind]; fn != nil {
		fn(c, inst)
		return
	}
	c.exception(vecIllegalInstruction)
}

// chargeEA adds the resolved addressing-mode cost of op on top of the
// instruction's base cost, for the Kinds whose timing model requires it.
func (c *CPU) chargeEA(op Operand, write bool) {
	if op.isRegisterDirect() {
		return
	}
	if write {
		c.cycles += c.eaWriteCycles(op.Mode, op.Size)
	} else {
		c.cycles += c.eaFetchCycles(op.Mode, op.Size)
	}
}

// requirePrivileged raises a privilege violation and reports whether the
// caller should continue executing (spec.md §4.5 privileged-instruction
// check: supervisor-only instructions executed in user mode trap instead
// of running).
func (c *CPU) requirePrivileged() bool {
	if c.supervisor() {
		return true
	}
	c.exception(vecPrivilegeViolation)
	return false
}
