package m68k

// Status register flag bits.
const (
	flagC uint16 = 1 << iota // Carry
	flagV                    // Overflow
	flagZ                    // Zero
	flagN                    // Negative
	flagX                    // Extend

	flagIM uint16 = 7 << 8  // Interrupt mask (3 bits)
	flagS  uint16 = 1 << 13 // Supervisor
	flagT  uint16 = 1 << 15 // Trace

	srValidMask uint16 = 0xA71F // T__S__III___XNZVC
)

// setFlagsAdd sets XNZVC after an addition: result = dst + src.
func (c *CPU) setFlagsAdd(src, dst, result uint32, sz Size) {
	_, carry, overflow := addCarry(src, dst, 0, sz)
	c.reg.SR &^= flagX | flagN | flagZ | flagV | flagC
	if result&sz.Mask() == 0 {
		c.reg.SR |= flagZ
	}
	if result&sz.MSB() != 0 {
		c.reg.SR |= flagN
	}
	if overflow {
		c.reg.SR |= flagV
	}
	if carry {
		c.reg.SR |= flagC | flagX
	}
}

// setFlagsSub sets XNZVC after a subtraction: result = dst - src.
func (c *CPU) setFlagsSub(src, dst, result uint32, sz Size) {
	_, borrow, overflow := subCarry(src, dst, 0, sz)
	c.reg.SR &^= flagX | flagN | flagZ | flagV | flagC
	if result&sz.Mask() == 0 {
		c.reg.SR |= flagZ
	}
	if result&sz.MSB() != 0 {
		c.reg.SR |= flagN
	}
	if overflow {
		c.reg.SR |= flagV
	}
	if borrow {
		c.reg.SR |= flagC | flagX
	}
}

// setFlagsAddX behaves like setFlagsAdd but implements the X-using-arithmetic
// Z rule from spec.md §4.4: Z is cleared-only, never set, so that multi-
// precision zero detection survives across a chain of ADDX/SUBX/NEGX/BCD ops.
func (c *CPU) setFlagsAddX(src, dst, x, result uint32, sz Size) {
	_, carry, overflow := addCarry(src, dst, x, sz)
	wasZ := c.reg.SR&flagZ != 0
	c.reg.SR &^= flagX | flagN | flagZ | flagV | flagC
	if wasZ && result&sz.Mask() == 0 {
		c.reg.SR |= flagZ
	}
	if result&sz.MSB() != 0 {
		c.reg.SR |= flagN
	}
	if overflow {
		c.reg.SR |= flagV
	}
	if carry {
		c.reg.SR |= flagC | flagX
	}
}

func (c *CPU) setFlagsSubX(src, dst, x, result uint32, sz Size) {
	_, borrow, overflow := subCarry(src, dst, x, sz)
	wasZ := c.reg.SR&flagZ != 0
	c.reg.SR &^= flagX | flagN | flagZ | flagV | flagC
	if wasZ && result&sz.Mask() == 0 {
		c.reg.SR |= flagZ
	}
	if result&sz.MSB() != 0 {
		c.reg.SR |= flagN
	}
	if overflow {
		c.reg.SR |= flagV
	}
	if borrow {
		c.reg.SR |= flagC | flagX
	}
}

// setFlagsCmp sets NZVC after a comparison (subtraction without storing).
// Does not modify the X flag.
func (c *CPU) setFlagsCmp(src, dst, result uint32, sz Size) {
	_, borrow, overflow := subCarry(src, dst, 0, sz)
	c.reg.SR &^= flagN | flagZ | flagV | flagC
	if result&sz.Mask() == 0 {
		c.reg.SR |= flagZ
	}
	if result&sz.MSB() != 0 {
		c.reg.SR |= flagN
	}
	if overflow {
		c.reg.SR |= flagV
	}
	if borrow {
		c.reg.SR |= flagC
	}
}

// setFlagsLogical sets NZ, clears VC after a logical operation.
func (c *CPU) setFlagsLogical(result uint32, sz Size) {
	c.reg.SR &^= flagN | flagZ | flagV | flagC
	if result&sz.Mask() == 0 {
		c.reg.SR |= flagZ
	}
	if result&sz.MSB() != 0 {
		c.reg.SR |= flagN
	}
}

// testCondition evaluates an MC68000 condition code.
func (c *CPU) testCondition(cc Condition) bool {
	return cc.test(c.reg.SR)
}

func (c *CPU) flagSet(mask uint16) bool { return c.reg.SR&mask != 0 }
