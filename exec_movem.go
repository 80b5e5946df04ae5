package m68k

// exec_movem.go implements MOVEM. Register order in the mask differs by
// addressing mode (spec.md §4.4, matching the original's register-order
// convention): predecrement stores scan A7..A0,D7..D0 so the lowest
// register ends up lowest in memory; every other mode scans D0..D7,A0..A7.

func registerMovemExec() {
	execTable[KindMOVEM] = execMOVEM
}

func execMOVEM(c *CPU, inst Instruction) {
	o := inst.Operands
	predec := o.Dst.Mode.Tag == AMPreDec

	if o.MemToReg {
		addr := o.Dst.address(c)
		for i := 0; i < 16; i++ {
			if o.RegList&(1<<uint(i)) == 0 {
				continue
			}
			val := c.readBus(o.Size, addr)
			if o.Size == Word {
				val = signExtendWord(uint16(val))
			}
			if i < 8 {
				c.reg.D[i] = val
			} else {
				c.setEffectiveA(uint8(i-8), val)
			}
			addr += uint32(o.Size)
		}
		if o.Dst.Mode.Tag == AMPostInc {
			c.reg.A[o.Dst.Mode.Reg] = addr
		}
		return
	}

	if predec {
		addr := c.reg.A[o.Dst.Mode.Reg]
		for i := 0; i < 16; i++ {
			if o.RegList&(1<<uint(i)) == 0 {
				continue
			}
			addr -= uint32(o.Size)
			ri := 15 - i // reversed: bit 0->A7, bit 15->D0
			var val uint32
			if ri < 8 {
				val = c.reg.D[ri]
			} else {
				val = c.reg.A[ri-8]
			}
			c.writeBus(o.Size, addr, val)
		}
		c.reg.A[o.Dst.Mode.Reg] = addr
		return
	}

	addr := o.Dst.address(c)
	for i := 0; i < 16; i++ {
		if o.RegList&(1<<uint(i)) == 0 {
			continue
		}
		var val uint32
		if i < 8 {
			val = c.reg.D[i]
		} else {
			val = c.reg.A[i-8]
		}
		c.writeBus(o.Size, addr, val)
		addr += uint32(o.Size)
	}
}
