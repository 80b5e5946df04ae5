package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRTERestoresMC68000Frame checks that RTE pops the short MC68000
// frame (PC then SR, SR on top) back into the correct registers.
func TestRTERestoresMC68000Frame(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000)
	cpu.reg.SR = flagS // supervisor, otherwise blank CCR

	cpu.pushLong(0x00123456) // PC
	cpu.pushWord(0x2704)     // SR (supervisor, IM=7, Z set)

	bus2 := cpu.bus.(*testBus)
	bus2.loadWords(0x1000, 0x4E73) // RTE
	cpu.reg.PC = 0x1000

	r := cpu.Step()
	require.Equal(t, KindRTE, r.Instruction.Kind)
	require.Equal(t, uint32(0x00123456), cpu.reg.PC)
	require.Equal(t, uint16(0x2704), cpu.reg.SR)
}

// TestRTERestoresSCC68070Frame checks the ordinary-vector short-format
// frame: format word on top, then SR, then PC, matching pushFrame's push
// order of PC, SR, format.
func TestRTERestoresSCC68070Frame(t *testing.T) {
	cpu, _ := newTestCPU(t, SCC68070)
	cpu.reg.SR = flagS

	cpu.pushLong(0x00200000) // PC
	cpu.pushWord(0x2700)     // SR
	cpu.pushWord(uint16(vecTrap0) * 4) // format word, ordinary vector

	bus2 := cpu.bus.(*testBus)
	bus2.loadWords(0x1000, 0x4E73) // RTE
	cpu.reg.PC = 0x1000

	r := cpu.Step()
	require.Equal(t, KindRTE, r.Instruction.Kind)
	require.Equal(t, uint32(0x00200000), cpu.reg.PC)
	require.Equal(t, uint16(0x2700), cpu.reg.SR)
}

// TestRTESCC68070LongFrameSkipsTrailer confirms that a bus/address-error
// long-format frame (format nibble 0xF) consumes its 13 extra trailer
// words (26 bytes) in addition to PC/SR, matching the 34-byte long frame.
func TestRTESCC68070LongFrameSkipsTrailer(t *testing.T) {
	cpu, _ := newTestCPU(t, SCC68070)
	cpu.reg.SR = flagS

	for i := 0; i < 13; i++ {
		cpu.pushWord(0xAAAA)
	}
	cpu.pushLong(0x00300000)
	cpu.pushWord(0x2700)
	cpu.pushWord(0xF000 | uint16(vecBusError)*4)

	bus2 := cpu.bus.(*testBus)
	bus2.loadWords(0x1000, 0x4E73)
	cpu.reg.PC = 0x1000
	spBefore := cpu.reg.A[7]

	r := cpu.Step()
	require.Equal(t, KindRTE, r.Instruction.Kind)
	require.Equal(t, uint32(0x00300000), cpu.reg.PC)
	require.Equal(t, uint16(0x2700), cpu.reg.SR)
	require.Equal(t, spBefore+4+2+2+26, cpu.reg.A[7], "RTE must also pop the 13-word long-frame trailer")
}
