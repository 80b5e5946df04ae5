package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDBccLoopsUntilCounterExpires drives a DBF (DBcc always-false) loop
// three times and checks it falls through once the counter wraps to -1.
func TestDBccLoopsUntilCounterExpires(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x51C8, 0xFFFE) // DBF D0,*-0 (branch back to itself)
	cpu.reg.D[0] = 2

	for i := 0; i < 2; i++ {
		r := cpu.Step()
		require.Equal(t, KindDBcc, r.Instruction.Kind)
		require.Equal(t, uint32(0x1000), cpu.reg.PC, "loop must branch back each iteration")
	}
	cpu.reg.D[0] = 0
	r := cpu.Step()
	require.Equal(t, KindDBcc, r.Instruction.Kind)
	require.Equal(t, uint32(0xFFFF), cpu.reg.D[0]&0xFFFF, "counter must wrap to -1 on the terminating pass")
	require.Equal(t, uint32(0x1004), cpu.reg.PC, "once the counter expires execution falls through")
}

// TestDBccTakesNoBranchWhenConditionTrue checks that DBcc does not
// decrement or branch at all once its condition is already satisfied.
func TestDBccTakesNoBranchWhenConditionTrue(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x57C8, 0xFFFE) // DBEQ D0,*-0
	cpu.reg.D[0] = 5
	cpu.reg.SR |= flagZ

	r := cpu.Step()
	require.Equal(t, KindDBcc, r.Instruction.Kind)
	require.Equal(t, uint32(5), cpu.reg.D[0], "condition already true: counter must not change")
	require.Equal(t, uint32(0x1004), cpu.reg.PC)
}

// TestSccWritesAllOnesOrZero checks Scc sets the full byte to 0xFF when
// true and 0x00 when false, never a partial pattern.
func TestSccWritesAllOnesOrZero(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x57C0) // SEQ D0
	cpu.reg.D[0] = 0x12345600
	cpu.reg.SR |= flagZ

	r := cpu.Step()
	require.Equal(t, KindScc, r.Instruction.Kind)
	require.Equal(t, uint32(0xFF), cpu.reg.D[0]&0xFF)
	require.Equal(t, uint32(0x12345600), cpu.reg.D[0]&0xFFFFFF00, "Scc must not disturb the upper three bytes of Dn")
}

// TestBSRPushesReturnAddress checks BSR pushes the address of the
// following instruction and then jumps to the branch target.
func TestBSRPushesReturnAddress(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x6100, 0x0010) // BSR.W +16
	startSP := cpu.reg.A[7]

	r := cpu.Step()
	require.Equal(t, KindBSR, r.Instruction.Kind)
	require.Equal(t, uint32(0x1012), cpu.reg.PC)
	require.Equal(t, startSP-4, cpu.reg.A[7])
	ret, _ := bus.GetLong(cpu.reg.A[7])
	require.Equal(t, uint32(0x1004), ret, "pushed return address must be the word after the extension")
}
