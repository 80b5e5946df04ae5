package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunCyclesStopsOnceBudgetMet drives a tight NOP loop and checks
// RunCycles returns once at least the requested budget has elapsed, never
// splitting an instruction to land exactly on it.
func TestRunCyclesStopsOnceBudgetMet(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	for i := uint32(0); i < 8; i++ {
		bus.loadWords(0x1000+i*2, 0x4E71) // NOP, 4 cycles each
	}

	elapsed, last := cpu.RunCycles(10)
	require.GreaterOrEqual(t, elapsed, uint64(10))
	require.Equal(t, KindNOP, last.Instruction.Kind)
}

// TestRunCyclesStopsWhenCPUHalts checks that STOP with no pending
// exception leaves RunCycles unable to make further progress and it
// returns rather than looping forever.
func TestRunCyclesStopsWhenCPUHalts(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x4E72, 0x2704) // STOP #$2704

	elapsed, last := cpu.RunCycles(1000)
	require.True(t, cpu.Stopped())
	require.Equal(t, KindSTOP, last.Instruction.Kind)
	require.Less(t, elapsed, uint64(1000), "a halted core with nothing pending must not spin to the full budget")
}

// TestRunUntilExceptionStopsAtTrap drives a few NOPs followed by a TRAP
// and checks the run stops exactly when the trap is serviced, not before
// or one step later.
func TestRunUntilExceptionStopsAtTrap(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x4E71)        // NOP
	bus.loadWords(0x1002, 0x4E71)        // NOP
	bus.loadWords(0x1004, 0x4E40)        // TRAP #0
	bus.SetLong(uint32(vecTrap0)*4, 0x5000)

	r := cpu.RunUntilException()
	require.True(t, r.Exception)
	require.Equal(t, vecTrap0, r.Vector)
	require.Equal(t, uint32(0x5000), cpu.reg.PC)
}

// TestStepVectorSurfacesVectorWithoutPushingFrame drives a TRAP and
// checks StepVector hands the vector back directly: no frame on the
// stack, PC left sitting just past the TRAP, SP untouched.
func TestStepVectorSurfacesVectorWithoutPushingFrame(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x4E40) // TRAP #0
	bus.SetLong(uint32(vecTrap0)*4, 0x5000)
	spBefore := cpu.reg.A[7]

	r, ok := cpu.StepVector()
	require.False(t, ok)
	require.Equal(t, KindTRAP, r.Instruction.Kind)

	r, ok = cpu.StepVector()
	require.True(t, ok)
	require.True(t, r.Exception)
	require.Equal(t, vecTrap0, r.Vector)
	require.Equal(t, uint32(0x1002), cpu.reg.PC, "StepVector must not redirect PC to the vector table")
	require.Equal(t, spBefore, cpu.reg.A[7], "StepVector must not push a stack frame")
}

// TestWithTraceOnPrivilegedOptionArmsTraceAfterSupervisorInstruction
// checks the option: when set, an instruction that requires supervisor
// mode, executed with the T bit set on entry, still arms a trace exception
// for the following Step.
func TestWithTraceOnPrivilegedOptionArmsTraceAfterSupervisorInstruction(t *testing.T) {
	bus := newTestBus()
	cpu := New(bus, MC68000, WithTraceOnPrivileged(true))
	cpu.SetState(Registers{PC: 0x1000, SSP: 0x9000, USP: 0x8000, SR: flagS | flagT})

	bus.SetLong(uint32(vecTrace)*4, 0x6000)
	bus.loadWords(0x1000, 0x027C, 0x00FF) // ANDI #$FF,SR (privileged)

	r := cpu.Step()
	require.Equal(t, KindANDItoSR, r.Instruction.Kind)
	require.True(t, r.Trace, "the privileged instruction itself must arm a pending trace")

	r = cpu.Step()
	require.True(t, r.Exception)
	require.Equal(t, vecTrace, r.Vector)
	require.Equal(t, uint32(0x6000), cpu.reg.PC)
}

// TestWithoutTraceOnPrivilegedOptionDefault checks the default
// configuration never arms a trace from a privileged instruction alone.
func TestWithoutTraceOnPrivilegedOptionDefault(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x027C, 0x00FF) // ANDI #$FF,SR

	r := cpu.Step()
	require.Equal(t, KindANDItoSR, r.Instruction.Kind)
	require.False(t, r.Trace)
}
