// This file is part of Gophervic.
//
// Gophervic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervic.  If not, see <https://www.gnu.org/licenses/>.

package hardware_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gophervic/cartridgeloader"
	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/hardware"
	"github.com/jetsetilly/gophervic/hardware/govern"
	"github.com/jetsetilly/gophervic/hardware/input"
	"github.com/jetsetilly/gophervic/hardware/limiter"
	"github.com/jetsetilly/gophervic/hardware/memory"
	"github.com/jetsetilly/gophervic/hardware/memory/banks"
	"github.com/jetsetilly/gophervic/hardware/memory/bus"
	"github.com/jetsetilly/gophervic/hardware/preferences"
	"github.com/jetsetilly/gophervic/test"
)

// register addresses used in the tests
const (
	via1ORA  = 0x9111
	via1DDRA = 0x9113
	via1IFR  = 0x911d
	via1IER  = 0x911e

	via2ORB  = 0x9120
	via2ORA  = 0x9121
	via2DDRB = 0x9122
	via2DDRA = 0x9123
	via2T1CL = 0x9124
	via2T1CH = 0x9125
	via2IER  = 0x912e
)

type fakeCPU struct {
	mem    bus.CPUBus
	cycles int

	// ops are run one per step
	ops []func(mem bus.CPUBus)

	steps  int
	pc     uint16
	irq    bool
	nmi    int
	resets int
	err    error
}

func (cpu *fakeCPU) Step() (int, error) {
	if cpu.err != nil {
		return 0, cpu.err
	}
	cpu.steps++
	if len(cpu.ops) > 0 {
		cpu.ops[0](cpu.mem)
		cpu.ops = cpu.ops[1:]
	}
	return cpu.cycles, nil
}

func (cpu *fakeCPU) Reset() error {
	cpu.resets++
	return nil
}

func (cpu *fakeCPU) SetPC(address uint16) {
	cpu.pc = address
}

func (cpu *fakeCPU) SetIRQ(asserted bool) {
	cpu.irq = asserted
}

func (cpu *fakeCPU) NMI() {
	cpu.nmi++
}

type fakeVideo struct {
	regs   [16]uint8
	cycles int
}

func (vid *fakeVideo) ReadRegister(reg int) uint8 {
	return vid.regs[reg&0x0f]
}

func (vid *fakeVideo) WriteRegister(reg int, value uint8) {
	vid.regs[reg&0x0f] = value
}

func (vid *fakeVideo) Step(cycles int) {
	vid.cycles += cycles
}

type fakeClock struct {
	now time.Time
}

func (clk *fakeClock) Now() time.Time {
	return clk.now
}

func (clk *fakeClock) Sleep(d time.Duration) {
	clk.now = clk.now.Add(d)
}

func newMachine(t *testing.T) (*hardware.Machine, *fakeCPU, *fakeVideo) {
	t.Helper()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.LimiterActive.Set(false))

	vid := &fakeVideo{}
	m, err := hardware.NewMachine(nil, vid, p)
	test.DemandSuccess(t, err)

	cpu := &fakeCPU{mem: m.Mem, cycles: 10}
	m.SetCPU(cpu)

	m.SetKeymap(input.Keymap{
		"a":       {Row: 1, Column: 2},
		"RESTORE": input.Restore,
	}, input.CursorMap{
		"Up": input.Up,
	})
	m.SetCharMap(input.CharMap{
		'R':  {{Row: 1, Column: 3}},
		'U':  {{Row: 6, Column: 6}},
		'N':  {{Row: 4, Column: 4}},
		'\r': {{Row: 1, Column: 0}},
	})

	return m, cpu, vid
}

func TestNoCPU(t *testing.T) {
	m, err := hardware.NewMachine(nil, nil, nil)
	test.DemandSuccess(t, err)
	_, err = m.Step()
	test.ExpectEquality(t, curated.Is(err, hardware.NoCPU), true)
	test.ExpectSuccess(t, m.Reset())
}

func TestStepError(t *testing.T) {
	m, cpu, _ := newMachine(t)
	cpu.err = errors.New("halted")
	_, err := m.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, m.Cycles, uint32(0))
}

func TestIRQ(t *testing.T) {
	m, cpu, _ := newMachine(t)

	m.Mem.Write(via2IER, 0xc0)
	m.Mem.Write(via2T1CL, 0x10)
	m.Mem.Write(via2T1CH, 0x00)

	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.irq, false)

	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.irq, true)
	test.ExpectEquality(t, m.Interrupts.IRQ(), true)

	// reading the low byte of the counter acknowledges the interrupt
	m.Mem.Read(via2T1CL)
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.irq, false)
	test.ExpectEquality(t, cpu.nmi, 0)
}

func TestRestoreNMI(t *testing.T) {
	m, cpu, _ := newMachine(t)

	m.Mem.Write(via1IER, 0x82)

	// the CA1 line is high while the key is up. the first step raises the line
	// from its reset state which is not the active edge
	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.nmi, 0)

	test.DemandSuccess(t, m.SetKeyboard("RESTORE", true))
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.nmi, 1)

	// NMI is edge triggered
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.nmi, 1)

	m.Mem.Write(via1IFR, 0x02)
	test.DemandSuccess(t, m.SetKeyboard("RESTORE", false))
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Interrupts.NMI(), false)

	test.DemandSuccess(t, m.SetKeyboard("RESTORE", true))
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.nmi, 2)
	test.ExpectEquality(t, m.Interrupts.NMICount(), 2)
}

func TestKeyboardScan(t *testing.T) {
	m, _, _ := newMachine(t)

	test.DemandSuccess(t, m.SetKeyboard("a", true))
	test.ExpectFailure(t, m.SetKeyboard("unmapped", true))

	// columns driven by port B. rows read on port A
	m.Mem.Write(via2DDRB, 0xff)
	m.Mem.Write(via2DDRA, 0x00)
	m.Mem.Write(via2ORB, 0xfb)
	test.ExpectEquality(t, m.Mem.Read(via2ORA), uint8(0xfd))

	// a column without the key
	m.Mem.Write(via2ORB, 0xf7)
	test.ExpectEquality(t, m.Mem.Read(via2ORA), uint8(0xff))

	// rows driven by port A. columns read on port B
	m.Mem.Write(via2DDRB, 0x00)
	m.Mem.Write(via2DDRA, 0xff)
	m.Mem.Write(via2ORA, 0xfd)
	test.ExpectEquality(t, m.Mem.Read(via2ORB), uint8(0xfb))

	m.ResetKeyboard()
	test.ExpectEquality(t, m.Mem.Read(via2ORB), uint8(0xff))
}

func TestJoystick(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Mem.Write(via1DDRA, 0x00)
	test.ExpectEquality(t, m.Mem.Read(via1ORA), uint8(0xff))

	m.SetJoy(input.Up, true)
	test.ExpectEquality(t, m.Mem.Read(via1ORA), uint8(0xfb))
	m.SetJoy(input.Fire, true)
	test.ExpectEquality(t, m.Mem.Read(via1ORA), uint8(0xdb))

	// right is on VIA2 port B
	m.Mem.Write(via2DDRB, 0x00)
	test.ExpectEquality(t, m.Mem.Read(via2ORB), uint8(0xff))
	m.SetJoy(input.Right, true)
	test.ExpectEquality(t, m.Mem.Read(via2ORB), uint8(0x7f))

	m.ResetJoy()
	test.ExpectEquality(t, m.Mem.Read(via1ORA), uint8(0xff))
	test.ExpectEquality(t, m.Mem.Read(via2ORB), uint8(0xff))
}

func TestJoystickCursorEmulation(t *testing.T) {
	m, _, _ := newMachine(t)
	m.Mem.Write(via1DDRA, 0x00)

	// without emulation the cursor key is an ordinary (unmapped) key
	test.ExpectFailure(t, m.SetKeyboard("Up", true))

	test.DemandSuccess(t, m.SetJoyEmulation(input.JoyEmulationCursor))
	test.ExpectEquality(t, m.Prefs.JoyEmulation.String(), "cursor")
	test.DemandSuccess(t, m.SetKeyboard("Up", true))
	test.ExpectEquality(t, m.Mem.Read(via1ORA), uint8(0xfb))
}

func TestPushEvent(t *testing.T) {
	m, _, _ := newMachine(t)

	test.DemandSuccess(t, m.PushEvent(input.InputEvent{Event: input.KeyDown, Data: input.Key("a")}))
	test.ExpectEquality(t, m.Input.Matrix.Pressed(input.Cell{Row: 1, Column: 2}), false)

	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Input.Matrix.Pressed(input.Cell{Row: 1, Column: 2}), true)

	// bad event data is logged and the events behind it are still handled
	test.DemandSuccess(t, m.PushEvent(input.InputEvent{Event: input.KeyDown, Data: 10}))
	test.DemandSuccess(t, m.PushEvent(input.InputEvent{Event: input.KeyUp, Data: input.Key("a")}))
	_, err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Input.Matrix.Pressed(input.Cell{Row: 1, Column: 2}), false)
}

func TestPushEventUnmappedKey(t *testing.T) {
	m, cpu, _ := newMachine(t)

	test.DemandSuccess(t, m.PushEvent(input.InputEvent{Event: input.KeyDown, Data: input.Key("F12")}))
	test.DemandSuccess(t, m.PushEvent(input.InputEvent{Event: input.KeyDown, Data: input.Key("a")}))

	n := 0
	err := m.Run(func() (govern.State, error) {
		n++
		if n < 100 {
			return govern.Running, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cpu.steps, 100)
	test.ExpectEquality(t, m.Input.Matrix.Pressed(input.Cell{Row: 1, Column: 2}), true)
}

func TestVideo(t *testing.T) {
	m, _, vid := newMachine(t)

	m.Mem.Write(0x9003, 0x2e)
	test.ExpectEquality(t, vid.regs[3], uint8(0x2e))
	test.ExpectEquality(t, m.Mem.Read(0x9003), uint8(0x2e))

	for i := 0; i < 5; i++ {
		_, err := m.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, vid.cycles, 50)
	test.ExpectEquality(t, m.Cycles, uint32(50))
}

func TestReset(t *testing.T) {
	m, cpu, _ := newMachine(t)

	m.Mem.Write(0x0200, 0x55)
	m.Mem.Write(via2IER, 0xc0)
	test.DemandSuccess(t, m.SetKeyboard("a", true))
	m.SetJoy(input.Fire, true)
	m.Type("RUN")

	test.DemandSuccess(t, m.Reset())
	test.ExpectEquality(t, cpu.resets, 1)
	test.ExpectEquality(t, m.Mem.Read(0x0200), uint8(0x00))
	test.ExpectEquality(t, m.Mem.Read(via2IER), uint8(0x80))
	test.ExpectEquality(t, m.Input.Matrix.Any(), false)
	test.ExpectEquality(t, m.Input.Joystick.Get(input.Fire), false)
	test.ExpectEquality(t, m.Input.Injector.Active(), false)
}

func TestLoadProgram(t *testing.T) {
	m, cpu, _ := newMachine(t)

	err := m.LoadProgram([]uint8{0x01, 0x10}, true, true)
	test.ExpectEquality(t, curated.Is(err, memory.InvalidProgram), true)
	test.ExpectEquality(t, cpu.resets, 0)

	prg := []uint8{0x01, 0x10, 0x0b, 0x10, 0x0a, 0x00, 0x9e}
	test.DemandSuccess(t, m.LoadProgram(prg, false, true))
	test.ExpectEquality(t, m.Mem.Read(0x1001), uint8(0x0b))
	test.ExpectEquality(t, m.Mem.Read(0x1005), uint8(0x9e))
	test.ExpectEquality(t, m.Mem.ReadWord(memory.BASICStartOfVariables), uint16(0x1006))
	test.ExpectEquality(t, m.Input.Injector.Pending(), "RUN\r")
	test.ExpectEquality(t, cpu.resets, 0)
}

func TestLoadProgramWithReset(t *testing.T) {
	m, cpu, _ := newMachine(t)
	cpu.cycles = 1000

	m.Mem.Write(0x1010, 0xaa)

	prg := []uint8{0x01, 0x10, 0x0b, 0x10}
	test.DemandSuccess(t, m.LoadProgram(prg, true, false))
	test.ExpectEquality(t, cpu.resets, 1)
	test.ExpectEquality(t, cpu.steps, hardware.ResetSettleCycles/1000)
	test.ExpectEquality(t, m.Mem.Read(0x1010), uint8(0x00))
	test.ExpectEquality(t, m.Mem.Read(0x1002), uint8(0x10))
	test.ExpectEquality(t, m.Input.Injector.Active(), false)
}

func TestLoadCartridge(t *testing.T) {
	m, cpu, _ := newMachine(t)

	cart := []uint8{0x0d, 0xa0, 0x09, 0xa0}
	test.DemandSuccess(t, m.LoadCartridge(cart, 0xa000, true, true))
	test.ExpectEquality(t, cpu.resets, 1)
	test.ExpectEquality(t, cpu.pc, uint16(0xa00d))
	test.ExpectEquality(t, m.Mem.Read(0xa002), uint8(0x09))

	test.DemandSuccess(t, m.LoadCartridge([]uint8{0xea}, 0x2000, false, true))
	test.ExpectEquality(t, cpu.resets, 1)
	test.ExpectEquality(t, cpu.pc, uint16(0x2000))

	err := m.LoadCartridge(cart, 0x1000, false, false)
	test.ExpectEquality(t, curated.Is(err, memory.InvalidCartridgeDestination), true)

	m.RemoveCartridge()
	test.ExpectEquality(t, m.Mem.Read(0xa002), uint8(0xff))
}

func TestLoadCartridgeImage(t *testing.T) {
	m, cpu, _ := newMachine(t)

	test.DemandSuccess(t, m.LoadCartridgeImage([]uint8{0x00, 0x60, 0x4c, 0x00, 0x60}, false))
	test.ExpectEquality(t, m.Mem.Read(0x6000), uint8(0x4c))
	test.ExpectEquality(t, cpu.pc, uint16(0))

	err := m.LoadCartridgeImage([]uint8{0x00, 0x60}, false)
	test.ExpectEquality(t, curated.Is(err, memory.InvalidCartridgeImage), true)
}

func TestAttach(t *testing.T) {
	m, cpu, _ := newMachine(t)
	cpu.cycles = 1000

	ld := cartridgeloader.NewLoader("blitz.prg")
	ld.Data = []uint8{0x01, 0x10, 0x0b, 0x10}
	test.DemandSuccess(t, m.Attach(&ld))
	test.ExpectEquality(t, cpu.resets, 1)
	test.ExpectEquality(t, m.Mem.Read(0x1001), uint8(0x0b))
	test.ExpectEquality(t, m.Input.Injector.Pending(), "RUN\r")

	ld = cartridgeloader.NewLoader("omega race.crt")
	ld.Data = []uint8{0x00, 0xa0, 0x09, 0xa0}
	test.DemandSuccess(t, m.Attach(&ld))
	test.ExpectEquality(t, cpu.resets, 2)
	test.ExpectEquality(t, m.Mem.Read(0xa000), uint8(0x09))

	ld = cartridgeloader.NewLoader("notes.txt")
	ld.Data = []uint8{0x00}
	test.ExpectEquality(t, curated.Is(m.Attach(&ld), hardware.UnsupportedImage), true)
}

func TestPreferences(t *testing.T) {
	m, _, _ := newMachine(t)

	test.DemandSuccess(t, m.Prefs.Expansion.Set("8K"))
	test.ExpectEquality(t, m.Mem.Expansion(), banks.Expanded8K)

	test.DemandSuccess(t, m.SetExpansion(banks.Expanded3K))
	test.ExpectEquality(t, m.Prefs.Expansion.String(), "3K")
	test.ExpectEquality(t, m.Mem.Expansion(), banks.Expanded3K)

	test.ExpectFailure(t, m.Prefs.Expansion.Set("4K"))
	test.ExpectEquality(t, m.Mem.Expansion(), banks.Expanded3K)

	test.DemandSuccess(t, m.Prefs.Spec.Set("NTSC"))
	test.ExpectEquality(t, m.Limiter.ClockRate(), limiter.ClockNTSC)

	test.DemandSuccess(t, m.Prefs.LimiterActive.Set(true))
	test.ExpectEquality(t, m.Limiter.Active, true)

	test.DemandSuccess(t, m.Prefs.PointerThreshold.Set(3))
	test.ExpectEquality(t, m.Input.Joystick.Threshold, 3)

	test.DemandSuccess(t, m.Prefs.Speed.Set(0.5))
	test.ExpectEquality(t, m.Limiter.Speed(), 0.5)
}

func TestTypeHold(t *testing.T) {
	m, _, _ := newMachine(t)
	test.DemandSuccess(t, m.Prefs.TypeHold.Set(20))

	r := input.Cell{Row: 1, Column: 3}

	m.Type("R")
	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Input.Matrix.Pressed(r), true)

	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Input.Matrix.Pressed(r), true)

	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Input.Matrix.Pressed(r), false)
}

func TestLimiter(t *testing.T) {
	m, cpu, _ := newMachine(t)
	cpu.cycles = 10000

	clk := &fakeClock{now: time.Unix(0, 0)}
	m.Limiter = limiter.NewLimiter(1000000, clk)

	for i := 0; i < 4; i++ {
		_, err := m.Step()
		test.DemandSuccess(t, err)
	}

	// the first sync point at 20000 cycles starts the measurement and the
	// second at 40000 cycles finds the emulation 20ms ahead
	test.ExpectEquality(t, m.Limiter.Waited(), 20*time.Millisecond)
}

func TestRun(t *testing.T) {
	m, cpu, _ := newMachine(t)

	n := 0
	err := m.Run(func() (govern.State, error) {
		n++
		switch {
		case n < 10:
			return govern.Running, nil
		case n < 15:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.DemandSuccess(t, err)

	// the first step happens before the first check
	test.ExpectEquality(t, cpu.steps, 10)

	cpu.steps = 0
	err = m.RunForCycles(100, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.steps, 10)

	cpu.err = errors.New("halted")
	test.ExpectFailure(t, m.Run(nil))
}

func TestSnapshot(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Mem.Write(0x0200, 0x55)
	m.Mem.Write(via2DDRA, 0x0f)
	s := m.Snapshot()

	m.Mem.Write(0x0200, 0xaa)
	m.Mem.Write(via2DDRA, 0xf0)

	m.Plumb(s)
	test.ExpectEquality(t, m.Mem.Read(0x0200), uint8(0x55))
	test.ExpectEquality(t, m.Mem.Read(via2DDRA), uint8(0x0f))

	// the stored state is not changed by the running machine
	m.Mem.Write(0x0200, 0xaa)
	m.Plumb(s)
	test.ExpectEquality(t, m.Mem.Read(0x0200), uint8(0x55))
}

func TestSnapshotNMI(t *testing.T) {
	m, cpu, _ := newMachine(t)

	m.Mem.Write(via1IER, 0x82)
	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.SetKeyboard("RESTORE", true))
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, cpu.nmi, 1)

	// the NMI flag is still set in the snapshot
	s := m.Snapshot()
	m.Plumb(s)
	test.ExpectEquality(t, m.Interrupts.NMI(), true)

	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.nmi, 1)

	// a new edge is signalled once the flag has been cleared
	m.Mem.Write(via1IFR, 0x02)
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.SetKeyboard("RESTORE", true))
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.nmi, 2)
}

func TestVisualise(t *testing.T) {
	m, _, _ := newMachine(t)
	w := &test.Writer{}
	m.Visualise(w)
	test.ExpectEquality(t, strings.Contains(w.String(), "digraph"), true)
}
