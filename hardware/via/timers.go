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

package via

// Tick advances the timers of the VIA by the number of cycles given and
// samples the CA1 control line. Returns true if an enabled interrupt flag is
// set after the update.
func (via *VIA) Tick(cycles int) bool {
	via.tickTimer1(cycles)
	via.tickTimer2(cycles)
	via.sampleCA1()
	return via.Interrupt()
}

func (via *VIA) tickTimer1(cycles int) {
	via.t1Counter -= cycles
	if via.t1Counter > 0 {
		return
	}

	if via.regs[ACR]&ACRFreeRun == ACRFreeRun {
		// the counter reloads from the latch. there is an extra two cycles
		// between the counter expiring and the reload completing
		via.t1Counter += int(via.t1Latch) - 1 + 3
		via.ifr |= IntT1
		return
	}

	if !via.t1Fired {
		// one-shot mode fires once and then keeps counting down from the
		// top of the 16 bit range
		via.t1Counter += 0xffff
		via.t1Fired = true
		via.ifr |= IntT1
		return
	}

	via.t1Counter = int(uint16(via.t1Counter))
}

func (via *VIA) tickTimer2(cycles int) {
	// pulse counting mode is not driven by system cycles. PB6 is not
	// connected to anything that produces pulses so the counter stays put
	if via.regs[ACR]&ACRCountPulses == ACRCountPulses {
		return
	}

	via.t2Counter -= cycles
	if via.t2Counter <= 0 && !via.t2Fired {
		via.t2Counter += 0xffff
		via.t2Fired = true
		via.ifr |= IntT2
	}
}

// sampleCA1 sets the CA1 interrupt flag if the line has changed in the
// direction selected by the PCR since it was last sampled.
func (via *VIA) sampleCA1() {
	if via.ca1 != via.ca1Prev {
		positive := via.regs[PCR]&PCRCA1PositiveEdge == PCRCA1PositiveEdge
		if positive == via.ca1 {
			via.ifr |= IntCA1
		}
	}
	via.ca1Prev = via.ca1
}
