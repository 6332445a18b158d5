// Package uart simulates a 6850-analog ACIA mapped at two fixed addresses
// in the engine's address space: a control/status register and a data
// register. It observes the engine's last-read/last-write addresses rather
// than owning any memory of its own.
package uart

import (
	"fmt"
	"io"
)

// Memory-mapped register addresses.
const (
	CtrlAddr = uint16(0xA000)
	DataAddr = uint16(0xA001)
)

// Status register bit masks, in the same bit order as the 6850's status
// register: RDRF TDRE DCD CTS FE OVRN PE IRQ.
const (
	StatusRDRF = uint8(0x01)
	StatusTDRE = uint8(0x02)
	StatusDCD  = uint8(0x04)
	StatusCTS  = uint8(0x08)
	StatusFE   = uint8(0x10)
	StatusOVRN = uint8(0x20)
	StatusPE   = uint8(0x40)
	StatusIRQ  = uint8(0x80)
)

// pollPeriod is how many Step calls elapse between stdin polls; matches
// the original simulator's n%100 cadence.
const pollPeriod = 100

// Observer is the subset of cpu.Chip that Device needs: the last-access
// observation slots, and raw memory access to the two mapped registers.
// *cpu.Chip satisfies this by method set alone, so uart never imports cpu.
type Observer interface {
	LastRead() (uint16, bool)
	LastWrite() (uint16, bool)
	ClearLastRead()
	ClearLastWrite()
	Peek(addr uint16) uint8
	Poke(addr uint16, val uint8)
}

// Device is a single ACIA instance wired to one Observer's address space.
type Device struct {
	status      uint8
	incoming    uint8
	interactive bool
	n           int

	stdin StdinReader
	out   io.Writer

	// restore undoes any raw-terminal mode change before the device exits
	// the process on CTRL-X; nil is a valid no-op.
	restore func() error
	// exit terminates the process; overridable so tests can observe a
	// requested exit instead of actually calling os.Exit.
	exit func()
}

// NewDevice creates an ACIA. restore and exit may be nil; a nil restore is
// replaced by a no-op, while a nil exit stays nil, so CTRL-X then restores
// the terminal and prints CR LF without ending the process.
func NewDevice(interactive bool, stdin StdinReader, out io.Writer, restore func() error, exit func()) *Device {
	if restore == nil {
		restore = func() error { return nil }
	}
	d := &Device{
		status:      StatusTDRE,
		interactive: interactive,
		stdin:       stdin,
		out:         out,
		restore:     restore,
		exit:        exit,
	}
	return d
}

// Init zeroes the data register on obs and resets the device's status to
// TDRE set, RDRF clear. The status byte is written to CtrlAddr by the next
// Step, not by Init.
func (d *Device) Init(obs Observer) {
	obs.Poke(DataAddr, 0)
	d.status = StatusTDRE
	d.incoming = 0
}

// Step runs one UART tick. It must be called once after every cpu.Step, in
// the same order the original simulator calls step_uart after step_cpu.
func (d *Device) Step(obs Observer) {
	if waddr, ok := obs.LastWrite(); ok && waddr == DataAddr {
		val := obs.Peek(DataAddr)
		fmt.Fprintf(d.out, "%c", val)
		if val == '\b' {
			fmt.Fprint(d.out, " \b")
		}
		obs.ClearLastWrite()
	} else if raddr, ok := obs.LastRead(); ok && raddr == DataAddr {
		d.status &^= StatusRDRF
		obs.ClearLastRead()
	}

	if d.n%pollPeriod == 0 {
		d.pollStdin()
	}
	d.n++

	obs.Poke(DataAddr, d.incoming)
	obs.Poke(CtrlAddr, d.status)
}

func (d *Device) pollStdin() {
	if d.status&StatusRDRF != 0 || !d.stdin.Ready() {
		return
	}
	b, err := d.stdin.ReadByte()
	if err != nil {
		fmt.Fprintln(d.out, "Warning: read() returns 0")
		return
	}
	if d.interactive {
		if b == 0x18 {
			d.restore()
			fmt.Fprint(d.out, "\r\n")
			if d.exit != nil {
				d.exit()
			}
			return
		}
		if b == 0x7F {
			b = '\b'
		}
	}
	d.incoming = b
	d.status |= StatusRDRF
}
