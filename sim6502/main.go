// Command sim6502 loads a flat binary ROM image into a simulated MOS 6502
// address space and runs it, optionally wiring stdin/stdout to a 6850
// ACIA peripheral mapped at 0xA000/0xA001.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmchacon/sim6502/cpu"
	"github.com/jmchacon/sim6502/memory"
	"github.com/jmchacon/sim6502/runloop"
	"github.com/jmchacon/sim6502/term"
	"github.com/jmchacon/sim6502/uart"
)

var (
	aReg        = flag.String("a", "0", "initial A register (hex: $nn, 0xnn, or nn)")
	xReg        = flag.String("x", "0", "initial X register (hex)")
	yReg        = flag.String("y", "0", "initial Y register (hex)")
	spReg       = flag.String("s", "$ff", "initial stack pointer (hex)")
	srReg       = flag.String("p", "0", "initial processor status register (hex)")
	runAddr     = flag.String("r", "", "run address; defaults to the reset vector (hex)")
	runAddrG    = flag.String("g", "", "alias for -r")
	loadAddr    = flag.String("l", "$c000", "ROM load address (hex)")
	cycles      = flag.Uint64("c", 0, "stop after this many total cycles (0: never)")
	breakAddr   = flag.String("b", "", "stop when PC reaches this address, dump memory, and exit (hex)")
	verbose     = flag.Bool("v", false, "print a trace line for every instruction")
	interactive = flag.Bool("i", false, "connect stdin/stdout to the simulated UART")
	memDump     = flag.Bool("m", false, "dump memory before every instruction step")
	fast        = flag.Bool("f", false, "run at full speed, without real-time pacing")
)

// parseHex parses a hex literal in any of the forms this simulator's
// original CLI accepted: a leading '$', a leading 0x/0X, or bare hex
// digits.
func parseHex(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return 0, fmt.Errorf("empty hex literal")
	}
	return strconv.ParseUint(s, 16, 64)
}

func mustHex8(name, s string) uint8 {
	v, err := parseHex(s)
	if err != nil {
		log.Fatalf("invalid -%s value %q: %v", name, s, err)
	}
	return uint8(v)
}

func mustHex16(name, s string) uint16 {
	v, err := parseHex(s)
	if err != nil {
		log.Fatalf("invalid -%s value %q: %v", name, s, err)
	}
	return uint16(v)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	ram := memory.NewRAM()

	load := mustHex16("l", *loadAddr)
	if _, err := memory.LoadROM(ram, romPath, load); err != nil {
		log.Fatalf("loading %s: %v", romPath, err)
	}

	var restore func() error
	if *interactive {
		fmt.Println("*** Enter interactive mode, CTRL+X to exit ***")
		fmt.Println()
		r, err := term.Raw()
		if err != nil {
			log.Fatalf("entering raw terminal mode: %v", err)
		}
		restore = r
		defer restore()
	}

	device := uart.NewDevice(*interactive, uart.NewStdin(), os.Stdout, restore, func() { os.Exit(0) })

	c, err := cpu.Init(&cpu.ChipDef{Ram: ram})
	if err != nil {
		log.Fatalf("initializing cpu: %v", err)
	}
	c.A = mustHex8("a", *aReg)
	c.X = mustHex8("x", *xReg)
	c.Y = mustHex8("y", *yReg)
	c.SP = mustHex8("s", *spReg)
	c.P = mustHex8("p", *srReg)

	run := *runAddr
	if run == "" {
		run = *runAddrG
	}
	if run != "" {
		c.Reset(true, mustHex16("r", run))
	} else {
		c.Reset(false, 0)
	}

	device.Init(c)

	breakPC := -1
	if *breakAddr != "" {
		breakPC = int(mustHex16("b", *breakAddr))
	}

	err = runloop.Run(runloop.Config{
		CPU:       c,
		UART:      device,
		Bank:      ram,
		CycleStop: *cycles,
		BreakPC:   breakPC,
		MemDump:   *memDump,
		Verbose:   *verbose,
		Fast:      *fast,
		Trace:     os.Stdout,
		Stderr:    os.Stderr,
	})
	if err != nil {
		log.Fatalf("simulation error: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] file
Simulate a MOS-6502 processor.

CPU initialization (hex: $nn, 0xnn, or nn):
  -a HEX  set A register (default 0)
  -x HEX  set X register (default 0)
  -y HEX  set Y register (default 0)
  -s HEX  set stack pointer (default $ff)
  -p HEX  set processor status register (default 0)
  -r HEX  set the run address (default: load from the reset vector)
  -g HEX  alias for -r

Simulator control:
  -v      print a trace line for every instruction
  -i      connect stdin/stdout to the simulated UART
  -b HEX  stop when PC reaches this address, dump memory, and exit
  -c NUM  stop after NUM total cycles (default: never)
  -f      run at full speed, without real-time pacing

Memory initialization:
  -l HEX  ROM load address (default $c000)
  file    flat binary file to load
`, os.Args[0])
}
