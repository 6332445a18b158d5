// Package runloop drives the cpu and uart packages in lockstep, pacing
// execution in fixed-duration slices the way the original simulator's
// step_delay/run_cpu pair does.
package runloop

import (
	"fmt"
	"io"
	"time"

	"github.com/jmchacon/sim6502/cpu"
	"github.com/jmchacon/sim6502/memory"
	"github.com/jmchacon/sim6502/uart"
)

const (
	cpuFreqHz      = 4_000_000
	stepDurationNs = 10_000_000
	oneSecondNs    = 1_000_000_000

	sleepDuration = stepDurationNs * time.Nanosecond
)

// cyclesPerStep is how many CPU cycles a single real-time slice covers,
// matching the original's cycles_per_step = CPU_FREQ/(ONE_SECOND/STEP_DURATION).
const cyclesPerStep = cpuFreqHz / (oneSecondNs / stepDurationNs)

// Config bundles everything one Run invocation needs.
type Config struct {
	CPU  *cpu.Chip
	UART *uart.Device
	Bank memory.Bank

	// CycleStop halts the run once TotalCycles reaches this value; 0 means
	// run until BreakPC or forever.
	CycleStop uint64
	// BreakPC halts the run when PC reaches this address; negative disables it.
	BreakPC int
	// MemDump writes a full memory dump before every single instruction step.
	MemDump bool
	// DumpPath is where MemDump (and a BreakPC-triggered final dump) is written.
	DumpPath string
	// Verbose emits one Trace() line per instruction to Trace.
	Verbose bool
	// Fast skips the inter-slice pacing sleep, running as fast as possible.
	Fast bool

	Trace  io.Writer
	Stderr io.Writer
}

// defaultDumpPath matches the original simulator's save_memory(NULL)
// fallback filename.
const defaultDumpPath = "memdump"

func (cfg Config) dumpPath() string {
	if cfg.DumpPath == "" {
		return defaultDumpPath
	}
	return cfg.DumpPath
}

// Run executes instructions until a stop condition fires. It returns nil
// on a normal cycle-stop/break-pc termination, or the first error returned
// by cpu.Step.
func Run(cfg Config) error {
	var cycles uint64
	for {
		for cycles %= cyclesPerStep; cycles < cyclesPerStep; {
			if cfg.MemDump {
				if err := memory.Dump(cfg.Bank, cfg.dumpPath()); err != nil {
					return err
				}
			}
			if cfg.Verbose {
				fmt.Fprintln(cfg.Trace, cfg.CPU.Trace())
			}

			n, err := cfg.CPU.Step()
			if err != nil {
				return err
			}
			cycles += uint64(n)

			if cfg.CycleStop > 0 && cfg.CPU.TotalCycles() >= cfg.CycleStop {
				return nil
			}

			cfg.UART.Step(cfg.CPU)

			if cfg.BreakPC >= 0 && cfg.CPU.PC == uint16(cfg.BreakPC) {
				fmt.Fprintf(cfg.Stderr, "break at %04x\n", cfg.BreakPC)
				return memory.Dump(cfg.Bank, cfg.dumpPath())
			}
		}
		if !cfg.Fast {
			time.Sleep(sleepDuration)
		}
	}
}
