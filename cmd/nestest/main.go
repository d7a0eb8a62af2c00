// This file is part of nescore.
//
// nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nescore.  If not, see <https://www.gnu.org/licenses/>.

// Command nestest runs an iNES ROM (or flat PRG image) against the CPU core
// in isolation, emitting a nestest-format trace line per instruction and
// optionally diffing it against a known-good reference log.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hexnibble/nescore/hardware/cpu"
	"github.com/hexnibble/nescore/hardware/cpu/interrupts"
	"github.com/hexnibble/nescore/hardware/cpu/trace"
	"github.com/hexnibble/nescore/hardware/memory"
	"github.com/hexnibble/nescore/logger"
	"github.com/hexnibble/nescore/metrics"
	"github.com/hexnibble/nescore/modalflag"
	"github.com/hexnibble/nescore/prefs"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)

	resetOverride := md.AddBool("resetC000", true, "load PC from 0xC000 rather than the cartridge's reset vector")
	maxInstructions := md.AddInt("max", 10000, "stop after this many instructions")
	reference := md.AddString("reference", "", "reference log to diff trace output against")
	dashboard := md.AddBool("metrics", false, "launch the metrics dashboard, if built with the metrics tag")

	result, err := md.Parse()
	switch result {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	romPath := md.GetArg(0)
	if romPath == "" {
		return fmt.Errorf("nestest: no ROM path given")
	}

	cfg := prefs.NewConfig()
	if err := cfg.NestestResetOverride.Set(*resetOverride); err != nil {
		return err
	}

	prg, err := loadPRG(romPath)
	if err != nil {
		return err
	}

	mapper, err := memory.NewNROM(prg)
	if err != nil {
		return err
	}
	bus := memory.NewBus(mapper)

	c := cpu.NewCPU(bus, &interrupts.Latch{})
	resetCycles, err := c.PowerCycle()
	if err != nil {
		return err
	}
	if cfg.NestestResetOverride.Get().(bool) {
		c.PC.Load(0xC000)
	}

	if *dashboard && metrics.Available() {
		metrics.Launch(os.Stdout, cfg.MetricsAddress.String())
	}

	var refScanner *bufio.Scanner
	if *reference != "" {
		f, err := os.Open(*reference)
		if err != nil {
			return err
		}
		defer f.Close()
		refScanner = bufio.NewScanner(f)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	// nestestEnd is the address at which nestest.nes's non-interactive run
	// finishes; the trace line for it is the last one emitted.
	const nestestEnd = 0xC66E

	totalCycles := resetCycles
	for i := 0; i < *maxInstructions; i++ {
		if c.State() == cpu.Halted {
			logger.Logf(logger.Allow, "nestest", "halted after %d instructions", i)
			if cfg.HaltOnIllegalOpcode.Get().(bool) {
				return fmt.Errorf("nestest: CPU halted on an undocumented opcode after %d instructions", i)
			}
			break
		}

		line, err := trace.Line(c, totalCycles)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)

		if refScanner != nil && refScanner.Scan() {
			if refScanner.Text() != line {
				fmt.Fprintf(os.Stderr, "mismatch at instruction %d:\n got: %s\nwant: %s\n", i, line, refScanner.Text())
				return fmt.Errorf("nestest: reference log mismatch")
			}
		}

		if c.PC.Address() == nestestEnd {
			break
		}

		cycles, err := c.Step()
		if err != nil {
			return err
		}
		totalCycles += cycles
	}

	return nil
}

// loadPRG reads either a raw PRG-ROM dump or an iNES ("NES\x1A"-prefixed)
// image and returns just the PRG-ROM bytes NewNROM expects. CHR-ROM, if
// present, is discarded along with the 16-byte iNES header; it has no
// consumer in a CPU-core-only conformance run.
func loadPRG(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	const inesHeaderSize = 16
	if len(data) >= 4 && string(data[:3]) == "NES" && data[3] == 0x1A {
		if len(data) < inesHeaderSize {
			return nil, fmt.Errorf("nestest: %s: truncated iNES header", path)
		}
		prgBanks := int(data[4])
		prgSize := prgBanks * 16384
		if len(data) < inesHeaderSize+prgSize {
			return nil, fmt.Errorf("nestest: %s: truncated PRG-ROM", path)
		}
		return data[inesHeaderSize : inesHeaderSize+prgSize], nil
	}

	return data, nil
}
