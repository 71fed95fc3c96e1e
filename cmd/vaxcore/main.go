// Command vaxcore decodes a flat VAX machine-code image and prints each
// instruction it finds, exercising the decoder and MMU without executing
// any instruction semantics (execution is out of scope for this core).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vaxcore/config"
	"vaxcore/cpu"
	"vaxcore/decode"
	"vaxcore/loader"
	"vaxcore/mmu"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		imagePath   = flag.String("image", "", "Path to a flat VAX machine-code image")
		loadAddr    = flag.Uint64("load-addr", 0, "Physical address to load the image at")
		ramSize     = flag.Uint64("ram-size", 1<<20, "Bytes of RAM to allocate")
		startAddr   = flag.Uint64("start", 0, "Virtual address to begin decoding from")
		maxSteps    = flag.Uint64("max-steps", 0, "Override the configured maximum decode steps (0 = use config)")
		mode        = flag.String("mode", "kernel", "Privilege mode to translate fetches as: kernel, executive, supervisor, user")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vaxcore %s (%s)\n", Version, Commit)
		return
	}

	if *imagePath == "" {
		log.Fatal("vaxcore: -image is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("vaxcore: failed to load config: %v", err)
	}
	if *maxSteps != 0 {
		cfg.Execution.MaxSteps = *maxSteps
	}

	privMode, err := parsePrivilegeMode(*mode)
	if err != nil {
		log.Fatalf("vaxcore: %v", err)
	}

	ramSize32, err := cpu.SafeUint64ToUint32(*ramSize)
	if err != nil {
		log.Fatalf("vaxcore: -ram-size: %v", err)
	}
	loadAddr32, err := cpu.SafeUint64ToUint32(*loadAddr)
	if err != nil {
		log.Fatalf("vaxcore: -load-addr: %v", err)
	}
	startAddr32, err := cpu.SafeUint64ToUint32(*startAddr)
	if err != nil {
		log.Fatalf("vaxcore: -start: %v", err)
	}

	ram := loader.NewRAM(ramSize32)
	if err := loader.LoadFile(ram, loadAddr32, *imagePath); err != nil {
		log.Fatalf("vaxcore: %v", err)
	}

	m := mmu.New(ram)
	m.SetEnabled(cfg.MMU.Enabled)
	m.SetP0Base(cfg.MMU.P0Base)
	m.SetP0Length(cfg.MMU.P0Length)
	m.SetP1Base(cfg.MMU.P1Base)
	m.SetP1Length(cfg.MMU.P1Length)
	m.SetSysBase(cfg.MMU.SysBase)
	m.SetSysLength(cfg.MMU.SysLength)

	if err := run(ram, m, startAddr32, privMode, cfg.Execution.MaxSteps); err != nil {
		log.Fatalf("vaxcore: %v", err)
	}
}

func parsePrivilegeMode(s string) (cpu.PrivilegeMode, error) {
	switch s {
	case "kernel":
		return cpu.Kernel, nil
	case "executive":
		return cpu.Executive, nil
	case "supervisor":
		return cpu.Supervisor, nil
	case "user":
		return cpu.User, nil
	default:
		return 0, fmt.Errorf("unknown privilege mode %q", s)
	}
}

// run decodes instructions starting at virt until the decoder runs out of
// bytes, hits an invalid opcode, or max steps elapses. Each byte the
// decoder needs is individually translated and fetched through the MMU,
// matching the ordering rule that fetch translation precedes decode.
func run(ram *loader.RAM, m *mmu.MMU, virt uint32, privMode cpu.PrivilegeMode, maxSteps uint64) error {
	for step := uint64(0); maxSteps == 0 || step < maxSteps; step++ {
		window, n, err := fetchWindow(ram, m, virt, uint8(privMode))
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		s := decode.NewStream(window)
		id, seq, err := decode.Decode(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%#08x: %v\n", virt, err)
			return nil
		}

		fmt.Printf("%#08x: %s", virt, id)
		for i := 0; i < seq.Len(); i++ {
			op, more, err := seq.Next()
			if err != nil {
				fmt.Printf(" <error: %v>", err)
				break
			}
			if !more && op == (decode.Operand{}) {
				// VariableLengthTable boundary (CASE instructions): the
				// table itself is left for a caller that understands it.
				break
			}
			fmt.Printf(" %+v", op)
			if op.Kind == decode.KindImmediate32 {
				fmt.Printf("(%d)", cpu.AsInt32(op.Imm32))
			}
			if !more {
				break
			}
		}
		fmt.Println()

		virt += uint32(s.Pos())
	}
	return nil
}

// fetchWindow translates virt and reads up to 16 bytes starting there as
// the decoder's lookahead. An instruction longer than 16 bytes (e.g. one
// with Octaword immediates) runs out of window and its trailing operands
// report ErrOutOfBytes.
func fetchWindow(ram *loader.RAM, m *mmu.MMU, virt uint32, mode uint8) ([]byte, int, error) {
	const window = 16
	buf := make([]byte, 0, window)
	for i := uint32(0); i < window; i++ {
		phys, err := m.Translate(virt+i, mode, mmu.Read)
		if err != nil {
			if i == 0 {
				return nil, 0, err
			}
			break
		}
		b, err := ram.ReadByte(phys)
		if err != nil {
			break
		}
		buf = append(buf, b)
	}
	return buf, len(buf), nil
}
