// Command cdclsat reads a DIMACS CNF file and reports SATISFIABLE,
// UNSATISFIABLE, or TIMEOUT, printing a witnessing assignment on SAT.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/opencdcl/cdclsat/dimacs"
	"github.com/opencdcl/cdclsat/sat"
)

var (
	flagGzip       = flag.Bool("gzip", false, "the instance file is gzip-compressed")
	flagHeuristic  = flag.String("heuristic", "vsids", "branching heuristic: vsids, dlis, or random")
	flagRestarts   = flag.Bool("restarts", true, "enable Luby-scheduled restarts")
	flagForgets    = flag.Bool("forgets", true, "enable learnt-clause forgetting")
	flagTimeout    = flag.Float64("timeout", 0, "wall-clock budget in seconds (0 = unlimited)")
	flagDPLL       = flag.Bool("dpll", false, "use the DPLL sibling instead of CDCL")
	flagCPUProfile = flag.Bool("cpuprof", false, "save a pprof CPU profile to cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save a pprof heap profile to memprof")
)

type config struct {
	instanceFile string
	gzipped      bool
	dpll         bool
	cpuProfile   bool
	memProfile   bool
	opts         sat.Options
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	opts := sat.DefaultOptions
	switch *flagHeuristic {
	case "vsids":
		opts.Heuristic = sat.HeuristicVSIDS
	case "dlis":
		opts.Heuristic = sat.HeuristicDLIS
	case "random":
		opts.Heuristic = sat.HeuristicRandom
	default:
		return nil, fmt.Errorf("unknown heuristic %q", *flagHeuristic)
	}
	opts.Restarts = *flagRestarts
	opts.Forgets = *flagForgets
	opts.TimeoutSeconds = *flagTimeout

	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		dpll:         *flagDPLL,
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
		opts:         opts,
	}, nil
}

func run(cfg *config) error {
	s := sat.NewSolver(cfg.opts)
	if err := dimacs.Load(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not load instance: %w", err)
	}

	fmt.Printf("c variables: %d\n", s.NumVariables())
	fmt.Printf("c clauses:   %d\n", s.NumConstraints())

	start := time.Now()
	var status sat.Status
	if cfg.dpll {
		status = s.SolveDPLL()
	} else {
		status = s.Solve()
	}
	elapsed := time.Since(start)

	stats := s.Stats()
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d\n", stats.TotalConflicts)
	fmt.Printf("c restarts:   %d\n", stats.TotalRestarts)
	fmt.Printf("c status:     %s\n", status)

	switch status {
	case sat.StatusSat:
		fmt.Println("s SATISFIABLE")
		printModel(s)
	case sat.StatusUnsat:
		fmt.Println("s UNSATISFIABLE")
	case sat.StatusTimeout:
		fmt.Println("s TIMEOUT")
	}
	return nil
}

// printModel prints the satisfying assignment in DIMACS solution format: one
// line of signed literals (1-indexed) terminated by 0.
func printModel(s *sat.Solver) {
	model := s.Model()
	fmt.Print("v")
	for v, val := range model {
		if val {
			fmt.Printf(" %d", v+1)
		} else {
			fmt.Printf(" -%d", v+1)
		}
	}
	fmt.Println(" 0")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
