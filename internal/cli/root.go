// Package cli wires the cobra command tree around the codec service.
package cli

import (
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokode/internal/ports"
	"svw.info/sudokode/internal/reducer"
	"svw.info/sudokode/internal/solver"
	"svw.info/sudokode/internal/usecase"
	"svw.info/sudokode/internal/validator"
)

type rootOptions struct {
	debug      bool
	stats      bool
	solverKind string
	profiling  bool
	inputPath  string
	outputPath string
}

var (
	opts rootOptions
	log  = logrus.New()
	prof interface{ Stop() }
)

// NewRootCommand builds the sudokode command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sudokode",
		Short: "Encode and decode text in the form of sudoku grids",
		Long: `sudokode maps arbitrary 7-bit ASCII text onto sequences of valid sudoku
grids and back. Each grid carries a fixed number of payload bits derived
from the size of the symmetry group acting on a fixed base grid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if opts.debug {
				log.SetLevel(logrus.DebugLevel)
			}
			if opts.profiling {
				prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
				prof = nil
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.debug, "debug", "D", false, "write debugging information to stderr")
	pf.BoolVarP(&opts.stats, "stats", "s", false, "report encoding statistics on stderr")
	pf.StringVar(&opts.solverKind, "solver", "backtrack", "solver backend: backtrack|dlx")
	pf.BoolVar(&opts.profiling, "profile", false, "write a CPU profile to the current directory")
	pf.StringVarP(&opts.inputPath, "input", "i", "", "read input from file instead of stdin")
	pf.StringVarP(&opts.outputPath, "output", "o", "", "write output to file instead of stdout")

	root.AddCommand(newEncodeCommand(), newDecodeCommand(), newTestCommand())
	return root
}

// Execute runs the command tree; any error becomes a single diagnostic line
// and a non-zero exit.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Error(err)
		os.Exit(1)
	}
}

func newSolver() ports.Solver {
	switch strings.ToLower(strings.TrimSpace(opts.solverKind)) {
	case "dlx":
		return solver.NewDLXSolver()
	default:
		return solver.NewBacktrackingSolver()
	}
}

func newService() *usecase.Service {
	s := newSolver()
	return usecase.NewService(s, reducer.NewUniqueReducer(s), validator.New())
}
