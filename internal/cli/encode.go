package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokode/internal/adapters/stream"
	"svw.info/sudokode/internal/bitpack"
	"svw.info/sudokode/internal/infrastructure/textio"
	"svw.info/sudokode/internal/usecase"
)

func newEncodeCommand() *cobra.Command {
	var puzzle bool
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Read plain text and write sudoku grids",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := textio.Input(opts.inputPath)
			if err != nil {
				return err
			}
			defer in.Close()
			message, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			res, err := newService().Encode(cmd.Context(), message, usecase.EncodeOptions{Puzzle: puzzle})
			if err != nil {
				return err
			}
			for i, ch := range res.Chunks {
				log.WithFields(logrus.Fields{"grid": i + 1, "index": ch}).Debug("encoded chunk")
			}

			out, err := textio.Output(opts.outputPath)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := stream.WriteGrids(out, res.Grids); err != nil {
				return err
			}

			if opts.stats {
				clues := 0
				for _, g := range res.Grids {
					clues += g.ClueCount()
				}
				log.WithFields(logrus.Fields{
					"chars":        len(message),
					"bits":         8 * len(message),
					"grids":        len(res.Grids),
					"capacityBits": bitpack.CapacityBits(),
					"cluesLeft":    clues,
					"cluesRemoved": len(res.Grids)*81 - clues,
					"solverNodes":  res.Stats.Nodes,
				}).Info("encode stats")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&puzzle, "puzzle", "p", false, "generate puzzle grids instead of filled-in grids")
	return cmd
}
