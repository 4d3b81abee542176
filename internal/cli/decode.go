package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokode/internal/adapters/stream"
	"svw.info/sudokode/internal/infrastructure/textio"
)

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Read sudoku grids and write the decoded plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := textio.Input(opts.inputPath)
			if err != nil {
				return err
			}
			defer in.Close()
			grids, err := stream.ReadGrids(in)
			if err != nil {
				return err
			}

			res, err := newService().Decode(cmd.Context(), grids)
			if err != nil {
				return err
			}
			for i, ch := range res.Chunks {
				log.WithFields(logrus.Fields{"grid": i + 1, "index": ch}).Debug("decoded chunk")
			}

			out, err := textio.Output(opts.outputPath)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := out.Write(res.Message); err != nil {
				return err
			}

			if opts.stats {
				log.WithFields(logrus.Fields{
					"grids": len(grids),
					"chars": len(res.Message),
				}).Info("decode stats")
			}
			return nil
		},
	}
}
