package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudokode/internal/adapters/stream"
	"svw.info/sudokode/internal/usecase"
)

const sampleMessage = "HELLO SECRET WORLD"

func newTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run a brief internal round-trip test",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()
			fmt.Fprintf(os.Stderr, "Input message: %q\n", sampleMessage)

			res, err := svc.Encode(cmd.Context(), []byte(sampleMessage), usecase.EncodeOptions{})
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Encoding:")
			if err := stream.WriteGrids(os.Stderr, res.Grids); err != nil {
				return err
			}

			dec, err := svc.Decode(cmd.Context(), res.Grids)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Decoded message: %q\n", dec.Message)
			if string(dec.Message) != sampleMessage {
				return fmt.Errorf("round trip mismatch: %q", dec.Message)
			}
			return nil
		},
	}
}
