package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var bundle, out string

	cmd := &cobra.Command{
		Use:   "decode <passcode>",
		Short: "Decrypts a bundle back to plaintext files",
		Long: `decode checks the passcode against the bundle token, then decrypts every
record into the output directory. Use it to verify a bundle before
publishing it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := newEncoder(bundle)
			if err != nil {
				return err
			}

			decoded, err := enc.Decode(cmd.Context(), args[0], out)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("✗")+" Decoding failed: "+err.Error())
				return err
			}

			printDecoded(cmd.OutOrStdout(), decoded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bundle, "bundle", "b", "", "Bundle directory to read")
	cmd.Flags().StringVarP(&out, "out", "o", "decoded", "Directory for the decrypted files")

	return cmd
}

func printDecoded(w io.Writer, decoded []service.DecodedAsset) {
	fmt.Fprintln(w, color.GreenString("✓")+" Passcode verified")
	for _, a := range decoded {
		fmt.Fprintf(w, "  %s %-10s %-12s %8d bytes  %s\n",
			color.YellowString("→"), a.Kind, a.MIMEType, a.Size, a.Path)
	}
}
