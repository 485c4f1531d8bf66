package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type encodeFlags struct {
	textFile string
	tile     string
	out      string
}

func newEncodeCmd() *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "encode <passcode> <image> <audio> [text]",
		Short: "Encrypts the assets and writes the bundle",
		Example: `  secret-encoder encode 123456 photo.png song.mp3 "Happy Birthday"
  secret-encoder encode 123456 photo.png song.mp3 --text-file message.txt --tile tile.png --out public`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.EncodeRequest{
				Passcode:  args[0],
				ImagePath: args[1],
				AudioPath: args[2],
				TilePath:  flags.tile,
				TextPath:  flags.textFile,
			}
			if len(args) == 4 {
				req.Text = args[3]
			}

			enc, err := newEncoder(flags.out)
			if err != nil {
				return err
			}

			manifest, err := enc.Encode(cmd.Context(), req)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("✗")+" Encoding failed: "+err.Error())
				return err
			}

			printManifest(cmd.OutOrStdout(), manifest)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.textFile, "text-file", "", "Read the message from a UTF-8 file")
	cmd.Flags().StringVar(&flags.tile, "tile", "", "Optional background tile image")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Bundle output directory")

	return cmd
}

func printManifest(w io.Writer, m models.BundleManifest) {
	fmt.Fprintln(w, color.GreenString("✓")+" Bundle written")
	fmt.Fprintf(w, "  %s %s\n", color.CyanString("token:"), m.PasscodeHash)
	fmt.Fprintf(w, "  %s %d\n", color.CyanString("iterations:"), m.KDFIterations)
	for _, a := range m.Assets {
		source := a.Source
		if source == "" {
			source = "(inline)"
		}
		fmt.Fprintf(w, "  %s %-22s %8d -> %8d bytes  %s\n",
			color.YellowString("→"), a.FileName, a.PlainSize, a.RecordSize, source)
	}
	fmt.Fprintln(w, color.CyanString("→")+" Copy "+color.YellowString(models.TokenFileName)+
		" and the "+color.YellowString("encoded-*.enc")+" files to the bundle host")
}
