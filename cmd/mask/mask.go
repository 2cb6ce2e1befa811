package mask

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/martinsuchenak/subnetcalc/internal/config"
	"github.com/martinsuchenak/subnetcalc/internal/log"
	"github.com/martinsuchenak/subnetcalc/internal/subnet"
	"github.com/paularlott/cli"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:        "mask",
		Usage:       "Convert between prefix lengths and subnet masks",
		Description: "Convert a prefix length to its dotted-decimal and binary mask forms, or a dotted mask back to a prefix length",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "prefix", Usage: "Prefix length as N or /N"},
			&cli.StringFlag{Name: "mask", Usage: "Subnet mask in dotted form, e.g. 255.255.255.0"},
		}, config.GetFlags()...),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			log.Configure(cfg.LogLevel, cfg.LogFormat)

			text := cmd.GetString("prefix")
			if text == "" {
				text = cmd.GetString("mask")
			}
			return run(os.Stdout, text)
		},
	}
}

func run(out io.Writer, text string) error {
	if text == "" {
		return fmt.Errorf("either --prefix or --mask is required")
	}

	p, err := subnet.ParsePrefix(text)
	if err != nil {
		return err
	}

	m := subnet.Addr(subnet.MaskFromPrefix(p))
	fmt.Fprintf(out, "Prefix:   /%d\n", p)
	fmt.Fprintf(out, "Mask:     %s\n", m.String())
	fmt.Fprintf(out, "Binary:   %s\n", m.Binary())
	return nil
}
