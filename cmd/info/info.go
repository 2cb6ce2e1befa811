package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/martinsuchenak/subnetcalc/internal/config"
	"github.com/martinsuchenak/subnetcalc/internal/log"
	"github.com/martinsuchenak/subnetcalc/internal/report"
	"github.com/martinsuchenak/subnetcalc/internal/subnet"
	"github.com/paularlott/cli"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:        "info",
		Usage:       "Describe a single network",
		Description: "Show the network, broadcast and host range for an address with a prefix, in dotted-decimal and binary form",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "cidr", Usage: "Address with prefix, e.g. 192.168.1.10/24", Required: true},
			&cli.StringFlag{Name: "output", Usage: "Output format (text or json)", DefaultValue: "text"},
		}, config.GetFlags()...),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			log.Configure(cfg.LogLevel, cfg.LogFormat)

			return run(os.Stdout, cmd.GetString("cidr"), cmd.GetString("output"))
		},
	}
}

func run(out io.Writer, cidr, output string) error {
	addrText, prefixText, ok := strings.Cut(strings.TrimSpace(cidr), "/")
	if !ok {
		return fmt.Errorf("invalid CIDR %q: expected address/prefix", cidr)
	}

	addr, err := subnet.ParseAddr(addrText)
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	prefix, err := subnet.ParsePrefix(prefixText)
	if err != nil {
		return fmt.Errorf("invalid prefix: %w", err)
	}

	n := report.Inspect(addr, prefix)

	if output == "json" {
		return report.RenderJSON(out, n)
	}
	report.RenderNetwork(out, n)
	return nil
}
