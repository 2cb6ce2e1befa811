package plan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/martinsuchenak/subnetcalc/internal/config"
	"github.com/martinsuchenak/subnetcalc/internal/log"
	"github.com/martinsuchenak/subnetcalc/internal/model"
	"github.com/martinsuchenak/subnetcalc/internal/report"
	"github.com/martinsuchenak/subnetcalc/internal/subnet"
	"github.com/paularlott/cli"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:        "plan",
		Usage:       "Split a network into subnets",
		Description: "Compute the new subnet mask and enumerate the subnet ranges needed to carve a network into the desired number of subnets. Values not given as flags are prompted for.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "ip", Usage: "IPv4 address, e.g. 192.168.1.0"},
			&cli.StringFlag{Name: "prefix", Usage: "Original subnet mask as /N or dotted form"},
			&cli.StringFlag{Name: "subnets", Usage: "Desired number of subnets"},
			&cli.StringFlag{Name: "output", Usage: "Output format (text or json)", DefaultValue: "text"},
		}, config.GetFlags()...),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			log.Configure(cfg.LogLevel, cfg.LogFormat)

			return run(os.Stdin, os.Stdout,
				cmd.GetString("ip"),
				cmd.GetString("prefix"),
				cmd.GetString("subnets"),
				cmd.GetString("output"))
		},
	}
}

func run(in io.Reader, out io.Writer, ipText, prefixText, countText, output string) error {
	reader := bufio.NewReader(in)

	if ipText == "" {
		ipText = prompt(reader, out, "Enter IPv4 Address (e.g. 10.10.10.10): ")
	}
	if prefixText == "" {
		prefixText = prompt(reader, out, "Enter the original subnet mask (0-32): /")
	}
	if countText == "" {
		countText = prompt(reader, out, "Enter the number of desired subnets: ")
	}

	prefix, err := subnet.ParsePrefix(prefixText)
	if err != nil {
		return fmt.Errorf("invalid subnet mask: %w", err)
	}
	desired, err := subnet.ParseCount(countText)
	if err != nil {
		return fmt.Errorf("invalid subnet count: %w", err)
	}

	log.Debug("Planning subnets", "ip", ipText, "prefix", prefix, "desired", desired)

	r, err := report.Build(model.Request{Address: ipText, Prefix: prefix, Desired: desired})
	if err != nil {
		return err
	}

	if output == "json" {
		return report.RenderJSON(out, r)
	}
	report.Render(out, r)
	return nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	text, _ := in.ReadString('\n')
	return strings.TrimSpace(text)
}
