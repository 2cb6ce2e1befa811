package main

import (
	"context"
	"fmt"
	"os"

	"github.com/martinsuchenak/subnetcalc/cmd/info"
	"github.com/martinsuchenak/subnetcalc/cmd/mask"
	"github.com/martinsuchenak/subnetcalc/cmd/plan"
	"github.com/paularlott/cli"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:        "subnetcalc",
		Version:     version,
		Usage:       "IPv4 subnet calculator",
		Description: "Calculate subnet masks and enumerate subnet ranges for IPv4 networks",
		Commands: []*cli.Command{
			plan.Command(),
			info.Command(),
			mask.Command(),
		},
	}

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
