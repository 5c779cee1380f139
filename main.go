/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/syednoorhussain2025/hopgen/chart"
	"github.com/syednoorhussain2025/hopgen/export"
	"github.com/syednoorhussain2025/hopgen/serve"
	"github.com/syednoorhussain2025/hopgen/site"
)

func main() {
	app := &cli.App{
		Name:     "hopgen",
		HelpName: "hopgen",
		Usage:    "Generate a heritage website from a content bundle",
		Commands: []*cli.Command{
			site.Command,
			serve.Command,
			export.Command,
			chart.Command,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
