package export

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/syednoorhussain2025/hopgen/logging"
)

var Command = &cli.Command{
	Name:   "export",
	Usage:  "Export a generated site as a markdown mirror",
	Action: export,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "site",
			Aliases:     []string{"s"},
			Usage:       "Directory holding the generated site",
			Destination: &exportopts.siteDir,
		},
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Directory in which to write the markdown mirror",
			Destination: &exportopts.outDir,
		},
	}, logging.Flags...),
}

var exportopts struct {
	siteDir string
	outDir  string
}

func export(cc *cli.Context) error {
	logging.Setup()

	if exportopts.siteDir == "" {
		return fmt.Errorf("no site directory specified")
	}
	if exportopts.outDir == "" {
		return fmt.Errorf("no output directory specified")
	}

	return NewExporter().Run(exportopts.siteDir, exportopts.outDir)
}
