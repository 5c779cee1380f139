package serve

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/syednoorhussain2025/hopgen/logging"
)

var Command = &cli.Command{
	Name:   "serve",
	Usage:  "Serve a generated site over HTTP",
	Action: serve,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a YAML configuration file",
			Destination: &serveopts.configFile,
		},
		&cli.StringFlag{
			Name:        "site",
			Aliases:     []string{"s"},
			Usage:       "Directory holding the generated site",
			Destination: &serveopts.siteDir,
		},
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Usage:       "Address to listen on",
			Destination: &serveopts.addr,
		},
	}, logging.Flags...),
}

var serveopts struct {
	configFile string
	siteDir    string
	addr       string
}

func serve(cc *cli.Context) error {
	logging.Setup()

	cfg, err := LoadConfig(serveopts.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serveopts.siteDir != "" {
		cfg.SiteDir = serveopts.siteDir
	}
	if serveopts.addr != "" {
		cfg.Addr = serveopts.addr
	}

	return NewServer(cfg).ListenAndServe()
}
