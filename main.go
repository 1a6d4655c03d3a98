package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/boekenvak/impactviz/internal/diffcmd"
	"github.com/boekenvak/impactviz/internal/keynesscmd"
	"github.com/boekenvak/impactviz/internal/radarcmd"
	"github.com/boekenvak/impactviz/internal/runscmd"
)

func main() {
	app := &cli.App{
		Name:  "impactviz",
		Usage: "keyness and topic-proportion analyses of reader-impact vocabulary",
		Commands: []*cli.Command{
			{
				Name:   "keyness",
				Usage:  "render per-genre keyness scatter plots from the prevalence table",
				Action: keynesscmd.Action,
				Flags: append(sharedFlags(),
					&cli.IntFlag{Name: "top-n", Usage: "number of terms per genre"},
					&cli.BoolFlag{Name: "color-by-impact-type", Usage: "color points by impact type instead of direction"},
				),
			},
			{
				Name:   "radar",
				Usage:  "render per-genre radial histograms of topic-category proportions",
				Action: radarcmd.Action,
				Flags:  sharedFlags(),
			},
			{
				Name:   "diff",
				Usage:  "compare term frequencies between two genres",
				Action: diffcmd.Action,
				Flags: append(sharedFlags(),
					&cli.StringFlag{Name: "compare", Usage: "two comma-separated genre labels", Required: true},
					&cli.IntFlag{Name: "top-n", Usage: "number of head/tail terms to label"},
				),
			},
			{
				Name:   "runs",
				Usage:  "list recorded analysis runs",
				Action: runscmd.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the YAML config file"},
					&cli.StringFlag{Name: "db", Usage: "run database path"},
					&cli.IntFlag{Name: "limit", Value: 10, Usage: "number of runs to list"},
					&cli.BoolFlag{Name: "outputs", Usage: "include per-genre outputs"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// sharedFlags returns the flags every analysis command accepts.
func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the YAML config file"},
		&cli.StringFlag{Name: "input", Usage: "input table (tab-separated, optionally .gz)"},
		&cli.StringFlag{Name: "output-dir", Usage: "directory for rendered charts"},
		&cli.StringFlag{Name: "db", Usage: "run database path"},
		&cli.StringFlag{Name: "genres", Usage: "comma-separated genre order override"},
		&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
	}
}
