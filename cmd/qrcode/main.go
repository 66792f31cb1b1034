// Command qrcode generates the same QR images as the qrstudio window, without
// a window.
//
//	qrcode [--output PATH] [--circle] [--verbose] TEXT...
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Mictilt/qrstudio"
	"github.com/Mictilt/qrstudio/writer/standard"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "qrcode",
		Usage:     "generate a QR code image from text",
		UsageText: "qrcode [--output PATH] [--circle] [--verbose] TEXT...",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   qrstudio.SuggestedName,
				Usage:   "destination; .png is appended unless it ends in .png or .svg",
			},
			&cli.BoolFlag{
				Name:  "circle",
				Usage: "draw round modules",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log progress to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			log := logrus.New()
			log.SetOutput(stderr)
			log.SetLevel(logrus.WarnLevel)
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}

			text := strings.Join(c.Args().Slice(), " ")
			path, err := generate(text, c.String("output"), c.Bool("circle"),
				log.WithField("component", "cli"))
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, path)
			return nil
		},
	}
}

// generate runs text through a Shell and saves the result at output.
func generate(text, output string, circle bool, log *logrus.Entry) (string, error) {
	var opts []qrstudio.ShellOption
	opts = append(opts, qrstudio.WithLogger(log))
	if circle {
		opts = append(opts, qrstudio.WithRenderOptions(standard.WithCircleShape()))
	}

	shell := qrstudio.NewShell(opts...)
	if err := shell.Generate(text); err != nil {
		if qrstudio.IsKind(err, qrstudio.KindEmptyInput) {
			return "", errors.New("no text given")
		}
		return "", errors.Wrap(err, "generate")
	}

	path, err := shell.SaveTo(output)
	if err != nil {
		return "", errors.Wrap(err, "save")
	}

	return path, nil
}
