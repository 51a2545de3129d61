package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"

	spritec "github.com/tamakit/spritec"
	"github.com/tamakit/spritec/frame"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func colorKey(c *cli.Context) (*frame.ColorKey, error) {
	if t := c.String("transparent"); t != "" {
		return frame.ParseColorKey(t)
	}
	return nil, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "spritec"
	app.Usage = "PNG to RGB565 sprite data converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPRITEC_DB"},
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "gen",
			Usage:       "Generate a complete SpriteData.h from a directory of sprite PNGs",
			Description: "PNGs must be named after the canonical sprite identifiers, one single frame or horizontal spritesheet each. An optional sprite_config.txt in the directory overrides animation delay and loop values.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"W"},
					Value:   spritec.DefaultFrameSize,
					Usage:   "frame width in pixels",
				},
				&cli.IntFlag{
					Name:    "height",
					Aliases: []string{"H"},
					Value:   spritec.DefaultFrameSize,
					Usage:   "frame height in pixels",
				},
				&cli.StringFlag{
					Name:    "transparent",
					Aliases: []string{"t"},
					Usage:   "color key as R,G,B treated as transparent",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "SpriteData.h",
					Usage:   "output header path",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				s, err := spritec.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer s.Close()

				key, err := colorKey(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(c.String("output"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := s.Generate(c.Args().First(), f, spritec.GenerateOptions{
					FrameWidth:  c.Int("width"),
					FrameHeight: c.Int("height"),
					ColorKey:    key,
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert a single sprite PNG into a standalone header",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "sprite name (default: file name without extension)",
				},
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"W"},
					Value:   spritec.DefaultFrameSize,
					Usage:   "frame width in pixels",
				},
				&cli.IntFlag{
					Name:    "height",
					Aliases: []string{"H"},
					Value:   spritec.DefaultFrameSize,
					Usage:   "frame height in pixels",
				},
				&cli.IntFlag{
					Name:    "cols",
					Aliases: []string{"c"},
					Usage:   "number of spritesheet columns (default: inferred from width)",
				},
				&cli.StringFlag{
					Name:    "transparent",
					Aliases: []string{"t"},
					Usage:   "color key as R,G,B treated as transparent",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output header path (default: <name>.h)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				s, err := spritec.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer s.Close()

				key, err := colorKey(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				name := c.String("name")
				out := c.String("output")
				if out == "" {
					if name != "" {
						out = name + ".h"
					} else {
						out = "sprite.h"
					}
				}

				f, err := os.Create(out)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := s.Convert(c.Args().First(), name, f, spritec.GenerateOptions{
					FrameWidth:  c.Int("width"),
					FrameHeight: c.Int("height"),
					Columns:     c.Int("cols"),
					ColorKey:    key,
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "extract",
			Usage:       "Reconstruct PNG art from a generated sprite data header",
			Description: "By default writes one horizontal spritesheet per sprite, compatible with the gen command for round-trip editing.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   ".",
					Usage:   "output directory",
				},
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"W"},
					Value:   spritec.DefaultFrameSize,
					Usage:   "frame width in pixels",
				},
				&cli.IntFlag{
					Name:    "height",
					Aliases: []string{"H"},
					Value:   spritec.DefaultFrameSize,
					Usage:   "frame height in pixels",
				},
				&cli.IntFlag{
					Name:    "scale",
					Aliases: []string{"s"},
					Value:   1,
					Usage:   "integer scale factor for output PNGs",
				},
				&cli.BoolFlag{
					Name:    "individual",
					Aliases: []string{"i"},
					Usage:   "write one PNG per frame instead of spritesheets",
				},
				&cli.BoolFlag{
					Name:    "paletted",
					Aliases: []string{"p"},
					Usage:   "quantize output PNGs to an indexed palette",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				s, err := spritec.New("", newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer s.Close()

				if err := s.Extract(c.Args().First(), c.String("output"), spritec.ExtractOptions{
					FrameWidth:  c.Int("width"),
					FrameHeight: c.Int("height"),
					Scale:       c.Int("scale"),
					Individual:  c.Bool("individual"),
					Paletted:    c.Bool("paletted"),
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "placeholders",
			Usage:       "Generate the procedural placeholder sprite set",
			Description: "Writes a complete SpriteData.h of drawn placeholder art, to be replaced with real pixel art later via gen.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "SpriteData.h",
					Usage:   "output header path",
				},
			},
			Action: func(c *cli.Context) error {
				s, err := spritec.New("", newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer s.Close()

				f, err := os.Create(c.String("output"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := s.Placeholders(f, nil); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
