// cassette - VCR cassette CLI tool
//
// Usage:
//
//	cassette inspect FILE            Print a summary of each interaction
//	cassette convert [--to FMT] FILE Convert between yaml and json encodings
//	cassette match FILE [BODY]       Match a body against recorded requests
//	cassette version                 Print the tool version
//
// FILE may be "-" for stdin. Files ending in .gz are decompressed
// transparently.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli/v2"

	"github.com/tapedeck/cassette/cassette"
)

var VERSION = "0.1.0"

func main() {
	log.Default().SetFlags(log.Ltime | log.Lmicroseconds)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cassette"
	app.Version = VERSION
	app.Usage = "inspect, convert and match VCR cassettes"
	app.Commands = []*cli.Command{
		inspectCmd(),
		convertCmd(),
		matchCmd(),
		versionCmd(),
	}
	return app
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the tool version",
		Action: func(c *cli.Context) error {
			fmt.Println(VERSION)
			return nil
		},
	}
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "print a one-line summary per interaction",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			cas, err := readCassette(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Printf("recorded with %s, %d interaction(s)\n", cas.RecordedWith, len(cas.HTTPInteractions))
			for i, in := range cas.HTTPInteractions {
				version := "-"
				if in.Response.HTTPVersion != nil {
					version = in.Response.HTTPVersion.String()
				}
				fmt.Printf("#%d %s %s -> %d %s http/%s at %s\n",
					i,
					in.Request.Method,
					in.Request.URI,
					in.Response.Status.Code,
					in.Response.Status.Message,
					version,
					in.RecordedAt.Format(),
				)
			}
			return nil
		},
	}
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "re-encode a cassette",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "to",
				Usage: "output encoding: yaml or json",
				Value: "yaml",
			},
		},
		Action: func(c *cli.Context) error {
			cas, err := readCassette(c.Args().First())
			if err != nil {
				return err
			}
			var out []byte
			switch c.String("to") {
			case "yaml":
				out, err = cassette.Encode(cas)
			case "json":
				out, err = cassette.EncodeJSON(cas)
			default:
				return fmt.Errorf("unknown encoding %q (want yaml or json)", c.String("to"))
			}
			if err != nil {
				return err
			}
			os.Stdout.Write(out)
			if len(out) > 0 && out[len(out)-1] != '\n' {
				fmt.Println()
			}
			return nil
		},
	}
}

func matchCmd() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "report which recorded request bodies a body satisfies",
		ArgsUsage: "FILE [BODY]",
		Action: func(c *cli.Context) error {
			cas, err := readCassette(c.Args().First())
			if err != nil {
				return err
			}
			body, err := readBody(c)
			if err != nil {
				return err
			}
			observed := cassette.StringBody(body)
			hits := 0
			for i, in := range cas.HTTPInteractions {
				if cassette.Equivalent(in.Request.Body, observed) {
					fmt.Printf("#%d %s %s\n", i, in.Request.Method, in.Request.URI)
					hits++
				}
			}
			if hits == 0 {
				return fmt.Errorf("no recorded request matches the body")
			}
			return nil
		},
	}
}

func readBody(c *cli.Context) (string, error) {
	if c.Args().Len() > 1 {
		return c.Args().Get(1), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read body from stdin: %w", err)
	}
	return string(data), nil
}

func readCassette(path string) (*cassette.Cassette, error) {
	if path == "" {
		return nil, fmt.Errorf("missing cassette file argument")
	}

	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer gz.Close()
		src = gz
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cassette.Decode(data)
}
