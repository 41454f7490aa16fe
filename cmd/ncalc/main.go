package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/agenthands/ncalc/pkg/calc/eval"
)

func main() {
	app := &cli.App{
		Name:  "ncalc",
		Usage: "evaluate arithmetic expressions",
		Commands: []*cli.Command{
			evalCommand(),
			replCommand(),
		},
	}
	app.RunAndExitOnError()
}

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate one expression from an argument, a file, or stdin",
		ArgsUsage: "[EXPR]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read the expression from `FILE`",
			},
			&cli.IntFlag{
				Name:  "max-bytes",
				Value: 10240,
				Usage: "cap on bytes read from a file or stdin",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Value: eval.DefaultMaxDepth,
				Usage: "parenthesis nesting limit",
			},
		},
		Action: func(c *cli.Context) error {
			src, err := readExpression(c)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			value, err := eval.EvaluateDepth(src, c.Int("max-depth"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			fmt.Println(formatValue(value))
			return nil
		},
	}
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "evaluate expressions line by line until EOF or 'exit'",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max-depth",
				Value: eval.DefaultMaxDepth,
				Usage: "parenthesis nesting limit",
			},
		},
		Action: func(c *cli.Context) error {
			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			in := bufio.NewScanner(os.Stdin)
			for {
				if interactive {
					fmt.Print("> ")
				}
				if !in.Scan() {
					if err := in.Err(); err != nil {
						return errors.Wrap(err, "reading stdin")
					}
					return nil
				}
				line := strings.TrimSpace(in.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				value, err := eval.EvaluateDepth(line, c.Int("max-depth"))
				if err != nil {
					// Per-line failures do not end the session.
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
					continue
				}
				fmt.Println(formatValue(value))
			}
		},
	}
}

// readExpression resolves the input source: argument, --file, or stdin. File
// and stdin reads are capped at --max-bytes.
func readExpression(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	limit := int64(c.Int("max-bytes"))
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, limit))
		if err != nil {
			return "", errors.Wrapf(err, "reading %s", path)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(io.LimitReader(os.Stdin, limit))
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(data), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
