package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/rawarray-io/rawarray/ra"
)

func reshapeCmd() *cli.Command {
	var (
		dimsSpec string
		output   string
		verbose  bool
	)

	return &cli.Command{
		Name:      "reshape",
		Usage:     "Rewrite a .ra file with a new dimension vector",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dims", Usage: "comma-separated dimensions, e.g. 2,3,4", Required: true, Destination: &dimsSpec},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write to this path instead of rewriting in place", Destination: &output},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging", Destination: &verbose},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_ = ctx
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: ra reshape --dims D0,D1,... FILE")
			}
			log := newLog(verbose)

			dims, err := parseDims(dimsSpec)
			if err != nil {
				return err
			}

			arr, err := ra.ReadFile(path)
			if err != nil {
				return err
			}
			log.Debug("loaded array", "path", path, "dims", arr.Dims())

			if err := arr.Reshape(dims); err != nil {
				return fmt.Errorf("cannot reshape %v to %v: %w", arr.Dims(), dims, err)
			}

			dst := output
			if dst == "" {
				dst = path
			}
			if err := ra.WriteFile(dst, arr); err != nil {
				return err
			}
			log.Info("reshaped", "path", dst, "dims", dims)
			return nil
		},
	}
}

// parseDims turns "2,3,4" into []uint64{2, 3, 4}.
func parseDims(spec string) ([]uint64, error) {
	parts := strings.Split(spec, ",")
	dims := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		d, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", p, err)
		}
		dims = append(dims, d)
	}
	return dims, nil
}
