package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rawarray-io/rawarray/ra"
)

func dumpCmd() *cli.Command {
	var (
		limit   int
		verbose bool
	)

	return &cli.Command{
		Name:      "dump",
		Usage:     "Print the elements of a .ra file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "print at most N elements (0 = all)", Value: 0, Destination: &limit},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging", Destination: &verbose},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_ = ctx
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: ra dump FILE")
			}
			log := newLog(verbose)

			arr, err := ra.ReadFile(path)
			if err != nil {
				return err
			}
			log.Debug("loaded array", "path", path, "eltype", arr.Eltype().String(), "elbyte", arr.Elbyte())

			return dumpElements(arr, limit)
		},
	}
}

// dumpElements prints the payload as typed scalars, one per line.
// Opaque and brain-float payloads have no native Go representation and
// are rejected rather than guessed at.
func dumpElements(arr *ra.Array, limit int) error {
	switch arr.Eltype() {
	case ra.Int:
		switch arr.Elbyte() {
		case 1:
			return printScalars(mustSlice[int8](arr), limit)
		case 2:
			return printScalars(mustSlice[int16](arr), limit)
		case 4:
			return printScalars(mustSlice[int32](arr), limit)
		case 8:
			return printScalars(mustSlice[int64](arr), limit)
		}
	case ra.Uint:
		switch arr.Elbyte() {
		case 1:
			return printScalars(mustSlice[uint8](arr), limit)
		case 2:
			return printScalars(mustSlice[uint16](arr), limit)
		case 4:
			return printScalars(mustSlice[uint32](arr), limit)
		case 8:
			return printScalars(mustSlice[uint64](arr), limit)
		}
	case ra.Float:
		switch arr.Elbyte() {
		case 4:
			return printScalars(mustSlice[float32](arr), limit)
		case 8:
			return printScalars(mustSlice[float64](arr), limit)
		}
	case ra.Complex:
		switch arr.Elbyte() {
		case 8:
			return printScalars(mustSlice[complex64](arr), limit)
		case 16:
			return printScalars(mustSlice[complex128](arr), limit)
		}
	}
	return fmt.Errorf("cannot dump %s elements of width %d", arr.Eltype(), arr.Elbyte())
}

func mustSlice[T ra.Scalar](arr *ra.Array) []T {
	s, err := ra.AsSlice[T](arr)
	if err != nil {
		// dumpElements only dispatches on matching tag and width.
		panic(err)
	}
	return s
}

func printScalars[T ra.Scalar](elems []T, limit int) error {
	n := len(elems)
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		fmt.Printf("%v\n", elems[i])
	}
	if n < len(elems) {
		fmt.Printf("... (%d more)\n", len(elems)-n)
	}
	return nil
}
