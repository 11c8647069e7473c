package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/rawarray-io/rawarray/internal/logger"
	"github.com/rawarray-io/rawarray/ra"
)

// headerInfo is the machine-readable shape of `ra info --json`.
type headerInfo struct {
	Path            string   `json:"path"`
	FileSize        int64    `json:"file_size"`
	Flags           uint64   `json:"flags"`
	FlagNames       string   `json:"flag_names"`
	Eltype          uint64   `json:"eltype"`
	EltypeName      string   `json:"eltype_name"`
	Elbyte          uint64   `json:"elbyte"`
	Size            uint64   `json:"size"`
	Ndims           uint64   `json:"ndims"`
	Dims            []uint64 `json:"dims"`
	Nelem           uint64   `json:"nelem"`
	DataOffset      uint64   `json:"data_offset"`
	SizeMatchesDims bool     `json:"size_matches_dims"`
}

func infoCmd() *cli.Command {
	var (
		asJSON  bool
		verbose bool
	)

	return &cli.Command{
		Name:      "info",
		Usage:     "Show the header of a .ra file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit machine-readable JSON", Destination: &asJSON},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging", Destination: &verbose},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_ = ctx
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("usage: ra info FILE")
			}
			log := newLog(verbose)

			info, err := inspectHeader(path)
			if err != nil {
				return err
			}
			log.Debug("decoded header", "path", path, "ndims", info.Ndims, "size", info.Size)

			if asJSON {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal info: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("file:        %s (%d bytes)\n", info.Path, info.FileSize)
			fmt.Printf("flags:       %s (0x%x)\n", info.FlagNames, info.Flags)
			fmt.Printf("eltype:      %s (%d)\n", info.EltypeName, info.Eltype)
			fmt.Printf("elbyte:      %d\n", info.Elbyte)
			fmt.Printf("size:        %d\n", info.Size)
			fmt.Printf("ndims:       %d\n", info.Ndims)
			fmt.Printf("dims:        %v\n", info.Dims)
			fmt.Printf("nelem:       %d\n", info.Nelem)
			fmt.Printf("data_offset: %d\n", info.DataOffset)
			if !info.SizeMatchesDims {
				fmt.Println("note:        size does not equal product(dims) x elbyte (opaque or composite payload)")
			}
			return nil
		},
	}
}

// inspectHeader reads only the header block; the data segment stays on disk.
func inspectHeader(path string) (*headerInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	h, err := ra.DecodeHeader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &headerInfo{
		Path:            path,
		FileSize:        stat.Size(),
		Flags:           h.Flags,
		FlagNames:       ra.FlagString(h.Flags),
		Eltype:          uint64(h.Eltype),
		EltypeName:      h.Eltype.String(),
		Elbyte:          h.Elbyte,
		Size:            h.Size,
		Ndims:           h.Ndims(),
		Dims:            h.Dims,
		Nelem:           h.NumElements(),
		DataOffset:      h.DataOffset(),
		SizeMatchesDims: h.SizeMatchesDims(),
	}, nil
}

// newLog builds the CLI logger; --verbose lowers the level to debug.
func newLog(verbose bool) logger.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logger.Text(os.Stderr, level)
}
