// Package main provides the texpr CLI.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/born-ml/texpr/export"
	"github.com/born-ml/texpr/tensor"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, newLogger()); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, "texpr:", err)
		os.Exit(1)
	}
}

// newLogger logs at debug level when TEXPR_LOG=debug.
func newLogger() *tensor.Logger {
	level := slog.LevelWarn
	if os.Getenv("TEXPR_LOG") == "debug" {
		level = slog.LevelDebug
	}
	return tensor.NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "texpr - lazy tensor expressions")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                      Show version")
	fmt.Fprintln(w, "  eye N M                      Evaluate an N×M identity into sparse storage")
	fmt.Fprintln(w, "  matvec N                     Compute (-eye(N)) · (1..N)")
	fmt.Fprintln(w, "  meshgrid M N                 Print the coordinate grids of an M×N mesh")
	fmt.Fprintln(w, "  export N FILE [none|lz4|zstd] Write eye(N)+iota as a container and verify it")
}

func run(args []string, out io.Writer, log *tensor.Logger) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}
	switch args[0] {
	case "version":
		fmt.Fprintf(out, "texpr %s\n", version)
		return nil
	case "eye":
		dims, err := ints(args[1:], 2)
		if err != nil {
			return err
		}
		id := tensor.Sparse(tensor.Eye[float64](dims[0], dims[1]), tensor.WithLogger(log))
		fmt.Fprintf(out, "%v stored=%d\n", id, id.CountNonZero())
		if id.NumElements() <= 64 {
			fmt.Fprintln(out, tensor.Sprint[float64](id))
		}
		return nil
	case "matvec":
		dims, err := ints(args[1:], 1)
		if err != nil {
			return err
		}
		n := dims[0]
		v := tensor.AddScalar(tensor.Iota[float64](tensor.Dynamic(n)), 1)
		y := tensor.Dense(tensor.MatMul(tensor.Neg(tensor.Eye[float64](n, n)), v), tensor.WithLogger(log))
		fmt.Fprintln(out, tensor.Sprint[float64](y))
		return nil
	case "meshgrid":
		dims, err := ints(args[1:], 2)
		if err != nil {
			return err
		}
		for i, g := range tensor.Meshgrid[int](dims...) {
			fmt.Fprintf(out, "axis %d:\n%s\n", i, tensor.Sprint(g))
		}
		return nil
	case "export":
		return runExport(args[1:], out, log)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runExport(args []string, out io.Writer, log *tensor.Logger) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: export N FILE [none|lz4|zstd]", errUsage)
	}
	dims, err := ints(args[:1], 1)
	if err != nil {
		return err
	}
	c := export.CompressionZstd
	if len(args) == 3 {
		if c, err = export.ParseCompression(args[2]); err != nil {
			return err
		}
	}

	n := dims[0]
	x := tensor.Add(tensor.Eye[float64](n, n), tensor.Iota[float64](tensor.Dynamic(n, n)))
	a := export.Materialize(x, export.ColumnMajor)

	var buf bytes.Buffer
	if err := export.Encode(&buf, a, c, export.WithLogger(log), export.WithMetadata(map[string]string{"source": "eye+iota"})); err != nil {
		return err
	}
	if err := os.WriteFile(args[1], buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[1], err)
	}

	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[1], err)
	}
	defer f.Close()
	got, _, err := export.Decode(f, export.WithLogger(log))
	if err != nil {
		return err
	}
	back, err := export.ToTensor[float64](got, export.ColumnMajor, true)
	if err != nil {
		return err
	}
	if !tensor.Equal(x, tensor.Expr[float64](back)) {
		return errors.New("decoded data differs from source")
	}
	fmt.Fprintf(out, "wrote %s: %s %v, %d bytes (%s)\n", args[1], a.Class, a.Dims, buf.Len(), c)
	return nil
}

func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: want %d integer arguments, got %d", errUsage, n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: %q is not a non-negative integer", errUsage, a)
		}
		out[i] = v
	}
	return out, nil
}
