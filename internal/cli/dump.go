package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-multiarray/internal/dtype"
	"github.com/robert-malhotra/go-multiarray/mdfile"
	"github.com/robert-malhotra/go-multiarray/typenat"
)

// MaxDumpRank is the largest rank the dump command can read.
const MaxDumpRank = 4

// DumpReport is the output of the dump command. Data holds the elements in
// row-major order.
type DumpReport struct {
	File  string   `json:"file" yaml:"file"`
	DType string   `json:"dtype" yaml:"dtype"`
	Shape []uint64 `json:"shape" yaml:"shape,flow"`
	Data  []any    `json:"data" yaml:"data,flow"`

	nested string
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Read, verify and print a whole array",
		Long: fmt.Sprintf(`Read a container, verify its checksums and print its elements.

Arrays of rank 0 through %d are supported.`, MaxDumpRank),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args[0], cmd)
		},
	}
}

func runDump(opts *RootOptions, path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open container", err)
	}

	h, err := mdfile.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return WrapExitError(ExitFailure, "cannot read header of "+path, err)
	}
	if h.Rank > MaxDumpRank {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("cannot dump rank-%d array: dump supports ranks 0 to %d", h.Rank, MaxDumpRank))
	}

	report, err := readArray(data, h, opts.logger(cmd.ErrOrStderr()))
	if err != nil {
		return WrapExitError(ExitFailure, "cannot read array from "+path, err)
	}
	report.File = path

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Print(report, report.writeText)
}

func (r *DumpReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %v\n%s\n", r.DType, r.Shape, r.nested)
	return err
}

// readArray dispatches on the stored element type.
func readArray(data []byte, h *mdfile.Header, logger *slog.Logger) (*DumpReport, error) {
	d, err := dtype.Parse(h.DType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mdfile.ErrUnsupported, err)
	}
	switch d {
	case dtype.Int8:
		return readRank[int8](data, h.Rank, logger)
	case dtype.Int16:
		return readRank[int16](data, h.Rank, logger)
	case dtype.Int32:
		return readRank[int32](data, h.Rank, logger)
	case dtype.Int64:
		return readRank[int64](data, h.Rank, logger)
	case dtype.Uint8:
		return readRank[uint8](data, h.Rank, logger)
	case dtype.Uint16:
		return readRank[uint16](data, h.Rank, logger)
	case dtype.Uint32:
		return readRank[uint32](data, h.Rank, logger)
	case dtype.Uint64:
		return readRank[uint64](data, h.Rank, logger)
	case dtype.Float32:
		return readRank[float32](data, h.Rank, logger)
	default:
		return readRank[float64](data, h.Rank, logger)
	}
}

// readRank dispatches on the stored rank.
func readRank[T dtype.Numeric](data []byte, rank int, logger *slog.Logger) (*DumpReport, error) {
	switch rank {
	case 0:
		return readAs[T, typenat.N0, [0]uint](data, logger)
	case 1:
		return readAs[T, typenat.N1, [1]uint](data, logger)
	case 2:
		return readAs[T, typenat.N2, [2]uint](data, logger)
	case 3:
		return readAs[T, typenat.N3, [3]uint](data, logger)
	case 4:
		return readAs[T, typenat.N4, [4]uint](data, logger)
	default:
		return nil, fmt.Errorf("%w: rank %d", mdfile.ErrUnsupported, rank)
	}
}

func readAs[T dtype.Numeric, N typenat.Nat[A], A typenat.IxArray](data []byte, logger *slog.Logger) (*DumpReport, error) {
	b, err := mdfile.Read[T, N, A](bytes.NewReader(data), mdfile.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	shape := b.Shape()
	dims := make([]uint64, b.Rank())
	for d := range dims {
		dims[d] = uint64(typenat.At(&shape, d))
	}
	values := make([]any, b.Len())
	for i, x := range b.Data() {
		values[i] = x
	}
	return &DumpReport{
		DType:  dtype.Of[T]().String(),
		Shape:  dims,
		Data:   values,
		nested: b.String(),
	}, nil
}
