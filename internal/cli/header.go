package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-multiarray/mdfile"
)

// HeaderReport is the output of the header command.
type HeaderReport struct {
	File       string            `json:"file" yaml:"file"`
	Version    int               `json:"version" yaml:"version"`
	Rank       int               `json:"rank" yaml:"rank"`
	DType      string            `json:"dtype" yaml:"dtype"`
	Shape      []uint64          `json:"shape" yaml:"shape,flow"`
	Elements   uint64            `json:"elements" yaml:"elements"`
	Filters    []FilterReport    `json:"filters" yaml:"filters"`
	FilterMask uint32            `json:"filter_mask,omitempty" yaml:"filter_mask,omitempty"`
	RawSize    uint64            `json:"raw_size" yaml:"raw_size"`
	StoredSize uint64            `json:"stored_size" yaml:"stored_size"`
	Digest     string            `json:"digest" yaml:"digest"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// FilterReport describes one stored filter.
type FilterReport struct {
	ID       uint16   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Params   []uint32 `json:"params,omitempty" yaml:"params,omitempty,flow"`
	Optional bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// NewHeaderCommand creates the header command.
func NewHeaderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the container header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(rootOpts, args[0], cmd)
		},
	}
}

func runHeader(opts *RootOptions, path string, cmd *cobra.Command) error {
	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open container", err)
	}
	defer f.Close()

	h, err := mdfile.ReadHeader(f)
	if err != nil {
		return WrapExitError(ExitFailure, "cannot read header of "+path, err)
	}
	opts.logger(cmd.ErrOrStderr()).Debug("read header", "file", path, "rank", h.Rank, "dtype", h.DType)

	report := newHeaderReport(path, h)
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Print(report, report.writeText)
}

func newHeaderReport(path string, h *mdfile.Header) *HeaderReport {
	r := &HeaderReport{
		File:       path,
		Version:    h.Version,
		Rank:       h.Rank,
		DType:      h.DType,
		Shape:      h.Shape,
		Elements:   h.NumElements(),
		Filters:    make([]FilterReport, 0, len(h.Filters)),
		FilterMask: h.FilterMask,
		RawSize:    h.RawSize,
		StoredSize: h.StoredSize,
		Digest:     "blake3:" + hex.EncodeToString(h.Digest),
		Attributes: h.Attributes,
	}
	if r.Shape == nil {
		r.Shape = []uint64{}
	}
	for _, info := range h.Filters {
		r.Filters = append(r.Filters, FilterReport{
			ID:       uint16(info.ID),
			Name:     info.ID.String(),
			Params:   info.Params,
			Optional: info.Optional,
		})
	}
	return r
}

func (r *HeaderReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "file:\t%s\n", r.File)
	fmt.Fprintf(tw, "version:\t%d\n", r.Version)
	fmt.Fprintf(tw, "rank:\t%d\n", r.Rank)
	fmt.Fprintf(tw, "dtype:\t%s\n", r.DType)
	fmt.Fprintf(tw, "shape:\t%v\n", r.Shape)
	fmt.Fprintf(tw, "elements:\t%s\n", humanize.Comma(int64(r.Elements)))
	fmt.Fprintf(tw, "filters:\t%s\n", r.filterChain())
	fmt.Fprintf(tw, "raw size:\t%s\n", humanize.IBytes(r.RawSize))
	fmt.Fprintf(tw, "stored size:\t%s\n", r.storedSize())
	fmt.Fprintf(tw, "digest:\t%s\n", r.Digest)
	for _, name := range slices.Sorted(maps.Keys(r.Attributes)) {
		fmt.Fprintf(tw, "attr %s:\t%s\n", name, r.Attributes[name])
	}
	return tw.Flush()
}

func (r *HeaderReport) filterChain() string {
	if len(r.Filters) == 0 {
		return "none"
	}
	parts := make([]string, len(r.Filters))
	for i, f := range r.Filters {
		parts[i] = f.Name
		if len(f.Params) > 0 {
			parts[i] += fmt.Sprint(f.Params)
		}
		if r.FilterMask&(1<<uint(i)) != 0 {
			parts[i] += " (skipped)"
		}
	}
	return strings.Join(parts, " -> ")
}

func (r *HeaderReport) storedSize() string {
	s := humanize.IBytes(r.StoredSize)
	if r.RawSize == 0 || r.StoredSize == r.RawSize {
		return s
	}
	return fmt.Sprintf("%s (%.1f%% of raw)", s, 100*float64(r.StoredSize)/float64(r.RawSize))
}
