package filter

import (
	"fmt"
)

// Pipeline represents an ordered sequence of filters.
type Pipeline struct {
	filters []Filter
	infos   []Info
}

// NewPipeline creates a filter pipeline from header filter descriptions.
// Optional filters without an implementation are dropped.
func NewPipeline(infos []Info) (*Pipeline, error) {
	p := &Pipeline{
		filters: make([]Filter, 0, len(infos)),
		infos:   make([]Info, 0, len(infos)),
	}

	for _, info := range infos {
		f, err := New(info)
		if err != nil {
			return nil, fmt.Errorf("creating filter %s: %w", info.ID, err)
		}
		if f != nil {
			p.filters = append(p.filters, f)
			p.infos = append(p.infos, info)
		}
	}

	return p, nil
}

// Encode applies every filter in pipeline order.
func (p *Pipeline) Encode(input []byte) ([]byte, error) {
	data := input
	for _, f := range p.filters {
		var err error
		data, err = f.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("filter %s encode: %w", f.ID(), err)
		}
	}
	return data, nil
}

// maxFraming is the most bytes a single filter adds around its output:
// the lz4 size prefix.
const maxFraming = lz4HeaderSize

// Decode applies the filter pipeline to encoded data.
// The filterMask specifies which filters to skip (bit i = skip filter i).
// Filters are applied in reverse order (last filter first).
//
// limit is the size of the fully decoded data. No stage may produce more
// than limit plus the framing that the stages still to run will strip.
func (p *Pipeline) Decode(input []byte, filterMask uint32, limit int) ([]byte, error) {
	data := input

	for i := len(p.filters) - 1; i >= 0; i-- {
		if i < 32 && filterMask&(1<<uint(i)) != 0 {
			continue
		}

		var err error
		data, err = p.filters[i].Decode(data, limit+i*maxFraming)
		if err != nil {
			return nil, fmt.Errorf("filter %s decode: %w", p.filters[i].ID(), err)
		}
	}
	if len(data) > limit {
		return nil, fmt.Errorf("pipeline decode: %w (%d bytes, limit %d)", ErrLimit, len(data), limit)
	}

	return data, nil
}

// Infos returns the descriptions of the filters in the pipeline.
func (p *Pipeline) Infos() []Info {
	return append([]Info(nil), p.infos...)
}

// Len returns the number of filters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.filters)
}
