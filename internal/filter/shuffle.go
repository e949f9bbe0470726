package filter

// Shuffle implements the byte shuffle filter.
// This filter rearranges bytes to improve compression by grouping
// similar byte positions together (e.g., all MSBs, then all next bytes, etc.).
type Shuffle struct {
	elemSize int
}

// NewShuffle creates a new shuffle filter.
// Params: [0] = element size in bytes
func NewShuffle(params []uint32) *Shuffle {
	elemSize := 1
	if len(params) > 0 && params[0] > 0 {
		elemSize = int(params[0])
	}
	return &Shuffle{elemSize: elemSize}
}

func (f *Shuffle) ID() ID {
	return IDShuffle
}

// Encode groups byte j of every element together.
// Trailing bytes that do not fill an element are copied unchanged.
func (f *Shuffle) Encode(input []byte) ([]byte, error) {
	numElems := f.elements(input)
	if numElems == 0 {
		return input, nil
	}

	output := make([]byte, len(input))
	for i := 0; i < numElems; i++ {
		for j := 0; j < f.elemSize; j++ {
			output[j*numElems+i] = input[i*f.elemSize+j]
		}
	}
	tail := numElems * f.elemSize
	copy(output[tail:], input[tail:])

	return output, nil
}

// Decode reverses the shuffle transformation.
// Input is organized as: [all byte 0s][all byte 1s]...[all byte N-1s]
// Output is organized as: [elem0][elem1]...[elemM]
// The output is the size of the input, so limit is not consulted.
func (f *Shuffle) Decode(input []byte, limit int) ([]byte, error) {
	numElems := f.elements(input)
	if numElems == 0 {
		return input, nil
	}

	output := make([]byte, len(input))
	for i := 0; i < numElems; i++ {
		for j := 0; j < f.elemSize; j++ {
			output[i*f.elemSize+j] = input[j*numElems+i]
		}
	}
	tail := numElems * f.elemSize
	copy(output[tail:], input[tail:])

	return output, nil
}

// elements returns the number of whole elements to shuffle, or 0 when the
// filter is the identity for this input.
func (f *Shuffle) elements(input []byte) int {
	if f.elemSize <= 1 {
		return 0
	}
	return len(input) / f.elemSize
}
