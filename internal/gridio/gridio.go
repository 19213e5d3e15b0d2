// Package gridio reads and writes the on-disk heightmap exchange format: a
// little-endian float64 matrix with a small header, used by the CLI tools to
// hand grids between runs.
package gridio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Format: magic "TFG1", uint32 width, uint32 height, then w*h little-endian
// float64 values in row-major order.
var magic = [4]byte{'T', 'F', 'G', '1'}

// Caps decoding of corrupt headers before allocation. maxCells bounds the
// total float64 buffer (128 MiB) even when both dimensions pass the per-axis
// check.
const (
	maxDim   = 1 << 16
	maxCells = 1 << 24
)

// Write encodes the grid to w.
func Write(w io.Writer, g *core.Grid) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	header := [2]uint32{uint32(g.W), uint32(g.H)}
	if err := binary.Write(w, binary.LittleEndian, header[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, g.Values())
}

// Read decodes a grid from r.
func Read(r io.Reader) (*core.Grid, error) {
	var got [4]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return nil, err
	}
	if got != magic {
		return nil, fmt.Errorf("bad grid magic %q: %w", got[:], core.ErrInvalidParameter)
	}
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, header[:]); err != nil {
		return nil, err
	}
	w, h := int(header[0]), int(header[1])
	if w <= 0 || h <= 0 || w > maxDim || h > maxDim || w*h > maxCells {
		return nil, fmt.Errorf("grid header %dx%d: %w", w, h, core.ErrInvalidSize)
	}
	values := make([]float64, w*h)
	if err := binary.Read(r, binary.LittleEndian, values); err != nil {
		return nil, err
	}
	return core.GridFromValues(w, h, values)
}

// WriteFile writes the grid to path.
func WriteFile(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile loads a grid from path.
func ReadFile(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
