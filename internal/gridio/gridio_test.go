package gridio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

func TestRoundTrip(t *testing.T) {
	g := core.NewGrid(7, 3)
	rng := core.NewRNG(1)
	for i := range g.Values() {
		g.Values()[i] = rng.Float64()
	}

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatal(err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.W != g.W || got.H != g.H {
		t.Fatalf("decoded %dx%d, want %dx%d", got.W, got.H, g.W, g.H)
	}
	if !slices.Equal(got.Values(), g.Values()) {
		t.Fatal("decoded values differ from written values")
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("NOPE\x00\x00\x00\x00"))); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("bad magic returned %v, want ErrInvalidParameter", err)
	}
}

func TestReadRejectsCorruptHeader(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magic[:])
	// Zero width escapes any legitimate encoder.
	buf.Write([]byte{0, 0, 0, 0, 4, 0, 0, 0})
	if _, err := Read(&buf); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("zero-width header returned %v, want ErrInvalidSize", err)
	}
}

func TestReadRejectsOversizedHeader(t *testing.T) {
	// Both dimensions pass the per-axis cap but the product would demand a
	// multi-gigabyte buffer; the header must be rejected before allocation.
	var buf bytes.Buffer
	buf.Write(magic[:])
	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], 40000)
	binary.LittleEndian.PutUint32(header[4:8], 40000)
	buf.Write(header[:])
	if _, err := Read(&buf); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("40000x40000 header returned %v, want ErrInvalidSize", err)
	}
}

func TestReadRejectsTruncatedBody(t *testing.T) {
	g := core.NewGrid(4, 4)
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatal(err)
	}
	truncated := buf.Bytes()[:buf.Len()-8]
	if _, err := Read(bytes.NewReader(truncated)); err == nil {
		t.Fatal("truncated stream decoded without error")
	}
}
