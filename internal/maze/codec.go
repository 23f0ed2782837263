package maze

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// On-disk layout, little-endian:
//
//	uint64  name length
//	[]byte  name
//	int32   width
//	int32   height
//	[]byte  height*width grid bytes, row-major
var byteOrder = binary.LittleEndian

// Encode writes m to w in the binary maze format.
func Encode(w io.Writer, m Maze) error {
	if m.Width < 0 || m.Height < 0 || m.Width > math.MaxInt32 || m.Height > math.MaxInt32 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, m.Width, m.Height)
	}

	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, byteOrder, uint64(len(m.Name))); err != nil {
		return fmt.Errorf("write name length: %w", err)
	}
	if _, err := bw.WriteString(m.Name); err != nil {
		return fmt.Errorf("write name: %w", err)
	}
	if err := binary.Write(bw, byteOrder, [2]int32{int32(m.Width), int32(m.Height)}); err != nil {
		return fmt.Errorf("write dimensions: %w", err)
	}

	for y, row := range m.Grid {
		for _, c := range row {
			if err := bw.WriteByte(byte(c)); err != nil {
				return fmt.Errorf("write row %d: %w", y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush maze: %w", err)
	}
	return nil
}

// Decode reads one maze record from r. Cell bytes are taken as-is.
// A record that ends early returns an error wrapping io.ErrUnexpectedEOF.
func Decode(r io.Reader) (Maze, error) {
	var nameLen uint64
	if err := binary.Read(r, byteOrder, &nameLen); err != nil {
		return Maze{}, fmt.Errorf("read name length: %w", unexpected(err))
	}
	if nameLen > math.MaxInt64 {
		return Maze{}, fmt.Errorf("%w: name length %d", ErrMalformed, nameLen)
	}

	name, err := readN(r, int64(nameLen))
	if err != nil {
		return Maze{}, fmt.Errorf("read name: %w", err)
	}

	var dims [2]int32
	if err := binary.Read(r, byteOrder, &dims); err != nil {
		return Maze{}, fmt.Errorf("read dimensions: %w", unexpected(err))
	}
	width, height := int(dims[0]), int(dims[1])
	if width < 0 || height < 0 {
		return Maze{}, fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, width, height)
	}

	m := NewSized(width, height)
	m.Name = string(name)

	// Zero-width rows carry no bytes, so height alone cannot be trusted.
	if width == 0 {
		return m, nil
	}

	m.Grid = make([][]Cell, 0, min(height, 1024))
	for y := 0; y < height; y++ {
		raw, err := readN(r, int64(width))
		if err != nil {
			return Maze{}, fmt.Errorf("read row %d: %w", y, err)
		}
		row := make([]Cell, width)
		for x, b := range raw {
			row[x] = Cell(b)
		}
		m.Grid = append(m.Grid, row)
	}

	return m, nil
}

// readN reads exactly n bytes. The buffer grows with the data actually read,
// so a corrupt length fails at end of input instead of allocating up front.
func readN(r io.Reader, n int64) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, n); err != nil {
		return nil, unexpected(err)
	}
	return buf.Bytes(), nil
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
