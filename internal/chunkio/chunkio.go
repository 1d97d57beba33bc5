// Package chunkio encodes simulated paths as Prometheus XOR chunks.
//
// One path becomes one chunk: sample timestamps are the step indices
// 0..len-1 and sample values are the path levels. XOR (Gorilla) encoding
// exploits the step-to-step similarity of diffusion paths, so a file of
// paths is far smaller than the raw float64 dump.
//
// Frame layout, per chunk:
//
//	[1 byte encoding][chunk bytes][4 bytes CRC-32 (Castagnoli, big endian)]
//
// The checksum covers the encoding byte and the chunk bytes. A file holds a
// small header followed by length-prefixed frames:
//
//	"mcpk" [1 byte version] [4 bytes series count] { [4 bytes frame length][frame] }*
//
// All integers are big endian.
package chunkio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/prometheus/tsdb/chunkenc"
)

// Format constants.
const (
	formatVersion = 1
	headerLen     = 4 + 1 + 4 // magic + version + series count
	frameOverhead = 1 + 4     // encoding byte + checksum
)

var magic = [4]byte{'m', 'c', 'p', 'k'}

var (
	// ErrChecksum is returned when a frame's CRC does not match its payload.
	ErrChecksum = errors.New("chunkio: checksum mismatch")
	// ErrTooSmall is returned when a frame is shorter than its fixed overhead.
	ErrTooSmall = errors.New("chunkio: frame too small")
	// ErrEncoding is returned when a frame carries an encoding other than XOR.
	ErrEncoding = errors.New("chunkio: unsupported chunk encoding")
	// ErrHeader is returned when a file does not start with a valid header.
	ErrHeader = errors.New("chunkio: bad file header")
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Encode packs one series into a CRC-framed XOR chunk. An empty series
// yields a valid frame that decodes back to an empty series.
func Encode(series []float64) []byte {
	chunk := chunkenc.NewXORChunk()
	app, _ := chunk.Appender()
	for i, v := range series {
		app.Append(int64(i), v)
	}

	raw := chunk.Bytes()
	frame := make([]byte, 1+len(raw)+4)
	frame[0] = byte(chunk.Encoding())
	copy(frame[1:], raw)

	sum := crc32.Checksum(frame[:1+len(raw)], castagnoli)
	binary.BigEndian.PutUint32(frame[1+len(raw):], sum)
	return frame
}

// Decode validates one frame and unpacks its series.
func Decode(frame []byte) ([]float64, error) {
	if len(frame) < frameOverhead {
		return nil, ErrTooSmall
	}

	payload := frame[:len(frame)-4]
	want := binary.BigEndian.Uint32(frame[len(frame)-4:])
	if crc32.Checksum(payload, castagnoli) != want {
		return nil, ErrChecksum
	}
	if chunkenc.Encoding(payload[0]) != chunkenc.EncXOR {
		return nil, fmt.Errorf("%w: %d", ErrEncoding, payload[0])
	}

	chunk := chunkenc.NewXORChunk()
	chunk.Reset(payload[1:])

	out := make([]float64, 0, chunk.NumSamples())
	it := chunk.Iterator(nil)
	for it.Next() != chunkenc.ValNone {
		_, v := it.At()
		out = append(out, v)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("chunkio.Decode: iterate chunk: %w", err)
	}
	return out, nil
}

// WriteAll writes the header and one frame per series to w.
func WriteAll(w io.Writer, series [][]float64) error {
	header := make([]byte, headerLen)
	copy(header, magic[:])
	header[4] = formatVersion
	binary.BigEndian.PutUint32(header[5:], uint32(len(series)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("chunkio.WriteAll: write header: %w", err)
	}

	var frameLen [4]byte
	for i, s := range series {
		frame := Encode(s)
		binary.BigEndian.PutUint32(frameLen[:], uint32(len(frame)))
		if _, err := w.Write(frameLen[:]); err != nil {
			return fmt.Errorf("chunkio.WriteAll: write frame %d length: %w", i, err)
		}
		if _, err := w.Write(frame); err != nil {
			return fmt.Errorf("chunkio.WriteAll: write frame %d: %w", i, err)
		}
	}
	return nil
}

// ReadAll reads a file written by WriteAll, validating every frame.
func ReadAll(r io.Reader) ([][]float64, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("chunkio.ReadAll: read header: %w", err)
	}
	if [4]byte(header[:4]) != magic || header[4] != formatVersion {
		return nil, ErrHeader
	}

	count := binary.BigEndian.Uint32(header[5:])
	out := make([][]float64, 0, count)
	var frameLen [4]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, frameLen[:]); err != nil {
			return nil, fmt.Errorf("chunkio.ReadAll: read frame %d length: %w", i, err)
		}
		frame := make([]byte, binary.BigEndian.Uint32(frameLen[:]))
		if _, err := io.ReadFull(r, frame); err != nil {
			return nil, fmt.Errorf("chunkio.ReadAll: read frame %d: %w", i, err)
		}

		series, err := Decode(frame)
		if err != nil {
			return nil, fmt.Errorf("chunkio.ReadAll: frame %d: %w", i, err)
		}
		out = append(out, series)
	}
	return out, nil
}

// WriteFile writes series to name, creating parent directories as needed.
func WriteFile(name string, series [][]float64) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("chunkio.WriteFile: create %q: %w", dir, err)
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("chunkio.WriteFile: create %q: %w", name, err)
	}
	if err := WriteAll(f, series); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("chunkio.WriteFile: fsync %q: %w", name, err)
	}
	return f.Close()
}

// ReadFile reads and validates a file written by WriteFile.
func ReadFile(name string) ([][]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("chunkio.ReadFile: open %q: %w", name, err)
	}
	defer f.Close()
	return ReadAll(f)
}
