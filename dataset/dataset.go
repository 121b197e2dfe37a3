// Package dataset reads and writes the whitespace-separated point files the
// query tools operate on. Each line is "id x y": an opaque id token followed
// by two finite coordinates.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/royalcat/rtreeq/rtree"
	"golang.org/x/exp/mmap"
)

// Load reads points from a dataset file. Files with a .zst suffix are
// decompressed on the fly. Non-finite coordinates are rejected here so the
// index never sees them.
func Load(path string, log *slog.Logger) ([]rtree.Point[string], error) {
	reader, err := open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	points, err := parse(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info("Loaded dataset", "path", path, "points", len(points))
	return points, nil
}

// ParseIntIDs converts the id token of every point to an integer, for
// datasets whose ids are numeric.
func ParseIntIDs(points []rtree.Point[string]) ([]rtree.Point[int], error) {
	out := make([]rtree.Point[int], len(points))
	for i, p := range points {
		id, err := strconv.Atoi(p.Data)
		if err != nil {
			return nil, fmt.Errorf("point %d: id %q is not an integer", i+1, p.Data)
		}
		out[i] = rtree.Point[int]{X: p.X, Y: p.Y, Data: id}
	}
	return out, nil
}

// Save writes points in the same "id x y" line format Load reads.
func Save(path string, points []rtree.Point[string]) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can`t create file error: %s", err.Error())
	}
	w := bufio.NewWriter(file)
	for _, p := range points {
		fmt.Fprintf(w, "%s %v %v\n", p.Data, p.X, p.Y)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func open(name string) (io.ReadCloser, error) {
	if strings.HasSuffix(name, ".zst") {
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("can`t open file error: %s", err.Error())
		}
		dec, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("can`t create zstd reader: %s", err.Error())
		}
		return dec.IOReadCloser(), nil
	}

	file, err := mmap.Open(name)
	if err != nil {
		return nil, fmt.Errorf("can`t open file error: %s", err.Error())
	}
	return mmapReader{
		SectionReader: io.NewSectionReader(file, 0, int64(file.Len())),
		closer:        file,
	}, nil
}

type mmapReader struct {
	*io.SectionReader
	closer io.Closer
}

func (r mmapReader) Close() error {
	return r.closer.Close()
}

func parse(r io.Reader) ([]rtree.Point[string], error) {
	var points []rtree.Point[string]

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d", line, len(fields))
		}

		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad x coordinate %q", line, fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad y coordinate %q", line, fields[2])
		}
		if !isFinite(x) || !isFinite(y) {
			return nil, fmt.Errorf("line %d: non-finite coordinate", line)
		}

		points = append(points, rtree.Point[string]{X: x, Y: y, Data: fields[0]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
