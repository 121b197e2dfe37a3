package dataset_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/royalcat/rtreeq/dataset"
	"github.com/thejerf/slogassert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "points.txt", "id1 26.5 95.0\nid2 3 -7.25\n\nid3 0 0\n")

	points, err := dataset.Load(path, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Data != "id1" || points[0].X != 26.5 || points[0].Y != 95.0 {
		t.Fatalf("unexpected first point %+v", points[0])
	}
	if points[1].Y != -7.25 {
		t.Fatalf("unexpected second point %+v", points[1])
	}
}

func TestLoadLogs(t *testing.T) {
	path := writeFile(t, "points.txt", "a 1 2\n")

	handler := slogassert.New(t, slog.LevelInfo, nil)
	if _, err := dataset.Load(path, slog.New(handler)); err != nil {
		t.Fatal(err)
	}
	handler.AssertMessage("Loaded dataset")
}

func TestLoadZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt.zst")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := zstd.NewWriter(file)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write([]byte("a 1 2\nb 3 4\n")); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	points, err := dataset.Load(path, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 || points[1].Data != "b" {
		t.Fatalf("unexpected points %+v", points)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"missing field":  "a 1\n",
		"extra field":    "a 1 2 3\n",
		"bad x":          "a one 2\n",
		"bad y":          "a 1 two\n",
		"nan coordinate": "a NaN 2\n",
		"inf coordinate": "a 1 +Inf\n",
	} {
		path := writeFile(t, "bad.txt", content)
		if _, err := dataset.Load(path, discardLogger()); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := dataset.Load(filepath.Join(t.TempDir(), "nope.txt"), discardLogger()); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	points, err := dataset.Load(writeFile(t, "in.txt", "a 1.5 2\nb -3 4.25\n"), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := dataset.Save(path, points); err != nil {
		t.Fatal(err)
	}

	reloaded, err := dataset.Load(path, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(reloaded))
	}
	for i := range points {
		if reloaded[i] != points[i] {
			t.Fatalf("point %d changed across save/load: %+v vs %+v", i, points[i], reloaded[i])
		}
	}
}

func TestParseIntIDs(t *testing.T) {
	points, err := dataset.Load(writeFile(t, "in.txt", "10 1 2\n20 3 4\n"), discardLogger())
	if err != nil {
		t.Fatal(err)
	}

	intPoints, err := dataset.ParseIntIDs(points)
	if err != nil {
		t.Fatal(err)
	}
	if intPoints[0].Data != 10 || intPoints[1].Data != 20 {
		t.Fatalf("unexpected ids %+v", intPoints)
	}

	points[0].Data = "abc"
	if _, err := dataset.ParseIntIDs(points); err == nil {
		t.Fatalf("expected an error for a non-numeric id")
	}
}
