package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSimple(t *testing.T) {
	input := ">seq1\nMKLV\n>seq2 desc\nGGTT\n"
	recs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "seq1" || recs[0].Sequence != "MKLV" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Header != "seq2 desc" || recs[1].Sequence != "GGTT" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
	if recs[1].ID() != "seq2" {
		t.Fatalf("expected id seq2, got %q", recs[1].ID())
	}
}

func TestParseMultilineAndBlankLines(t *testing.T) {
	input := ">p1\nMKL\nVVA\n\nCC\n"
	recs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Sequence != "MKLVVACC" {
		t.Fatalf("expected concatenated sequence, got %q", recs[0].Sequence)
	}
}

func TestParseEmptyInput(t *testing.T) {
	recs, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(recs))
	}
}

func TestParseIgnoresLeadingGarbage(t *testing.T) {
	input := "not a header\n>p1\nMK\n"
	recs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(recs) != 1 || recs[0].Sequence != "MK" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.faa")
	if err := os.WriteFile(path, []byte(">p1\nMKL\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rc.Close()
	recs, err := Parse(rc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Sequence != "MKL" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestOpenGzipFileWithoutGzExtension(t *testing.T) {
	// gzip content deliberately stored under a plain .faa name: detection
	// must go by magic bytes, not extension
	path := filepath.Join(t.TempDir(), "mislabeled.faa")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(">p1\nMKLV\n")); err != nil {
		t.Fatalf("write gzip fixture: %v", err)
	}
	gz.Close()
	f.Close()

	rc, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rc.Close()
	recs, err := Parse(rc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Sequence != "MKLV" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.faa")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestOpenTruncatedGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.faa.gz")
	// gzip magic followed by garbage
	if err := os.WriteFile(path, []byte{0x1f, 0x8b, 0xff, 0x00}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected error for corrupt gzip stream")
	}
}
