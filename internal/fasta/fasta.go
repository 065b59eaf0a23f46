package fasta

// Package fasta contains minimal helpers to parse FASTA formatted data used
// by the project. It intentionally keeps parsing simple and conservative.

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Record represents a single FASTA record (header and sequence).
type Record struct {
	Header   string
	Sequence string
}

// maxLineBytes bounds a single sequence line; one-line proteome files can
// carry a whole protein per line.
const maxLineBytes = 64 * 1024 * 1024

// Parse reads FASTA records from r and returns a slice of Record.
// Lines beginning with '>' denote headers; sequence lines are concatenated.
// Text before the first header is ignored; zero records is not an error.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var records []Record
	var current Record
	var seq strings.Builder
	open := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			if open {
				current.Sequence = seq.String()
				records = append(records, current)
			}
			current = Record{Header: strings.TrimPrefix(line, ">")}
			seq.Reset()
			open = true
		} else if open {
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if open {
		current.Sequence = seq.String()
		records = append(records, current)
	}
	return records, nil
}

// ID returns the record identifier: the header text up to the first
// whitespace, by convention.
func (r Record) ID() string {
	fields := strings.Fields(r.Header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// reader pairs a decoded stream with the underlying file so Close releases
// both layers.
type reader struct {
	io.Reader
	closers []io.Closer
}

func (r *reader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens a FASTA file for reading, transparently decompressing gzip
// input. Detection is by content (the two gzip magic bytes), not by file
// extension, so a mislabeled file still parses.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &reader{Reader: gz, closers: []io.Closer{gz, f}}, nil
	}
	// a Peek error here is EOF on an empty file; reading it as plain text
	// yields zero records, which is valid
	return &reader{Reader: br, closers: []io.Closer{f}}, nil
}
