package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Input is one unit of work: a stable genome identifier plus the file path
// it resolves to.
type Input struct {
	Genome string
	Path   string
}

func eligible(name string) bool {
	n := strings.ToLower(strings.TrimSuffix(name, ".gz"))
	return strings.HasSuffix(n, ".faa") || strings.HasSuffix(n, ".fasta") || strings.HasSuffix(n, ".fa")
}

// Collect resolves path to an ordered list of inputs. A single file is one
// input regardless of extension; a directory yields all FASTA files
// (.faa/.fasta/.fa, optionally .gz) sorted by name. A path that is neither,
// or a directory with no eligible files, is an error: the batch cannot be
// defined.
func Collect(path string) ([]Input, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []Input{{Genome: genomeID(filepath.Base(path)), Path: path}}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}
	var inputs []Input
	for _, e := range entries {
		if e.IsDir() || !eligible(e.Name()) {
			continue
		}
		inputs = append(inputs, Input{Genome: genomeID(e.Name()), Path: filepath.Join(path, e.Name())})
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no .faa/.fasta/.fa files found in %s", path)
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Path < inputs[j].Path })
	return inputs, nil
}
