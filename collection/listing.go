package collection

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/docker/go-units"
)

// ParseListing reads a listing of collection files and returns the entries
// for all files and directories in it.
//
// A listing contains one entry per line:
//
//	data/raw/sample1.fastq 1.5GiB
//	data/raw/sample2.fastq 1610612736
//	data/results/
//	# comments and blank lines are skipped
//
// A line holds a path and, separated by blanks, the size of the file, either
// in bytes or with a binary unit suffix. Blanks within a path are written as
// "\040". Lines with a trailing slash denote (possibly empty) directories.
// Directories on the way to a file need not be listed, they are created
// implicitly.
//
// The resulting slice starts with the directories, followed by the files, each
// in order of appearance.
func ParseListing(r io.Reader) ([]Entry, error) {
	var dirs, files []Entry
	kinds := make(map[string]Kind)
	addDir := func(p string) error {
		var chain []string // new directories, innermost first
		for d := p; d != "" && d != "/"; d = path.Dir(d) {
			if k, ok := kinds[d]; ok {
				if k != DirectoryKind {
					return fmt.Errorf("%w: %q used as file and directory", ErrMalformedListing, d)
				}
				break
			}
			chain = append(chain, d)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			kinds[chain[i]] = DirectoryKind
			dirs = append(dirs, NewDirectory(chain[i]))
		}
		return nil
	}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		p := strings.ReplaceAll(fields[0], `\040`, " ")
		if strings.HasSuffix(p, "/") {
			if len(fields) > 1 {
				return nil, fmt.Errorf("%w: line %d: directory with size", ErrMalformedListing, lineno)
			}
			id, _, _ := splitPath(p)
			if err := addDir(id); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			continue
		}
		if len(fields) > 2 {
			return nil, fmt.Errorf("%w: line %d: too many fields", ErrMalformedListing, lineno)
		}
		var size int64
		if len(fields) == 2 {
			var err error
			if size, err = units.RAMInBytes(fields[1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: size %q", ErrMalformedListing, lineno, fields[1])
			}
		}
		file := NewFile(p, size)
		if file.Name == "" {
			return nil, fmt.Errorf("%w: line %d: empty file name", ErrMalformedListing, lineno)
		}
		if k, ok := kinds[file.ID]; ok {
			if k == DirectoryKind {
				return nil, fmt.Errorf("%w: line %d: %q used as file and directory",
					ErrMalformedListing, lineno, file.ID)
			}
			return nil, fmt.Errorf("%w: line %d: duplicate file %q", ErrMalformedListing, lineno, file.ID)
		}
		if err := addDir(file.Path); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		kinds[file.ID] = FileKind
		files = append(files, file)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}
	tracer().Debugf("collection: listing has %d directories and %d files", len(dirs), len(files))
	return append(dirs, files...), nil
}

// LoadListing reads a listing from a file (see ParseListing).
func LoadListing(name string) ([]Entry, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("listing %s is not a regular file", name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := ParseListing(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

// FormatSize formats a file size with a binary unit, e.g. "1.5KiB".
func FormatSize(size int64) string {
	return units.BytesSize(float64(size))
}
