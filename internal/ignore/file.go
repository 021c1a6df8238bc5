// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package ignore

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// DefaultFileName is the fact file looked up in the working directory.
const DefaultFileName = "ignore.ghiqc"

// File is a fact file on disk.
type File struct {
	path string
}

// NewFile returns a fact file for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the file is present.
func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Lines reads the file line by line.
func (f *File) Lines() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("can not read facts from %s: %w", f.path, err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("can not read facts from %s: %w", f.path, err)
	}
	return lines, nil
}

// Facts reads and parses the file.
func (f *File) Facts() (Facts, error) {
	lines, err := f.Lines()
	if err != nil {
		return Facts{}, err
	}
	facts, err := Parse(lines)
	if err != nil {
		return Facts{}, fmt.Errorf("%s: %w", f.path, err)
	}
	return facts, nil
}

// ReadLines splits r into lines. Line terminators ("\n" or "\r\n") are
// dropped and a final terminator does not yield an extra empty line.
// Lines may be of any length.
func ReadLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lines := make([]string, 0, 16)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan facts: %w", err)
	}
	return lines, nil
}

// ParseLines parses fact file content held in memory, such as a file
// fetched from a repository.
func ParseLines(content string) (Facts, error) {
	lines, err := ReadLines(strings.NewReader(content))
	if err != nil {
		return Facts{}, err
	}
	return Parse(lines)
}
