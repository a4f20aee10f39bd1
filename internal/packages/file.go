package packages

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// firstDataLineString returns the first non-blank, non-comment line of a
// package file. MODFLOW package files open with any number of '#'
// comment lines.
func firstDataLineString(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening package file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading package file %s: %w", path, err)
	}
	return "", fmt.Errorf("package file %s has no data lines", path)
}

// scanDataLines calls fn for every non-blank, non-comment line of a
// package file, stopping early when fn returns false. The file handle is
// released before returning.
func scanDataLines(path string, fn func(line string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening package file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !fn(line) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading package file %s: %w", path, err)
	}
	return nil
}
