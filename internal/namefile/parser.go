package namefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Parse reads a name file and returns its entries in declaration order.
// peek lists file-type tags whose files should be opened for header
// inspection (see Entry.PeekFreeFormat); pass nil to open none. The
// caller owns the returned NameFile and must Close it.
func Parse(path string, peek map[string]bool) (*NameFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Msg: "cannot open name file", Err: err}
	}
	defer f.Close()

	nf := &NameFile{
		Path:   path,
		Meta:   map[string]string{},
		byUnit: map[int]*Entry{},
	}
	dir := filepath.Dir(path)

	scanner := bufio.NewScanner(f)
	lineno := 0
	sawEntry := false
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			// The heading comment block may carry collaborator metadata
			// (spatial reference, start date). Retained, never interpreted.
			if !sawEntry {
				if nf.Heading == "" {
					nf.Heading = line
				} else {
					parseMeta(line, nf.Meta)
				}
			}
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			nf.Close()
			return nil, &FormatError{Path: path, Line: lineno, Msg: err.Error(), Err: err}
		}
		if _, dup := nf.byUnit[entry.Unit]; dup {
			nf.Close()
			return nil, &FormatError{Path: path, Line: lineno,
				Msg: fmt.Sprintf("unit %d already in use", entry.Unit)}
		}
		sawEntry = true

		if peek[entry.FileType] {
			fp := entry.FileName
			if !filepath.IsAbs(fp) {
				fp = filepath.Join(dir, fp)
			}
			h, err := os.Open(fp)
			if err != nil {
				nf.Close()
				return nil, &FormatError{Path: path, Line: lineno,
					Msg: fmt.Sprintf("cannot open %s file %s", entry.FileType, entry.FileName), Err: err}
			}
			entry.file = h
		}

		nf.Entries = append(nf.Entries, entry)
		nf.byUnit[entry.Unit] = entry
	}
	if err := scanner.Err(); err != nil {
		nf.Close()
		return nil, &FormatError{Path: path, Msg: "reading name file", Err: err}
	}

	return nf, nil
}

// parseLine splits one entry line into its three or four tokens.
func parseLine(line string) (*Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields) > 4 {
		return nil, fmt.Errorf("expected 3 or 4 tokens, got %d", len(fields))
	}

	unit, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("unit number %q is not an integer", fields[1])
	}
	if unit <= 0 {
		return nil, fmt.Errorf("unit number %d must be positive", unit)
	}

	e := &Entry{
		Unit:     unit,
		FileType: strings.ToUpper(fields[0]),
		FileName: fields[2],
	}
	if len(fields) == 4 {
		if !strings.EqualFold(fields[3], "REPLACE") && !strings.EqualFold(fields[3], "OLD") {
			return nil, fmt.Errorf("unrecognized option %q", fields[3])
		}
		e.Replace = strings.EqualFold(fields[3], "REPLACE")
	}
	return e, nil
}

// parseMeta extracts key:value pairs from a heading comment line such as
// "# xul:0.0, yul:100.0, rotation:0.0 ;start_datetime:1-1-1970".
func parseMeta(line string, meta map[string]string) {
	line = strings.TrimLeft(line, "# ")
	for _, part := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ';' }) {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			meta[k] = v
		}
	}
}

// PeekFreeFormat inspects the first non-comment line of an entry opened
// for header inspection and reports whether it declares the FREE option.
// The stream position is restored afterwards so a later full parse of the
// file is unaffected.
func (e *Entry) PeekFreeFormat() (bool, error) {
	if e.file == nil {
		return false, fmt.Errorf("%s file %s was not opened for peeking", e.FileType, e.FileName)
	}

	start, err := e.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, fmt.Errorf("peeking %s: %w", e.FileName, err)
	}

	free := false
	scanner := bufio.NewScanner(e.file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		free = strings.Contains(strings.ToUpper(line), "FREE")
		break
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("peeking %s: %w", e.FileName, err)
	}

	if _, err := e.file.Seek(start, io.SeekStart); err != nil {
		return false, fmt.Errorf("rewinding %s after peek: %w", e.FileName, err)
	}
	return free, nil
}
