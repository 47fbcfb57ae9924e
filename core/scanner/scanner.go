package scanner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/scriptdoc/scriptdoc/core/models"
)

// Filter narrows which functions a scan emits. Target, when set, must match
// the resolved name exactly. Prefix, when set, gates emission to names
// carrying it and is stripped from the displayed name.
type Filter struct {
	Target string
	Prefix string
}

// Scanner walks script source line by line and hands every documented
// function it confirms to Emit. All state lives in one Scan call; a Scanner
// is reusable across files.
type Scanner struct {
	Filter Filter
	Emit   func(models.FunctionDoc)
}

func NewScanner(filter Filter, emit func(models.FunctionDoc)) *Scanner {
	return &Scanner{
		Filter: filter,
		Emit:   emit,
	}
}

// Scan consumes the whole input in one forward pass. A bare header holds
// exactly one line of lookahead: either the next line is a lone `{` and the
// function is confirmed, or the header is dropped along with the line that
// broke it. That breaking line is deliberately not re-classified; callers
// rely on this matching the established behavior.
func (s *Scanner) Scan(r io.Reader) error {
	var (
		block    string
		pending  string
		awaiting bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()

		if awaiting {
			if Classify(line) == LineBrace {
				s.record(ResolveName(pending), block)
			}
			block = ""
			pending = ""
			awaiting = false
			continue
		}

		switch Classify(line) {
		case LineComment:
			block = Accumulate(block, line)
		case LineFuncInline:
			s.record(ResolveName(line), block)
			block = ""
		case LineFuncBare:
			pending = line
			awaiting = true
		default:
			block = ""
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	return nil
}

// record applies the filter and forwards a confirmed function. Headers that
// resolve to an empty name never produce a record.
func (s *Scanner) record(name, block string) {
	if name == "" {
		return
	}
	if s.Filter.Target != "" && name != s.Filter.Target {
		return
	}
	if s.Filter.Prefix != "" {
		if !strings.HasPrefix(name, s.Filter.Prefix) {
			return
		}
		name = strings.TrimPrefix(name, s.Filter.Prefix)
	}
	if s.Emit != nil {
		s.Emit(models.FunctionDoc{Name: name, Doc: block})
	}
}

// WriteRecord renders one function in the help layout: the name two spaces
// in, the comment block four spaces in, and a blank separator line only when
// there is a block.
func WriteRecord(w io.Writer, fn models.FunctionDoc) error {
	if _, err := fmt.Fprintf(w, "  %s\n", fn.Name); err != nil {
		return err
	}
	if fn.Doc == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s%s\n\n", continuationIndent, fn.Doc)
	return err
}

// Extract scans the script at path and streams matching records to w. An
// unreadable source is a hard failure; a target that matches nothing is a
// normal run with empty output.
func Extract(w io.Writer, path string, filter Filter) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer f.Close()

	logger.Debug("Extracting docs from %s (target=%q prefix=%q)", path, filter.Target, filter.Prefix)

	var emitErr error
	s := NewScanner(filter, func(fn models.FunctionDoc) {
		if emitErr != nil {
			return
		}
		emitErr = WriteRecord(w, fn)
	})

	if err := s.Scan(f); err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if emitErr != nil {
		return fmt.Errorf("failed to write record: %w", emitErr)
	}
	return nil
}

// ScanFile collects every documented function of one script. The watch and
// list paths use this batch form so results can be cached.
func ScanFile(path string, filter Filter) (*models.ScriptDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer f.Close()

	doc := &models.ScriptDoc{Path: path}
	s := NewScanner(filter, func(fn models.FunctionDoc) {
		doc.Functions = append(doc.Functions, fn)
	})

	if err := s.Scan(f); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}

	logger.Debug("Scanned %s: %d documented functions", path, len(doc.Functions))
	return doc, nil
}
