package errno

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errMalformedDump  = stderrors.New("malformed error dump")
	errIncompleteDump = stderrors.New("incomplete error dump")
)

// ParseDump parses the report written by Dump back into dst. A parsed
// error carrying a message is a KindString error whose message and
// frame names are copied out of text. The description line is not
// read: it follows from the code. Frames beyond the capacity of dst
// are dropped as they would be by Wrap. The backtrace ends at the
// first line that is not a frame: whatever follows is ignored.
//
// Dumping the parsed Value produces text identical to the input as
// long as both sides share the platform and the configuration.
func ParseDump(dst *Value, text []byte) (*Value, error) {
	lines := strings.Split(strings.TrimRight(string(text), "\n"), "\n")
	next := func() (string, bool) {
		if len(lines) == 0 {
			return "", false
		}
		line := lines[0]
		lines = lines[1:]
		return line, true
	}
	expect := func(want string) error {
		line, ok := next()
		if !ok {
			return fmt.Errorf("%w: missing %q", errIncompleteDump, strings.TrimSpace(want))
		}
		if line != want {
			return fmt.Errorf("%w: %q: want %q", errMalformedDump, line, strings.TrimSpace(want))
		}
		return nil
	}
	field := func(prefix string) (string, error) {
		line, ok := next()
		if !ok {
			return "", fmt.Errorf("%w: missing %q", errIncompleteDump, strings.TrimSpace(prefix))
		}
		if !strings.HasPrefix(line, prefix) {
			return "", fmt.Errorf("%w: %q: want prefix %q", errMalformedDump, line, prefix)
		}
		return line[len(prefix):], nil
	}

	header := strings.TrimSuffix(dumpHeader, "\n")
	separator := strings.TrimSuffix(dumpSeparator, "\n")

	if err := expect(header); err != nil {
		return nil, err
	}
	raw, err := field(dumpCode)
	if err != nil {
		return nil, err
	}
	code, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: unparsable code: %s", errMalformedDump, err)
	}
	if _, err := field(dumpDesc); err != nil {
		return nil, err
	}
	if err := expect(separator); err != nil {
		return nil, err
	}

	var msg string
	hasMsg := len(lines) > 0 && strings.HasPrefix(lines[0], dumpMessage)
	if hasMsg {
		// A message may span lines: it runs up to the next separator.
		end := 0
		for end < len(lines) && lines[end] != separator {
			end++
		}
		msg = strings.Join(lines[:end], "\n")[len(dumpMessage):]
		lines = lines[end:]
		if err := expect(separator); err != nil {
			return nil, err
		}
	}
	if err := expect(strings.TrimSuffix(dumpBacktrace, "\n")); err != nil {
		return nil, err
	}

	var frames []Frame
	for i := 0; len(lines) > 0 && strings.HasPrefix(lines[0], dumpFrame); i++ {
		line, _ := next()
		f, err := parseFrame(line, i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: empty backtrace", errIncompleteDump)
	}

	if hasMsg {
		MakeString(dst, Code(code), frames[0], msg)
	} else {
		MakeInt(dst, Code(code), frames[0])
	}
	for _, f := range frames[1:] {
		dst.trace.Add(f)
	}
	return dst, nil
}

// parseFrame parses one backtrace line: "   [01] file:function:line".
func parseFrame(line string, index int) (Frame, error) {
	if !strings.HasPrefix(line, dumpFrame) {
		return Frame{}, fmt.Errorf("%w: %q: not a frame", errMalformedDump, line)
	}
	rest := line[len(dumpFrame):]
	closing := strings.Index(rest, "] ")
	if closing < 0 {
		return Frame{}, fmt.Errorf("%w: %q: missing frame index", errMalformedDump, line)
	}
	n, err := strconv.Atoi(rest[:closing])
	if err != nil || n != index {
		return Frame{}, fmt.Errorf("%w: %q: want frame index %02d", errMalformedDump, line, index)
	}
	rest = rest[closing+2:]

	lastColon := strings.LastIndexByte(rest, ':')
	firstColon := strings.IndexByte(rest, ':')
	if firstColon < 0 || firstColon == lastColon {
		return Frame{}, fmt.Errorf("%w: %q: want file:function:line", errMalformedDump, line)
	}
	lineNo, err := strconv.ParseUint(rest[lastColon+1:], 10, 32)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %q: unparsable line number: %s", errMalformedDump, line, err)
	}
	return Frame{
		File:     rest[:firstColon],
		Function: rest[firstColon+1 : lastColon],
		Line:     uint32(lineNo),
	}, nil
}

// ParseDumps parses a stream of concatenated dumps, such as a log file
// errors were dumped into. Text before the first header is ignored.
func ParseDumps(text []byte) ([]*Value, error) {
	header := []byte(dumpHeader)
	start := bytes.Index(text, header)
	if start < 0 {
		return nil, nil
	}
	text = text[start:]

	var values []*Value
	for len(text) > 0 {
		end := bytes.Index(text[len(header):], header)
		chunk := text
		if end >= 0 {
			chunk = text[:len(header)+end]
		}
		v, err := ParseDump(new(Value), chunk)
		if err != nil {
			return values, fmt.Errorf("dump %d: %w", len(values), err)
		}
		values = append(values, v)
		text = text[len(chunk):]
	}
	return values, nil
}
