//go:build !errno_optimize

package errno

import (
	"fmt"
	"unicode/utf8"
)

// fixedWriter writes into a fixed buffer and drops whatever does not
// fit. Write never fails so fmt never reports a short write.
type fixedWriter struct {
	buf       []byte
	n         int
	truncated bool
}

func (w *fixedWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	if n < len(p) {
		w.truncated = true
	}
	return len(p), nil
}

// Len returns the bytes written, minus a rune cut in half by
// truncation.
func (w *fixedWriter) Len() int {
	if !w.truncated {
		return w.n
	}
	for i := w.n - 1; i >= 0 && i >= w.n-utf8.UTFMax; i-- {
		if utf8.RuneStart(w.buf[i]) {
			if !utf8.FullRune(w.buf[i:w.n]) {
				return i
			}
			break
		}
	}
	return w.n
}

// mustCheckFormat panics when format would make fmt print an error
// marker (%!d(MISSING), %!(EXTRA ...), %!(BADINDEX) and friends) into
// the message, or when it uses %w.
func mustCheckFormat(format string, numArgs int) {
	if err := checkFormat(format, numArgs); err != "" {
		panic(fmt.Sprintf("errno: bad format %q: %s", format, err))
	}
}

// checkFormat walks format the way fmt does, counting the arguments
// consumed by verbs, '*' widths and precisions, and explicit [n]
// indices.
func checkFormat(f string, numArgs int) string {
	var argNum int
	var reordered bool

	// index consumes an explicit argument index at f[i:], if any.
	index := func(i int) (int, string) {
		if i >= len(f) || f[i] != '[' {
			return i, ""
		}
		reordered = true
		j := i + 1
		n := 0
		for ; j < len(f) && f[j] >= '0' && f[j] <= '9'; j++ {
			n = n*10 + int(f[j]-'0')
		}
		if j >= len(f) || f[j] != ']' || j == i+1 || n < 1 || n > numArgs {
			return j, "bad argument index"
		}
		argNum = n - 1
		return j + 1, ""
	}

	// number consumes a '*' (an argument) or a decimal at f[i:].
	number := func(i int) (int, string) {
		if i < len(f) && f[i] == '*' {
			if argNum >= numArgs {
				return i, "missing argument for '*'"
			}
			argNum++
			return i + 1, ""
		}
		for i < len(f) && f[i] >= '0' && f[i] <= '9' {
			i++
		}
		return i, ""
	}

	for i := 0; i < len(f); {
		if f[i] != '%' {
			i++
			continue
		}
		i++
		for i < len(f) && (f[i] == '+' || f[i] == '-' || f[i] == '#' || f[i] == ' ' || f[i] == '0') {
			i++
		}
		var err string
		if i, err = index(i); err != "" {
			return err
		}
		if i, err = number(i); err != "" {
			return err
		}
		if i < len(f) && f[i] == '.' {
			if i, err = index(i + 1); err != "" {
				return err
			}
			if i, err = number(i); err != "" {
				return err
			}
		}
		if i, err = index(i); err != "" {
			return err
		}
		if i >= len(f) {
			return "missing verb"
		}
		verb, size := utf8.DecodeRuneInString(f[i:])
		i += size
		switch {
		case verb == '%':
		case verb == 'w':
			return "%w is not supported: errors do not wrap other errors"
		case argNum >= numArgs:
			return fmt.Sprintf("missing argument for %%%c", verb)
		default:
			argNum++
		}
	}
	if !reordered && argNum < numArgs {
		return fmt.Sprintf("%d extra arguments", numArgs-argNum)
	}
	return ""
}
