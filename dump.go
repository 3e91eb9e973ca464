package errno

import "strconv"

// ErrNoBuffer is returned by Dump when the report does not fit into the
// buffer. The content written so far is incomplete.
const ErrNoBuffer = ENOBUFS

const (
	dumpHeader    = "====== ERROR DUMP ======\n"
	dumpCode      = "Error code: "
	dumpDesc      = "Error desc: "
	dumpSeparator = "------------------------\n"
	dumpMessage   = " Error msg: "
	dumpBacktrace = " Backtrace:\n"
	dumpFrame     = "   ["
)

// Dump writes the human-readable report of v into buf:
//
//	====== ERROR DUMP ======
//	Error code: 22
//	Error desc: invalid argument
//	------------------------
//	 Error msg: Something went wrong in bar
//	------------------------
//	 Backtrace:
//	   [00] a.c:bar:10
//	   [01] a.c:foo:20
//
// The message block and its separator are only present when v carries
// a message. The format is stable: tools parse it (see ParseDump).
//
// Dump never writes past len(buf). When the report does not fit it
// stops, and returns the number of bytes written with ErrNoBuffer; the
// partial report must not be used. Dump does not allocate. A nil
// handle has nothing to report: Dump writes nothing.
func (v *Value) Dump(buf []byte) (int, error) {
	if v == nil {
		return 0, nil
	}
	w := dumpWriter{buf: buf}
	v.render(&w)
	if w.full {
		return w.n, ErrNoBuffer
	}
	return w.n, nil
}

// DumpLen returns the size of the report Dump writes for v.
func (v *Value) DumpLen() int {
	if v == nil {
		return 0
	}
	w := dumpWriter{count: true}
	v.render(&w)
	return w.n
}

// AppendDump appends the report of v to dst, growing it as needed.
func (v *Value) AppendDump(dst []byte) []byte {
	if v == nil {
		return dst
	}
	n := v.DumpLen()
	if cap(dst)-len(dst) < n {
		grown := make([]byte, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}
	written, _ := v.Dump(dst[len(dst) : len(dst)+n])
	return dst[:len(dst)+written]
}

func (v *Value) render(w *dumpWriter) {
	w.str(dumpHeader)
	w.str(dumpCode)
	w.num(uint64(v.code), 0)
	w.str("\n")
	w.str(dumpDesc)
	w.str(v.code.Description())
	w.str("\n")

	switch v.kind {
	case KindString:
		w.str(dumpSeparator)
		w.str(dumpMessage)
		w.str(v.msg)
		w.str("\n")
	case KindFormatted:
		w.str(dumpSeparator)
		w.str(dumpMessage)
		w.bytes(v.message())
		w.str("\n")
	}

	w.str(dumpSeparator)
	w.str(dumpBacktrace)
	for i, f := range v.trace.Frames() {
		w.str(dumpFrame)
		w.num(uint64(i), 2)
		w.str("] ")
		w.str(f.File)
		w.str(":")
		w.str(f.Function)
		w.str(":")
		w.num(uint64(f.Line), 0)
		w.str("\n")
	}
}

// dumpWriter fills a bounded buffer, or only counts bytes when count is
// set. Once a write does not fit it copies what it can, sets full and
// ignores everything after.
type dumpWriter struct {
	buf   []byte
	n     int
	full  bool
	count bool
}

func (w *dumpWriter) str(s string) {
	if w.count {
		w.n += len(s)
		return
	}
	if w.full {
		return
	}
	n := copy(w.buf[w.n:], s)
	w.n += n
	if n < len(s) {
		w.full = true
	}
}

func (w *dumpWriter) bytes(b []byte) {
	if w.count {
		w.n += len(b)
		return
	}
	if w.full {
		return
	}
	n := copy(w.buf[w.n:], b)
	w.n += n
	if n < len(b) {
		w.full = true
	}
}

// num writes u in decimal, left padded with zeros to width digits.
func (w *dumpWriter) num(u uint64, width int) {
	var tmp [24]byte
	b := strconv.AppendUint(tmp[:0], u, 10)
	for pad := width - len(b); pad > 0; pad-- {
		w.str("0")
	}
	w.bytes(b)
}
