package errno

import "github.com/rs/zerolog"

var (
	_ zerolog.LogObjectMarshaler = Frame{}
	_ zerolog.LogArrayMarshaler  = (*Trace)(nil)
	_ zerolog.LogObjectMarshaler = (*Value)(nil)
)

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (f Frame) MarshalZerologObject(e *zerolog.Event) {
	e.Str("file", f.File).
		Str("function", f.Function).
		Uint32("line", f.Line)
}

// MarshalZerologArray implements zerolog.LogArrayMarshaler.
func (t *Trace) MarshalZerologArray(a *zerolog.Array) {
	for _, f := range t.Frames() {
		a.Object(f)
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler, so that
// an error logs as structured fields rather than a dump:
//
//	log.Error().Object("error", err).Msg("open failed")
func (v *Value) MarshalZerologObject(e *zerolog.Event) {
	e.Uint16("code", uint16(v.code)).
		Str("name", v.code.Name()).
		Str("desc", v.code.Description())
	if v.HasMessage() {
		e.Str("msg", v.Message())
	}
	e.Array("backtrace", &v.trace)
}
