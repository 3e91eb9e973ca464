package errno

import (
	"encoding/json"
	"log/slog"
	"strconv"
)

// Report is the flat, encodable form of a Value used by JSON, YAML and
// TOML encoders and by structured loggers.
type Report struct {
	Code        Code    `json:"code" yaml:"code" toml:"code"`
	Name        string  `json:"name" yaml:"name" toml:"name"`
	Description string  `json:"description" yaml:"description" toml:"description"`
	Kind        string  `json:"kind" yaml:"kind" toml:"kind"`
	Message     string  `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
	Frames      []Frame `json:"frames" yaml:"frames" toml:"frames"`
}

var _ interface { // Assert interface implementation.
	json.Marshaler
	slog.LogValuer
} = (*Value)(nil)

// Report returns the encodable form of v. Its frames are a copy.
func (v *Value) Report() Report {
	frames := make([]Frame, v.trace.Len())
	copy(frames, v.trace.Frames())
	return Report{
		Code:        v.code,
		Name:        v.code.Name(),
		Description: v.code.Description(),
		Kind:        v.kind.String(),
		Message:     v.Message(),
		Frames:      frames,
	}
}

// MarshalJSON encodes v as its Report:
//
//	{"code":22,"name":"EINVAL","description":"invalid argument","kind":"int","frames":[{"file":"a.c","function":"bar","line":10}]}
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Report())
}

// LogValue implements slog.LogValuer.
func (v *Value) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.Int("code", int(v.code)),
		slog.String("desc", v.code.Description()))
	if v.HasMessage() {
		attrs = append(attrs, slog.String("msg", v.Message()))
	}
	frames := make([]string, v.trace.Len())
	for i, f := range v.trace.Frames() {
		frames[i] = f.File + ":" + f.Function + ":" + strconv.FormatUint(uint64(f.Line), 10)
	}
	attrs = append(attrs, slog.Any("backtrace", frames))
	return slog.GroupValue(attrs...)
}
