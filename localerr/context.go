package localerr

import "context"

type slotKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Slot) context.Context {
	return context.WithValue(ctx, slotKey{}, s)
}

// FromContext returns the Slot carried by ctx, or nil.
func FromContext(ctx context.Context) *Slot {
	s, _ := ctx.Value(slotKey{}).(*Slot)
	return s
}
