package localerr

import (
	"context"
	"sync"

	"github.com/secureworks/errno"
	"golang.org/x/sync/errgroup"
)

// Group runs functions in their own goroutines, each with a fresh Slot
// of its own, and waits for them. It is the goroutine counterpart of
// thread-local errno storage: no two functions ever see the same Slot.
//
// A Group returned by NewGroup cancels its context as soon as one
// function fails. The zero Group is ready to use and cancels nothing.
type Group struct {
	once sync.Once
	eg   *errgroup.Group
	ctx  context.Context
}

// NewGroup returns a Group and the context derived from ctx that is
// cancelled when a function fails or Wait returns.
func NewGroup(ctx context.Context) (*Group, context.Context) {
	eg, ctx := errgroup.WithContext(ctx)
	g := &Group{eg: eg, ctx: ctx}
	g.once.Do(func() {})
	return g, ctx
}

func (g *Group) init() {
	g.once.Do(func() {
		g.eg = new(errgroup.Group)
		g.ctx = context.Background()
	})
}

// SetLimit limits the number of functions running at once, see
// errgroup.Group.SetLimit.
func (g *Group) SetLimit(n int) {
	g.init()
	g.eg.SetLimit(n)
}

// Go runs fn in a new goroutine. fn receives the group context carrying
// its Slot, and the Slot itself; the handle it returns, usually
// s.Current(), reports its failure.
func (g *Group) Go(fn func(ctx context.Context, s *Slot) *errno.Value) {
	g.init()
	ctx := g.ctx
	g.eg.Go(func() error {
		s := new(Slot)
		return errno.AsError(fn(NewContext(ctx, s), s))
	})
}

// Wait blocks until every function returned, and returns the first
// failure, or nil.
func (g *Group) Wait() *errno.Value {
	g.init()
	return errno.From(g.eg.Wait())
}
