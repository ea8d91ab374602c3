package stack

import (
	"errors"
	"fmt"
)

// ErrAccessViolation is raised (as a panic) if a cursor is used after a conflicting
// access to its stack has revoked it.
var ErrAccessViolation = errors.New("stack access discipline violated")

// guard does the bookkeeping for the access discipline of a stack:
// readers XOR one writer XOR direct mutation.
//
// Every cursor remembers the epoch it was created in. Starting an access which
// conflicts with live cursors moves the epoch forward, which makes these cursors
// stale. There is no need to track readers individually: they never conflict with
// each other, and everything that conflicts with them revokes all of them at once.
type guard struct {
	epoch  uint64 // cursors of older epochs are revoked
	writer bool   // a mutable cursor owns the current epoch
}

// revoke invalidates every live cursor.
func (g *guard) revoke(reason string) {
	g.epoch++
	g.writer = false
	tracer().Debugf("%s: revoking cursors, new epoch %d", reason, g.epoch)
}

// mutate is called before any direct mutation of the stack.
func (g *guard) mutate() {
	g.epoch++
	g.writer = false
}

// share registers a read-only cursor. Readers may coexist, but not with a writer.
func (g *guard) share() uint64 {
	if g.writer {
		g.revoke("read-only cursor")
	}
	return g.epoch
}

// exclusive registers a mutable cursor, revoking every other cursor.
func (g *guard) exclusive() uint64 {
	g.revoke("mutable cursor")
	g.writer = true
	return g.epoch
}

// release gives back the claim of an exhausted mutable cursor from epoch e.
func (g *guard) release(e uint64) {
	if g.epoch == e {
		g.writer = false
	}
}

// check panics if a cursor from epoch e has been revoked.
func (g *guard) check(e uint64, cursor string) {
	if g.epoch != e {
		panic(fmt.Errorf("%w: %s cursor used after conflicting access (epoch %d, now %d)",
			ErrAccessViolation, cursor, e, g.epoch))
	}
}
