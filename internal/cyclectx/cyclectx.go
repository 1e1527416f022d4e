// Package cyclectx implements the cycle-detection context used by both
// codecs when encoding nested containers (§3.3 Invariant S3).
//
// The design notes (§9) call out the source's thread-local set for this
// purpose as a pattern to replace: an explicit context threaded through
// recursive encode calls avoids hidden global state and is trivial to
// test in isolation, at the cost of one extra parameter on the recursive
// encode functions.
package cyclectx

import "github.com/joshuapare/valuecore/cell"

// Context tracks which containers are currently on the encoding stack for
// one top-level Encode call. It is not safe for concurrent use; each
// Encode call constructs its own Context and it never escapes that call.
type Context struct {
	stack map[cell.Container]struct{}
}

// New returns an empty cycle-detection context.
func New() *Context {
	return &Context{stack: make(map[cell.Container]struct{})}
}

// Enter reports whether c is already on the stack (i.e. encoding it now
// would re-enter a container already being encoded). If not, it pushes c
// and returns a function that pops it; the caller must call that function
// (typically via defer) even on an error path, so the stack is always
// cleared by the time the top-level Encode call returns.
func (ctx *Context) Enter(c cell.Container) (alreadyOnStack bool, leave func()) {
	if _, ok := ctx.stack[c]; ok {
		return true, func() {}
	}
	ctx.stack[c] = struct{}{}
	return false, func() { delete(ctx.stack, c) }
}
