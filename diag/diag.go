package diag

import (
	"fmt"
	"sync"

	"github.com/golang/glog"
)

// Kind identifies the condition a [Diagnostic] reports.
type Kind uint8

const (
	// EmptyPattern reports a non-missing pattern of zero length.
	EmptyPattern Kind = iota + 1

	// UnknownOption reports an unrecognized regex option name.
	UnknownOption

	// LimitIgnored reports a stack or time limit the engine refused to
	// install. The matcher is still used, without that limit.
	LimitIgnored
)

func (k Kind) String() string {
	switch k {
	case EmptyPattern:
		return "empty-pattern"
	case UnknownOption:
		return "unknown-option"
	case LimitIgnored:
		return "limit-ignored"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Diagnostic is a single non-fatal condition.
type Diagnostic struct {
	Kind Kind

	// Index is the pattern position, or -1 when not tied to one.
	Index int

	// Key is the option name for UnknownOption and the limit name
	// ("stack_limit" or "time_limit") for LimitIgnored.
	Key string

	// Err is the engine error behind a LimitIgnored diagnostic.
	Err error
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case EmptyPattern:
		return fmt.Sprintf("empty search patterns are not supported (pattern %d)", d.Index)
	case UnknownOption:
		return fmt.Sprintf("incorrect regex option %q; ignoring", d.Key)
	case LimitIgnored:
		return fmt.Sprintf("could not set %s for pattern %d; ignoring: %v", d.Key, d.Index, d.Err)
	default:
		return d.Kind.String()
	}
}

// Handler receives diagnostics. It must not retain the producer's state.
type Handler func(Diagnostic)

// Log writes d through glog. Ignored limits are expected under best-effort
// policy and only show up at verbosity 1.
func Log(d Diagnostic) {
	if d.Kind == LimitIgnored {
		glog.V(1).InfoDepth(1, d.String())
		return
	}

	glog.WarningDepth(1, d.String())
}

// Discard drops every diagnostic.
func Discard(Diagnostic) {}

// OrLog returns h, or [Log] when h is nil.
func OrLog(h Handler) Handler {
	if h == nil {
		return Log
	}

	return h
}

// Recorder collects diagnostics. It is safe for concurrent use so one
// recorder can be shared by several workers.
type Recorder struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Handle appends d. Pass r.Handle wherever a [Handler] is expected.
func (r *Recorder) Handle(d Diagnostic) {
	r.mu.Lock()
	r.diags = append(r.diags, d)
	r.mu.Unlock()
}

// Diagnostics returns a copy of everything recorded so far.
func (r *Recorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Count returns how many recorded diagnostics are of kind k.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, d := range r.diags {
		if d.Kind == k {
			n++
		}
	}
	return n
}
