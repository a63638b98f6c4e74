// Package animation provides the contract between themed widgets and the
// animations a theme attaches to them.
//
// Widgets never interpolate anything themselves. They ask the theme for the
// animation bound to a trigger (e.g. "show" or "class-added:active"), receive
// an opaque [Handle], start it, and listen for its completion. Advancing
// animations frame by frame is the business of the host's timeline.
//
// The package includes a reference timeline, [Timeline], which produces
// [Clip] handles and is driven by explicit calls to [Timeline.Advance]. Hosts
// call Advance from their frame clock; tests call it to step time manually.
//
// # Completion
//
// Every handle signals completion exactly once:
//
//	            Run()                 duration elapsed
//	Idle ──────────────► Running ─────────────────────► Done
//	                        │      ForceComplete()        ▲
//	                        ├─────────────────────────────┤
//	                        │      Release() (cancel)     │
//	                        └─────────────────────────────┘
//
// Release on a handle which is already done is a no-op.
package animation

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shelltk.animation'.
func tracer() tracing.Trace {
	return tracing.Select("shelltk.animation")
}
