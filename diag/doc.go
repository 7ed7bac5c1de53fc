// Package diag carries non-fatal conditions raised while building pattern
// stores, parsing regex options and installing matcher limits.
//
// A [Diagnostic] never stops processing. Producers hand each one to a
// [Handler]; the default handler, [Log], writes it through glog. Tests and
// callers that want to inspect diagnostics use a [Recorder].
package diag
