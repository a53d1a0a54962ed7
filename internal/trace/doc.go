// Package trace records what the adze front end is doing while it runs.
//
// A tracer receives span and point events from the driver. Spans cover the
// whole run, each pass over a file (load, lex, parse) and import resolution.
//
// Enable tracing from the command line:
//
//	adze parse --trace=- --trace-level=detail main.adze
//
// Tracers:
//
//   - Nop: used when tracing is off
//   - StreamTracer: writes every event as it happens
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Tracers travel through the pipeline on the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
