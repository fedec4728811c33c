/*
Package combiner assembles Hangul syllable blocks from a stream of input
events, one event at a time.

A [Combiner] owns the text already decided for the current word and at most
one syllable under construction. [Combiner.ProcessEvent] consumes an [Event]
and returns a [Result] that tells the host whether the event was absorbed,
whether text must be committed ahead of it, or whether it passes through.
The composing region is read with [Combiner.CombiningStateFeedback].

A Combiner is not safe for concurrent use. The combination table it reads
is immutable and shared by all instances.
*/
package combiner

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the combiner namespace.
func tracer() tracing.Trace {
	return tracing.Select("hancomb.combiner")
}
