// Package htmlfilter provides a streaming document-event filter for
// Go applications.
//
// # Overview
//
// htmlfilter consumes a stream of document events (element open,
// element close, character content, comments, and friends) and
// selectively suppresses parts of the tree before forwarding the rest
// to a downstream [Handler]. It is a single forward pass with no
// lookahead and O(depth) memory: events are never buffered or
// reordered.
//
// # Filtering
//
// A [Remover] is configured per element:
//   - [Remover.AcceptElement] forwards the element's tags, optionally
//     stripping attributes not on an allow list
//   - [Remover.RemoveElement] drops the element's tags and its entire
//     subtree, content included
//   - elements registered as neither have just their tags dropped;
//     their content is still evaluated on its own merits
//
// Element and attribute names are matched case-insensitively. Rules
// are additive and idempotent; re-registering a name overwrites its
// prior rule.
//
// # Pipeline
//
// [Tokenize] adapts the standard golang.org/x/net/html tokenizer into
// an event source, [Writer] serializes forwarded events back to
// markup, and [FilterString] wires the three together:
//
//	rules, _ := htmlfilter.ParseRules(rulesYAML)
//	clean, err := htmlfilter.FilterString(input, rules)
//
// Each event carries a [Metadata] side channel for annotations such as
// source locations; metadata travels with the event and transfers to
// the downstream handler when the event is forwarded.
//
// # Malformed input
//
// htmlfilter does not balance tags or validate well-formedness. It
// degrades gracefully instead: an end tag with no matching start tag
// is clamped rather than underflowing the depth counter, surfaced only
// through an optional log line ([Remover.SetLogger]).
//
// # Thread safety
//
// A Remover holds per-stream state and must not be shared by streams
// running concurrently; use one instance per stream. Configuration
// calls are not safe against concurrent streaming.
package htmlfilter
