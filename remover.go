package htmlfilter

import (
	"log/slog"
	"math"
	"strings"
)

// noRemoval is the removalDepth sentinel meaning no subtree is being
// suppressed. Every forward gate is then the single comparison
// depth <= removalDepth.
const noRemoval = math.MaxInt

// attrRule records which attributes survive on an accepted element.
// keepAll distinguishes "no restriction" from an empty allow list,
// which strips every attribute.
type attrRule struct {
	keepAll bool
	allowed map[string]bool
}

// IgnoredTagListener is notified of element tags a Remover drops,
// whether stripped individually or suppressed inside a removed
// subtree. It observes only; it cannot affect filtering.
type IgnoredTagListener interface {
	IgnoredStartElement(name string, attrs []Attribute, meta *Metadata)
	IgnoredEndElement(name string, meta *Metadata)
}

// Remover filters a document event stream, forwarding a subsequence of
// it to the next Handler. Per element it can:
//
//   - pass the tags through, optionally stripping attributes not on an
//     allow list (AcceptElement);
//   - drop the entire subtree, tags and content included
//     (RemoveElement);
//   - or, for elements registered as neither, drop just the tags while
//     the element's content is still evaluated on its own merits.
//
// A common use is to let only rich-text and linking markup through:
//
//	r := htmlfilter.NewRemover(sink)
//	r.AcceptElement("b", nil)
//	r.AcceptElement("i", nil)
//	r.AcceptElement("a", []string{"href"})
//	r.RemoveElement("script")
//
// Note that the output need not be a balanced tree: stripping an
// element's tags while keeping its children is exactly the point.
//
// A Remover processes one stream at a time and is not safe for
// concurrent use; run one instance per stream.
type Remover struct {
	next     Handler
	logger   *slog.Logger
	listener IgnoredTagListener

	accepted map[string]attrRule
	removed  map[string]bool

	// Per-stream state, reset by StartStream.
	depth        int
	removalDepth int
}

// NewRemover returns a Remover forwarding to next, with no rules
// registered. With no rules every tag is stripped and only character
// content survives.
func NewRemover(next Handler) *Remover {
	return &Remover{
		next:         next,
		accepted:     make(map[string]attrRule),
		removed:      make(map[string]bool),
		removalDepth: noRemoval,
	}
}

// SetLogger sets the logger used for caller-protocol diagnostics such
// as unbalanced end tags. A nil logger keeps the Remover silent.
func (r *Remover) SetLogger(logger *slog.Logger) { r.logger = logger }

// SetIgnoredTagListener registers a listener for dropped tags, or
// removes it when l is nil.
func (r *Remover) SetIgnoredTagListener(l IgnoredTagListener) { r.listener = l }

// AcceptElement registers name (case-folded) as accepted. If attrs is
// nil every attribute of the element is retained; otherwise only the
// named attributes are, matched case-insensitively, and an empty list
// strips them all. Re-registering a name overwrites its prior rule.
func (r *Remover) AcceptElement(name string, attrs []string) {
	rule := attrRule{keepAll: attrs == nil}
	if attrs != nil {
		rule.allowed = make(map[string]bool, len(attrs))
		for _, a := range attrs {
			rule.allowed[strings.ToLower(a)] = true
		}
	}
	r.accepted[strings.ToLower(name)] = rule
}

// RemoveElement registers name (case-folded) for complete removal:
// when the element is encountered its start and end tags and all
// content in between are dropped from the stream.
func (r *Remover) RemoveElement(name string) {
	r.removed[strings.ToLower(name)] = true
}

// StartStream resets per-stream state. It must be called before events
// are fed, and again to reuse the Remover on a new stream. Feeding a
// start-document event does this implicitly.
func (r *Remover) StartStream() {
	r.depth = 0
	r.removalDepth = noRemoval
}

// HandleEvent is the single processing entry point. It updates depth
// and suppression state and forwards ev to the next Handler unless the
// rules drop it. The event is never retained after the call returns.
func (r *Remover) HandleEvent(ev *Event) error {
	switch ev.Kind {
	case EventStartDocument:
		r.StartStream()
		return r.next.HandleEvent(ev)

	case EventStartElement:
		forward := false
		if r.depth <= r.removalDepth {
			var removed bool
			forward, removed = r.classifyOpenTag(ev)
			if removed {
				// Suppress everything until depth returns here.
				r.removalDepth = r.depth
			}
		}
		r.depth++
		if !forward {
			if r.listener != nil {
				r.listener.IgnoredStartElement(ev.Name, ev.Attr, ev.Meta)
			}
			return nil
		}
		return r.next.HandleEvent(ev)

	case EventEmptyElement:
		// A self-closing element has no content, so a removed one is
		// simply dropped and never opens a suppression window.
		forward := false
		if r.depth <= r.removalDepth {
			forward, _ = r.classifyOpenTag(ev)
		}
		if !forward {
			if r.listener != nil {
				r.listener.IgnoredStartElement(ev.Name, ev.Attr, ev.Meta)
			}
			return nil
		}
		return r.next.HandleEvent(ev)

	case EventEndElement:
		// Decide at pre-decrement depth so the close is visible exactly
		// when its matching open was.
		forward := r.depth <= r.removalDepth && r.elementAccepted(ev.Name)
		r.depth--
		if r.depth < 0 {
			if r.logger != nil {
				r.logger.Warn("end tag without matching start tag, clamping depth",
					"element", ev.Name)
			}
			r.depth = 0
		}
		if r.depth == r.removalDepth {
			r.removalDepth = noRemoval
		}
		if !forward {
			if r.listener != nil {
				r.listener.IgnoredEndElement(ev.Name, ev.Meta)
			}
			return nil
		}
		return r.next.HandleEvent(ev)

	default:
		// Characters, comments, processing instructions, entity, CDATA
		// and prefix-mapping boundaries, end-document: forwarded
		// unchanged unless inside a removed subtree.
		if r.depth <= r.removalDepth {
			return r.next.HandleEvent(ev)
		}
		return nil
	}
}

// classifyOpenTag decides what happens to a start or empty tag that is
// not already suppressed: forward reports whether the tag passes
// through (with disallowed attributes stripped in place), removed
// whether the tag starts a removed subtree.
func (r *Remover) classifyOpenTag(ev *Event) (forward, removed bool) {
	name := strings.ToLower(ev.Name)
	if rule, ok := r.accepted[name]; ok {
		if !rule.keepAll {
			ev.Attr = filterAttributes(ev.Attr, rule.allowed)
		}
		return true, false
	}
	return false, r.removed[name]
}

func (r *Remover) elementAccepted(name string) bool {
	_, ok := r.accepted[strings.ToLower(name)]
	return ok
}

// filterAttributes keeps the attributes whose case-folded names appear
// in allowed, preserving order. It filters into a fresh prefix of the
// slice rather than deleting by index.
func filterAttributes(attrs []Attribute, allowed map[string]bool) []Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		if allowed[strings.ToLower(a.Name)] {
			out = append(out, a)
		}
	}
	return out
}
