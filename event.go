package htmlfilter

// EventKind identifies the variant of an Event.
type EventKind int

// The full set of event variants produced by an upstream tokenizer or
// tag balancer. Adapters over simpler tokenizers may emit only a subset.
const (
	EventStartDocument EventKind = iota
	EventEndDocument
	EventStartElement
	EventEmptyElement
	EventEndElement
	EventCharacters
	EventComment
	EventProcessingInstruction
	EventStartEntity
	EventEndEntity
	EventStartCDATA
	EventEndCDATA
	EventStartPrefixMapping
	EventEndPrefixMapping
)

var eventKindNames = [...]string{
	"start-document",
	"end-document",
	"start-element",
	"empty-element",
	"end-element",
	"characters",
	"comment",
	"processing-instruction",
	"start-entity",
	"end-entity",
	"start-cdata",
	"end-cdata",
	"start-prefix-mapping",
	"end-prefix-mapping",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Attribute is a single name/value pair on an element tag.
type Attribute struct {
	Name  string
	Value string
}

// Event is one item in a document event stream. Events are created by
// the upstream source, pass through any filters exactly once, and are
// never retained after the HandleEvent call returns.
type Event struct {
	Kind EventKind

	// Name holds the element name for element events, the entity name
	// for entity events, the target for processing instructions, and
	// the prefix for prefix-mapping events.
	Name string

	// Attr holds the attributes of a start or empty element. Filters
	// may shorten the list in place before forwarding.
	Attr []Attribute

	// Text holds character data, comment text, processing-instruction
	// data, the encoding for document-start events, and the namespace
	// URI for prefix-mapping events.
	Text string

	// Meta travels alongside the event but is not part of its payload.
	// Ownership transfers downstream when the event is forwarded.
	Meta *Metadata
}

// Handler consumes a stream of events in document order.
type Handler interface {
	HandleEvent(ev *Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ev *Event) error

// HandleEvent calls f(ev).
func (f HandlerFunc) HandleEvent(ev *Event) error { return f(ev) }
