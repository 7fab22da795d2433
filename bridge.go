package htmlfilter

// MetaNamespaceContext is the metadata key under which revision-2
// bridges attach the *NamespaceContext to document-start events.
const MetaNamespaceContext = "namespace-context"

// NamespaceContext tracks in-scope prefix declarations on event API
// revisions that carry one.
type NamespaceContext struct {
	prefixes map[string]string
}

// NewNamespaceContext returns an empty context.
func NewNamespaceContext() *NamespaceContext {
	return &NamespaceContext{prefixes: make(map[string]string)}
}

// DeclarePrefix binds prefix to uri, replacing any earlier binding.
func (c *NamespaceContext) DeclarePrefix(prefix, uri string) {
	c.prefixes[prefix] = uri
}

// URI returns the namespace bound to prefix and whether a binding
// exists.
func (c *NamespaceContext) URI(prefix string) (string, bool) {
	uri, ok := c.prefixes[prefix]
	return uri, ok
}

// Bridge absorbs the differences between supported revisions of the
// event API: revision 2 carries a namespace context on document start
// and names the metadata reset RemoveAllItems, revision 1 has neither.
// Exactly one Bridge is selected while the pipeline is wired and
// injected into whatever builds it; nothing consults a bridge per
// event, and there is no process-wide instance.
type Bridge interface {
	// Version reports the API revision this bridge targets.
	Version() string

	// StartDocument delivers a document-start event to h, attaching
	// the namespace context only on revisions that carry one.
	StartDocument(h Handler, encoding string, ns *NamespaceContext, meta *Metadata) error

	// DeclarePrefix records a prefix binding, on revisions that track
	// them.
	DeclarePrefix(ns *NamespaceContext, prefix, uri string)

	// ResetMetadata empties m using the reset operation this revision
	// defines.
	ResetMetadata(m *Metadata)
}

// SelectBridge returns the bridge for the newest supported revision.
// Candidates are ordered newest first; unlike the reflective probing
// the pattern descends from, every revision here is compiled in, so
// the first candidate always wins.
func SelectBridge() Bridge {
	candidates := []Bridge{BridgeV2{}, BridgeV1{}}
	return candidates[0]
}

// BridgeV2 targets revision 2 of the event API.
type BridgeV2 struct{}

// Version implements Bridge.
func (BridgeV2) Version() string { return "2" }

// StartDocument implements Bridge, attaching ns to the event metadata
// when present.
func (BridgeV2) StartDocument(h Handler, encoding string, ns *NamespaceContext, meta *Metadata) error {
	if meta == nil {
		meta = NewMetadata()
	}
	if ns != nil {
		meta.Put(MetaNamespaceContext, ns)
	}
	return h.HandleEvent(&Event{Kind: EventStartDocument, Text: encoding, Meta: meta})
}

// DeclarePrefix implements Bridge.
func (BridgeV2) DeclarePrefix(ns *NamespaceContext, prefix, uri string) {
	if ns != nil {
		ns.DeclarePrefix(prefix, uri)
	}
}

// ResetMetadata implements Bridge.
func (BridgeV2) ResetMetadata(m *Metadata) { m.RemoveAllItems() }

// BridgeV1 targets revision 1 of the event API, which has no namespace
// context and spells the metadata reset Clear.
type BridgeV1 struct{}

// Version implements Bridge.
func (BridgeV1) Version() string { return "1" }

// StartDocument implements Bridge; the namespace context is ignored on
// this revision.
func (BridgeV1) StartDocument(h Handler, encoding string, _ *NamespaceContext, meta *Metadata) error {
	if meta == nil {
		meta = NewMetadata()
	}
	return h.HandleEvent(&Event{Kind: EventStartDocument, Text: encoding, Meta: meta})
}

// DeclarePrefix implements Bridge as a no-op; revision 1 does not
// track prefix bindings.
func (BridgeV1) DeclarePrefix(*NamespaceContext, string, string) {}

// ResetMetadata implements Bridge.
func (BridgeV1) ResetMetadata(m *Metadata) { m.Clear() }
