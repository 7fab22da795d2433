package htmlfilter

import (
	"io"

	"golang.org/x/net/html"
)

// Writer is a Handler that serializes the events it receives back to
// markup. It is the usual tail of a filtering pipeline. Character data
// and attribute values are entity-escaped, except inside a CDATA
// section where text is written verbatim.
type Writer struct {
	w       io.Writer
	inCDATA bool
}

// NewWriter returns a Writer emitting markup to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// HandleEvent implements Handler.
func (wr *Writer) HandleEvent(ev *Event) error {
	switch ev.Kind {
	case EventStartElement:
		return wr.writeTag(ev, ">")

	case EventEmptyElement:
		return wr.writeTag(ev, " />")

	case EventEndElement:
		return wr.writeString("</", ev.Name, ">")

	case EventCharacters:
		if wr.inCDATA {
			return wr.writeString(ev.Text)
		}
		return wr.writeString(html.EscapeString(ev.Text))

	case EventComment:
		return wr.writeString("<!--", ev.Text, "-->")

	case EventProcessingInstruction:
		if ev.Text == "" {
			return wr.writeString("<?", ev.Name, "?>")
		}
		return wr.writeString("<?", ev.Name, " ", ev.Text, "?>")

	case EventStartCDATA:
		wr.inCDATA = true
		return wr.writeString("<![CDATA[")

	case EventEndCDATA:
		wr.inCDATA = false
		return wr.writeString("]]>")

	default:
		// Document, entity, and prefix-mapping boundaries have no
		// textual form of their own.
		return nil
	}
}

func (wr *Writer) writeTag(ev *Event, closer string) error {
	if err := wr.writeString("<", ev.Name); err != nil {
		return err
	}
	for _, a := range ev.Attr {
		if err := wr.writeString(" ", a.Name, `="`, html.EscapeString(a.Value), `"`); err != nil {
			return err
		}
	}
	return wr.writeString(closer)
}

func (wr *Writer) writeString(parts ...string) error {
	for _, s := range parts {
		if _, err := io.WriteString(wr.w, s); err != nil {
			return err
		}
	}
	return nil
}
