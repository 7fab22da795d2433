package htmlfilter

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Tokenize reads markup from r using the golang.org/x/net/html
// tokenizer and feeds the resulting event stream to h in document
// order: one start-document event, one event per token, then one
// end-document event. Each event carries fresh metadata holding a
// *Location (under MetaLocation) for the position at which its markup
// began.
//
// The x/net tokenizer decodes entities inline and has no notion of
// CDATA sections, processing instructions, or prefix mappings, so
// those event kinds never originate here; doctype tokens are skipped.
// Tag balancing is likewise out of scope — end tags are reported as
// they appear in the input.
func Tokenize(r io.Reader, h Handler) error {
	z := html.NewTokenizer(r)
	line, col := 1, 1

	newMeta := func() *Metadata {
		m := NewMetadata()
		m.Put(MetaLocation, &Location{Line: line, Column: col})
		return m
	}

	if err := h.HandleEvent(&Event{Kind: EventStartDocument, Meta: newMeta()}); err != nil {
		return err
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("tokenize: %w", err)
			}
			return h.HandleEvent(&Event{Kind: EventEndDocument, Meta: newMeta()})
		}

		// z.Token below may invalidate the raw buffer, so measure the
		// position advance first. The event itself is stamped with the
		// position at which the token began.
		nextLine, nextCol := advancePosition(z.Raw(), line, col)

		t := z.Token()
		var ev *Event
		switch tt {
		case html.StartTagToken:
			ev = &Event{Kind: EventStartElement, Name: t.Data, Attr: convertAttributes(t.Attr), Meta: newMeta()}
		case html.SelfClosingTagToken:
			ev = &Event{Kind: EventEmptyElement, Name: t.Data, Attr: convertAttributes(t.Attr), Meta: newMeta()}
		case html.EndTagToken:
			ev = &Event{Kind: EventEndElement, Name: t.Data, Meta: newMeta()}
		case html.TextToken:
			ev = &Event{Kind: EventCharacters, Text: t.Data, Meta: newMeta()}
		case html.CommentToken:
			ev = &Event{Kind: EventComment, Text: t.Data, Meta: newMeta()}
		case html.DoctypeToken:
			// skip
		}

		line, col = nextLine, nextCol
		if ev == nil {
			continue
		}
		if err := h.HandleEvent(ev); err != nil {
			return err
		}
	}
}

func convertAttributes(attrs []html.Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = Attribute{Name: a.Key, Value: a.Val}
	}
	return out
}

func advancePosition(raw []byte, line, col int) (int, int) {
	for _, b := range raw {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
