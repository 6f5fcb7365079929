package nfo

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// xmlBuilder writes indented XML without a document declaration,
// collecting the first encoder error instead of returning one per
// call.
type xmlBuilder struct {
	buf *bytes.Buffer
	enc *xml.Encoder
	err error
}

func newXMLBuilder() *xmlBuilder {
	buf := &bytes.Buffer{}
	enc := xml.NewEncoder(buf)
	enc.Indent("", "  ")
	return &xmlBuilder{buf: buf, enc: enc}
}

func (b *xmlBuilder) token(t xml.Token) {
	if b.err != nil {
		return
	}
	b.err = b.enc.EncodeToken(t)
}

func (b *xmlBuilder) start(name string, attrs ...xml.Attr) {
	b.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (b *xmlBuilder) end(name string) {
	b.token(xml.EndElement{Name: xml.Name{Local: name}})
}

// element writes a complete element with character data content.
func (b *xmlBuilder) element(name string, value any, attrs ...xml.Attr) {
	b.start(name, attrs...)
	text := fmt.Sprint(value)
	if text != "" {
		b.token(xml.CharData(text))
	}
	b.end(name)
}

func (b *xmlBuilder) String() (string, error) {
	if b.err == nil {
		b.err = b.enc.Flush()
	}
	if b.err != nil {
		return "", b.err
	}
	return b.buf.String(), nil
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
