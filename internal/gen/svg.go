package gen

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidSVG marks an SVG document that is empty or failed to parse.
// Callers skip the offending file and continue; it never aborts a run.
var ErrInvalidSVG = errors.New("invalid svg")

// NormalizeSVG rewrites an SVG document for icon-font-like usage:
//
//   - the root <svg> element gains fill="currentColor", width="1em",
//     height="1em" (existing values are overwritten in place)
//   - the xmlns attribute and all namespace declarations are removed
//   - namespaced attributes are rewritten to their local equivalent
//     (xlink:href -> href) on every element, or dropped when the local
//     name is already taken
//
// Everything else (paths, groups, nesting, order) passes through unchanged.
// The transform is idempotent: normalizing its own output is a no-op.
func NormalizeSVG(doc string) (string, error) {
	if strings.TrimSpace(doc) == "" {
		return "", fmt.Errorf("%w: empty document", ErrInvalidSVG)
	}

	tokens, err := decodeTokens(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSVG, err)
	}

	var b strings.Builder
	rootSeen := false
	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i].(type) {
		case xml.StartElement:
			attrs := rewriteAttrs(tok.Attr)
			if !rootSeen && tok.Name.Local == "svg" {
				attrs = applyIconAttrs(attrs)
				rootSeen = true
			}
			selfClose := false
			if next, ok := tokens[i+1].(xml.EndElement); ok && next.Name == tok.Name {
				selfClose = true
				i++
			}
			writeStartElement(&b, tok.Name.Local, attrs, selfClose)
		case xml.EndElement:
			b.WriteString("</")
			b.WriteString(tok.Name.Local)
			b.WriteString(">")
		case xml.CharData:
			b.WriteString(textEscaper.Replace(string(tok)))
		case xml.Comment:
			b.WriteString("<!--")
			b.Write(tok)
			b.WriteString("-->")
		case xml.ProcInst:
			b.WriteString("<?")
			b.WriteString(tok.Target)
			b.WriteString(" ")
			b.Write(tok.Inst)
			b.WriteString("?>")
		case xml.Directive:
			b.WriteString("<!")
			b.Write(tok)
			b.WriteString(">")
		}
	}

	if !rootSeen {
		return "", fmt.Errorf("%w: no <svg> root element", ErrInvalidSVG)
	}
	return b.String(), nil
}

// decodeTokens reads the whole document up front so the emitter can look
// ahead one token to collapse empty elements into self-closing form.
func decodeTokens(doc string) ([]xml.Token, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	var tokens []xml.Token
	seenElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if _, ok := tok.(xml.StartElement); ok {
			seenElement = true
		}
		tokens = append(tokens, xml.CopyToken(tok))
	}
	if !seenElement {
		return nil, errors.New("no elements")
	}
	return tokens, nil
}

// rewriteAttrs strips namespace declarations and translates namespaced
// attributes to their bare local name, dropping any whose local name is
// already present on the element.
func rewriteAttrs(attrs []xml.Attr) []xml.Attr {
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "" && a.Name.Local != "xmlns" {
			seen[a.Name.Local] = true
		}
	}

	out := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		switch {
		case a.Name.Local == "xmlns", a.Name.Space == "xmlns":
			// namespace declarations are dropped entirely
		case a.Name.Space != "":
			if seen[a.Name.Local] {
				continue
			}
			seen[a.Name.Local] = true
			out = append(out, xml.Attr{Name: xml.Name{Local: a.Name.Local}, Value: a.Value})
		default:
			out = append(out, xml.Attr{Name: xml.Name{Local: a.Name.Local}, Value: a.Value})
		}
	}
	return out
}

// applyIconAttrs forces the icon-font attributes on the root element,
// overwriting in place so repeated normalization is stable.
func applyIconAttrs(attrs []xml.Attr) []xml.Attr {
	forced := []xml.Attr{
		{Name: xml.Name{Local: "fill"}, Value: "currentColor"},
		{Name: xml.Name{Local: "width"}, Value: "1em"},
		{Name: xml.Name{Local: "height"}, Value: "1em"},
	}

	out := make([]xml.Attr, len(attrs))
	copy(out, attrs)
	for _, f := range forced {
		replaced := false
		for i := range out {
			if out[i].Name.Local == f.Name.Local {
				out[i].Value = f.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, f)
		}
	}
	return out
}

// Minimal escaping keeps path data readable; the decoder normalizes
// whatever else needs it on the next pass, so output stays stable.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

func writeStartElement(b *strings.Builder, name string, attrs []xml.Attr, selfClose bool) {
	b.WriteString("<")
	b.WriteString(name)
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(a.Name.Local)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteString(`"`)
	}
	if selfClose {
		b.WriteString("/>")
	} else {
		b.WriteString(">")
	}
}
