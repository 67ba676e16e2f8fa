package htmlutil

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"adiga-extract/lib/textutil"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeDocument converts a raw portal response to UTF-8. With "auto"
// (or empty) the byte sniffers run first, a BOM or meta-declared
// charset wins, and EUC-KR is the fallback when nothing is found
// because legacy Korean portals serve it without declaring a charset.
// Any other name must resolve to a known IANA encoding.
func DecodeDocument(raw []byte, encodingName string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encodingName)) {
	case "", "auto":
		if utf8.Valid(raw) {
			return string(bytes.TrimPrefix(raw, utf8BOM)), nil
		}
		// the sniffer reports its windows-1252 default when it found
		// nothing, a meta-declared charset comes back by name with
		// certain still false
		enc, name, certain := charset.DetermineEncoding(raw, "")
		if !certain && name == "windows-1252" {
			enc = korean.EUCKR
		}
		return decode(enc, raw)
	case "euc-kr", "euckr", "cp949":
		return decode(korean.EUCKR, raw)
	default:
		enc, _ := charset.Lookup(encodingName)
		if enc == nil {
			return "", fmt.Errorf("unknown encoding %q", encodingName)
		}
		return decode(enc, raw)
	}
}

func decode(enc encoding.Encoding, raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decode document: %w", err)
	}
	return string(bytes.TrimPrefix(decoded, utf8BOM)), nil
}

// CellText joins the text under node the way the table extractor
// accumulates cell content: every text fragment is trimmed, fragments
// concatenate without separators and internal whitespace runs collapse
// to a single space.
func CellText(node *html.Node) string {
	var buffer strings.Builder
	cellTextRecursive(node, &buffer)
	return textutil.CollapseSpace(buffer.String())
}

func cellTextRecursive(node *html.Node, buffer *strings.Builder) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(strings.TrimSpace(node.Data))
		return
	}
	child := node.FirstChild
	for child != nil {
		cellTextRecursive(child, buffer)
		child = child.NextSibling
	}
}
