package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// "한국" encoded as EUC-KR
var euckrBytes = []byte{0xC7, 0xD1, 0xB1, 0xB9}

func TestDecodeDocumentUTF8Passthrough(t *testing.T) {
	markup := "<html><body><p>한국</p></body></html>"

	decoded, err := DecodeDocument([]byte(markup), "auto")
	require.NoError(t, err)
	require.Equal(t, markup, decoded)

	decoded, err = DecodeDocument([]byte(markup), "")
	require.NoError(t, err)
	require.Equal(t, markup, decoded)
}

func TestDecodeDocumentStripsBOM(t *testing.T) {
	markup := "\xEF\xBB\xBF<p>한국</p>"

	decoded, err := DecodeDocument([]byte(markup), "auto")
	require.NoError(t, err)
	require.Equal(t, "<p>한국</p>", decoded)
}

func TestDecodeDocumentExplicitEUCKR(t *testing.T) {
	for _, name := range []string{"euc-kr", "EUC-KR", "euckr", "cp949"} {
		decoded, err := DecodeDocument(euckrBytes, name)
		require.NoError(t, err, "encoding %q", name)
		require.Equal(t, "한국", decoded, "encoding %q", name)
	}
}

func TestDecodeDocumentAutoFallsBackToEUCKR(t *testing.T) {
	// not valid utf-8 and carries no meta declaration
	raw := append([]byte("<p>"), euckrBytes...)
	raw = append(raw, []byte("</p>")...)

	decoded, err := DecodeDocument(raw, "auto")
	require.NoError(t, err)
	require.Equal(t, "<p>한국</p>", decoded)
}

func TestDecodeDocumentAutoHonorsMetaCharset(t *testing.T) {
	// "テスト" encoded as Shift_JIS, the page declares its own charset
	// so the fallback must stay out of the way
	raw := []byte(`<meta charset="shift_jis"><p>`)
	raw = append(raw, 0x83, 0x65, 0x83, 0x58, 0x83, 0x67)
	raw = append(raw, []byte("</p>")...)

	decoded, err := DecodeDocument(raw, "auto")
	require.NoError(t, err)
	require.Contains(t, decoded, "テスト")
}

func TestDecodeDocumentUnknownEncoding(t *testing.T) {
	_, err := DecodeDocument([]byte("x"), "no-such-encoding")
	require.Error(t, err)
}

func TestCellText(t *testing.T) {
	testCases := []struct {
		markup   string
		expected string
	}{
		{markup: "<td> 10 </td>", expected: "10"},
		{markup: "<td><span>신소재</span><br/><span>공학부</span></td>", expected: "신소재공학부"},
		{markup: "<td><span> A </span> <span> B </span></td>", expected: "AB"},
		{markup: "<td>국어,\n      영어</td>", expected: "국어, 영어"},
		{markup: "<td>&nbsp;</td>", expected: ""},
		{markup: "<td></td>", expected: ""},
	}

	for _, test := range testCases {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(
			"<table><tbody><tr>" + test.markup + "</tr></tbody></table>",
		))
		if err != nil {
			t.Fatal(err)
		}
		cells := doc.Find("td")
		require.Len(t, cells.Nodes, 1, "markup %q", test.markup)
		require.Equal(t, test.expected, CellText(cells.Nodes[0]), "markup %q", test.markup)
	}
}
