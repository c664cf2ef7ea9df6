package xmltree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *Element {
	root := New("rss").SetAttr("version", "2.0").SetAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	ch := root.Add("channel")
	ch.AddText("title", "Fish & Chips")
	ch.AddText("dc:creator", "Jane <jane@example.com>")
	ch.Add("cloud").SetAttr("domain", "example.com").SetAttr("port", "80")
	return root
}

func TestMarshal_Minimized(t *testing.T) {
	out, err := Marshal(newTestTree(), Options{})
	require.NoError(t, err)

	want := `<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/"><channel>` +
		`<title>Fish &amp; Chips</title>` +
		`<dc:creator>Jane &lt;jane@example.com&gt;</dc:creator>` +
		`<cloud domain="example.com" port="80"></cloud>` +
		`</channel></rss>`
	assert.Equal(t, want, string(out))
}

func TestMarshal_Declaration(t *testing.T) {
	out, err := Marshal(New("rss"), Options{Declaration: true})
	require.NoError(t, err)
	assert.Equal(t, "<?xml version='1.0' encoding='UTF-8'?>\n<rss></rss>", string(out))
}

func TestMarshal_Pretty(t *testing.T) {
	root := New("rss")
	root.Add("channel").AddText("title", "T")

	out, err := Marshal(root, Options{Pretty: true})
	require.NoError(t, err)
	assert.Equal(t, "<rss>\n  <channel>\n    <title>T</title>\n  </channel>\n</rss>\n", string(out))
}

func TestMarshal_Latin1(t *testing.T) {
	root := New("title").SetText("Café ☕")

	out, err := Marshal(root, Options{Declaration: true, Encoding: "ISO-8859-1"})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("<?xml version='1.0' encoding='ISO-8859-1'?>")))
	// é is a single byte in Latin-1, the cup has no Latin-1 form.
	assert.Contains(t, string(out), "Caf\xe9")
	assert.Contains(t, string(out), "&#9749;")
}

func TestMarshal_UnknownEncoding(t *testing.T) {
	_, err := Marshal(New("rss"), Options{Encoding: "no-such-charset"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestEncode_WritesSameBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, newTestTree(), Options{Declaration: true}))

	out, err := Marshal(newTestTree(), Options{Declaration: true})
	require.NoError(t, err)
	assert.Equal(t, out, buf.Bytes())
}

func TestElement_Helpers(t *testing.T) {
	root := newTestTree()
	ch := root.Find("channel")
	require.NotNil(t, ch)

	assert.Nil(t, root.Find("item"))
	assert.Len(t, ch.FindAll("title"), 1)

	cloud := ch.Find("cloud")
	cloud.SetAttr("domain", "other.org")
	v, ok := cloud.Attr("domain")
	assert.True(t, ok)
	assert.Equal(t, "other.org", v)
	assert.Equal(t, "domain", cloud.Attrs[0].Name)

	_, ok = cloud.Attr("path")
	assert.False(t, ok)
}
