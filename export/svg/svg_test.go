package svg

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/stdcell/export"
	"github.com/gogpu/stdcell/layout"
)

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	ViewBox string   `xml:"viewBox,attr"`
	Width   string   `xml:"width,attr"`
	Title   string   `xml:"title"`
	Groups  []struct {
		ID    string `xml:"id,attr"`
		Fill  string `xml:"fill,attr"`
		Title string `xml:"title"`
		Rects []struct {
			X      string `xml:"x,attr"`
			Y      string `xml:"y,attr"`
			Width  string `xml:"width,attr"`
			Height string `xml:"height,attr"`
		} `xml:"rect"`
	} `xml:"g"`
}

func sample() *layout.Cell {
	leaf := layout.NewCell("leaf")
	leaf.AddRect(layout.Metal1, layout.RectXYWH(0, 0, 1, 0.5))
	leaf.AddRect(layout.NWell, layout.RectXYWH(-1, -1, 3, 2.5))
	leaf.Seal()

	top := layout.NewCell("inv<1>")
	top.AddRect(layout.Metal1, layout.RectXYWH(0, 1, 0.38, 0.84))
	top.AddRef(leaf, layout.Translate(0, 4))
	top.Seal()
	return top
}

func decode(t *testing.T, c *layout.Cell, opts ...Option) svgDoc {
	t.Helper()
	b, err := export.Bytes(New(opts...), c)
	require.NoError(t, err)
	var doc svgDoc
	require.NoError(t, xml.Unmarshal(b, &doc))
	return doc
}

func TestWriteGroupsByLayer(t *testing.T) {
	doc := decode(t, sample())

	assert.Equal(t, "inv<1>", doc.Title)
	require.Len(t, doc.Groups, 2)
	assert.Equal(t, "nwell", doc.Groups[0].ID, "wells drawn first")
	assert.Equal(t, "Nwell", doc.Groups[0].Title)
	assert.Equal(t, "metal1", doc.Groups[1].ID)
	assert.Equal(t, "Metal1", doc.Groups[1].Title)
	assert.Equal(t, export.LayerColor(layout.Metal1), doc.Groups[1].Fill)
	assert.Len(t, doc.Groups[1].Rects, 2)
}

func TestWriteFlipsY(t *testing.T) {
	doc := decode(t, sample())
	r := doc.Groups[1].Rects[0]
	assert.Equal(t, "0", r.X)
	assert.Equal(t, "-1.84", r.Y)
	assert.Equal(t, "0.38", r.Width)
	assert.Equal(t, "0.84", r.Height)
}

func TestWriteViewBox(t *testing.T) {
	// bbox (-1,1)-(2,5.5) with a 0.5 margin
	doc := decode(t, sample())
	assert.Equal(t, "-1.5 -6 4 5.5", doc.ViewBox)
	assert.Equal(t, "400", doc.Width)

	doc = decode(t, sample(), WithScale(10), WithMargin(0))
	assert.Equal(t, "-1 -5.5 3 4.5", doc.ViewBox)
	assert.Equal(t, "30", doc.Width)
}

func TestWriteNilCell(t *testing.T) {
	err := New().Write(&strings.Builder{}, nil)
	assert.ErrorIs(t, err, export.ErrNilCell)
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, export.Formats(), "svg")
}
