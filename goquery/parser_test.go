package goquery_test

import (
	"testing"

	"github.com/fwojciec/lunagames/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("finds elements in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<ul>
	<li>First</li>
	<li>Second</li>
</ul>
</body>
</html>`

		doc, err := goquery.NewParser().Parse(html)
		require.NoError(t, err)

		items := doc.Find("li")
		require.Len(t, items, 2)
		assert.Equal(t, "First", items[0].Text())
		assert.Equal(t, "Second", items[1].Text())
	})

	t.Run("reads attributes", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<button aria-label="Claim Fallout 3">Claim</button><div></div>`)
		require.NoError(t, err)

		buttons := doc.Find("[aria-label]")
		require.Len(t, buttons, 1)

		label, ok := buttons[0].Attr("aria-label")
		assert.True(t, ok)
		assert.Equal(t, "Claim Fallout 3", label)

		_, ok = doc.Find("div")[0].Attr("aria-label")
		assert.False(t, ok)
	})

	t.Run("searches within a node", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<nav><li>Home</li></nav><main><li>Inside</li></main>`)
		require.NoError(t, err)

		mains := doc.Find("main")
		require.Len(t, mains, 1)

		items := mains[0].Find("li")
		require.Len(t, items, 1)
		assert.Equal(t, "Inside", items[0].Text())
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<p>nothing here</p>`)
		require.NoError(t, err)

		assert.Empty(t, doc.Find("li"))
	})

	t.Run("tolerates malformed and truncated markup", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<ul><li>Open item<li>Another <span>unclosed`)
		require.NoError(t, err)

		assert.Len(t, doc.Find("li"), 2)
	})

	t.Run("invalid selector matches nothing", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<li>Item</li>`)
		require.NoError(t, err)

		assert.Empty(t, doc.Find("li[[["))
	})

	t.Run("returns text of script blocks", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<script type="application/ld+json">{"title":"Foo"}</script>`)
		require.NoError(t, err)

		scripts := doc.Find("script")
		require.Len(t, scripts, 1)
		assert.Equal(t, `{"title":"Foo"}`, scripts[0].Text())
	})
}
