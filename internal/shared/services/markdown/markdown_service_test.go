package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("wymiana **oleju** i filtrów")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>oleju</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("naprawa <script>alert(1)</script> hamulców")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "hamulców")
	})

	t.Run("strips inline event handlers", func(t *testing.T) {
		out := svc.Sanitize(`<a href="x" onclick="evil()">link</a>`)
		assert.NotContains(t, out, "onclick")
	})
}
