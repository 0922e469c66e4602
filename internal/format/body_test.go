package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<h1>Hello</h1>` +
	`<p>Some <strong>bold</strong> and <em>italic</em> with a <a href="https://example.com">link</a>.</p>` +
	`<ul><li>one</li><li>two</li></ul>`

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "html", want: FormatHTML},
		{in: "markdown", want: FormatMarkdown},
		{in: "MARKDOWN", want: FormatMarkdown},
		{in: " Html ", want: FormatHTML},
		{in: "", want: DefaultFormat},
		{in: "pdf", wantErr: true},
		{in: "md", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				// The error names the allowed set.
				assert.Contains(t, err.Error(), "text, html, markdown")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderBody_HTMLPassthrough(t *testing.T) {
	t.Parallel()

	out, err := RenderBody(sampleHTML, FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, sampleHTML, out)
}

func TestRenderBody_Text(t *testing.T) {
	t.Parallel()

	out, err := RenderBody(sampleHTML, FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "Some bold and italic with a link.")
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, "strong")
}

func TestRenderBody_Text_DropsScriptAndStyle(t *testing.T) {
	t.Parallel()

	raw := `<p>visible</p><script>alert("x")</script><style>p{color:red}</style>`
	out, err := RenderBody(raw, FormatText)
	require.NoError(t, err)

	assert.Equal(t, "visible", out)
}

func TestRenderBody_Markdown(t *testing.T) {
	t.Parallel()

	out, err := RenderBody(sampleHTML, FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# Hello")
	assert.Contains(t, out, "**bold**")
	assert.Contains(t, out, "*italic*")
	assert.Contains(t, out, "[link](https://example.com)")
	assert.Contains(t, out, "- one")
	assert.Contains(t, out, "- two")
}

func TestRenderBody_Idempotent(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatText, FormatMarkdown} {
		f := f
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()

			once, err := RenderBody(sampleHTML, f)
			require.NoError(t, err)

			twice, err := RenderBody(once, f)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
		})
	}
}

func TestRenderBody_MarkupFreeInput(t *testing.T) {
	t.Parallel()

	plain := "Just a paragraph.\n\nAnd another one."

	for _, f := range []Format{FormatText, FormatMarkdown} {
		out, err := RenderBody(plain, f)
		require.NoError(t, err)
		assert.Equal(t, plain, out)
	}
}

func TestRenderBody_NestedBlocksNotDuplicated(t *testing.T) {
	t.Parallel()

	raw := `<blockquote><p>quoted words</p></blockquote>`
	out, err := RenderBody(raw, FormatText)
	require.NoError(t, err)

	assert.Equal(t, "quoted words", out)
}

func TestRenderBody_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := RenderBody("<p>x</p>", Format("pdf"))
	assert.Error(t, err)
}
