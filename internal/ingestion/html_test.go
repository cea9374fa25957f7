package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText_BlockElements(t *testing.T) {
	html := `<html><body>
		<h1>Senior Python Developer</h1>
		<p>We build backend services.</p>
		<ul><li>Python required</li><li>Kubernetes a plus</li></ul>
	</body></html>`

	text, err := HTMLToText(html)

	require.NoError(t, err)
	assert.Equal(t, "Senior Python Developer\nWe build backend services.\nPython required\nKubernetes a plus", text)
}

func TestHTMLToText_StripsChrome(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<script>trackPageView()</script>
		<p>Python required</p>
		<footer>Copyright</footer>
	</body></html>`

	text, err := HTMLToText(html)

	require.NoError(t, err)
	assert.Equal(t, "Python required", text)
}

func TestHTMLToText_NestedBlocksNotDuplicated(t *testing.T) {
	html := `<blockquote><p>Python required</p></blockquote>`

	text, err := HTMLToText(html)

	require.NoError(t, err)
	assert.Equal(t, "Python required", text)
}

func TestHTMLToText_NoBlockStructure(t *testing.T) {
	text, err := HTMLToText(`<html><body><span>Python</span> and <b>Go</b></body></html>`)

	require.NoError(t, err)
	assert.Equal(t, "Python and Go", text)
}

func TestCleanText_LineEndingsAndBlankRuns(t *testing.T) {
	text := CleanText("line one\r\nline two\r\n\n\n\n\nline three   \n")

	assert.Equal(t, "line one\nline two\n\nline three", text)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n\t\n"))
}

func TestFromFile_HTMLByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posting.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>Python required</p>"), 0o644))

	text, err := FromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Python required", text)
}

func TestFromFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python engineer\r\n"), 0o644))

	text, err := FromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Python engineer", text)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"))

	assert.Error(t, err)
}
