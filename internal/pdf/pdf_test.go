package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentText(t *testing.T) {
	doc := &Document{Pages: []string{"page one", "", "page three"}}

	assert.Equal(t, 3, doc.PageCount())
	assert.Equal(t, "page one\n\npage three", doc.Text())
}

func TestDocumentTextWithPlaceholder(t *testing.T) {
	doc := &Document{Pages: []string{"page one", "", "page three"}}

	assert.Equal(t, "page one\n<<NO TEXT>>\npage three",
		doc.TextWithPlaceholder("<<NO TEXT>>"))
}

func TestDocumentEmpty(t *testing.T) {
	doc := &Document{}

	assert.Equal(t, 0, doc.PageCount())
	assert.Empty(t, doc.Text())
}

func TestReaderExtractRejectsGarbage(t *testing.T) {
	_, err := NewReader().Extract([]byte("this is not a pdf"))
	assert.Error(t, err)
}

func TestReaderExtractRejectsEmpty(t *testing.T) {
	_, err := NewReader().Extract(nil)
	assert.Error(t, err)
}
