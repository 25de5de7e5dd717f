package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// createTestDOCX creates a minimal DOCX archive in memory.
func createTestDOCX(documentXML string) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	contentTypes, _ := w.Create("[Content_Types].xml")
	contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))

	if documentXML != "" {
		doc, _ := w.Create("word/document.xml")
		doc.Write([]byte(documentXML))
	}

	w.Close()
	return buf.Bytes()
}

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{docxMIME}, New().SupportedMIMETypes())
}

func TestExtract_Paragraphs(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
</w:body>
</w:document>`

	text, err := New().Extract(context.Background(), createTestDOCX(docXML), docxMIME)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", text)
}

func TestExtract_NoBodyPart(t *testing.T) {
	text, err := New().Extract(context.Background(), createTestDOCX(""), docxMIME)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtract_NotAnArchive(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("plain bytes, not a zip"), docxMIME)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_MalformedXML(t *testing.T) {
	_, err := New().Extract(context.Background(), createTestDOCX("<w:document><unclosed"), docxMIME)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}
