package articles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []Article {
	return []Article{
		{ID: "a1", Title: "Avanços em Telemedicina", Status: StatusVideoReady, Views: 1250},
		{ID: "a2", Title: "IA na Detecção Precoce", Status: StatusProcessing, Progress: 65},
		{ID: "a3", Title: "Humanização", Status: StatusPending},
	}
}

func TestValidateDocument(t *testing.T) {
	mime, err := ValidateDocument("/tmp/Relatorio.PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)

	_, err = ValidateDocument("notes.docx")
	require.NoError(t, err)

	_, err = ValidateDocument("slides.pptx")
	assert.True(t, errors.Is(err, ErrUnsupportedDocument))
	_, err = ValidateDocument("noext")
	assert.True(t, errors.Is(err, ErrUnsupportedDocument))
}

func TestDefaultTitleDropsLastExtension(t *testing.T) {
	assert.Equal(t, "ia_deteccao.v2", DefaultTitle("/docs/ia_deteccao.v2.pdf"))
	assert.Equal(t, "telemedicina", DefaultTitle("telemedicina.docx"))
}

func TestUploadPrependsProcessingArticle(t *testing.T) {
	s := NewStore(seed(), 10)
	fixed := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a, err := s.Upload("/home/u/novo_artigo.docx", "Novo Artigo")
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, a.Status)
	assert.Equal(t, 0, a.Progress)
	assert.Equal(t, "novo_artigo.docx", a.DocName)
	assert.Equal(t, fixed, a.UploadedAt)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, a.ID, s.List()[0].ID)
	assert.Equal(t, 4, s.Len())
}

func TestUploadValidation(t *testing.T) {
	s := NewStore(nil, 10)
	_, err := s.Upload("", "Título")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = s.Upload("a.pdf", "  ")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = s.Upload("a.txt", "Título")
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
	assert.Equal(t, 0, s.Len())
}

func TestAdvanceReachesVideoReady(t *testing.T) {
	s := NewStore(nil, 10)
	a, err := s.Upload("doc.pdf", "Doc")
	require.NoError(t, err)
	for i := 1; i < 10; i++ {
		got, done, err := s.Advance(a.ID)
		require.NoError(t, err)
		require.False(t, done)
		require.Equal(t, i*10, got.Progress)
	}
	got, done, err := s.Advance(a.ID)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, StatusVideoReady, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, PlaceholderVideoURL, got.VideoURL)
	assert.Empty(t, s.Processing())

	_, _, err = s.Advance(a.ID)
	assert.ErrorIs(t, err, ErrNotProcessing)
}

func TestAdvanceClampsUnevenStep(t *testing.T) {
	s := NewStore(seed(), 30)
	got, done, err := s.Advance("a2")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 95, got.Progress)

	got, done, err = s.Advance("a2")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 100, got.Progress, "progress is clamped, not 125")
	assert.Equal(t, StatusVideoReady, got.Status)
}

func TestDeleteAndProcessing(t *testing.T) {
	s := NewStore(seed(), 10)
	assert.Equal(t, []string{"a2"}, s.Processing())
	removed, err := s.Delete("a2")
	require.NoError(t, err)
	assert.Equal(t, "a2", removed.ID)
	assert.Empty(t, s.Processing())
	_, err = s.Delete("a2")
	assert.ErrorIs(t, err, ErrArticleNotFound)
	_, err = s.Get("a1")
	assert.NoError(t, err)
}
