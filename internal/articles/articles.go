// Package articles keeps the session's article list and simulates turning an
// uploaded document into a video.
package articles

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pendente"
	StatusProcessing Status = "processando"
	StatusVideoReady Status = "video_gerado"
)

// PlaceholderVideoURL is attached to every generated video.
const PlaceholderVideoURL = "https://www.w3schools.com/html/mov_bbb.mp4"

var (
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrMissingFields       = errors.New("document and title are required")
	ErrArticleNotFound     = errors.New("article not found")
	ErrNotProcessing       = errors.New("article is not processing")
)

type Article struct {
	ID         string
	Title      string
	DocName    string
	Status     Status
	Progress   int
	VideoURL   string
	Views      int
	UploadedAt time.Time
	Thumbnail  string
}

var supported = map[string]string{
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pdf":  "application/pdf",
}

// ValidateDocument accepts .docx and .pdf paths and returns their MIME type.
func ValidateDocument(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(path)))
	mime, ok := supported[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDocument, filepath.Base(path))
	}
	return mime, nil
}

// DefaultTitle derives a title from a file name by dropping its last extension.
func DefaultTitle(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type Store struct {
	items []Article
	step  int
	now   func() time.Time
}

// NewStore copies seed; step is the progress added by each Advance.
func NewStore(seed []Article, step int) *Store {
	if step <= 0 {
		step = 10
	}
	return &Store{items: slices.Clone(seed), step: step, now: time.Now}
}

func (s *Store) List() []Article {
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) Get(id string) (Article, error) {
	i := s.index(id)
	if i < 0 {
		return Article{}, fmt.Errorf("%w: %s", ErrArticleNotFound, id)
	}
	return s.items[i], nil
}

// Upload prepends a processing article for the document at path.
func (s *Store) Upload(path, title string) (Article, error) {
	path, title = strings.TrimSpace(path), strings.TrimSpace(title)
	if path == "" || title == "" {
		return Article{}, ErrMissingFields
	}
	if _, err := ValidateDocument(path); err != nil {
		return Article{}, err
	}
	a := Article{
		ID:         uuid.NewString(),
		Title:      title,
		DocName:    filepath.Base(path),
		Status:     StatusProcessing,
		UploadedAt: s.now(),
		Thumbnail:  "Generic document icon",
	}
	s.items = append([]Article{a}, s.items...)
	return a, nil
}

// Advance moves a processing article forward one step. done is true on the
// call that completes the video.
func (s *Store) Advance(id string) (a Article, done bool, err error) {
	i := s.index(id)
	if i < 0 {
		return Article{}, false, fmt.Errorf("%w: %s", ErrArticleNotFound, id)
	}
	cur := &s.items[i]
	if cur.Status != StatusProcessing {
		return *cur, false, ErrNotProcessing
	}
	cur.Progress = min(100, cur.Progress+s.step)
	if cur.Progress >= 100 {
		cur.Status = StatusVideoReady
		cur.VideoURL = PlaceholderVideoURL
		cur.Views = 0
		done = true
	}
	return *cur, done, nil
}

func (s *Store) Delete(id string) (Article, error) {
	i := s.index(id)
	if i < 0 {
		return Article{}, fmt.Errorf("%w: %s", ErrArticleNotFound, id)
	}
	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return removed, nil
}

// Processing lists ids of articles still being converted.
func (s *Store) Processing() []string {
	var out []string
	for _, a := range s.items {
		if a.Status == StatusProcessing {
			out = append(out, a.ID)
		}
	}
	return out
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(a Article) bool { return a.ID == id })
}
