// Package forms stages the editable fields of one catalog entity, validates
// them, and hands off a normalized payload. One shared core replaces the
// near-identical per-entity form logic the old console carried.
package forms

import (
	"context"
	"errors"
	"strconv"

	"github.com/basiljilani/Foodo-admin/uploads"
)

// ValidationError carries a single human-readable reason; the first failing
// rule wins, there is no aggregation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

// ErrSubmitInFlight rejects re-entrant submission while an image commit is
// still running.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// session is the staged-edit core every entity form embeds: the image
// pipeline, the submit latch, and nothing else.
type session struct {
	uploader   *uploads.Uploader
	preview    *uploads.Preview
	imageURL   string // durable URL, authoritative once set
	submitting bool
}

// StageImage validates and stages a local preview. The store is not
// touched; cancelling the form discards the preview with no cleanup
// needed.
func (s *session) StageImage(name, contentType string, data []byte) error {
	p, err := s.uploader.Stage(name, contentType, data)
	if err != nil {
		return err
	}
	s.preview = p
	return nil
}

// StageImageDataURL stages an image delivered as a base64 data URL.
func (s *session) StageImageDataURL(name, dataURL string) error {
	p, err := s.uploader.StageDataURL(name, dataURL)
	if err != nil {
		return err
	}
	s.preview = p
	return nil
}

// PreviewURL returns what the form should render: the staged preview when
// one exists, otherwise the persisted URL.
func (s *session) PreviewURL() string {
	if s.preview != nil {
		return s.preview.DataURL
	}
	return s.imageURL
}

func (s *session) ClearImage() {
	s.preview = nil
	s.imageURL = ""
}

func (s *session) hasImage() bool {
	return s.preview != nil || s.imageURL != ""
}

func (s *session) begin() error {
	if s.submitting {
		return ErrSubmitInFlight
	}
	s.submitting = true
	return nil
}

func (s *session) end() {
	s.submitting = false
}

// commitImage resolves the authoritative image value. A staged preview is
// uploaded first; this always finishes before the payload is built.
func (s *session) commitImage(ctx context.Context) (string, error) {
	if s.preview == nil {
		return s.imageURL, nil
	}
	url, err := s.uploader.Commit(ctx, s.preview)
	if err != nil {
		return "", err
	}
	s.imageURL = url
	s.preview = nil
	return url, nil
}

// toggle adds v to the set, or removes it when already present. Insertion
// order is kept for display.
func toggle(set []string, v string) []string {
	for i, cur := range set {
		if cur == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, v)
}

// ParseDecimal coerces numeric form input, falling back to 0.
func ParseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseOrder coerces integer form input, falling back to 0.
func ParseOrder(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ParseRating keeps invalid input unset so the repository default applies
// instead of a zero rating.
func ParseRating(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
