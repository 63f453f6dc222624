// Package silhouette loads the front, top and side projection images that
// describe an object.
package silhouette

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// View identifies the viewing axis a silhouette was projected along.
type View int

const (
	ViewUnknown View = iota
	ViewFront
	ViewTop
	ViewSide
)

func (v View) String() string {
	switch v {
	case ViewFront:
		return "Front"
	case ViewTop:
		return "Top"
	case ViewSide:
		return "Side"
	default:
		return "Unknown"
	}
}

// ParseView parses a view name case-insensitively.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "front":
		return ViewFront, nil
	case "top":
		return ViewTop, nil
	case "side":
		return ViewSide, nil
	}
	return ViewUnknown, fmt.Errorf("unknown view %q", s)
}

// Silhouette is a decoded projection image. It is read-only once loaded.
type Silhouette struct {
	Path  string      // Original file path
	View  View        // Viewing axis
	Image image.Image // Decoded image data
}

// Load decodes the image at path. Any failure is reported as an *InputError.
func Load(path string, view View) (*Silhouette, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &InputError{View: view, Path: path, Err: fmt.Errorf("failed to open image: %w", err)}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &InputError{View: view, Path: path, Err: fmt.Errorf("failed to decode image: %w", err)}
	}
	if img.Bounds().Empty() {
		return nil, &InputError{View: view, Path: path, Err: fmt.Errorf("image has no pixels")}
	}

	return &Silhouette{Path: path, View: view, Image: img}, nil
}

// Set holds the three views of one object.
type Set struct {
	Front *Silhouette
	Top   *Silhouette
	Side  *Silhouette
}

// Each calls fn for the front, top and side silhouettes in that order.
func (s *Set) Each(fn func(*Silhouette) error) error {
	for _, sil := range []*Silhouette{s.Front, s.Top, s.Side} {
		if err := fn(sil); err != nil {
			return err
		}
	}
	return nil
}

// LoadAll loads all three views before any analysis starts and stops at the
// first view that cannot be loaded.
func LoadAll(front, top, side string) (*Set, error) {
	var set Set
	var err error
	if set.Front, err = Load(front, ViewFront); err != nil {
		return nil, err
	}
	if set.Top, err = Load(top, ViewTop); err != nil {
		return nil, err
	}
	if set.Side, err = Load(side, ViewSide); err != nil {
		return nil, err
	}
	return &set, nil
}

// Width returns the image width in pixels.
func (s *Silhouette) Width() int {
	if s.Image == nil {
		return 0
	}
	return s.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (s *Silhouette) Height() int {
	if s.Image == nil {
		return 0
	}
	return s.Image.Bounds().Dy()
}

// GuessView attempts to determine the view from the filename.
func GuessView(path string) View {
	base := strings.ToLower(filepath.Base(path))

	if strings.Contains(base, "top") || strings.Contains(base, "plan") {
		return ViewTop
	}
	if strings.Contains(base, "front") {
		return ViewFront
	}
	if strings.Contains(base, "side") || strings.Contains(base, "elevation") {
		return ViewSide
	}
	return ViewUnknown
}

// SupportedFormats returns the list of supported image extensions.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
