package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed images/*.png sounds/*.wav
var assetsFS embed.FS

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeImage decodes an embedded image without uploading it.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadSound decodes an embedded wav at sampleRate. Other formats are
// assumed to already be PCM in the audio context's native layout.
func LoadSound(path string, sampleRate int) (io.ReadSeeker, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(b)
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return reader, nil
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return stream, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
