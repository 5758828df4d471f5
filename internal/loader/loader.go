// Package loader decodes image files for the viewer, either synchronously,
// on a background goroutine, or again whenever the file changes on disk.
package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrUnsupported is returned when no registered decoder recognises the data.
var ErrUnsupported = errors.New("loader: unsupported image format")

// extensions lists the file extensions the registered decoders handle.
var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Supported reports whether path has an extension one of the registered
// decoders handles. It does not look at the file contents.
func Supported(path string) bool {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Decode reads one image from r and returns it with the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupported
		}
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Info is the metadata of an image file, read without decoding pixels.
type Info struct {
	Width   int
	Height  int
	Format  string
	Size    int64
	ModTime time.Time
	// Camera is the EXIF camera model, empty when the file has none.
	Camera string
}

// Stat reads the dimensions and format of the image at path. EXIF data is
// optional; a file without it still yields an Info.
func Stat(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
		}
		return nil, fmt.Errorf("decoding image config: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("getting file stats: %w", err)
	}

	info := &Info{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Format:  format,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file for exif: %w", err)
	}
	if x, err := exif.Decode(f); err == nil {
		if tag, err := x.Get(exif.Model); err == nil {
			if model, err := tag.StringVal(); err == nil {
				info.Camera = strings.TrimSpace(model)
			}
		}
	}
	return info, nil
}

// Result is the outcome of a background load.
type Result struct {
	Path  string
	Image image.Image
	Err   error
}

// LoadAsync decodes path on a new goroutine. The returned channel receives
// exactly one Result and is then closed. If ctx is cancelled first, the
// result carries the context error instead.
func LoadAsync(ctx context.Context, path string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		img, err := Load(path)
		if ctxErr := ctx.Err(); ctxErr != nil {
			out <- Result{Path: path, Err: ctxErr}
			return
		}
		out <- Result{Path: path, Image: img, Err: err}
	}()
	return out
}
