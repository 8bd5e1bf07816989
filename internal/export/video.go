package export

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"graypde/internal/render"
	"graypde/internal/sims/grayscott"
)

// VideoPNG quality trades file size against visible banding in the
// smooth concentration gradients.
const jpegQuality = 90

// VideoMJPEG encodes recorded frames into an MJPEG AVI at path. All
// frames must share the dimensions of the first one.
func VideoMJPEG(frames []grayscott.Frame, palette []color.RGBA, fps int, path string) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames to encode")
	}
	if fps < 1 {
		return fmt.Errorf("export: fps must be at least 1, got %d", fps)
	}

	w, h := frames[0].W, frames[0].H
	writer, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return fmt.Errorf("export: create video writer: %w", err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: jpegQuality}
	for i, fr := range frames {
		if fr.W != w || fr.H != h {
			writer.Close()
			return fmt.Errorf("export: frame %d is %dx%d, expected %dx%d", i, fr.W, fr.H, w, h)
		}
		img := render.PaletteImage(fr.Pix, fr.W, fr.H, palette)
		buf.Reset()
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			writer.Close()
			return fmt.Errorf("export: encode frame %d: %w", i, err)
		}
		if err := writer.AddFrame(buf.Bytes()); err != nil {
			writer.Close()
			return fmt.Errorf("export: add frame %d: %w", i, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("export: close video: %w", err)
	}
	return nil
}
