package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"galapagos/internal/biotope"
	"galapagos/internal/core"

	"github.com/icza/mjpeg"
)

// Video records one frame per observed round into a Motion-JPEG AVI file.
type Video struct {
	aw     mjpeg.AviWriter
	size   core.Size
	scale  int
	cells  []byte
	frame  *image.RGBA
	buf    bytes.Buffer
	frames int
	err    error
	closed bool
}

// CreateVideo opens an AVI file for a grid of the given size. Every cell is
// drawn as a scale×scale square.
func CreateVideo(path string, size core.Size, scale, fps int) (*Video, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 1
	}
	w, h := size.W*scale, size.H*scale
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return &Video{
		aw:    aw,
		size:  size,
		scale: scale,
		cells: make([]byte, size.Cells()*4),
		frame: image.NewRGBA(image.Rect(0, 0, w, h)),
	}, nil
}

// AddView encodes v as the next frame. Views of a different size are
// rejected.
func (vd *Video) AddView(v *biotope.View) error {
	if v.Size() != vd.size {
		return fmt.Errorf("video is %dx%d, view is %dx%d", vd.size.W, vd.size.H, v.Size().W, v.Size().H)
	}
	FillView(vd.cells, v)
	vd.upscale()

	vd.buf.Reset()
	if err := jpeg.Encode(&vd.buf, vd.frame, &jpeg.Options{Quality: 90}); err != nil {
		return err
	}
	if err := vd.aw.AddFrame(vd.buf.Bytes()); err != nil {
		return err
	}
	vd.frames++
	return nil
}

func (vd *Video) upscale() {
	s := vd.scale
	stride := vd.frame.Stride
	for y := 0; y < vd.size.H; y++ {
		for x := 0; x < vd.size.W; x++ {
			src := vd.cells[(y*vd.size.W+x)*4 : (y*vd.size.W+x)*4+4]
			for dy := 0; dy < s; dy++ {
				row := (y*s+dy)*stride + x*s*4
				for dx := 0; dx < s; dx++ {
					copy(vd.frame.Pix[row+dx*4:row+dx*4+4], src)
				}
			}
		}
	}
}

// Frames returns the number of frames written.
func (vd *Video) Frames() int { return vd.frames }

// Err returns the first error met by the observer.
func (vd *Video) Err() error { return vd.err }

// Observer returns the callback to subscribe. After the first failure it
// stops recording.
func (vd *Video) Observer() biotope.Observer {
	return func(v *biotope.View) {
		if vd.err != nil {
			return
		}
		vd.err = vd.AddView(v)
	}
}

// Close finalizes the AVI index. Later calls do nothing.
func (vd *Video) Close() error {
	if vd.closed {
		return nil
	}
	vd.closed = true
	return vd.aw.Close()
}
