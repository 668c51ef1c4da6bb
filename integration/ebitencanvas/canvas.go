// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/zplane"
)

// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
var ErrCanvasClosed = errors.New("ebitencanvas: canvas is closed")

// Canvas wraps gg.Context and keeps an ebiten.Image copy of its pixels.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx         *gg.Context
	image       *ebiten.Image // Lazy-created on first Flush
	dirty       bool          // Needs upload
	sizeChanged bool          // Image must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a Canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", zplane.ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		dirty:  true,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context, or nil after Close.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// IsDirty reports whether the canvas has changes not yet uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Draw calls fn with the gg context and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*gg.Context)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.ctx)
	c.dirty = true
	return nil
}

// Resize changes the canvas dimensions. Resizing to the current size is a
// no-op; otherwise the content is lost.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", zplane.ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("ebitencanvas: context resize failed: %w", err)
	}
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the pixmap to the ebiten image if dirty and returns it.
// The image is created on first use and recreated after a resize.
func (c *Canvas) Flush() (*ebiten.Image, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.sizeChanged {
		if c.image != nil {
			c.image.Deallocate()
			c.image = nil
		}
		c.sizeChanged = false
	}
	if !c.dirty && c.image != nil {
		return c.image, nil
	}
	if c.image == nil {
		c.image = ebiten.NewImage(c.width, c.height)
	}
	c.image.WritePixels(c.ctx.ResizeTarget().Data())
	c.dirty = false
	return c.image, nil
}

// Present flushes the canvas and draws it at the top-left of screen.
func (c *Canvas) Present(screen *ebiten.Image) error {
	img, err := c.Flush()
	if err != nil {
		return err
	}
	screen.DrawImage(img, &ebiten.DrawImageOptions{})
	return nil
}

// Close releases the image and the drawing context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}
	return nil
}
