// This file is part of Checkergen.
//
// Checkergen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Checkergen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Checkergen.  If not, see <https://www.gnu.org/licenses/>.

package window

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/checkergen/canvas"
	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	WindowError = "window: %v"
)

const pixelDepth = 4

// the size of the display in millimetres is derived from the reported dots
// per inch.
const mmPerInch = 25.4

// Window is an SDL window that presents frames to the subject.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the resolution of the frames given to Present()
	res image.Point

	// the size of the texture. different to res if the window is fullscreen
	// and the display is a different size
	size   image.Point
	scaler *canvas.Scaler

	vsync bool

	// dots per inch of the display the window is on
	hdpi float32
	vdpi float32
}

// NewWindow is the preferred method of initialisation for the Window type.
// The window is the same size as the resolution unless fullscreen is true,
// in which case frames are scaled to fit the display.
func NewWindow(title string, res image.Point, fullscreen bool) (*Window, error) {
	win := &Window{res: res}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(WindowError, err)
	}

	// glFinish() requires that the renderer is backed by OpenGL
	sdl.SetHint(sdl.HINT_RENDER_DRIVER, "opengl")
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	// mouse motion events are not needed. the pointer is read once per frame
	// with GetMouseState()
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	flags := uint32(sdl.WINDOW_SHOWN)
	if fullscreen {
		flags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}

	win.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(res.X), int32(res.Y),
		flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(WindowError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		win.destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	info, err := win.renderer.GetInfo()
	if err != nil {
		win.destroy()
		return nil, curated.Errorf(WindowError, err)
	}
	win.vsync = info.Flags&uint32(sdl.RENDERER_PRESENTVSYNC) == uint32(sdl.RENDERER_PRESENTVSYNC)

	err = gl.Init()
	if err != nil {
		win.destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	w, h := win.window.GetSize()
	win.size = image.Pt(int(w), int(h))
	if win.size != res {
		win.scaler = canvas.NewScaler(win.size)
		logger.Logf(logger.Allow, "window", "frames scaled from %dx%d to %dx%d", res.X, res.Y, w, h)
	}

	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		w, h)
	if err != nil {
		win.destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	idx, err := win.window.GetDisplayIndex()
	if err == nil {
		_, win.hdpi, win.vdpi, err = sdl.GetDisplayDPI(idx)
	}
	if err != nil {
		logger.Logf(logger.Allow, "window", "display size unknown: %v", err)
	}

	sdl.ShowCursor(sdl.DISABLE)

	logger.Logf(logger.Allow, "window", "%s (vsync: %v)", win, win.vsync)

	return win, nil
}

func (win *Window) String() string {
	return fmt.Sprintf("%dx%d", win.size.X, win.size.Y)
}

func (win *Window) destroy() {
	if win.texture != nil {
		_ = win.texture.Destroy()
		win.texture = nil
	}
	if win.renderer != nil {
		_ = win.renderer.Destroy()
		win.renderer = nil
	}
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// Present implements the runstate.Output interface. The texture is only
// updated if the frame has changed but the renderer is presented every
// frame.
func (win *Window) Present(frame int, img *image.RGBA, changed bool) error {
	if changed || frame == 0 {
		if win.scaler != nil {
			img = win.scaler.Scale(img)
		}

		pixels, pitch, err := win.texture.Lock(nil)
		if err != nil {
			return curated.Errorf(WindowError, err)
		}
		row := win.size.X * pixelDepth
		for y := 0; y < win.size.Y; y++ {
			copy(pixels[y*pitch:y*pitch+row], img.Pix[y*img.Stride:y*img.Stride+row])
		}
		win.texture.Unlock()
	}

	if err := win.renderer.Copy(win.texture, nil, nil); err != nil {
		return curated.Errorf(WindowError, err)
	}
	win.renderer.Present()

	if win.vsync {
		gl.Finish()
	}

	return nil
}

// Service implements the runstate.Output interface. The window is closed by
// the window manager or by the escape key. Any other key counts as a key
// press.
func (win *Window) Service() (bool, bool) {
	var closed bool
	var key bool

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			closed = true

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break
			}
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				closed = true
			} else {
				key = true
			}
		}
	}

	return closed, key
}

// Realtime implements the runstate.Output interface.
func (win *Window) Realtime() bool {
	return true
}

// VSync implements the runstate.Output interface.
func (win *Window) VSync() bool {
	return win.vsync
}

// Close implements the runstate.Output interface.
func (win *Window) Close() error {
	if win.window == nil {
		return nil
	}
	sdl.ShowCursor(sdl.ENABLE)
	win.destroy()
	return nil
}

// Pointer implements the eyetrack.Pointer interface.
func (win *Window) Pointer() (float64, float64, bool) {
	if sdl.GetMouseFocus() != win.window {
		return 0, 0, false
	}
	x, y, _ := sdl.GetMouseState()
	return millimetres(image.Pt(int(x), int(y)), win.size, win.hdpi, win.vdpi)
}

// millimetres converts a position in window pixels to millimetres from the
// centre of the window. positive y is up.
func millimetres(p image.Point, size image.Point, hdpi float32, vdpi float32) (float64, float64, bool) {
	if hdpi <= 0 || vdpi <= 0 {
		return 0, 0, false
	}
	if !p.In(image.Rectangle{Max: size}) {
		return 0, 0, false
	}
	x := (float64(p.X) - float64(size.X)/2) / float64(hdpi) * mmPerInch
	y := (float64(size.Y)/2 - float64(p.Y)) / float64(vdpi) * mmPerInch
	return x, y, true
}
