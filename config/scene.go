package config

import (
	"errors"
	"fmt"

	"github.com/gogpu/clearpass/render"
)

// ErrInvalidScene is returned for inconsistent scene descriptions.
var ErrInvalidScene = errors.New("config: invalid scene")

// Scene describes the windows, images and views of a demo frame.
type Scene struct {
	Windows []WindowConfig `mapstructure:"windows"`
	Images  []ImageConfig  `mapstructure:"images"`
	Views   []ViewConfig   `mapstructure:"views"`
}

// WindowConfig is a live window with a CPU swap chain.
type WindowConfig struct {
	ID     uint64 `mapstructure:"id"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`

	// Idle windows have no acquired swap chain view this frame.
	Idle bool `mapstructure:"idle"`
}

// ImageConfig is an offscreen render target.
type ImageConfig struct {
	Handle uint64 `mapstructure:"handle"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// ViewConfig is a camera view. Views with a destination render into the
// destination's texture; views without one get a private target of
// Width x Height.
type ViewConfig struct {
	Label       string `mapstructure:"label"`
	Order       int    `mapstructure:"order"`
	Destination string `mapstructure:"destination"`
	Depth       bool   `mapstructure:"depth"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
}

// Validate checks that ids are unique, sizes are positive and that every
// view destination names a window or image of the scene.
func (s Scene) Validate() error {
	windows := make(map[uint64]bool, len(s.Windows))
	for _, w := range s.Windows {
		if windows[w.ID] {
			return fmt.Errorf("%w: window %d defined twice", ErrInvalidScene, w.ID)
		}
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("%w: window %d: size %dx%d", ErrInvalidScene, w.ID, w.Width, w.Height)
		}
		windows[w.ID] = true
	}

	images := make(map[uint64]bool, len(s.Images))
	for _, img := range s.Images {
		if images[img.Handle] {
			return fmt.Errorf("%w: image %d defined twice", ErrInvalidScene, img.Handle)
		}
		if img.Width <= 0 || img.Height <= 0 {
			return fmt.Errorf("%w: image %d: size %dx%d", ErrInvalidScene, img.Handle, img.Width, img.Height)
		}
		images[img.Handle] = true
	}

	for _, v := range s.Views {
		if v.Destination == "" {
			if v.Width <= 0 || v.Height <= 0 {
				return fmt.Errorf("%w: view %q without destination needs a size", ErrInvalidScene, v.Label)
			}
			continue
		}
		dst, err := render.ParseDestination(v.Destination)
		if err != nil {
			return fmt.Errorf("view %q: %w", v.Label, err)
		}
		switch dst.Kind {
		case render.DestinationWindow:
			if !windows[dst.ID] {
				return fmt.Errorf("%w: view %q: no %s", ErrInvalidScene, v.Label, dst)
			}
		case render.DestinationImage:
			if !images[dst.ID] {
				return fmt.Errorf("%w: view %q: no %s", ErrInvalidScene, v.Label, dst)
			}
		default:
			return fmt.Errorf("%w: view %q: %s cannot be a view target", ErrInvalidScene, v.Label, dst)
		}
	}
	return nil
}

// Frame is a scene instantiated on CPU textures.
type Frame struct {
	Windows *render.Windows
	Images  *render.Images
	Views   []render.View

	// Targets holds the texture of every window and image by destination.
	Targets map[render.Destination]*render.PixmapView
}

// Resolver returns a resolver over the frame's windows and images.
func (f *Frame) Resolver() render.Resolver {
	return render.Sources{Windows: f.Windows, Images: f.Images}
}

// Build validates s and creates its textures.
func (s Scene) Build() (*Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	f := &Frame{
		Windows: render.NewWindows(),
		Images:  render.NewImages(),
		Targets: make(map[render.Destination]*render.PixmapView),
	}

	for _, w := range s.Windows {
		win := render.Window{
			ID:     render.WindowID(w.ID),
			Width:  uint32(w.Width),
			Height: uint32(w.Height),
		}
		view := render.NewPixmapView(w.Width, w.Height)
		win.Format = view.Format()
		if !w.Idle {
			win.SwapChainView = view
		}
		f.Windows.Insert(win)
		f.Targets[render.WindowDestination(win.ID)] = view
	}

	for _, img := range s.Images {
		view := render.NewPixmapView(img.Width, img.Height)
		f.Images.Insert(render.ImageHandle(img.Handle), view)
		f.Targets[render.ImageDestination(render.ImageHandle(img.Handle))] = view
	}

	for _, vc := range s.Views {
		v := render.View{Label: vc.Label, Order: vc.Order}

		width, height := vc.Width, vc.Height
		if vc.Destination != "" {
			dst, err := render.ParseDestination(vc.Destination)
			if err != nil {
				return nil, err
			}
			target := f.Targets[dst]
			v.Destination = &dst
			v.Color = target
			width, height = target.Image().Bounds().Dx(), target.Image().Bounds().Dy()
		} else {
			v.Color = render.NewPixmapView(width, height)
		}
		if vc.Depth {
			v.Depth = render.NewDepthView(width, height)
		}
		f.Views = append(f.Views, v)
	}
	return f, nil
}
