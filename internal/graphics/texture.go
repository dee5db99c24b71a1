package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"forward-gl/internal/gfx"
)

// Texture is a 2D OpenGL texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// LoadTexture decodes an image file and uploads it as an RGBA texture.
// No mipmaps are generated; filtering is left to the bound sampler.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{0, 0}, draw.Src)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: rgba.Rect.Size().X, Height: rgba.Rect.Size().Y}, nil
}

// NewTexture allocates an empty texture for render-target use.
func NewTexture(format gfx.TextureFormat, width, height int) *Texture {
	var internalFormat int32
	var pixelFormat, pixelType uint32
	switch format {
	case gfx.FormatDepth24:
		internalFormat = gl.DEPTH_COMPONENT24
		pixelFormat = gl.DEPTH_COMPONENT
		pixelType = gl.UNSIGNED_INT
	default:
		internalFormat = gl.RGBA8
		pixelFormat = gl.RGBA
		pixelType = gl.UNSIGNED_BYTE
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0, pixelFormat, pixelType, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: width, Height: height}
}

// Bind binds the texture to the active texture unit.
func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Release deletes the texture object.
func (t *Texture) Release() {
	gl.DeleteTextures(1, &t.ID)
}
