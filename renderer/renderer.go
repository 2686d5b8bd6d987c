package renderer

import (
	"image"

	"github.com/ByLCY/duilian/layout"
)

// Renderer 将排版结果绘制到图片上。
// Render 不修改 src，返回与 src 同尺寸的新图片。
type Renderer interface {
	Render(src image.Image, plan *layout.Plan) (*image.RGBA, error)
}
