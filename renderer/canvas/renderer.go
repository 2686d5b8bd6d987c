package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/duilian/layout"
	"github.com/ByLCY/duilian/renderer"
)

// Renderer draws couplet titles via github.com/tdewolff/canvas.
//
// The canvas is rendered at one dot per millimetre, so one canvas unit is one
// image pixel. Glyph outlines come from FontFace.ToPath and are drawn as
// ordinary paths: the stroked outline is filled first, the glyph on top.
type Renderer struct {
	family   *canvas.FontFamily
	coverage *font.Face
	logger   *slog.Logger

	faceMu sync.Mutex
	faces  map[int]*canvas.FontFace
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Font   []byte // TTF/OTF data
	Name   string // family name, used in diagnostics only
	Logger *slog.Logger
}

// NewRenderer parses the font once and keeps it for the renderer's lifetime.
func NewRenderer(opts Options) (*Renderer, error) {
	if len(opts.Font) == 0 {
		return nil, fmt.Errorf("字体数据为空")
	}
	name := opts.Name
	if name == "" {
		name = "duilian"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(opts.Font, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	// cmap 查询仅用于诊断，解析失败不影响绘制。
	coverage, err := font.ParseTTF(bytes.NewReader(opts.Font))
	if err != nil {
		logger.Warn("无法解析字体 cmap，跳过字形覆盖检查", slog.String("font", name), slog.Any("err", err))
		coverage = nil
	}
	logger.Debug("字体已加载", slog.String("font", name), slog.Int("bytes", len(opts.Font)))

	return &Renderer{
		family:   family,
		coverage: coverage,
		logger:   logger,
		faces:    map[int]*canvas.FontFace{},
	}, nil
}

// MeasureGlyph 实现 layout.Typesetter：返回字符轮廓的墨迹包围盒，
// 描边在四个方向各扩展 strokeWidth。空白字符没有墨迹，返回 (0, 0)。
func (r *Renderer) MeasureGlyph(ch rune, fontSize, strokeWidth int) (layout.GlyphMetric, error) {
	path, err := r.glyphPath(ch, fontSize)
	if err != nil {
		return layout.GlyphMetric{}, err
	}
	if path.Empty() {
		return layout.GlyphMetric{}, nil
	}
	bounds := path.Bounds()
	pad := 2 * max(strokeWidth, 0)
	return layout.GlyphMetric{
		Width:  layout.CeilPx(bounds.W()) + pad,
		Height: layout.CeilPx(bounds.H()) + pad,
	}, nil
}

// MissingGlyphs 返回字体 cmap 中不存在的字符（去重，保持出现顺序）。
// 字体无法解析 cmap 时返回 nil。
func (r *Renderer) MissingGlyphs(text string) []rune {
	if r.coverage == nil {
		return nil
	}
	seen := map[rune]bool{}
	var missing []rune
	for _, ch := range text {
		if seen[ch] || isBlank(ch) {
			continue
		}
		seen[ch] = true
		if _, ok := r.coverage.NominalGlyph(ch); !ok {
			missing = append(missing, ch)
		}
	}
	return missing
}

// Render 把 src 复制为底图，再按 plan 绘制左右两栏标题。
// 字形以带 alpha 的颜色直接合成到底图上，返回新的 RGBA 图片，src 不被修改。
func (r *Renderer) Render(src image.Image, plan *layout.Plan) (*image.RGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("输入图片为空")
	}
	if plan == nil {
		return nil, fmt.Errorf("排版结果为空")
	}
	bounds := src.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("输入图片尺寸无效: %dx%d", bounds.Dx(), bounds.Dy())
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)

	for _, col := range plan.Columns() {
		if missing := r.MissingGlyphs(col.Text); len(missing) > 0 {
			r.logger.Warn("字体缺少字形，将以缺字符号绘制", slog.String("text", col.Text), slog.String("missing", string(missing)))
		}
		if err := r.drawColumn(ctx, height, col, plan.FontSize, plan.Style); err != nil {
			return nil, err
		}
	}

	// 底图按像素原样复制，不经过重采样。
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	ras := rasterizer.FromImage(dst, canvas.DPMM(1), canvas.DefaultColorSpace)
	c.RenderTo(ras)
	ras.Close()
	return dst, nil
}

// drawColumn 逐字绘制一栏。placement 的 (X, Y) 是带描边墨迹框的左上角（y 向下），
// 画布坐标 y 向上，需要以 canvasHeight 翻转。
func (r *Renderer) drawColumn(ctx *canvas.Context, canvasHeight float64, col layout.Column, fontSize int, style layout.Style) error {
	stroke := float64(max(style.StrokeWidth, 0))
	ctx.SetStroke(nil)

	for _, g := range col.Glyphs {
		path, err := r.glyphPath(g.Rune, fontSize)
		if err != nil {
			return err
		}
		if path.Empty() {
			continue
		}
		b := path.Bounds()
		x := float64(g.X) + stroke - b.X0
		y := canvasHeight - float64(g.Y) - stroke - b.Y1

		// 先铺描边外轮廓，再把字形本身填在上面，描边只露出字外的 stroke 像素。
		if stroke > 0 {
			outline := path.Stroke(2*stroke, canvas.RoundCap, canvas.RoundJoin, canvas.Tolerance)
			ctx.SetFillColor(style.Stroke)
			ctx.DrawPath(x, y, outline)
		}
		ctx.SetFillColor(style.Fill)
		ctx.DrawPath(x, y, path)
	}
	return nil
}

// glyphPath 返回字符在 fontSize（像素）下的轮廓，坐标单位为像素，y 向上，原点在基线。
func (r *Renderer) glyphPath(ch rune, fontSize int) (*canvas.Path, error) {
	if isBlank(ch) {
		return &canvas.Path{}, nil
	}
	face, err := r.face(fontSize)
	if err != nil {
		return nil, err
	}
	path, _, err := face.ToPath(string(ch))
	if err != nil {
		return nil, fmt.Errorf("生成字符 %q 的轮廓失败: %w", ch, err)
	}
	return path, nil
}

func (r *Renderer) face(fontSize int) (*canvas.FontFace, error) {
	if fontSize <= 0 {
		return nil, fmt.Errorf("字号无效: %d", fontSize)
	}
	r.faceMu.Lock()
	defer r.faceMu.Unlock()
	if face, ok := r.faces[fontSize]; ok {
		return face, nil
	}
	face := r.family.Face(layout.PxToPt(float64(fontSize)), canvas.Black, canvas.FontRegular, canvas.FontNormal)
	r.faces[fontSize] = face
	return face, nil
}

func isBlank(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '　':
		return true
	}
	return false
}
