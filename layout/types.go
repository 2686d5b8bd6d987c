package layout

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// 该文件定义排版结果与样式描述，供排版计算、渲染与调试 JSON 共用。
// 所有坐标与尺寸均以输入图片的像素为单位，原点在左上角，y 轴向下。

// Color 采用 0-255 的 RGBA 数值（非预乘）。
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGBA 实现 color.Color，返回预乘后的 16 位分量。
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// Style 描述一栏文字的填充色、描边色与描边宽度，创建后不再修改。
type Style struct {
	Fill        Color `json:"fill"`
	Stroke      Color `json:"stroke"`
	StrokeWidth int   `json:"strokeWidth"`
}

// DefaultStyle 返回对联标题的默认样式：半透明黄色填充、接近不透明的黑色描边、4px 描边。
func DefaultStyle() Style {
	return Style{
		Fill:        Color{R: 255, G: 255, B: 0, A: 180},
		Stroke:      Color{R: 0, G: 0, B: 0, A: 230},
		StrokeWidth: 4,
	}
}

// GlyphMetric 是单个字符在给定字号与描边宽度下的墨迹包围盒尺寸。
type GlyphMetric struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ColumnBlock 是一栏竖排文字的整体包围盒。
// Width 为各字符宽度的最大值，Height 为各字符高度之和加上字符之间的间距（末字之后不加）。
type ColumnBlock struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Count  int `json:"count"`
}

// GlyphPlacement 记录一个字符绘制时墨迹包围盒左上角的位置。
// JSON 中字符以字符串形式写在 "char" 字段。
type GlyphPlacement struct {
	Rune   rune        `json:"-"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Metric GlyphMetric `json:"metric"`
}

type glyphPlacementJSON struct {
	Char string `json:"char"`
	placementFields
}

type placementFields GlyphPlacement

func (g GlyphPlacement) MarshalJSON() ([]byte, error) {
	return json.Marshal(glyphPlacementJSON{Char: string(g.Rune), placementFields: placementFields(g)})
}

func (g *GlyphPlacement) UnmarshalJSON(data []byte) error {
	var v glyphPlacementJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	ch, size := utf8.DecodeRuneInString(v.Char)
	if size == 0 || size != len(v.Char) {
		return fmt.Errorf("char 字段必须是单个字符: %q", v.Char)
	}
	*g = GlyphPlacement(v.placementFields)
	g.Rune = ch
	return nil
}

// Column 是一栏已经定位好的竖排文字。
type Column struct {
	Text    string           `json:"text"`
	X       int              `json:"x"`
	YCenter int              `json:"yCenter"`
	Block   ColumnBlock      `json:"block"`
	Glyphs  []GlyphPlacement `json:"glyphs"`
}

// Plan 保存一张图片上左右两栏标题的完整排版结果。
type Plan struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FontSize int    `json:"fontSize"`
	Spacing  int    `json:"spacing"`
	Style    Style  `json:"style"`
	Left     Column `json:"left"`
	Right    Column `json:"right"`
}

// Columns 按绘制顺序返回两栏。
func (p *Plan) Columns() []Column {
	if p == nil {
		return nil
	}
	return []Column{p.Left, p.Right}
}
