package layout

import (
	"fmt"
	"math"
)

// MeasureColumn 逐字测量竖排文字，返回整栏包围盒。
// 宽度取各字宽度的最大值；高度为各字高度之和，字与字之间加 spacing，末字之后不加。
// 空字符串返回 (0, 0)。spacing 与 strokeWidth 为负时按 0 处理。
func MeasureColumn(text string, ts Typesetter, fontSize, spacing, strokeWidth int) (ColumnBlock, error) {
	if ts == nil {
		return ColumnBlock{}, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}
	spacing = max(spacing, 0)
	strokeWidth = max(strokeWidth, 0)

	var block ColumnBlock
	for _, ch := range text {
		m, err := ts.MeasureGlyph(ch, fontSize, strokeWidth)
		if err != nil {
			return ColumnBlock{}, fmt.Errorf("测量字符 %q 失败: %w", ch, err)
		}
		block.Width = max(block.Width, m.Width)
		block.Height += m.Height
		block.Count++
	}
	if block.Count > 0 {
		block.Height += spacing * (block.Count - 1)
	}
	return block, nil
}

// PlaceColumn 计算一栏竖排文字中每个字的绘制位置。
// 整栏以 yCenter 垂直居中，每个字在栏宽内水平居中；光标每次下移 字高 + spacing，
// 最后一个字之后不再推进。
func PlaceColumn(text string, xLeft, yCenter int, ts Typesetter, fontSize, spacing, strokeWidth int) ([]GlyphPlacement, ColumnBlock, error) {
	block, err := MeasureColumn(text, ts, fontSize, spacing, strokeWidth)
	if err != nil {
		return nil, ColumnBlock{}, err
	}
	spacing = max(spacing, 0)
	strokeWidth = max(strokeWidth, 0)

	placements := make([]GlyphPlacement, 0, block.Count)
	y := truncate(float64(yCenter) - float64(block.Height)/2)
	for _, ch := range text {
		if len(placements) > 0 {
			prev := placements[len(placements)-1]
			y += prev.Metric.Height + spacing
		}
		m, err := ts.MeasureGlyph(ch, fontSize, strokeWidth)
		if err != nil {
			return nil, ColumnBlock{}, fmt.Errorf("测量字符 %q 失败: %w", ch, err)
		}
		placements = append(placements, GlyphPlacement{
			Rune:   ch,
			X:      truncate(float64(xLeft) + float64(block.Width-m.Width)/2),
			Y:      y,
			Metric: m,
		})
	}
	return placements, block, nil
}

// truncate 向零取整。
func truncate(v float64) int { return int(math.Trunc(v)) }
