package layout

import (
	"fmt"
	"log/slog"
)

// PlanTitles 为 width×height 的图片计算对联式标题的排版：
// 主标题在左，距左边缘 Margin；副标题在右，其右边缘距右边缘 Margin。
// 右栏必须先测量宽度才能确定 x。
func PlanTitles(width, height int, mainTitle, subTitle string, ts Typesetter, opts Options) (*Plan, error) {
	if ts == nil {
		return nil, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("图片尺寸无效: %dx%d", width, height)
	}

	style := opts.Style
	style.StrokeWidth = max(style.StrokeWidth, 0)
	fontSize := FontSizeFor(height)
	spacing := SpacingFor(fontSize)
	yCenter := height / 2

	subBlock, err := MeasureColumn(subTitle, ts, fontSize, spacing, style.StrokeWidth)
	if err != nil {
		return nil, fmt.Errorf("测量副标题失败: %w", err)
	}
	xLeft := opts.Margin
	xRight := width - opts.Margin - subBlock.Width

	left, err := placeColumn(mainTitle, xLeft, yCenter, ts, fontSize, spacing, style.StrokeWidth)
	if err != nil {
		return nil, fmt.Errorf("排版主标题失败: %w", err)
	}
	right, err := placeColumn(subTitle, xRight, yCenter, ts, fontSize, spacing, style.StrokeWidth)
	if err != nil {
		return nil, fmt.Errorf("排版副标题失败: %w", err)
	}

	plan := &Plan{
		Width:    width,
		Height:   height,
		FontSize: fontSize,
		Spacing:  spacing,
		Style:    style,
		Left:     left,
		Right:    right,
	}
	opts.logger().Debug("标题排版完成",
		slog.Int("fontSize", fontSize),
		slog.Int("spacing", spacing),
		slog.Int("leftX", left.X),
		slog.Int("rightX", right.X),
		slog.Int("leftHeight", left.Block.Height),
		slog.Int("rightHeight", right.Block.Height),
	)
	return plan, nil
}

func placeColumn(text string, x, yCenter int, ts Typesetter, fontSize, spacing, strokeWidth int) (Column, error) {
	glyphs, block, err := PlaceColumn(text, x, yCenter, ts, fontSize, spacing, strokeWidth)
	if err != nil {
		return Column{}, err
	}
	return Column{
		Text:    text,
		X:       x,
		YCenter: yCenter,
		Block:   block,
		Glyphs:  glyphs,
	}, nil
}
