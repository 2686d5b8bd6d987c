package layout

import "log/slog"

// nopLogger 丢弃所有日志；未注入 Logger 时使用。
var nopLogger = slog.New(slog.DiscardHandler)

// DefaultMargin 是左栏距左边缘、右栏距右边缘的像素距离。
const DefaultMargin = 40

// Options 配置排版阶段所需的参数，例如边距与样式。
type Options struct {
	Margin int
	Style  Style
	Logger *slog.Logger
}

// DefaultOptions 返回 40px 边距与默认样式。
func DefaultOptions() Options {
	return Options{
		Margin: DefaultMargin,
		Style:  DefaultStyle(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return nopLogger
	}
	return o.Logger
}

// Typesetter 负责测量单个字符在指定字号（像素）与描边宽度下的墨迹包围盒。
// 描边宽度不为 0 时，包围盒在四个方向各扩展 strokeWidth。
type Typesetter interface {
	MeasureGlyph(ch rune, fontSize, strokeWidth int) (GlyphMetric, error)
}
