package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/duilian/layout"
)

var (
	sizeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Sep", Pattern: `[xX]`},
	})

	colorLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Hex", Pattern: `#[0-9A-Fa-f]+`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Punct", Pattern: `[(),]`},
	})

	sizeParser = participle.MustBuild[SizeLiteral](
		participle.Lexer(sizeLexer),
		participle.Elide("Whitespace"),
	)

	colorParser = participle.MustBuild[ColorLiteral](
		participle.Lexer(colorLexer),
		participle.Elide("Whitespace"),
	)
)

// Size 是形如 854x480 的输出分辨率。
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizeLiteral 是尺寸的语法树，保留原始数字文本。
type SizeLiteral struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Width  string         `parser:"@Int Sep"`
	Height string         `parser:"@Int"`
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// ColorLiteral 捕获 #rgb / #rrggbb / #rrggbbaa 或 rgb(...) / rgba(...)。
type ColorLiteral struct {
	Hex  *string    `parser:"  @Hex"`
	Func *ColorFunc `parser:"| @@"`
}

// ColorFunc 是函数形式的颜色。
type ColorFunc struct {
	Name string   `parser:"@Ident '('"`
	Args []string `parser:"@Int ( ',' @Int )* ')'"`
}

// ParseSize 解析 WIDTHxHEIGHT，宽高都必须为正整数。
func ParseSize(input string) (Size, error) {
	lit, err := sizeParser.ParseString("", input)
	if err != nil {
		return Size{}, fmt.Errorf("无法解析尺寸 %q（应为类似 854x480 的格式）: %w", input, err)
	}
	var size Size
	if size.Width, err = strconv.Atoi(lit.Width); err != nil {
		return Size{}, fmt.Errorf("尺寸 %q 的宽度无效: %w", input, err)
	}
	if size.Height, err = strconv.Atoi(lit.Height); err != nil {
		return Size{}, fmt.Errorf("尺寸 %q 的高度无效: %w", input, err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return Size{}, fmt.Errorf("尺寸 %q 的宽高必须为正整数", input)
	}
	return size, nil
}

// ParseColor 解析颜色字面量，省略 alpha 时视为不透明。
func ParseColor(input string) (layout.Color, error) {
	lit, err := colorParser.ParseString("", input)
	if err != nil {
		return layout.Color{}, fmt.Errorf("无法解析颜色 %q: %w", input, err)
	}
	switch {
	case lit.Hex != nil:
		return parseHexColor(*lit.Hex)
	case lit.Func != nil:
		return lit.Func.color()
	default:
		return layout.Color{}, fmt.Errorf("无法解析颜色 %q", input)
	}
}

func (f *ColorFunc) color() (layout.Color, error) {
	name := strings.ToLower(f.Name)
	want := 0
	switch name {
	case "rgb":
		want = 3
	case "rgba":
		want = 4
	default:
		return layout.Color{}, fmt.Errorf("未知的颜色函数 %s", f.Name)
	}
	if len(f.Args) != want {
		return layout.Color{}, fmt.Errorf("%s 需要 %d 个分量，实际 %d 个", name, want, len(f.Args))
	}
	comps := make([]uint8, 4)
	comps[3] = 255
	for i, arg := range f.Args {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 0 || v > 255 {
			return layout.Color{}, fmt.Errorf("颜色分量 %s 超出 0-255 范围", arg)
		}
		comps[i] = uint8(v)
	}
	return layout.Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

func parseHexColor(value string) (layout.Color, error) {
	value = strings.TrimPrefix(value, "#")
	switch len(value) {
	case 3:
		value = strings.Repeat(value[0:1], 2) + strings.Repeat(value[1:2], 2) + strings.Repeat(value[2:3], 2) + "ff"
	case 6:
		value += "ff"
	case 8:
	default:
		return layout.Color{}, fmt.Errorf("颜色值 #%s 无法解析", value)
	}
	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return layout.Color{}, fmt.Errorf("颜色值 #%s 无法解析: %w", value, err)
	}
	return layout.Color{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}
