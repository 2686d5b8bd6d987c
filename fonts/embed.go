package fonts

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// EmbedPrefix 标记内置字体来源，例如 "embed:Go-Bold"。
const EmbedPrefix = "embed:"

// Default 是未指定 --font 时使用的内置字体。
const Default = EmbedPrefix + "Go-Bold"

var builtin = map[string][]byte{
	"Go-Regular":    goregular.TTF,
	"Go-Bold":       gobold.TTF,
	"Go-Italic":     goitalic.TTF,
	"Go-BoldItalic": gobolditalic.TTF,
	"Go-Medium":     gomedium.TTF,
	"Go-Mono":       gomono.TTF,
	"Go-MonoBold":   gomonobold.TTF,
	"Go-SmallCaps":  gosmallcaps.TTF,
}

// Load 返回内置字体的字节数据，path 可写为 "embed:Go-Bold" 或直接 "Go-Bold"，
// 可带 .ttf 后缀，名称不区分大小写。
func Load(path string) ([]byte, error) {
	name := strings.TrimSuffix(strings.TrimPrefix(path, EmbedPrefix), ".ttf")
	if data, ok := builtin[name]; ok {
		return data, nil
	}
	for key, data := range builtin {
		if strings.EqualFold(key, name) {
			return data, nil
		}
	}
	return nil, fmt.Errorf("读取内置字体 %s 失败: 可用字体为 %s", name, strings.Join(Names(), ", "))
}

// Resolve 按来源读取字体：embed: 前缀读取内置字体，否则从文件系统读取。
func Resolve(src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("字体来源为空")
	}
	if strings.HasPrefix(src, EmbedPrefix) {
		return Load(src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("读取字体文件 %s 失败: %w", src, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("字体文件 %s 为空", src)
	}
	return data, nil
}

// Names 返回全部内置字体名，按字母排序。
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
