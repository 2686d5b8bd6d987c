// Package imagefile loads source images and writes the final resized output.
package imagefile

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// JPEGQuality is the quality used for lossy output formats.
const JPEGQuality = 95

// Open decodes the image at path. Any format registered with image (PNG, JPEG,
// GIF, BMP, TIFF, WebP) is accepted.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("读取图片 %s 失败: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("图片 %s 尺寸无效: %dx%d", path, b.Dx(), b.Dy())
	}
	return img, nil
}

// Resize resamples img to exactly width×height with a Lanczos filter.
// The aspect ratio is not preserved.
func Resize(img image.Image, width, height int) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("图片为空")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("目标尺寸无效: %dx%d", width, height)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// Flatten drops the alpha channel in place: every pixel keeps its colour and
// becomes fully opaque.
func Flatten(img *image.NRGBA) *image.NRGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		row := img.Pix[i : i+4*b.Dx()]
		for j := 3; j < len(row); j += 4 {
			row[j] = 0xff
		}
	}
	return img
}

// Finalize resizes img to width×height, flattens alpha and saves it to
// outputPath, creating parent directories as needed. The format follows the
// file extension.
func Finalize(img image.Image, width, height int, outputPath string) error {
	if _, err := imaging.FormatFromFilename(outputPath); err != nil {
		return fmt.Errorf("不支持的输出格式 %s: %w", outputPath, err)
	}
	resized, err := Resize(img, width, height)
	if err != nil {
		return err
	}
	out := Flatten(resized)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := imaging.Save(out, outputPath, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("写入图片 %s 失败: %w", outputPath, err)
	}
	return nil
}
