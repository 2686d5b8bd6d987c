package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/ByLCY/duilian/dsl"
	"github.com/ByLCY/duilian/fonts"
	"github.com/ByLCY/duilian/imagefile"
	"github.com/ByLCY/duilian/layout"
	canvasrenderer "github.com/ByLCY/duilian/renderer/canvas"
)

// 退出码：参数值错误为 1（与资源错误相同），flag 包自身的用法错误为 2。
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// config 汇总命令行参数。
type config struct {
	image     string
	mainTitle string
	subTitle  string
	output    string
	font      string
	size      dsl.Size
	style     layout.Style
	debug     string
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 解析参数并执行完整流程，返回进程退出码。
func run(args []string, stdout, stderr io.Writer) int {
	logErr := log.New(stderr, "", 0)

	cfg, err := parseFlags(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.As(err, new(*usageError)):
		logErr.Print(err)
		return exitUsage
	case err != nil:
		logErr.Print(err)
		return exitError
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if err := generate(cfg, logger); err != nil {
		logErr.Printf("生成图片失败: %v", err)
		return exitError
	}
	fmt.Fprintf(stdout, "Saved -> %s\n", cfg.output)
	return exitOK
}

// usageError 表示缺少必填参数等用法错误。
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("duilian", flag.ContinueOnError)
	fs.SetOutput(stderr)

	image := fs.String("image", "", "输入图片路径（必填）")
	mainTitle := fs.String("main", "", "主标题（左侧，必填）")
	subTitle := fs.String("sub", "", "副标题（右侧，必填）")
	output := fs.String("output", "output.png", "输出图片路径")
	font := fs.String("font", fonts.Default, "字体文件路径 (TTF/OTF)，或 embed:<内置字体名>；内置 Go 字体不含中文字形，中文标题需指定含 CJK 字形的字体")
	size := fs.String("size", "854x480", "输出分辨率，格式如 854x480 或 640x480")
	fill := fs.String("fill", "rgba(255,255,0,180)", "文字填充色")
	strokeColor := fs.String("stroke-color", "rgba(0,0,0,230)", "文字描边色")
	strokeWidth := fs.Int("stroke-width", layout.DefaultStyle().StrokeWidth, "描边宽度（像素）")
	debug := fs.String("debug", "", "排版调试 JSON 输出路径")
	verbose := fs.Bool("verbose", false, "输出诊断日志")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config{}, err
		}
		return config{}, &usageError{msg: err.Error()}
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	for _, name := range []string{"image", "main", "sub"} {
		if !seen[name] {
			fs.Usage()
			return config{}, &usageError{msg: fmt.Sprintf("缺少必填参数 --%s", name)}
		}
	}

	parsedSize, err := dsl.ParseSize(*size)
	if err != nil {
		return config{}, fmt.Errorf("解析 --size 参数错误，请用类似 854x480 格式: %w", err)
	}
	fillColor, err := dsl.ParseColor(*fill)
	if err != nil {
		return config{}, fmt.Errorf("解析 --fill 参数错误: %w", err)
	}
	stroke, err := dsl.ParseColor(*strokeColor)
	if err != nil {
		return config{}, fmt.Errorf("解析 --stroke-color 参数错误: %w", err)
	}
	if *strokeWidth < 0 {
		return config{}, fmt.Errorf("--stroke-width 不能为负数: %d", *strokeWidth)
	}

	return config{
		image:     *image,
		mainTitle: *mainTitle,
		subTitle:  *subTitle,
		output:    *output,
		font:      *font,
		size:      parsedSize,
		style:     layout.Style{Fill: fillColor, Stroke: stroke, StrokeWidth: *strokeWidth},
		debug:     *debug,
		verbose:   *verbose,
	}, nil
}

// generate 串联读图、排版、绘制、缩放与写出。
func generate(cfg config, logger *slog.Logger) error {
	src, err := imagefile.Open(cfg.image)
	if err != nil {
		return err
	}

	fontData, err := fonts.Resolve(cfg.font)
	if err != nil {
		return err
	}
	r, err := canvasrenderer.NewRenderer(canvasrenderer.Options{
		Font:   fontData,
		Name:   cfg.font,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	plan, err := layout.PlanTitles(bounds.Dx(), bounds.Dy(), cfg.mainTitle, cfg.subTitle, r, layout.Options{
		Margin: layout.DefaultMargin,
		Style:  cfg.style,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("排版计算失败: %w", err)
	}
	if cfg.debug != "" {
		if err := layout.WriteDebugJSON(plan, cfg.debug); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	composed, err := r.Render(src, plan)
	if err != nil {
		return fmt.Errorf("绘制标题失败: %w", err)
	}
	if err := imagefile.Finalize(composed, cfg.size.Width, cfg.size.Height, cfg.output); err != nil {
		return err
	}
	logger.Info("已写出图片", slog.String("path", cfg.output), slog.String("size", cfg.size.String()))
	return nil
}
