package media

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/frame/g"
)

// DurationProber 通过 ffprobe 读取音频时长。
// 探测是 best-effort：任何失败都返回 0.0 并记一条 warning，绝不让任务失败。
type DurationProber struct {
	binPath string
}

func NewProber(binPath string) *DurationProber {
	if binPath == "" {
		binPath = "ffprobe"
	}
	return &DurationProber{binPath: binPath}
}

// Duration 返回音频时长（秒），失败时返回 0.0
func (p *DurationProber) Duration(ctx context.Context, audioPath string) float64 {
	cmd := exec.CommandContext(ctx, p.binPath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		audioPath,
	)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		g.Log().Warningf(ctx, "ffprobe 探测音频时长失败，按 0 处理: %v", err)
		return 0.0
	}

	info, err := gjson.LoadContent(stdout.Bytes())
	if err != nil {
		g.Log().Warningf(ctx, "ffprobe 输出解析失败，按 0 处理: %v", err)
		return 0.0
	}
	return info.Get("format.duration").Float64()
}
