package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gogf/gf/v2/errors/gerror"
)

// 转换选项
type ConvertOptions struct {
	SampleRate int      // e.g. 16000。whisper / pyannote 统一要求 16k
	Channels   int      // e.g. 1
	ExtraArgs  []string // appended raw ffmpeg arguments
}

// FFmpeg 转换器，把任意上传音频归一化成 wav 供转写和说话人分离使用
type FFmpegConverter struct {
	binPath string
	opts    ConvertOptions
}

func NewConverter(binPath string, opts ConvertOptions) *FFmpegConverter {
	if binPath == "" {
		binPath = "ffmpeg"
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 16000
	}
	if opts.Channels <= 0 {
		opts.Channels = 1
	}
	return &FFmpegConverter{
		binPath: binPath,
		opts:    opts,
	}
}

// ToWav 使用 ffmpeg 将输入文件转换为单声道 wav。输出文件与输入同目录、
// 同名加 `_16k.wav` 后缀。输入文件保持不动，由调用方负责清理。
//
// 参数:
//   - inputPath: string - 输入文件的路径
//
// 返回:
//   - outputPath: string - 输出文件的路径
//   - err: error - 转换过程中发生的任何错误
func (c *FFmpegConverter) ToWav(ctx context.Context, inputPath string) (outputPath string, err error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", gerror.Wrap(err, "输入文件不可访问")
	}

	target := fmt.Sprintf("%s_16k.wav", strings.TrimSuffix(inputPath, filepath.Ext(inputPath)))
	args := []string{"-y", "-i", inputPath, "-vn",
		"-ac", fmt.Sprintf("%d", c.opts.Channels),
		"-ar", fmt.Sprintf("%d", c.opts.SampleRate),
		"-f", "wav",
	}
	if len(c.opts.ExtraArgs) > 0 {
		args = append(args, c.opts.ExtraArgs...)
	}
	args = append(args, target)

	cmd := exec.CommandContext(ctx, c.binPath, args...)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", gerror.Wrapf(err, "ffmpeg convert to wav failed: %s", strings.TrimSpace(stderr.String()))
	}
	return target, nil
}
