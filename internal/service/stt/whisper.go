package stt

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/model"
	"whisper-transcript-service/internal/service/media"
)

// Whisper 语音转写适配器。通过外部 faster-whisper 助手进程完成转写，
// 助手从命令行接收音频路径，向 stdout 输出 JSON：
//
//	{"text": "...", "language": "zh", "segments": [{"start": 0, "end": 2.4, "text": "..."}]}
//
// language 参数为空时由模型自动检测。
type Whisper struct {
	binPath   string
	modelName string
	device    string
	converter *media.FFmpegConverter // 为 nil 时直接用原始音频
}

// helperOut 助手进程的输出格式
type helperOut struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

func New(ctx context.Context) *Whisper {
	w := &Whisper{
		binPath:   g.Cfg().MustGet(ctx, "whisper.bin", "whisper-helper").String(),
		modelName: g.Cfg().MustGet(ctx, "whisper.model", "large-v3").String(),
		device:    g.Cfg().MustGet(ctx, "whisper.device", "auto").String(),
	}
	if g.Cfg().MustGet(ctx, "whisper.convertWav", false).Bool() {
		w.converter = media.NewConverter(
			g.Cfg().MustGet(ctx, "whisper.ffmpeg", "ffmpeg").String(),
			media.ConvertOptions{},
		)
	}
	return w
}

// Transcribe 转写一个音频文件。languageHint 为空表示自动检测语言。
func (w *Whisper) Transcribe(ctx context.Context, audioPath, languageHint string) (*model.TranscriptResult, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, gerror.WrapCode(consts.CodeProcessing, err, "音频文件不可读")
	}

	input := audioPath
	if w.converter != nil {
		wavPath, err := w.converter.ToWav(ctx, audioPath)
		if err != nil {
			return nil, gerror.WrapCode(consts.CodeProcessing, err, "音频预转换失败")
		}
		defer os.Remove(wavPath)
		input = wavPath
	}

	args := []string{"--audio", input, "--model", w.modelName, "--device", w.device}
	if languageHint != "" {
		args = append(args, "--language", languageHint)
	}
	cmd := exec.CommandContext(ctx, w.binPath, args...)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return nil, gerror.NewCodef(consts.CodeExternal, "whisper 转写失败: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, gerror.WrapCode(consts.CodeExternal, err, "whisper 助手进程启动失败")
	}

	var parsed helperOut
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, gerror.WrapCode(consts.CodeExternal, err, "whisper 输出解析失败")
	}

	result := &model.TranscriptResult{
		Text:     parsed.Text,
		Language: parsed.Language,
	}
	if result.Language == "" {
		result.Language = "unknown"
	}
	for _, s := range parsed.Segments {
		result.Segments = append(result.Segments, model.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}
	return result, nil
}
