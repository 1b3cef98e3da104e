package diarize

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	"whisper-transcript-service/internal/model"
)

// Pyannote 说话人分离适配器。通过外部 pyannote 助手进程完成分离，
// 助手向 stdout 输出 JSON 数组：[{"start": 0.0, "end": 1.5, "speaker": "SPEAKER_00"}, ...]。
//
// 能力是否可用在构造时确定（配置开关 + 助手可执行文件是否存在），
// 流水线据此做静态分支，不做运行时探测。该阶段严格 best-effort，
// 失败只降级为空列表，绝不让任务失败。
type Pyannote struct {
	binPath   string
	hfToken   string
	speakers  int
	available bool
}

func New(ctx context.Context) *Pyannote {
	d := &Pyannote{
		binPath:  g.Cfg().MustGet(ctx, "diarize.bin", "pyannote-helper").String(),
		hfToken:  g.Cfg().MustGet(ctx, "diarize.hfToken").String(),
		speakers: g.Cfg().MustGet(ctx, "diarize.speakers", 0).Int(),
	}
	if g.Cfg().MustGet(ctx, "diarize.enabled", false).Bool() {
		if _, err := exec.LookPath(d.binPath); err == nil {
			d.available = true
		} else {
			g.Log().Warningf(ctx, "说话人分离已启用但助手 %s 不可用，功能降级: %v", d.binPath, err)
		}
	}
	return d
}

// Available 报告说话人分离能力是否可用
func (d *Pyannote) Available() bool {
	return d.available
}

// Diarize 对音频做说话人分离，返回按时间排序的说话区间
func (d *Pyannote) Diarize(ctx context.Context, audioPath string) ([]model.SpeakerTurn, error) {
	if !d.available {
		return nil, nil
	}

	args := []string{"--audio", audioPath}
	if d.hfToken != "" {
		args = append(args, "--hf-token", d.hfToken)
	}
	if d.speakers > 0 {
		args = append(args, "--num-speakers", strconv.Itoa(d.speakers))
	}
	cmd := exec.CommandContext(ctx, d.binPath, args...)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return nil, gerror.Newf("pyannote 分离失败: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, gerror.Wrap(err, "pyannote 助手进程启动失败")
	}

	var turns []model.SpeakerTurn
	if err := json.Unmarshal(out, &turns); err != nil {
		return nil, gerror.Wrap(err, "pyannote 输出解析失败")
	}
	return turns, nil
}
