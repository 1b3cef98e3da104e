package summarize

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	"whisper-transcript-service/internal/consts"
)

// Status Ollama 服务可用性
type Status struct {
	Available bool     `json:"available"`
	Models    []string `json:"models"`
}

// Ollama 摘要适配器。调用本地 Ollama 的 /api/generate 生成摘要。
// 传输层错误在这里分类为 connection refused / timeout / other 三种业务错误码，
// 不向上层泄露裸错误。
type Ollama struct {
	baseURL   string
	modelName string
	timeout   time.Duration
}

func New(ctx context.Context) *Ollama {
	return &Ollama{
		baseURL:   g.Cfg().MustGet(ctx, "ollama.baseUrl", "http://localhost:11434").String(),
		modelName: g.Cfg().MustGet(ctx, "ollama.model", "qwen2.5:14b").String(),
		timeout:   time.Duration(g.Cfg().MustGet(ctx, "ollama.timeoutSeconds", 180).Int()) * time.Second,
	}
}

// Summarize 生成指定风格的摘要。未知风格回退 meeting。
func (o *Ollama) Summarize(ctx context.Context, text, style string) (string, error) {
	prompt := BuildPrompt(text, style)

	r, err := g.Client().Timeout(o.timeout).ContentJson().Post(ctx, o.baseURL+"/api/generate", g.Map{
		"model":  o.modelName,
		"prompt": prompt,
		"stream": false,
		"options": g.Map{
			"temperature": 0.3,
			"num_predict": 2048,
		},
	})
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer r.Close()

	if r.StatusCode != 200 {
		return "", gerror.NewCodef(consts.CodeExternal, "Ollama 返回非 200 状态：%s", r.Status)
	}

	body, err := gjson.LoadContent(r.ReadAll())
	if err != nil {
		return "", gerror.WrapCode(consts.CodeExternal, err, "Ollama 返回结果格式化失败")
	}
	summary := body.Get("response").String()
	if summary == "" {
		return "", gerror.NewCode(consts.CodeExternal, "Ollama 返回空摘要")
	}
	return summary, nil
}

// CheckStatus 检查 Ollama 服务状态并列出已安装模型。探测失败不算错误。
func (o *Ollama) CheckStatus(ctx context.Context) Status {
	r, err := g.Client().Timeout(5*time.Second).Get(ctx, o.baseURL+"/api/tags")
	if err != nil {
		return Status{Available: false, Models: []string{}}
	}
	defer r.Close()
	if r.StatusCode != 200 {
		return Status{Available: false, Models: []string{}}
	}

	body, err := gjson.LoadContent(r.ReadAll())
	if err != nil {
		return Status{Available: false, Models: []string{}}
	}
	status := Status{Available: true, Models: []string{}}
	for _, m := range body.Get("models").Array() {
		if name := gjson.New(m).Get("name").String(); name != "" {
			status.Models = append(status.Models, name)
		}
	}
	return status
}

// classifyTransportError 把传输层错误映射为业务错误码
func classifyTransportError(err error) error {
	var nerr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return gerror.WrapCode(consts.CodeConnectionRefused, err, "无法连接 Ollama 服务")
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &nerr) && nerr.Timeout():
		return gerror.WrapCode(consts.CodeTimeout, err, "摘要生成超时")
	default:
		return gerror.WrapCode(consts.CodeExternal, err, "调用 Ollama 服务失败")
	}
}
