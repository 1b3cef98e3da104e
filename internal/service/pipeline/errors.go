package pipeline

import (
	"github.com/gogf/gf/v2/errors/gerror"

	"whisper-transcript-service/internal/consts"
)

// ErrAlreadyRunning 同一条记录的流水线已在运行，二次触发被拒绝
var ErrAlreadyRunning = gerror.NewCode(consts.CodeValidation, "该任务已在处理中")

// failureSummary 把阶段错误转成写进 summary 字段的一行诊断文案。
// 失败记录复用 summary 字段承载诊断（沿袭既有产品行为），
// 调用方读取 summary 前必须先检查 status。
// 文案面向最终用户，保持繁体中文。
func failureSummary(err error) string {
	switch gerror.Code(err) {
	case consts.CodeConnectionRefused:
		return "錯誤：無法連接 Ollama 服務"
	case consts.CodeTimeout:
		return "錯誤：摘要生成超時"
	default:
		return "處理失敗: " + err.Error()
	}
}
