package consts

import (
	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/frame/g"
)

// 任务状态机：pending → processing → {completed | failed}。
// completed / failed 为终态，不允许再迁移。
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// 摘要风格
const (
	StyleMeeting = "meeting"
	StyleArticle = "article"
	StyleBrief   = "brief"
)

// 说话人区间未覆盖转录分段时使用的占位标签
const SpeakerUnknown = "UNKNOWN"

// 导出格式
const (
	FormatMarkdown = "markdown"
	FormatDocx     = "docx"
	FormatPdf      = "pdf"
)

const (
	MaxUploadSize = 1024 * 1024 * 1024 // 1GB
)

var (
	// AudioExt 支持的音频后缀。value 是 mimetype 检测出的大类，仅作记录用途。
	AudioExt = g.MapStrStr{
		".mp3":  "audio",
		".wav":  "audio",
		".m4a":  "audio",
		".flac": "audio",
		".ogg":  "audio",
		".aac":  "audio",
		".webm": "audio",
	}

	// ExportContentType 导出格式对应的 Content-Type
	ExportContentType = g.MapStrStr{
		FormatMarkdown: "text/markdown; charset=utf-8",
		FormatDocx:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		FormatPdf:      "application/pdf",
	}

	// ExportFileExt 导出格式对应的文件后缀
	ExportFileExt = g.MapStrStr{
		FormatMarkdown: "md",
		FormatDocx:     "docx",
		FormatPdf:      "pdf",
	}
)

// 业务错误码。控制器边界返回 CodeValidation / CodeNotFound；
// 外部服务错误由适配器分类为 connection refused / timeout / other 三种，
// 不允许裸的传输层错误越过适配器边界。
var (
	CodeValidation        = gcode.New(1001, "validation error", nil)
	CodeNotFound          = gcode.New(1002, "not found", nil)
	CodeConnectionRefused = gcode.New(1101, "external service connection refused", nil)
	CodeTimeout           = gcode.New(1102, "external service timeout", nil)
	CodeExternal          = gcode.New(1103, "external service error", nil)
	CodeProcessing        = gcode.New(1104, "processing error", nil)
)

// IsTerminalStatus 检查状态是否为终态
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}
