package pipeline

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	"whisper-transcript-service/internal/model"
	"whisper-transcript-service/internal/model/entity"
)

// 流水线对外部协作者的依赖全部收敛为窄接口，由 cmd 注入实现。
// worker 不依赖任何进程级全局连接对象，便于用内存实现做确定性测试。

// RecordStore 转录记录存取
type RecordStore interface {
	// Get 按 id 查询记录，不存在时返回 (nil, nil)
	Get(ctx context.Context, id string) (*entity.Transcript, error)
	// Update 按 id 更新指定列
	Update(ctx context.Context, id string, data g.Map) error
	// ListUnfinished 列出所有非终态记录，用于启动恢复
	ListUnfinished(ctx context.Context) ([]*entity.Transcript, error)
}

// Transcriber 语音转写适配器。languageHint 为空表示自动检测。
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, languageHint string) (*model.TranscriptResult, error)
}

// Diarizer 说话人分离适配器。Available 为 false 或 Diarize 出错都只是降级，
// 流水线照常继续。
type Diarizer interface {
	Available() bool
	Diarize(ctx context.Context, audioPath string) ([]model.SpeakerTurn, error)
}

// Summarizer 摘要适配器
type Summarizer interface {
	Summarize(ctx context.Context, text, style string) (string, error)
}

// Prober 音频时长探测，失败返回 0.0，永不报错
type Prober interface {
	Duration(ctx context.Context, audioPath string) float64
}

// ArchiveItem 待归档的音频文件
type ArchiveItem struct {
	RecordID string
	FilePath string
	Filename string
}

// Archiver 可选的音频归档器。Submit 返回 true 表示归档器接手了文件，
// 上传完成后由归档器负责删除；返回 false 时调用方自行删除。
type Archiver interface {
	Enabled() bool
	Submit(ctx context.Context, item ArchiveItem) bool
}
