package pipeline

import (
	"context"
	"os"

	"github.com/gogf/gf/v2/frame/g"

	"whisper-transcript-service/internal/consts"
)

// Recover 恢复上一个进程遗留的未完成任务。暂存音频仍在的记录重新入队，
// 音频已经丢失的记录直接标记失败。在服务启动时调用一次。
func (m *Manager) Recover(ctx context.Context) {
	records, err := m.deps.Store.ListUnfinished(ctx)
	if err != nil {
		g.Log().Errorf(ctx, "查询未完成任务失败，跳过恢复: %v", err)
		return
	}

	recovered := 0
	for _, rec := range records {
		staged := ""
		if rec.FileInfo != nil {
			staged = rec.FileInfo.Get("staged_path").String()
		}

		if staged != "" {
			if _, err := os.Stat(staged); err == nil {
				if err := m.Enqueue(ctx, rec.Id, staged); err != nil {
					g.Log().Warningf(ctx, "[%s] 恢复入队失败: %v", rec.Id, err)
					continue
				}
				recovered++
				continue
			}
		}

		if err := m.transition(ctx, rec.Id, rec.Status, consts.StatusFailed, g.Map{
			"summary": "處理失敗: 服務重啟後找不到暫存音檔，請重新上傳",
		}); err != nil {
			g.Log().Errorf(ctx, "[%s] 标记失败状态出错: %v", rec.Id, err)
		}
	}

	if len(records) > 0 {
		g.Log().Infof(ctx, "启动恢复完成：重新入队 %d 个，丢弃 %d 个", recovered, len(records)-recovered)
	}
}
