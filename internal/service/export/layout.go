package export

import (
	"fmt"
	"strings"

	"github.com/gogf/gf/v2/util/gconv"

	"whisper-transcript-service/internal/model"
	"whisper-transcript-service/internal/model/entity"
)

// 三个导出格式共享同一份逻辑文档结构：标题 + 元信息行、摘要段、完整转录段。
// 调用方（控制器）保证 transcript_text 非空之后才会走到渲染器。

// document 渲染器消费的逻辑文档
type document struct {
	Title    string
	Created  string          // 建立時間，yyyy-MM-dd HH:mm
	Language string          // 可选
	Duration string          // 可选，M:SS
	Summary  string          // 原始摘要文本，按换行拆段
	Segments []model.Segment // 为空时退回 RawText 整块输出
	RawText  string
}

// buildDocument 从记录构建逻辑文档
func buildDocument(rec *entity.Transcript) document {
	doc := document{
		Title:    rec.Title,
		Language: rec.Language,
		Summary:  rec.Summary,
		Segments: segmentsOf(rec),
		RawText:  rec.TranscriptText,
	}
	if doc.Title == "" {
		doc.Title = "轉錄記錄"
	}
	if rec.CreatedAt != nil {
		doc.Created = rec.CreatedAt.Format("Y-m-d H:i")
	}
	if rec.AudioDuration > 0 {
		doc.Duration = fmt.Sprintf("%d:%02d", int(rec.AudioDuration)/60, int(rec.AudioDuration)%60)
	}
	return doc
}

// metaLine 组装 "建立時間: ... | 語言: ... | 時長: ..." 元信息行
func (d document) metaLine() string {
	line := "建立時間: " + d.Created
	if d.Language != "" {
		line += " | 語言: " + d.Language
	}
	if d.Duration != "" {
		line += " | 時長: " + d.Duration
	}
	return line
}

// summaryLines 摘要按换行拆段，去掉空行
func (d document) summaryLines() []string {
	return splitParagraphs(d.Summary)
}

// splitParagraphs 文本按换行拆段，去掉空行
func splitParagraphs(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// clock 秒数格式化为 MM:SS，90 秒 → "01:30"
func clock(sec float64) string {
	return fmt.Sprintf("%02d:%02d", int(sec)/60, int(sec)%60)
}

// segmentWindow 分段的时间窗前缀，如 "[00:00 - 01:30]"
func segmentWindow(seg model.Segment) string {
	return fmt.Sprintf("[%s - %s]", clock(seg.Start), clock(seg.End))
}

func segmentsOf(rec *entity.Transcript) []model.Segment {
	if rec.TranscriptSegments == nil {
		return nil
	}
	var segs []model.Segment
	if err := gconv.Structs(rec.TranscriptSegments.Interface(), &segs); err != nil {
		return nil
	}
	return segs
}
