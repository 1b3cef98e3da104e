package export

import (
	"fmt"
	"strings"

	"whisper-transcript-service/internal/model/entity"
)

// Markdown 渲染 Markdown 导出
func Markdown(rec *entity.Transcript) string {
	doc := buildDocument(rec)
	var lines []string

	lines = append(lines, "# "+doc.Title, "")
	lines = append(lines, "**建立時間**: "+doc.Created)
	if doc.Language != "" {
		lines = append(lines, "**語言**: "+doc.Language)
	}
	if doc.Duration != "" {
		lines = append(lines, "**時長**: "+doc.Duration)
	}
	lines = append(lines, "")

	if doc.Summary != "" {
		lines = append(lines, "---", "", doc.Summary, "")
	}

	lines = append(lines, "---", "", "## 完整轉錄", "")
	if len(doc.Segments) > 0 {
		for _, seg := range doc.Segments {
			lines = append(lines, fmt.Sprintf("**%s** %s", segmentWindow(seg), seg.Text), "")
		}
	} else {
		lines = append(lines, doc.RawText)
	}

	return strings.Join(lines, "\n")
}
