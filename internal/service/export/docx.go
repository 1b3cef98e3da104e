package export

import (
	"os"
	"path/filepath"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gomutex/godocx"
	"github.com/google/uuid"

	"whisper-transcript-service/internal/model/entity"
)

// Docx 渲染 Word 导出。结构与 Markdown 版一致：
// 标题用 0 级标题，摘要和完整转录用 1 级标题，
// 每个分段一行，时间窗前缀加粗、正文为普通 run。
func Docx(rec *entity.Transcript) ([]byte, error) {
	docModel := buildDocument(rec)

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, gerror.Wrap(err, "创建 docx 文档失败")
	}

	if _, err := doc.AddHeading(docModel.Title, 0); err != nil {
		return nil, gerror.Wrap(err, "写入 docx 标题失败")
	}
	doc.AddParagraph(docModel.metaLine())
	doc.AddEmptyParagraph()

	if docModel.Summary != "" {
		if _, err := doc.AddHeading("摘要", 1); err != nil {
			return nil, gerror.Wrap(err, "写入 docx 摘要标题失败")
		}
		for _, line := range docModel.summaryLines() {
			doc.AddParagraph(line)
		}
		doc.AddEmptyParagraph()
	}

	if _, err := doc.AddHeading("完整轉錄", 1); err != nil {
		return nil, gerror.Wrap(err, "写入 docx 转录标题失败")
	}
	if len(docModel.Segments) > 0 {
		for _, seg := range docModel.Segments {
			p := doc.AddEmptyParagraph()
			p.AddText(segmentWindow(seg) + " ").Bold(true)
			p.AddText(seg.Text)
		}
	} else {
		for _, line := range splitParagraphs(docModel.RawText) {
			doc.AddParagraph(line)
		}
	}

	// godocx 只提供按文件名保存，这里借临时文件中转成字节流
	tmp := filepath.Join(os.TempDir(), "export-"+uuid.NewString()+".docx")
	defer os.Remove(tmp)
	if err := doc.SaveTo(tmp); err != nil {
		return nil, gerror.Wrap(err, "保存 docx 文档失败")
	}
	data, err := os.ReadFile(tmp)
	if err != nil {
		return nil, gerror.Wrap(err, "读取 docx 文档失败")
	}
	return data, nil
}
