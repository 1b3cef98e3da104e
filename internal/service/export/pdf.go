package export

import (
	"bytes"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/gogf/gf/v2/errors/gerror"

	"whisper-transcript-service/internal/model/entity"
)

// 平台 CJK 字体候选路径，按顺序探测。探测不到就退回内置 Helvetica，
// 导出不会因为缺字体而报错。
var cjkFontCandidates = []string{
	"/System/Library/Fonts/PingFang.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"C:\\Windows\\Fonts\\msyh.ttf",
}

// Pdf 渲染 PDF 导出。A4、四边 2cm 边距，结构与其他两个格式一致。
func Pdf(rec *entity.Transcript) ([]byte, error) {
	docModel := buildDocument(rec)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	fontName := "Helvetica"
	if path := cjkFontPath(); path != "" {
		pdf.AddUTF8Font("cjk", "", path)
		fontName = "cjk"
	}
	pdf.AddPage()

	// 标题 + 元信息
	pdf.SetFont(fontName, "", 18)
	pdf.MultiCell(0, 9, docModel.Title, "", "L", false)
	pdf.Ln(2)
	pdf.SetFont(fontName, "", 11)
	pdf.MultiCell(0, 6, docModel.metaLine(), "", "L", false)
	pdf.Ln(6)

	// 摘要
	if docModel.Summary != "" {
		pdf.SetFont(fontName, "", 14)
		pdf.MultiCell(0, 7, "摘要", "", "L", false)
		pdf.Ln(1)
		pdf.SetFont(fontName, "", 11)
		for _, line := range docModel.summaryLines() {
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		pdf.Ln(5)
	}

	// 完整转录
	pdf.SetFont(fontName, "", 14)
	pdf.MultiCell(0, 7, "完整轉錄", "", "L", false)
	pdf.Ln(1)
	pdf.SetFont(fontName, "", 11)
	if len(docModel.Segments) > 0 {
		for _, seg := range docModel.Segments {
			pdf.MultiCell(0, 6, segmentWindow(seg)+" "+seg.Text, "", "L", false)
			pdf.Ln(1)
		}
	} else {
		for _, line := range splitParagraphs(docModel.RawText) {
			pdf.MultiCell(0, 6, line, "", "L", false)
			pdf.Ln(1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, gerror.Wrap(err, "生成 PDF 失败")
	}
	return buf.Bytes(), nil
}

// cjkFontPath 返回第一个能被 fpdf 正确解析的 CJK 字体路径。
// 先在一次性的探测实例上注册，避免把错误状态带进正式文档。
func cjkFontPath() string {
	for _, path := range cjkFontCandidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		probe := fpdf.New("P", "mm", "A4", "")
		probe.AddUTF8Font("probe", "", path)
		if probe.Ok() {
			return path
		}
	}
	return ""
}
