package transcript

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/net/ghttp"

	v1 "whisper-transcript-service/api/transcript/v1"
	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/dao"
	"whisper-transcript-service/internal/model/entity"
	"whisper-transcript-service/internal/service/export"
)

// Export 导出转录记录。三种格式渲染同一份逻辑文档，
// 响应直接写文件字节，不走统一 JSON 包装。
func (c *ControllerV1) Export(ctx context.Context, req *v1.ExportReq) (res *v1.ExportRes, err error) {
	var record *entity.Transcript
	if err = dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).Scan(&record); err != nil {
		return nil, gerror.Wrap(err, "查询记录失败")
	}
	if record == nil {
		return nil, gerror.NewCode(consts.CodeNotFound, "找不到此記錄")
	}
	if strings.TrimSpace(record.TranscriptText) == "" {
		return nil, gerror.NewCode(consts.CodeValidation, "沒有內容可匯出")
	}

	var data []byte
	switch req.Format {
	case consts.FormatMarkdown:
		data = []byte(export.Markdown(record))
	case consts.FormatDocx:
		data, err = export.Docx(record)
	case consts.FormatPdf:
		data, err = export.Pdf(record)
	}
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(record.Title)
	if name == "" {
		name = "transcript"
	}
	r := ghttp.RequestFromCtx(ctx)
	r.Response.Header().Set("Content-Type", consts.ExportContentType[req.Format])
	r.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.%s"`, name, consts.ExportFileExt[req.Format]))
	r.Response.Write(data)
	return &v1.ExportRes{}, nil
}
