package transcript

import (
	"context"
	"strings"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	v1 "whisper-transcript-service/api/transcript/v1"
	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/dao"
	"whisper-transcript-service/internal/model/entity"
)

// Regenerate 只重跑摘要阶段。没有转录文本的记录直接拒绝，记录本身不做任何修改。
func (c *ControllerV1) Regenerate(ctx context.Context, req *v1.RegenerateReq) (res *v1.RegenerateRes, err error) {
	var record *entity.Transcript
	if err = dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).Scan(&record); err != nil {
		return nil, gerror.Wrap(err, "查询记录失败")
	}
	if err := regenerateGuard(record); err != nil {
		return nil, err
	}

	summary, err := c.summarizer.Summarize(ctx, record.TranscriptText, req.SummaryStyle)
	if err != nil {
		return nil, err
	}

	_, err = dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).Data(g.Map{
		dao.Transcript.Columns().SummaryStyle: req.SummaryStyle,
		dao.Transcript.Columns().Summary:      summary,
	}).Update()
	if err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "保存摘要失败")
	}

	res = &v1.RegenerateRes{}
	fresh, err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).One()
	if err != nil {
		return nil, gerror.Wrap(err, "查询记录失败")
	}
	if err = fresh.Struct(res); err != nil {
		return nil, gerror.Wrap(err, "解析记录数据失败")
	}
	return res, nil
}

// regenerateGuard 校验一条记录能否重新生成摘要。任何拒绝都发生在写库之前，
// 被拒绝的记录保持原样。
func regenerateGuard(rec *entity.Transcript) error {
	if rec == nil {
		return gerror.NewCode(consts.CodeNotFound, "找不到此記錄")
	}
	if strings.TrimSpace(rec.TranscriptText) == "" {
		return gerror.NewCode(consts.CodeValidation, "沒有轉錄內容可供摘要")
	}
	return nil
}
