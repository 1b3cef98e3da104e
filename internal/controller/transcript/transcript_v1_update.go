package transcript

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	v1 "whisper-transcript-service/api/transcript/v1"
	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/dao"
)

// Update 更新标题或摘要风格。其他字段在 processing 窗口内归流水线独占，
// 不开放外部修改。
func (c *ControllerV1) Update(ctx context.Context, req *v1.UpdateReq) (res *v1.UpdateRes, err error) {
	data := g.Map{}
	if req.Title != "" {
		data["title"] = req.Title
	}
	if req.SummaryStyle != "" {
		data["summary_style"] = req.SummaryStyle
	}
	if len(data) == 0 {
		return nil, gerror.NewCode(consts.CodeValidation, "没有需要更新的字段")
	}

	sqlRes, err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).Data(data).Update()
	if err != nil {
		return nil, gerror.Wrap(err, "更新记录失败")
	}
	if affected, _ := sqlRes.RowsAffected(); affected == 0 {
		return nil, gerror.NewCode(consts.CodeNotFound, "找不到此記錄")
	}

	record, err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).One()
	if err != nil {
		return nil, gerror.Wrap(err, "查询记录失败")
	}
	res = &v1.UpdateRes{}
	if err = record.Struct(res); err != nil {
		return nil, gerror.Wrap(err, "解析记录数据失败")
	}
	return res, nil
}
