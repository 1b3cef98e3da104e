package transcript

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"

	v1 "whisper-transcript-service/api/transcript/v1"
	"whisper-transcript-service/internal/dao"
)

func (c *ControllerV1) List(ctx context.Context, req *v1.ListReq) (res *v1.ListRes, err error) {
	res = &v1.ListRes{}
	cols := dao.Transcript.Columns()

	if res.Total, err = dao.Transcript.Ctx(ctx).Count(); err != nil {
		return nil, gerror.Wrap(err, "统计记录总数失败")
	}
	if err = dao.Transcript.Ctx(ctx).
		OrderDesc(cols.CreatedAt).
		Offset(req.Offset).
		Limit(req.Limit).
		Scan(&res.Transcripts); err != nil {
		return nil, gerror.Wrap(err, "查询数据库失败")
	}
	return res, nil
}
