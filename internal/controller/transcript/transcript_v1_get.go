package transcript

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"

	v1 "whisper-transcript-service/api/transcript/v1"
	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/dao"
)

func (c *ControllerV1) Get(ctx context.Context, req *v1.GetReq) (res *v1.GetRes, err error) {
	res = &v1.GetRes{}
	record, err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).One()
	if err != nil {
		return nil, gerror.Wrap(err, "查询记录失败")
	}
	if record.IsEmpty() {
		return nil, gerror.NewCode(consts.CodeNotFound, "找不到此記錄")
	}
	if err = record.Struct(res); err != nil {
		return nil, gerror.Wrap(err, "解析记录数据失败")
	}
	return res, nil
}
