package transcript

import (
	"context"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"

	v1 "whisper-transcript-service/api/transcript/v1"
	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/dao"
)

func (c *ControllerV1) Delete(ctx context.Context, req *v1.DeleteReq) (res *v1.DeleteRes, err error) {
	res = &v1.DeleteRes{}
	if sqlRes, err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.Id).Delete(); err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "删除记录失败")
	} else if affected, err := sqlRes.RowsAffected(); affected == 0 {
		return nil, gerror.NewCode(consts.CodeNotFound, "找不到此記錄")
	} else if err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "检查删除情况失败")
	}
	res.Success = true
	return
}
