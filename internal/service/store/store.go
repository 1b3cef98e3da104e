package store

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/dao"
	"whisper-transcript-service/internal/model/entity"
)

// DB 基于 gdb 的转录记录存取实现，satisfies pipeline.RecordStore。
// 流水线 worker 只持有这个句柄，不直接碰 dao。
type DB struct{}

func New() *DB {
	return &DB{}
}

// Get 按 id 查询记录，不存在时返回 (nil, nil)
func (s *DB) Get(ctx context.Context, id string) (*entity.Transcript, error) {
	var rec *entity.Transcript
	if err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, id).Scan(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update 按 id 更新指定列
func (s *DB) Update(ctx context.Context, id string, data g.Map) error {
	_, err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, id).Data(data).Update()
	return err
}

// ListUnfinished 列出所有非终态记录
func (s *DB) ListUnfinished(ctx context.Context) ([]*entity.Transcript, error) {
	var recs []*entity.Transcript
	err := dao.Transcript.Ctx(ctx).
		WhereIn(dao.Transcript.Columns().Status, []string{consts.StatusPending, consts.StatusProcessing}).
		Scan(&recs)
	return recs, err
}
