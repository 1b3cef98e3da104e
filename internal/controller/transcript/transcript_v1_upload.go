package transcript

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"

	v1 "whisper-transcript-service/api/transcript/v1"
	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/dao"
	"whisper-transcript-service/internal/model"
	"whisper-transcript-service/internal/model/entity"
)

// Upload 上传音频，创建 pending 记录并触发后台流水线。
// 响应立即返回，不等待处理完成。
func (c *ControllerV1) Upload(ctx context.Context, req *v1.UploadReq) (res *v1.UploadRes, err error) {
	file := g.RequestFromCtx(ctx).GetUploadFile("file")
	if file == nil {
		return nil, gerror.NewCode(consts.CodeValidation, "上传文件为空，请使用字段名'file'上传音频")
	}
	if file.Size >= consts.MaxUploadSize {
		return nil, gerror.NewCodef(consts.CodeValidation, "文件大小超过最大限制：%d / %d 字节", file.Size, consts.MaxUploadSize)
	}

	// 后缀名白名单 + mimetype 内容双重校验
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := consts.AudioExt[ext]; !ok {
		return nil, gerror.NewCodef(consts.CodeValidation, "不支援的音檔格式：%s", ext)
	}
	reader, err := file.Open()
	if err != nil {
		return nil, gerror.Wrap(err, "打开上传文件失败")
	}
	defer reader.Close()
	mType, err := mimetype.DetectReader(reader)
	if err != nil {
		return nil, gerror.Wrap(err, "检测文件类型失败")
	}
	if !strings.HasPrefix(mType.String(), "audio/") && !strings.HasPrefix(mType.String(), "video/") {
		return nil, gerror.NewCodef(consts.CodeValidation, "文件内容不是音频：%s", mType.String())
	}
	// mimetype.DetectReader 已经消费了开头一段，重置后再落盘
	if _, err := reader.Seek(0, 0); err != nil {
		return nil, gerror.Wrap(err, "无法重置文件读取器")
	}

	// 暂存到本地：目录按日期分桶，文件名用记录ID
	id := uuid.NewString()
	uploadDir := g.Cfg().MustGet(ctx, "upload.dir", "data/uploads").String()
	fileDir := filepath.Join(uploadDir, time.Now().Format("2006_01_02"))
	if err := os.MkdirAll(fileDir, 0o755); err != nil {
		return nil, gerror.Wrap(err, "创建上传目录失败")
	}
	staged := filepath.Join(fileDir, id+ext)
	dst, err := os.Create(staged)
	if err != nil {
		return nil, gerror.Wrap(err, "创建暂存文件失败")
	}
	if _, err := io.Copy(dst, reader); err != nil {
		_ = dst.Close()
		_ = os.Remove(staged)
		return nil, gerror.Wrap(err, "保存文件失败")
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(staged)
		return nil, gerror.Wrap(err, "保存文件失败")
	}

	title := req.Title
	if title == "" {
		title = file.Filename
	}
	if _, err := dao.Transcript.Ctx(ctx).Data(g.Map{
		"id":                id,
		"title":             title,
		"original_filename": file.Filename,
		"summary_style":     req.SummaryStyle,
		"status":            consts.StatusPending,
		"file_info": gjson.MustEncodeString(model.FileInfo{
			StagedPath: staged,
			Filename:   file.Filename,
			FileType:   mType.Extension(),
			FileSize:   file.Size,
		}),
	}).Insert(); err != nil {
		// 落库失败，暂存文件还归这里管
		_ = os.Remove(staged)
		return nil, gerror.Wrap(err, "创建数据库记录失败")
	}

	if err := c.pipeline.Enqueue(ctx, id, staged); err != nil {
		// 入队失败的记录没有 worker 会再碰它，当场清理暂存文件并标记失败，
		// 不把残留留给下次启动的 Recover
		_ = os.Remove(staged)
		_, _ = dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, id).Data(g.Map{
			"status":  consts.StatusFailed,
			"summary": "處理失敗: 任務排程失敗，請重新上傳",
		}).Update()
		return nil, gerror.Wrap(err, "任务入队失败")
	}

	var rec *entity.Transcript
	if err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, id).Scan(&rec); err != nil || rec == nil {
		return nil, gerror.Wrap(err, "查询新建记录失败")
	}
	return &v1.UploadRes{TranscriptMeta: metaOf(rec)}, nil
}

// metaOf 实体转元数据响应
func metaOf(rec *entity.Transcript) v1.TranscriptMeta {
	return v1.TranscriptMeta{
		Id:               rec.Id,
		Title:            rec.Title,
		OriginalFilename: rec.OriginalFilename,
		SummaryStyle:     rec.SummaryStyle,
		Status:           rec.Status,
		Language:         rec.Language,
		AudioDuration:    rec.AudioDuration,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}
