package archive

import (
	"context"
	"os"
	"sync"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"

	"whisper-transcript-service/internal/service/pipeline"
)

// Service 把处理完成的原始音频归档到 TOS 对象存储，之后再删除本地文件。
// 归档是可选能力（archive.enabled，默认关闭），并且严格 best-effort：
// 上传失败只记日志，本地文件照删，绝不影响已完成的转录记录。
type Service struct {
	enabled   bool
	bucket    string
	workers   int
	queue     chan pipeline.ArchiveItem
	client    *tos.ClientV2
	startOnce sync.Once
}

// Init 按配置构建归档服务。未启用时返回一个 no-op 实例。
func Init(ctx context.Context) (*Service, error) {
	if !g.Cfg().MustGet(ctx, "archive.enabled", false).Bool() {
		return &Service{}, nil
	}

	client, err := newTosClient(ctx)
	if err != nil {
		return nil, err
	}

	s := &Service{
		enabled: true,
		bucket:  g.Cfg().MustGet(ctx, "archive.tos.bucket").String(),
		workers: g.Cfg().MustGet(ctx, "archive.workers", 2).Int(),
		queue:   make(chan pipeline.ArchiveItem, g.Cfg().MustGet(ctx, "archive.queueSize", 32).Int()),
		client:  client,
	}
	if s.bucket == "" {
		return nil, gerror.New("archive.tos.bucket 未配置")
	}
	s.start(ctx)
	return s, nil
}

// Disabled 返回一个 no-op 归档服务，配置加载失败时作为兜底。
func Disabled() *Service {
	return &Service{}
}

// Enabled 报告归档能力是否开启
func (s *Service) Enabled() bool {
	return s.enabled
}

// Submit 把文件交给归档队列。返回 true 表示归档器接手文件，
// 上传完成后由 worker 删除；队列已满或未启用时返回 false，文件仍归调用方。
func (s *Service) Submit(ctx context.Context, item pipeline.ArchiveItem) bool {
	if !s.enabled {
		return false
	}
	select {
	case s.queue <- item:
		return true
	default:
		g.Log().Warningf(ctx, "[%s] 归档队列已满，放弃归档", item.RecordID)
		return false
	}
}

func (s *Service) start(ctx context.Context) {
	s.startOnce.Do(func() {
		for i := 0; i < s.workers; i++ {
			go s.worker(ctx)
		}
	})
}

func (s *Service) worker(ctx context.Context) {
	logger := g.Log()
	for {
		select {
		case <-ctx.Done():
			return
		case item := <-s.queue:
			if err := s.uploadOne(ctx, item); err != nil {
				logger.Warningf(ctx, "[%s] 音频归档失败: %v", item.RecordID, err)
			} else {
				logger.Infof(ctx, "[%s] 音频已归档到 TOS", item.RecordID)
			}
			// 无论归档成败，本地暂存文件都在这里删除（恰好一次）
			if err := os.Remove(item.FilePath); err != nil && !os.IsNotExist(err) {
				logger.Warningf(ctx, "[%s] 删除暂存音频失败: %v", item.RecordID, err)
			}
		}
	}
}

func (s *Service) uploadOne(ctx context.Context, item pipeline.ArchiveItem) error {
	file, err := os.Open(item.FilePath)
	if err != nil {
		return gerror.Wrap(err, "打开暂存音频失败")
	}
	defer file.Close()

	key := item.RecordID + "/" + item.Filename
	if _, err := s.client.PutObjectV2(ctx, &tos.PutObjectV2Input{
		PutObjectBasicInput: tos.PutObjectBasicInput{
			Bucket: s.bucket,
			Key:    key,
		},
		Content: file,
	}); err != nil {
		if serverErr, ok := err.(*tos.TosServerError); ok {
			return gerror.Wrapf(serverErr, "TOS 上传失败，request_id=%s，status=%d", serverErr.RequestID, serverErr.StatusCode)
		}
		return gerror.Wrap(err, "TOS 上传失败")
	}
	return nil
}
