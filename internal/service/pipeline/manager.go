package pipeline

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/model"
	"whisper-transcript-service/internal/model/entity"
)

// Deps 流水线依赖，由 cmd 装配
type Deps struct {
	Store       RecordStore
	Transcriber Transcriber
	Diarizer    Diarizer
	Summarizer  Summarizer
	Prober      Prober
	Archiver    Archiver // 可为 nil
	Workers     int
	QueueSize   int
}

type job struct {
	id        string
	audioPath string
}

// Manager 调度转录流水线。固定大小的 worker 池限制同时运行的外部调用数；
// 同一条记录任何时刻至多一个活跃 run，二次触发返回 ErrAlreadyRunning。
// 单个 run 内各阶段严格串行，不支持中途取消。
type Manager struct {
	deps      Deps
	jobs      chan job
	mu        sync.Mutex
	active    map[string]struct{}
	startOnce sync.Once
}

func NewManager(deps Deps) *Manager {
	if deps.Workers <= 0 {
		deps.Workers = 2
	}
	if deps.QueueSize <= 0 {
		deps.QueueSize = 64
	}
	return &Manager{
		deps:   deps,
		jobs:   make(chan job, deps.QueueSize),
		active: make(map[string]struct{}),
	}
}

// Start 启动 worker 池，重复调用只生效一次
func (m *Manager) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		for i := 0; i < m.deps.Workers; i++ {
			go m.worker(ctx)
		}
		g.Log().Infof(ctx, "流水线已启动，workers=%d", m.deps.Workers)
	})
}

func (m *Manager) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-m.jobs:
			m.process(ctx, j)
		}
	}
}

// Enqueue 提交一个转录任务。调用立即返回，处理在后台进行。
// 同一 recordID 已有活跃 run 时返回 ErrAlreadyRunning。
func (m *Manager) Enqueue(ctx context.Context, recordID, audioPath string) error {
	m.mu.Lock()
	if _, ok := m.active[recordID]; ok {
		m.mu.Unlock()
		return ErrAlreadyRunning
	}
	m.active[recordID] = struct{}{}
	m.mu.Unlock()

	select {
	case m.jobs <- job{id: recordID, audioPath: audioPath}:
		return nil
	case <-ctx.Done():
		m.release(recordID)
		return gerror.Wrap(ctx.Err(), "任务入队被取消")
	}
}

func (m *Manager) release(id string) {
	m.mu.Lock()
	delete(m.active, id)
	m.mu.Unlock()
}

// process 执行一个完整的流水线 run，保证恰好写入一次终态。
// 暂存音频在所有退出路径上都被释放恰好一次：要么在这里删除，
// 要么移交归档器在上传后删除。
func (m *Manager) process(ctx context.Context, j job) {
	defer m.release(j.id)

	handoff := false
	defer func() {
		if handoff {
			return
		}
		if err := os.Remove(j.audioPath); err != nil && !os.IsNotExist(err) {
			g.Log().Warningf(ctx, "[%s] 删除暂存音频失败: %v", j.id, err)
		}
	}()

	rec, err := m.deps.Store.Get(ctx, j.id)
	if err != nil {
		g.Log().Errorf(ctx, "[%s] 查询记录失败，放弃处理: %v", j.id, err)
		return
	}
	if rec == nil {
		// 记录不存在，没有任何观察者，只记日志
		g.Log().Warningf(ctx, "[%s] 记录不存在，跳过", j.id)
		return
	}

	// 启动恢复场景下记录可能已处于 processing，不重复迁移
	if rec.Status != consts.StatusProcessing {
		if err := m.transition(ctx, j.id, rec.Status, consts.StatusProcessing, nil); err != nil {
			g.Log().Errorf(ctx, "[%s] 进入 processing 失败: %v", j.id, err)
			return
		}
	}

	finalFields, err := m.runStages(ctx, j, rec)
	if err != nil {
		g.Log().Errorf(ctx, "[%s] 处理失败: %v", j.id, err)
		if terr := m.transition(ctx, j.id, consts.StatusProcessing, consts.StatusFailed, g.Map{
			"summary": failureSummary(err),
		}); terr != nil {
			g.Log().Errorf(ctx, "[%s] 写入 failed 状态失败: %v", j.id, terr)
		}
		return
	}

	if err := m.transition(ctx, j.id, consts.StatusProcessing, consts.StatusCompleted, finalFields); err != nil {
		g.Log().Errorf(ctx, "[%s] 写入 completed 状态失败: %v", j.id, err)
		return
	}
	g.Log().Infof(ctx, "[%s] 转录任务完成", j.id)

	if m.deps.Archiver != nil && m.deps.Archiver.Enabled() {
		handoff = m.deps.Archiver.Submit(ctx, ArchiveItem{
			RecordID: j.id,
			FilePath: j.audioPath,
			Filename: rec.OriginalFilename,
		})
	}
}

// runStages 依次执行 时长探测 → 转写 → 说话人分离 → 合并 → 摘要。
// 转录结果在摘要之前先行落库，摘要失败不回滚已有转录内容。
// 返回写入 completed 状态时需要附带的字段。
func (m *Manager) runStages(ctx context.Context, j job, rec *entity.Transcript) (g.Map, error) {
	duration := m.deps.Prober.Duration(ctx, j.audioPath)

	tr, err := m.deps.Transcriber.Transcribe(ctx, j.audioPath, "")
	if err != nil {
		return nil, err
	}

	var turns []model.SpeakerTurn
	if m.deps.Diarizer != nil && m.deps.Diarizer.Available() {
		if turns, err = m.deps.Diarizer.Diarize(ctx, j.audioPath); err != nil {
			g.Log().Warningf(ctx, "[%s] 说话人分离失败，按无说话人信息继续: %v", j.id, err)
			turns = nil
		}
	}
	segments := MergeSpeakers(tr.Segments, turns)

	segJSON := "[]"
	if len(segments) > 0 {
		segJSON = gjson.New(segments).MustToJsonString()
	}
	if err := m.deps.Store.Update(ctx, j.id, g.Map{
		"audio_duration":      duration,
		"language":            tr.Language,
		"transcript_text":     tr.Text,
		"transcript_segments": segJSON,
	}); err != nil {
		return nil, gerror.WrapCode(consts.CodeProcessing, err, "转录结果落库失败")
	}

	fields := g.Map{}
	if strings.TrimSpace(tr.Text) != "" {
		summary, err := m.deps.Summarizer.Summarize(ctx, tr.Text, rec.SummaryStyle)
		if err != nil {
			return nil, err
		}
		fields["summary"] = summary
	}
	return fields, nil
}

// transition 校验并落库一次状态迁移
func (m *Manager) transition(ctx context.Context, id, from, to string, extra g.Map) error {
	if !CanTransition(from, to) {
		return gerror.NewCodef(consts.CodeProcessing, "非法状态迁移: %s -> %s", from, to)
	}
	data := g.Map{"status": to}
	for k, v := range extra {
		data[k] = v
	}
	return m.deps.Store.Update(ctx, id, data)
}
