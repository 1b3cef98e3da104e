package model

// Segment 一段带时间窗的转录文本。Speaker 由说话人分离阶段回填，
// 没有启用说话人分离时保持空串且 JSON 序列化时省略。
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// SpeakerTurn 说话人分离输出的一个说话区间，不单独落库，
// 合并后折叠进 Segment.Speaker。
type SpeakerTurn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

// TranscriptResult 语音转写适配器的输出
type TranscriptResult struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// FileInfo 暂存音频文件的元信息，随记录落库，进程重启后用于恢复
type FileInfo struct {
	StagedPath string `json:"staged_path"`
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
}
