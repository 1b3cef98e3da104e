package pipeline

import (
	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/model"
)

// MergeSpeakers 把说话人区间折叠进转录分段。纯函数，无 I/O。
//
// 规则：
//   - turns 为空时原样返回输入分段，不添加也不修改 speaker；
//   - 否则对每个转录分段取中点 m = (start+end)/2，按输入顺序扫描 turns，
//     第一个满足 start ≤ m ≤ end 的闭区间胜出（区间重叠时先出现者优先）；
//   - 没有区间覆盖中点时标记为 UNKNOWN。
//
// 输出与输入分段一一对应，数量和顺序不变。
func MergeSpeakers(segments []model.Segment, turns []model.SpeakerTurn) []model.Segment {
	if len(turns) == 0 {
		return segments
	}

	merged := make([]model.Segment, len(segments))
	for i, seg := range segments {
		mid := (seg.Start + seg.End) / 2

		speaker := ""
		for _, turn := range turns {
			if turn.Start <= mid && mid <= turn.End {
				speaker = turn.Speaker
				break
			}
		}
		if speaker == "" {
			speaker = consts.SpeakerUnknown
		}

		seg.Speaker = speaker
		merged[i] = seg
	}
	return merged
}
