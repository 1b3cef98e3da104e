package pipeline

import "whisper-transcript-service/internal/consts"

// CanTransition 校验状态机边。状态迁移单调：终态之后没有任何迁移，
// pending 不允许直接跳到 completed。
func CanTransition(from, to string) bool {
	switch from {
	case consts.StatusPending:
		// pending → failed 只发生在启动恢复时暂存音档已遗失的场景
		return to == consts.StatusProcessing || to == consts.StatusFailed
	case consts.StatusProcessing:
		return to == consts.StatusCompleted || to == consts.StatusFailed
	}
	return false
}
