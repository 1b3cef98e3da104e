package summarize

import (
	"fmt"

	"whisper-transcript-service/internal/consts"
)

// 摘要风格到提示词模板的封闭映射。未知风格一律回退 meeting，
// 模板选择与 HTTP 传输无关，可独立测试。
var promptTemplates = map[string]func(text string) string{
	consts.StyleMeeting: meetingPrompt,
	consts.StyleArticle: articlePrompt,
	consts.StyleBrief:   briefPrompt,
}

// BuildPrompt 根据风格生成最终提示词
func BuildPrompt(text, style string) string {
	tpl, ok := promptTemplates[style]
	if !ok {
		tpl = promptTemplates[consts.StyleMeeting]
	}
	return tpl(text)
}

func meetingPrompt(text string) string {
	return fmt.Sprintf(`你是一位專業的會議記錄助手。請將以下會議/對話內容整理成結構化摘要。

內容：
%s

請用以下格式輸出（使用繁體中文）：

## 摘要
（2-3 句話概述主要內容）

## 重點
- 重點1
- 重點2
- 重點3
（列出 3-5 個重點）

## 待辦事項
（如果有提到需要執行的事項，列出來；如果沒有，可以省略此段）

## 決議
（如果有做出決定，列出來；如果沒有，可以省略此段）
`, text)
}

func articlePrompt(text string) string {
	return fmt.Sprintf(`請將以下內容整理成簡潔的摘要（繁體中文）：

內容：
%s

請輸出：
1. 一段話摘要（約 100 字）
2. 3-5 個關鍵詞
`, text)
}

func briefPrompt(text string) string {
	return fmt.Sprintf(`請用 3 句話以內摘要以下內容（繁體中文）：

%s
`, text)
}
