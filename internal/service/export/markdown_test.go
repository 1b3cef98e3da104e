package export

import (
	"strings"
	"testing"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gtime"

	"whisper-transcript-service/internal/model/entity"
)

func sampleRecord() *entity.Transcript {
	return &entity.Transcript{
		Id:             "rec-1",
		Title:          "週會記錄",
		Status:         "completed",
		Language:       "zh",
		AudioDuration:  90,
		TranscriptText: "大家好 今天開會",
		TranscriptSegments: gjson.New([]g.Map{
			{"start": 0, "end": 90, "text": "大家好", "speaker": "SPEAKER_00"},
			{"start": 90, "end": 125, "text": "今天開會", "speaker": "SPEAKER_01"},
		}),
		Summary:   "## 摘要\n本週進度正常",
		CreatedAt: gtime.NewFromStr("2026-01-02 15:04:00"),
	}
}

func TestMarkdownLayout(t *testing.T) {
	out := Markdown(sampleRecord())
	lines := strings.Split(out, "\n")

	if lines[0] != "# 週會記錄" {
		t.Fatalf("title line = %q", lines[0])
	}
	for _, want := range []string{
		"**建立時間**: 2026-01-02 15:04",
		"**語言**: zh",
		"**時長**: 1:30",
		"## 完整轉錄",
		"**[00:00 - 01:30]** 大家好",
		"**[01:30 - 02:05]** 今天開會",
		"## 摘要",
		"本週進度正常",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	// 分段按输入顺序渲染，各出现一次
	first := strings.Index(out, "大家好")
	second := strings.Index(out, "今天開會")
	if first < 0 || second < 0 || second < first {
		t.Fatalf("segment order wrong:\n%s", out)
	}
	if strings.Count(out, "**[00:00 - 01:30]**") != 1 {
		t.Fatalf("segment rendered more than once:\n%s", out)
	}
}

// TestMarkdownRawTextFallback verifies records without segments render the raw
// transcript as a single block.
func TestMarkdownRawTextFallback(t *testing.T) {
	rec := sampleRecord()
	rec.TranscriptSegments = nil

	out := Markdown(rec)
	if !strings.Contains(out, "大家好 今天開會") {
		t.Fatalf("raw text missing:\n%s", out)
	}
	if strings.Contains(out, "[00:00") {
		t.Fatalf("unexpected segment prefix in fallback:\n%s", out)
	}
}

// TestMarkdownDefaults verifies empty title and zero duration handling.
func TestMarkdownDefaults(t *testing.T) {
	rec := sampleRecord()
	rec.Title = ""
	rec.AudioDuration = 0
	rec.Summary = ""

	out := Markdown(rec)
	if !strings.HasPrefix(out, "# 轉錄記錄") {
		t.Fatalf("default title missing:\n%s", out)
	}
	if strings.Contains(out, "時長") {
		t.Fatalf("zero duration should be omitted:\n%s", out)
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		sec  float64
		want string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{125.7, "02:05"},
		{3600, "60:00"},
	}
	for _, c := range cases {
		if got := clock(c.sec); got != c.want {
			t.Errorf("clock(%v) = %q, want %q", c.sec, got, c.want)
		}
	}
}
