package summarize

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"

	"whisper-transcript-service/internal/consts"
)

func testOllama(baseURL string) *Ollama {
	return &Ollama{
		baseURL:   baseURL,
		modelName: "qwen2.5:14b",
		timeout:   2 * time.Second,
	}
}

func TestSummarizeRequestShape(t *testing.T) {
	var captured *gjson.Json
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		body, err := gjson.LoadContent(raw)
		if err != nil {
			t.Errorf("parse body: %v", err)
		}
		captured = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"生成的摘要"}`))
	}))
	defer srv.Close()

	summary, err := testOllama(srv.URL).Summarize(context.Background(), "會議內容", consts.StyleBrief)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary != "生成的摘要" {
		t.Fatalf("summary = %q", summary)
	}

	if got := captured.Get("model").String(); got != "qwen2.5:14b" {
		t.Fatalf("model = %q", got)
	}
	if captured.Get("stream").Bool() {
		t.Fatal("stream should be false")
	}
	if got := captured.Get("options.temperature").Float64(); got != 0.3 {
		t.Fatalf("temperature = %v", got)
	}
	if got := captured.Get("options.num_predict").Int(); got != 2048 {
		t.Fatalf("num_predict = %v", got)
	}
	if prompt := captured.Get("prompt").String(); !strings.Contains(prompt, "會議內容") {
		t.Fatalf("prompt missing source text: %q", prompt)
	}
}

func TestBuildPromptStyleFallback(t *testing.T) {
	meeting := BuildPrompt("text", consts.StyleMeeting)
	if got := BuildPrompt("text", "nonsense"); got != meeting {
		t.Fatal("unknown style should fall back to meeting template")
	}
	// 三种风格模板互不相同，且都包含原文
	article := BuildPrompt("text", consts.StyleArticle)
	brief := BuildPrompt("text", consts.StyleBrief)
	if meeting == article || article == brief || meeting == brief {
		t.Fatal("style templates should differ")
	}
	for _, p := range []string{meeting, article, brief} {
		if !strings.Contains(p, "text") {
			t.Fatalf("prompt missing source text: %q", p)
		}
	}
}

func TestSummarizeConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close() // 端口随即不可达

	_, err := testOllama(base).Summarize(context.Background(), "text", consts.StyleMeeting)
	if err == nil {
		t.Fatal("expected error")
	}
	if gerror.Code(err) != consts.CodeConnectionRefused {
		t.Fatalf("code = %v, want connection refused, err: %v", gerror.Code(err), err)
	}
}

func TestSummarizeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{"response":"too late"}`))
	}))
	defer srv.Close()

	o := testOllama(srv.URL)
	o.timeout = 50 * time.Millisecond
	_, err := o.Summarize(context.Background(), "text", consts.StyleMeeting)
	if err == nil {
		t.Fatal("expected error")
	}
	if gerror.Code(err) != consts.CodeTimeout {
		t.Fatalf("code = %v, want timeout, err: %v", gerror.Code(err), err)
	}
}

func TestSummarizeBadResponses(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty response field", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response":""}`))
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()

			_, err := testOllama(srv.URL).Summarize(context.Background(), "text", consts.StyleMeeting)
			if err == nil {
				t.Fatal("expected error")
			}
			if gerror.Code(err) != consts.CodeExternal {
				t.Fatalf("code = %v, want external, err: %v", gerror.Code(err), err)
			}
		})
	}
}

func TestCheckStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"models":[{"name":"qwen2.5:14b"},{"name":"llama3:8b"}]}`))
	}))
	defer srv.Close()

	st := testOllama(srv.URL).CheckStatus(context.Background())
	if !st.Available {
		t.Fatal("expected available")
	}
	if len(st.Models) != 2 || st.Models[0] != "qwen2.5:14b" || st.Models[1] != "llama3:8b" {
		t.Fatalf("models = %v", st.Models)
	}
}

func TestCheckStatusUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	st := testOllama(base).CheckStatus(context.Background())
	if st.Available {
		t.Fatal("expected unavailable")
	}
	if st.Models == nil || len(st.Models) != 0 {
		t.Fatalf("models = %v, want empty slice", st.Models)
	}
}
