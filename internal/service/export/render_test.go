package export

import (
	"bytes"
	"testing"
)

// 二进制格式只做冒烟检查：能渲染出格式正确的非空文件即可，
// 版式结构已由 Markdown 测试覆盖（三个格式共享 buildDocument）。

func TestDocxSmoke(t *testing.T) {
	data, err := Docx(sampleRecord())
	if err != nil {
		t.Fatalf("docx: %v", err)
	}
	// docx 是 zip 容器
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("not a zip file, first bytes: %v", data[:4])
	}
}

func TestPdfSmoke(t *testing.T) {
	data, err := Pdf(sampleRecord())
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("not a pdf file, first bytes: %v", data[:8])
	}
}
