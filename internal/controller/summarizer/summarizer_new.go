package summarizer

import (
	"whisper-transcript-service/api/summarizer"
	"whisper-transcript-service/internal/service/summarize"
)

type ControllerV1 struct {
	summarizer *summarize.Ollama
}

func NewV1(s *summarize.Ollama) summarizer.ISummarizerV1 {
	return &ControllerV1{summarizer: s}
}
