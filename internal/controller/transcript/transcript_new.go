package transcript

import (
	"whisper-transcript-service/api/transcript"
	"whisper-transcript-service/internal/service/pipeline"
	"whisper-transcript-service/internal/service/summarize"
)

type ControllerV1 struct {
	pipeline   *pipeline.Manager
	summarizer *summarize.Ollama
}

func NewV1(pm *pipeline.Manager, summarizer *summarize.Ollama) transcript.ITranscriptV1 {
	return &ControllerV1{
		pipeline:   pm,
		summarizer: summarizer,
	}
}
