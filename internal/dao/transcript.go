// =================================================================================
// This file is auto-generated by the GoFrame CLI tool. You may modify it as you wish.
// =================================================================================

package dao

import (
	"whisper-transcript-service/internal/dao/internal"
)

// transcriptDao is the data access object for the table transcript.
// You can define custom methods on it to extend its functionality as needed.
type transcriptDao struct {
	*internal.TranscriptDao
}

var (
	// Transcript is a globally accessible object for table transcript operations.
	Transcript = transcriptDao{internal.NewTranscriptDao()}
)

// Add your custom methods and functionality below.
