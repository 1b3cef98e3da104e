package pipeline

import (
	"testing"

	"whisper-transcript-service/internal/consts"
	"whisper-transcript-service/internal/model"
)

// TestMergeSpeakersIdentity verifies empty diarization output leaves segments untouched.
func TestMergeSpeakersIdentity(t *testing.T) {
	segments := []model.Segment{
		{Start: 0, End: 2, Text: "hi"},
		{Start: 2, End: 4, Text: "bye"},
	}

	merged := MergeSpeakers(segments, nil)
	if len(merged) != len(segments) {
		t.Fatalf("len = %d, want %d", len(merged), len(segments))
	}
	for i, seg := range merged {
		if seg.Speaker != "" {
			t.Fatalf("segment %d got speaker %q, want empty", i, seg.Speaker)
		}
		if seg != segments[i] {
			t.Fatalf("segment %d = %+v, want %+v", i, seg, segments[i])
		}
	}
}

// TestMergeSpeakersMidpointMatch verifies midpoint interval assignment and the
// UNKNOWN fallback for uncovered segments.
func TestMergeSpeakersMidpointMatch(t *testing.T) {
	segments := []model.Segment{
		{Start: 0, End: 2, Text: "a"},   // mid 1
		{Start: 4, End: 6, Text: "b"},   // mid 5
		{Start: 10, End: 12, Text: "c"}, // mid 11, uncovered
	}
	turns := []model.SpeakerTurn{
		{Start: 0, End: 3, Speaker: "SPEAKER_00"},
		{Start: 3, End: 7, Speaker: "SPEAKER_01"},
	}

	merged := MergeSpeakers(segments, turns)
	want := []string{"SPEAKER_00", "SPEAKER_01", consts.SpeakerUnknown}
	for i, seg := range merged {
		if seg.Speaker != want[i] {
			t.Fatalf("segment %d speaker = %q, want %q", i, seg.Speaker, want[i])
		}
	}
}

// TestMergeSpeakersFirstMatchWins verifies overlap resolution: when two turns
// cover the same midpoint, the earlier one in input order is assigned.
// Boundaries are inclusive, so midpoint 3 hits both [0,3] and [3,5].
func TestMergeSpeakersFirstMatchWins(t *testing.T) {
	segments := []model.Segment{
		{Start: 0, End: 2, Text: "hi"},
		{Start: 2, End: 4, Text: "bye"},
	}
	turns := []model.SpeakerTurn{
		{Start: 0, End: 3, Speaker: "A"},
		{Start: 3, End: 5, Speaker: "B"},
	}

	merged := MergeSpeakers(segments, turns)
	want := []string{"A", "A"}
	for i, seg := range merged {
		if seg.Speaker != want[i] {
			t.Fatalf("segment %d speaker = %q, want %q", i, seg.Speaker, want[i])
		}
	}
}

// TestMergeSpeakersPreservesOrderAndText verifies the 1:1 mapping: count, order
// and segment payloads survive the merge.
func TestMergeSpeakersPreservesOrderAndText(t *testing.T) {
	segments := []model.Segment{
		{Start: 0, End: 1, Text: "one"},
		{Start: 1, End: 2, Text: "two"},
		{Start: 2, End: 3, Text: "three"},
	}
	turns := []model.SpeakerTurn{{Start: 0, End: 10, Speaker: "X"}}

	merged := MergeSpeakers(segments, turns)
	if len(merged) != 3 {
		t.Fatalf("len = %d, want 3", len(merged))
	}
	for i, seg := range merged {
		if seg.Text != segments[i].Text || seg.Start != segments[i].Start || seg.End != segments[i].End {
			t.Fatalf("segment %d payload changed: %+v", i, seg)
		}
		if seg.Speaker != "X" {
			t.Fatalf("segment %d speaker = %q, want X", i, seg.Speaker)
		}
	}
	// 输入切片不被原地修改
	if segments[0].Speaker != "" {
		t.Fatal("input slice was mutated")
	}
}
