package dtype

import (
	"slices"

	"github.com/pkg/errors"

	"rune-savior/ds"
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

// Sequence is an animation: a list of frames with their lengths in client
// ticks, plus playback rules.
type Sequence struct {
	ID                  int32
	FrameLengths        []uint16
	FrameIDs            []int32
	FrameStep           int32
	ForcedPriority      uint8
	LeftHandItem        int32
	RightHandItem       int32
	MaxLoops            uint8
	PrecedenceAnimating int32
	PriorityWalking     int32
	ReplyMode           uint8
}

var ErrFrameCountMismatch = errors.New("frame lengths and frame ids differ in count")

func NewSequence(id int32) Sequence {
	return Sequence{
		ID:                  id,
		FrameStep:           -1,
		ForcedPriority:      5,
		LeftHandItem:        -1,
		RightHandItem:       -1,
		MaxLoops:            99,
		PrecedenceAnimating: -1,
		PriorityWalking:     -1,
		ReplyMode:           2,
	}
}

func readFrames(reader *lbytes.Reader, s *Sequence) error {
	count, err := reader.ReadUInt16()
	if err != nil {
		return err
	}
	lengths := make([]uint16, count)
	for i := range lengths {
		if lengths[i], err = reader.ReadUInt16(); err != nil {
			return err
		}
	}
	frameIDs := make([]int32, count)
	for i := range frameIDs {
		if frameIDs[i], err = reader.ReadInt32(); err != nil {
			return err
		}
	}
	s.FrameLengths, s.FrameIDs = lengths, frameIDs
	return nil
}

func writeFrames(writer *lbytes.Writer, s *Sequence) {
	if len(s.FrameLengths) != len(s.FrameIDs) {
		writer.Fail(errors.Wrapf(
			ErrFrameCountMismatch,
			"%d lengths, %d ids", len(s.FrameLengths), len(s.FrameIDs),
		))
		return
	}
	if !dcodec.WriteCount(writer, lbytes.EncodingU16, len(s.FrameLengths), "frames") {
		return
	}
	for _, length := range s.FrameLengths {
		writer.WriteUInt16(length)
	}
	for _, frameID := range s.FrameIDs {
		writer.WriteInt32(frameID)
	}
}

var SequenceSchema = dcodec.NewSchema(
	KindSequence,
	TableSequence,
	NewSequence,
	func(s *Sequence) int32 { return s.ID },
	[]dcodec.Field[Sequence]{
		{
			Opcode:    1,
			Name:      "frames",
			ReadFunc:  readFrames,
			WriteFunc: writeFrames,
			EqualFunc: func(a *Sequence, b *Sequence) bool {
				return slices.Equal(a.FrameLengths, b.FrameLengths) && slices.Equal(a.FrameIDs, b.FrameIDs)
			},
			CopyFunc: func(dst *Sequence, src *Sequence) {
				dst.FrameLengths = ds.ShallowCopy(src.FrameLengths)
				dst.FrameIDs = ds.ShallowCopy(src.FrameIDs)
			},
			ValueFunc: func(s *Sequence) any {
				return map[string]any{"lengths": s.FrameLengths, "ids": s.FrameIDs}
			},
		},
		dcodec.Int[Sequence](2, "frame_step", lbytes.EncodingU16Nullable, func(s *Sequence) *int32 { return &s.FrameStep }),
		dcodec.Int[Sequence](5, "forced_priority", lbytes.EncodingU8, func(s *Sequence) *uint8 { return &s.ForcedPriority }),
		dcodec.Int[Sequence](6, "left_hand_item", lbytes.EncodingU16Nullable, func(s *Sequence) *int32 { return &s.LeftHandItem }),
		dcodec.Int[Sequence](7, "right_hand_item", lbytes.EncodingU16Nullable, func(s *Sequence) *int32 { return &s.RightHandItem }),
		dcodec.Int[Sequence](8, "max_loops", lbytes.EncodingU8, func(s *Sequence) *uint8 { return &s.MaxLoops }),
		dcodec.Int[Sequence](9, "precedence_animating", lbytes.EncodingU8, func(s *Sequence) *int32 { return &s.PrecedenceAnimating }),
		dcodec.Int[Sequence](10, "priority_walking", lbytes.EncodingU8, func(s *Sequence) *int32 { return &s.PriorityWalking }),
		dcodec.Int[Sequence](11, "reply_mode", lbytes.EncodingU8, func(s *Sequence) *uint8 { return &s.ReplyMode }),
	},
)
