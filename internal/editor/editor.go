// Package editor holds the block-sequence operations behind the admin
// post editor. Every operation is a pure function over a block list so
// the logic stays unit-testable independent of the HTTP layer that
// drives it.
package editor

import (
	"github.com/google/uuid"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
)

// NewBlock constructs a fresh block of the given kind with a unique id,
// empty content and, for headings, a default level of 2.
func NewBlock(kind domain.BlockType) domain.Block {
	block := domain.Block{
		ID:      uuid.NewString(),
		Type:    kind,
		Content: "",
	}

	switch kind {
	case domain.BlockHeading:
		block.Level = 2
	case domain.BlockSponsored:
		block.Sponsored = &domain.SponsoredData{}
	}

	return block
}

// Append returns a new list with a fresh block of the given kind at the
// end.
func Append(blocks domain.BlockList, kind domain.BlockType) (domain.BlockList, domain.Block) {
	block := NewBlock(kind)
	out := make(domain.BlockList, 0, len(blocks)+1)
	out = append(out, blocks...)
	out = append(out, block)
	return out, block
}

// ReplaceAt replaces the block at index with the given value, keeping
// the original block's id. The editor only calls this with indices it
// owns; an out-of-range index is rejected rather than panicking.
func ReplaceAt(blocks domain.BlockList, index int, block domain.Block) (domain.BlockList, error) {
	if index < 0 || index >= len(blocks) {
		return nil, common.ErrBlockNotFound
	}

	out := make(domain.BlockList, len(blocks))
	copy(out, blocks)

	block.ID = out[index].ID
	out[index] = block
	return out, nil
}

// RemoveAt removes the block at index; the sequence compacts
func RemoveAt(blocks domain.BlockList, index int) (domain.BlockList, error) {
	if index < 0 || index >= len(blocks) {
		return nil, common.ErrBlockNotFound
	}

	out := make(domain.BlockList, 0, len(blocks)-1)
	out = append(out, blocks[:index]...)
	out = append(out, blocks[index+1:]...)
	return out, nil
}

// Reorder moves the block identified by fromID to the position the
// toID block currently occupies, shifting the blocks between them by
// one. No-op when the ids resolve to the same position or either is
// absent.
func Reorder(blocks domain.BlockList, fromID, toID string) domain.BlockList {
	from := indexOf(blocks, fromID)
	to := indexOf(blocks, toID)
	if from < 0 || to < 0 || from == to {
		return blocks
	}

	out := make(domain.BlockList, len(blocks))
	copy(out, blocks)

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

func indexOf(blocks domain.BlockList, id string) int {
	for i, b := range blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
