package editor

import (
	"github.com/google/uuid"

	"lms/models"
)

// Draft is the transient working copy of one course's content blocks. It owns
// its slice exclusively; the stored course is untouched until Commit.
type Draft struct {
	course models.Course
	blocks []models.ContentBlock
}

// OpenDraft snapshots the course's current block list into a working copy.
// A new course with no content yields an empty draft.
func OpenDraft(course models.Course) *Draft {
	blocks := make([]models.ContentBlock, len(course.Content))
	copy(blocks, course.Content)
	return &Draft{course: course, blocks: blocks}
}

// Blocks returns a copy of the working block list in order.
func (d *Draft) Blocks() []models.ContentBlock {
	out := make([]models.ContentBlock, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// AddBlock appends a new block of the given kind with an empty value.
func (d *Draft) AddBlock(kind string) models.ContentBlock {
	block := models.ContentBlock{ID: uuid.NewString(), Kind: kind}
	d.blocks = append(d.blocks, block)
	return block
}

// UpdateBlockValue replaces the value of the matching block in place.
// Returns false when the id is not in the draft.
func (d *Draft) UpdateBlockValue(blockID, value string) bool {
	for i := range d.blocks {
		if d.blocks[i].ID == blockID {
			d.blocks[i].Value = value
			return true
		}
	}
	return false
}

// DeleteBlock removes the matching block; the rest keep their relative order.
// Returns false when the id is not in the draft.
func (d *Draft) DeleteBlock(blockID string) bool {
	for i := range d.blocks {
		if d.blocks[i].ID == blockID {
			d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
			return true
		}
	}
	return false
}

// MoveBlock removes the block from its current position and reinserts it at
// toIndex, clamped to the list bounds. Moving a block to its own position is
// the identity. Returns false when the id is not in the draft.
func (d *Draft) MoveBlock(blockID string, toIndex int) bool {
	from := -1
	for i := range d.blocks {
		if d.blocks[i].ID == blockID {
			from = i
			break
		}
	}
	if from == -1 {
		return false
	}

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(d.blocks)-1 {
		toIndex = len(d.blocks) - 1
	}
	if toIndex == from {
		return true
	}

	block := d.blocks[from]
	d.blocks = append(d.blocks[:from], d.blocks[from+1:]...)

	rest := d.blocks[toIndex:]
	d.blocks = append(d.blocks[:toIndex:toIndex], block)
	d.blocks = append(d.blocks, rest...)
	return true
}

// Commit returns the course entity with its content replaced by the working
// copy. The caller is responsible for saving it through the catalog.
func (d *Draft) Commit() models.Course {
	course := d.course
	course.Content = d.Blocks()
	return course
}
