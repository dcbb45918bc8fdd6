package services

import (
	"gorm.io/gorm"

	"stagingcourse/apperror"
	courseModels "stagingcourse/models/course"
)

// Position reconciliation for ordered sibling scopes (chapters within a
// course, lessons within a chapter). Positions stay contiguous from 0 with
// no gaps or duplicates after every mutation; all multi-row renumbering runs
// inside the caller's transaction.

// ReorderInput carries the caller-supplied full ordering of sibling ids.
type ReorderInput struct {
	OrderedIDs []uint `json:"ordered_ids"`
}

// nextPosition returns the append position for a new sibling: one past the
// current maximum, or 0 for an empty scope.
func nextPosition(tx *gorm.DB, model interface{}, scopeColumn string, scopeID uint) (int, error) {
	var position int
	err := tx.Model(model).
		Where(scopeColumn+" = ?", scopeID).
		Select("COALESCE(MAX(position), -1) + 1").
		Scan(&position).Error
	return position, err
}

// validateReorder rejects any ordering that is not an exact permutation of
// the current sibling set: wrong length, unknown ids, or duplicates.
func validateReorder(current, supplied []uint) *apperror.Error {
	if len(supplied) != len(current) {
		return apperror.Validation("Ordering must list every item exactly once!")
	}
	known := make(map[uint]bool, len(current))
	for _, id := range current {
		known[id] = true
	}
	seen := make(map[uint]bool, len(supplied))
	for _, id := range supplied {
		if !known[id] {
			return apperror.Validation("Ordering contains an unknown id!")
		}
		if seen[id] {
			return apperror.Validation("Ordering contains a duplicate id!")
		}
		seen[id] = true
	}
	return nil
}

// renumberChapters reassigns positions 0..N-1 to the remaining chapters of a
// course in their existing relative order, skipping rows already in place.
func renumberChapters(tx *gorm.DB, courseID uint) error {
	var chapters []courseModels.Chapter
	if err := tx.Where("course_id = ?", courseID).Order("position asc").Find(&chapters).Error; err != nil {
		return err
	}
	for i, chapter := range chapters {
		if chapter.Position == i {
			continue
		}
		if err := tx.Model(&courseModels.Chapter{}).Where("id = ?", chapter.ID).Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

// renumberLessons is the lesson-scope counterpart of renumberChapters.
func renumberLessons(tx *gorm.DB, chapterID uint) error {
	var lessons []courseModels.Lesson
	if err := tx.Where("chapter_id = ?", chapterID).Order("position asc").Find(&lessons).Error; err != nil {
		return err
	}
	for i, lesson := range lessons {
		if lesson.Position == i {
			continue
		}
		if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", lesson.ID).Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}
