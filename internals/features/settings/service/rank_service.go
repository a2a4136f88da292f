package service

import (
	"errors"

	"gorm.io/gorm"
)

// Ranks are kept dense and unique ({1..N} after any successful reorder).
// Swaps go through a sentinel value so the unique index on rank never sees
// a duplicate mid-update; the whole swap commits or rolls back as one.
const rankSentinel = -1

var (
	ErrNotFound        = errors.New("record not found")
	ErrAlreadyAtTop    = errors.New("already at top")
	ErrAlreadyAtBottom = errors.New("already at bottom")
)

// RankedCollection maintains the strict total order over one table's rank
// column. Both Area and Default use it, each with its own order space.
type RankedCollection struct {
	Table string
}

var (
	AreaRanks    = RankedCollection{Table: "Area"}
	DefaultRanks = RankedCollection{Table: "Default"}
)

type rankRow struct {
	ID   int `gorm:"column:id"`
	Rank int `gorm:"column:rank"`
}

type RankAssignment struct {
	ID   int `json:"id" validate:"required"`
	Rank int `json:"rank"`
}

// NextRank returns max(rank)+1, or 1 for an empty collection, so a newly
// created record always sorts last.
func (rc RankedCollection) NextRank(tx *gorm.DB) (int, error) {
	var maxRank int
	err := tx.Table(rc.Table).Select("COALESCE(MAX(rank), 0)").Scan(&maxRank).Error
	if err != nil {
		return 0, err
	}
	return maxRank + 1, nil
}

// MoveUp swaps the record with its immediate predecessor in rank order.
func (rc RankedCollection) MoveUp(db *gorm.DB, id int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cur, err := rc.fetch(tx, id)
		if err != nil {
			return err
		}

		var upper rankRow
		err = tx.Table(rc.Table).Select("id, rank").
			Where("rank < ?", cur.Rank).
			Order("rank DESC").Limit(1).
			Take(&upper).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlreadyAtTop
		}
		if err != nil {
			return err
		}

		return rc.swap(tx, cur, upper)
	})
}

// MoveDown swaps the record with its immediate successor in rank order.
func (rc RankedCollection) MoveDown(db *gorm.DB, id int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cur, err := rc.fetch(tx, id)
		if err != nil {
			return err
		}

		var lower rankRow
		err = tx.Table(rc.Table).Select("id, rank").
			Where("rank > ?", cur.Rank).
			Order("rank ASC").Limit(1).
			Take(&lower).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlreadyAtBottom
		}
		if err != nil {
			return err
		}

		return rc.swap(tx, lower, cur)
	})
}

// Reorder writes caller-supplied ranks verbatim in one transaction, as the
// drag-and-drop UI sends them. Uniqueness of the supplied ranks is the
// caller's responsibility; the unique index rejects collisions.
func (rc RankedCollection) Reorder(db *gorm.DB, assignments []RankAssignment) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, a := range assignments {
			res := tx.Table(rc.Table).Where("id = ?", a.ID).Update("rank", a.Rank)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

func (rc RankedCollection) fetch(tx *gorm.DB, id int) (rankRow, error) {
	var cur rankRow
	err := tx.Table(rc.Table).Select("id, rank").Where("id = ?", id).Take(&cur).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cur, ErrNotFound
	}
	return cur, err
}

// swap exchanges the ranks of a and b: a parks on the sentinel, b takes
// a's rank, a takes b's old rank.
func (rc RankedCollection) swap(tx *gorm.DB, a, b rankRow) error {
	if err := tx.Table(rc.Table).Where("id = ?", a.ID).Update("rank", rankSentinel).Error; err != nil {
		return err
	}
	if err := tx.Table(rc.Table).Where("id = ?", b.ID).Update("rank", a.Rank).Error; err != nil {
		return err
	}
	return tx.Table(rc.Table).Where("id = ?", a.ID).Update("rank", b.Rank).Error
}
