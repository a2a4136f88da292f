package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&settingsModel.DefaultModel{}))
	return db
}

func createAppendDefault(t *testing.T, db *gorm.DB, n int) settingsModel.DefaultModel {
	t.Helper()
	var m settingsModel.DefaultModel
	err := db.Transaction(func(tx *gorm.DB) error {
		rank, err := DefaultRanks.NextRank(tx)
		if err != nil {
			return err
		}
		m = settingsModel.DefaultModel{
			Shorthand: fmt.Sprintf("短%d", n),
			Text:      fmt.Sprintf("訊息 %d", n),
			Rank:      rank,
		}
		return tx.Create(&m).Error
	})
	require.NoError(t, err)
	return m
}

func ranksInOrder(t *testing.T, db *gorm.DB) []int {
	t.Helper()
	var ranks []int
	require.NoError(t, db.Table("Default").Order("rank ASC").Pluck("rank", &ranks).Error)
	return ranks
}

func idsInRankOrder(t *testing.T, db *gorm.DB) []int {
	t.Helper()
	var ids []int
	require.NoError(t, db.Table("Default").Order("rank ASC").Pluck("id", &ids).Error)
	return ids
}

func requireDense(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	ranks := ranksInOrder(t, db)
	require.Len(t, ranks, n)
	for i, r := range ranks {
		require.Equal(t, i+1, r, "rank set must be exactly {1..N}")
	}
}

func TestCreateAppendAssignsDenseRanks(t *testing.T) {
	db := openTestDB(t)

	for i := 1; i <= 5; i++ {
		createAppendDefault(t, db, i)
		requireDense(t, db, i)
	}
}

func TestMoveUpSwapsWithPredecessor(t *testing.T) {
	db := openTestDB(t)
	a := createAppendDefault(t, db, 1)
	b := createAppendDefault(t, db, 2)
	c := createAppendDefault(t, db, 3)

	require.NoError(t, DefaultRanks.MoveUp(db, c.ID))
	require.Equal(t, []int{a.ID, c.ID, b.ID}, idsInRankOrder(t, db))
	requireDense(t, db, 3)
}

func TestMoveDownSwapsWithSuccessor(t *testing.T) {
	db := openTestDB(t)
	a := createAppendDefault(t, db, 1)
	b := createAppendDefault(t, db, 2)
	c := createAppendDefault(t, db, 3)

	require.NoError(t, DefaultRanks.MoveDown(db, a.ID))
	require.Equal(t, []int{b.ID, a.ID, c.ID}, idsInRankOrder(t, db))
	requireDense(t, db, 3)
}

func TestMoveUpThenDownRestoresOrder(t *testing.T) {
	db := openTestDB(t)
	for i := 1; i <= 4; i++ {
		createAppendDefault(t, db, i)
	}
	before := idsInRankOrder(t, db)

	mid := before[2]
	require.NoError(t, DefaultRanks.MoveUp(db, mid))
	require.NoError(t, DefaultRanks.MoveDown(db, mid))

	require.Equal(t, before, idsInRankOrder(t, db))
	requireDense(t, db, 4)
}

func TestMoveBoundaries(t *testing.T) {
	db := openTestDB(t)
	first := createAppendDefault(t, db, 1)
	last := createAppendDefault(t, db, 2)

	require.ErrorIs(t, DefaultRanks.MoveUp(db, first.ID), ErrAlreadyAtTop)
	require.ErrorIs(t, DefaultRanks.MoveDown(db, last.ID), ErrAlreadyAtBottom)

	// errors left the order untouched
	require.Equal(t, []int{first.ID, last.ID}, idsInRankOrder(t, db))
	requireDense(t, db, 2)
}

func TestMoveUnknownRecord(t *testing.T) {
	db := openTestDB(t)
	createAppendDefault(t, db, 1)

	require.ErrorIs(t, DefaultRanks.MoveUp(db, 999), ErrNotFound)
	require.ErrorIs(t, DefaultRanks.MoveDown(db, 999), ErrNotFound)
}

func TestRandomMoveSequenceKeepsRanksDense(t *testing.T) {
	db := openTestDB(t)
	var ids []int
	for i := 1; i <= 6; i++ {
		ids = append(ids, createAppendDefault(t, db, i).ID)
	}

	moves := []struct {
		up bool
		id int
	}{
		{true, ids[3]}, {true, ids[3]}, {false, ids[0]},
		{true, ids[5]}, {false, ids[2]}, {false, ids[2]},
	}
	for _, mv := range moves {
		var err error
		if mv.up {
			err = DefaultRanks.MoveUp(db, mv.id)
		} else {
			err = DefaultRanks.MoveDown(db, mv.id)
		}
		require.NoError(t, err)
		requireDense(t, db, 6)
	}
}

func TestReorderWritesRanksVerbatim(t *testing.T) {
	db := openTestDB(t)
	a := createAppendDefault(t, db, 1)
	b := createAppendDefault(t, db, 2)
	c := createAppendDefault(t, db, 3)

	// ranks are trusted as supplied, not re-derived
	err := DefaultRanks.Reorder(db, []RankAssignment{
		{ID: a.ID, Rank: 30},
		{ID: b.ID, Rank: 10},
		{ID: c.ID, Rank: 20},
	})
	require.NoError(t, err)
	require.Equal(t, []int{b.ID, c.ID, a.ID}, idsInRankOrder(t, db))
	require.Equal(t, []int{10, 20, 30}, ranksInOrder(t, db))
}

func TestReorderUnknownIDRollsBack(t *testing.T) {
	db := openTestDB(t)
	a := createAppendDefault(t, db, 1)
	b := createAppendDefault(t, db, 2)

	err := DefaultRanks.Reorder(db, []RankAssignment{
		{ID: a.ID, Rank: 40},
		{ID: 999, Rank: 50},
	})
	require.ErrorIs(t, err, ErrNotFound)

	// the whole batch rolled back
	require.Equal(t, []int{1, 2}, ranksInOrder(t, db))
	require.Equal(t, []int{a.ID, b.ID}, idsInRankOrder(t, db))
}
