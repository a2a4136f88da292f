package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	evaluateModel "bjjh_cleaning_backend/internals/features/evaluate/model"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&settingsModel.ClassModel{},
		&settingsModel.AreaModel{},
		&settingsModel.DefaultModel{},
		&evaluateModel.ReportModel{},
	))
	return db
}

func seedArea(t *testing.T, db *gorm.DB) settingsModel.AreaModel {
	t.Helper()
	class := settingsModel.ClassModel{Name: "701"}
	require.NoError(t, db.Create(&class).Error)
	area := settingsModel.AreaModel{Name: "三樓走廊", ClassID: class.ID, Rank: 1}
	require.NoError(t, db.Create(&area).Error)
	return area
}

func TestRepeatedCarriesOverFromReferenceDate(t *testing.T) {
	db := openTestDB(t)
	area := seedArea(t, db)

	require.NoError(t, db.Create(&settingsModel.DefaultModel{
		Shorthand: "垃圾", Text: "垃圾未清", Rank: 1,
	}).Error)
	require.NoError(t, db.Create(&evaluateModel.ReportModel{
		Date: "2024-06-07", Text: "垃圾未清", Repeated: 2, AreaID: area.ID,
	}).Error)

	got, err := DefaultsWithRecency(db, area.ID, "2024-06-10", "2024-06-07")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.False(t, got[0].ReportedToday)
	require.Equal(t, 3, got[0].RepeatedToday)
}

func TestNoMatchYieldsZero(t *testing.T) {
	db := openTestDB(t)
	area := seedArea(t, db)

	require.NoError(t, db.Create(&settingsModel.DefaultModel{
		Shorthand: "垃圾", Text: "垃圾未清", Rank: 1,
	}).Error)
	// different text, different date: no match either way
	require.NoError(t, db.Create(&evaluateModel.ReportModel{
		Date: "2024-06-05", Text: "黑板未擦", Repeated: 1, AreaID: area.ID,
	}).Error)

	got, err := DefaultsWithRecency(db, area.ID, "2024-06-10", "2024-06-07")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.False(t, got[0].ReportedToday)
	require.Equal(t, 0, got[0].RepeatedToday)
}

func TestReportedTodayIsExactTextMatch(t *testing.T) {
	db := openTestDB(t)
	area := seedArea(t, db)

	require.NoError(t, db.Create(&settingsModel.DefaultModel{
		Shorthand: "垃圾", Text: "垃圾未清", Rank: 1,
	}).Error)
	require.NoError(t, db.Create(&settingsModel.DefaultModel{
		Shorthand: "黑板", Text: "黑板未擦", Rank: 2,
	}).Error)
	require.NoError(t, db.Create(&evaluateModel.ReportModel{
		Date: "2024-06-10", Text: "垃圾未清", AreaID: area.ID,
	}).Error)

	got, err := DefaultsWithRecency(db, area.ID, "2024-06-10", "2024-06-07")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].ReportedToday)
	require.False(t, got[1].ReportedToday)
}

func TestRecencyIgnoresOtherAreas(t *testing.T) {
	db := openTestDB(t)
	area := seedArea(t, db)
	other := settingsModel.AreaModel{Name: "四樓走廊", ClassID: area.ClassID, Rank: 2}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&settingsModel.DefaultModel{
		Shorthand: "垃圾", Text: "垃圾未清", Rank: 1,
	}).Error)
	require.NoError(t, db.Create(&evaluateModel.ReportModel{
		Date: "2024-06-07", Text: "垃圾未清", Repeated: 4, AreaID: other.ID,
	}).Error)

	got, err := DefaultsWithRecency(db, area.ID, "2024-06-10", "2024-06-07")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 0, got[0].RepeatedToday)
}

func TestFirstMatchWinsDeterministically(t *testing.T) {
	db := openTestDB(t)
	area := seedArea(t, db)

	require.NoError(t, db.Create(&settingsModel.DefaultModel{
		Shorthand: "垃圾", Text: "垃圾未清", Rank: 1,
	}).Error)
	// duplicate same-text reports on the reference date: lowest id wins
	require.NoError(t, db.Create(&evaluateModel.ReportModel{
		Date: "2024-06-07", Text: "垃圾未清", Repeated: 1, AreaID: area.ID,
	}).Error)
	require.NoError(t, db.Create(&evaluateModel.ReportModel{
		Date: "2024-06-07", Text: "垃圾未清", Repeated: 9, AreaID: area.ID,
	}).Error)

	got, err := DefaultsWithRecency(db, area.ID, "2024-06-10", "2024-06-07")
	require.NoError(t, err)
	require.Equal(t, 2, got[0].RepeatedToday)
}
