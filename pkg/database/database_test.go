package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brews_backend/internal/model"
)

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := migratedDB(t)

	for _, m := range []interface{}{
		&model.TrainingSignup{},
		&model.SponsorEnquiry{},
		&model.ContactSubmission{},
		&model.NewsletterSubscription{},
	} {
		require.True(t, db.Migrator().HasTable(m), "%T", m)
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := migratedDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestRecentSubmissionsView(t *testing.T) {
	db := migratedDB(t)
	base := time.Now().Add(-time.Hour)

	c := model.ContactSubmission{Name: "Lerato", Email: "l@example.org", Message: "hi"}
	c.CreatedAt = base
	require.NoError(t, db.Create(&c).Error)

	tr := model.TrainingSignup{FullName: "Thandi", Email: "t@example.org", Phone: "0123456789"}
	tr.CreatedAt = base.Add(time.Minute)
	require.NoError(t, db.Create(&tr).Error)

	require.NoError(t, db.Create(&model.NewsletterSubscription{
		Email: "sub@example.org", IsActive: true, SubscribedAt: base.Add(2 * time.Minute),
	}).Error)
	require.NoError(t, db.Create(&model.NewsletterSubscription{
		Email: "gone@example.org", IsActive: false, SubscribedAt: base.Add(3 * time.Minute),
	}).Error)

	var rows []model.RecentSubmission
	require.NoError(t, db.Table(model.RecentSubmissionsView).
		Order("created_at DESC").Find(&rows).Error)

	require.Len(t, rows, 3, "inactive newsletter rows stay out of the view")
	require.Equal(t, "newsletter", rows[0].Type)
	require.Equal(t, "training", rows[1].Type)
	require.Equal(t, "Thandi", rows[1].Name)
	require.Equal(t, "contact", rows[2].Type)
}

func TestViewExcludesSoftDeletedRows(t *testing.T) {
	db := migratedDB(t)

	c := model.ContactSubmission{Name: "Lerato", Email: "l@example.org", Message: "hi"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Delete(&c).Error)

	var rows []model.RecentSubmission
	require.NoError(t, db.Table(model.RecentSubmissionsView).Find(&rows).Error)
	require.Empty(t, rows)
}
