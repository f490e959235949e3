package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brews_backend/internal/model"
)

// Connect opens the Postgres connection used by the whole process. The
// returned handle is passed into the controllers rather than held as a
// package global so tests can substitute their own database.
func Connect(dsn string) (*gorm.DB, error) {
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.New(pgConfig), gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Database connected successfully!")
	return db, nil
}

// Migrate creates or updates the four submission tables and rebuilds the
// recent_submissions union view.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&model.TrainingSignup{},
		&model.SponsorEnquiry{},
		&model.ContactSubmission{},
		&model.NewsletterSubscription{},
	}

	for _, m := range models {
		if !db.Migrator().HasTable(m) {
			if err := db.Migrator().CreateTable(m); err != nil {
				return err
			}
			log.Printf("Created table for %T\n", m)
		} else {
			if err := db.Migrator().AutoMigrate(m); err != nil {
				return err
			}
		}
	}

	return createRecentSubmissionsView(db)
}

// createRecentSubmissionsView drops and recreates the union view the "all"
// listing reads from. The SQL is kept dialect-neutral: it runs on both
// Postgres and the SQLite database the tests use.
func createRecentSubmissionsView(db *gorm.DB) error {
	if err := db.Exec("DROP VIEW IF EXISTS " + model.RecentSubmissionsView).Error; err != nil {
		return err
	}

	return db.Exec(`
		CREATE VIEW ` + model.RecentSubmissionsView + ` AS
		SELECT 'training' AS type, id, full_name AS name, email, created_at
		  FROM training_signups WHERE deleted_at IS NULL
		UNION ALL
		SELECT 'sponsor' AS type, id, contact_name AS name, email, created_at
		  FROM sponsor_enquiries WHERE deleted_at IS NULL
		UNION ALL
		SELECT 'contact' AS type, id, name, email, created_at
		  FROM contact_submissions WHERE deleted_at IS NULL
		UNION ALL
		SELECT 'newsletter' AS type, id, name, email, subscribed_at AS created_at
		  FROM newsletter_subscriptions WHERE is_active`).Error
}
