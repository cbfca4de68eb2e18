// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"taskhub/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Task{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("All migrations completed successfully")
}

func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_task ON comments(task_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
}
