// handlers/init.go - handler wiring
package handlers

import (
	"os"

	"taskhub/database"
	"taskhub/notify"
	"taskhub/services"
	"taskhub/store"
)

var (
	userStore   store.UserStore
	taskService *services.TaskService
	teamService *services.TeamService
)

// Init wires stores, services and the notification dispatcher. Must be
// called after database.InitDB.
func Init() {
	db := database.GetDB()

	users := store.NewUserStore(db)
	tasks := store.NewTaskStore(db)
	teams := store.NewTeamStore(db)

	var sender notify.Sender = notify.NopSender{}
	if smtp := notify.NewSMTPSenderFromEnv(); smtp != nil {
		sender = smtp
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@taskhub.local"
	}
	dispatcher := notify.NewDispatcher(sender, from)

	userStore = users
	taskService = services.NewTaskService(tasks, users, dispatcher)
	teamService = services.NewTeamService(teams, users)
}
