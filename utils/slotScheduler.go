package utils

import (
	"busline/database"
	"busline/schedule"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SLOT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSlotScheduler generates tomorrow's departure board every evening so
// the desks open with the board already in place. Already-generated dates are
// a no-op, the office can still generate ahead of time by hand.
func StartSlotScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 21 * * *", func() {
		tomorrow := time.Now().AddDate(0, 0, 1)

		slots, err := schedule.GenerateForDate(database.Database.Db, tomorrow)
		if err != nil {
			if errors.Is(err, schedule.ErrAlreadyExists) {
				logScheduler("Slots for " + tomorrow.Format("2006-01-02") + " already generated, skipping.")
				return
			}
			logScheduler("Error generating slots: " + err.Error())
			return
		}
		logScheduler(fmt.Sprintf("Generated %d slots for %s.", len(slots), tomorrow.Format("2006-01-02")))
	})
	if err != nil {
		log.Printf("Failed to register slot scheduler: %v", err)
		return c
	}

	c.Start()
	logScheduler("Nightly slot generation scheduled.")
	return c
}
