package cli

import (
	"context"
	"fmt"
	"os"
)

// Logs prints the security log, newest first.
func (a *App) Logs(ctx context.Context) error {
	logs, err := a.engine.SecurityLogs(ctx)
	if err != nil {
		fmt.Println("Logs failed:", err)
		return err
	}
	if len(logs) == 0 {
		fmt.Println("No security events.")
		return nil
	}
	for _, entry := range logs {
		fmt.Printf("%s  %-7s  %s  (%s, %s)\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Status, entry.Action, entry.Device, entry.IP)
	}
	return nil
}

// Rate shows the rating prompt when the cooldown allows it and records
// that the user has been asked.
func (a *App) Rate(ctx context.Context) error {
	show, err := a.engine.ShouldShowRating(ctx)
	if err != nil {
		return err
	}
	if !show {
		fmt.Println("Already asked recently.")
		return nil
	}
	fmt.Println("Enjoying the portal? Leave us a rating!")
	return a.engine.MarkRatingPrompted(ctx)
}

// Purge erases all personal data after an explicit confirmation.
// Sponsorship postings survive the purge.
func (a *App) Purge(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "Erase all local data? This cannot be undone.", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}
	if err := a.engine.PurgeAllData(ctx); err != nil {
		fmt.Println("Purge failed:", err)
		return err
	}
	a.userName = ""
	fmt.Println("All personal data erased.")
	return nil
}
