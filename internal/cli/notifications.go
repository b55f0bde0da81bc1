package cli

import (
	"context"
	"fmt"
	"os"
)

// Inbox prints the notification list, newest first, with unread markers.
func (a *App) Inbox(ctx context.Context) error {
	list, err := a.engine.Notifications(ctx)
	if err != nil {
		fmt.Println("Inbox failed:", err)
		return err
	}
	if len(list) == 0 {
		fmt.Println("No notifications.")
		return nil
	}
	for _, n := range list {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s: %s (%s)\n", marker, n.Type, n.Title, n.Message, n.ID)
	}
	unread, err := a.engine.UnreadNotifications(ctx)
	if err == nil && unread > 0 {
		fmt.Printf("%d unread.\n", unread)
	}
	return nil
}

// Read prompts for a notification id and marks it read.
func (a *App) Read(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Notification id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.engine.MarkRead(ctx, id); err != nil {
		fmt.Println("Mark read failed:", err)
		return err
	}
	return nil
}

// ReadAll marks every notification read.
func (a *App) ReadAll(ctx context.Context) error {
	if err := a.engine.MarkAllRead(ctx); err != nil {
		fmt.Println("Mark all read failed:", err)
		return err
	}
	fmt.Println("All read.")
	return nil
}
