package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/nuesadev/scholarengine/internal/models"
)

// Sponsor prompts for the sponsorship fields and creates the posting under
// the signed-in provider account.
func (a *App) Sponsor(ctx context.Context) error {
	user, err := a.engine.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil || user.Role != models.RoleSponsor {
		fmt.Println("Sponsorships require a sponsor account.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	deadline, err := getSimpleText(a.reader, "Deadline", os.Stdout)
	if err != nil {
		return err
	}
	slotsText, err := getSimpleText(a.reader, "Slots", os.Stdout)
	if err != nil {
		return err
	}
	slots, err := strconv.Atoi(slotsText)
	if err != nil {
		fmt.Println("Slots must be a number.")
		return err
	}

	sp, err := a.engine.CreateSponsorship(ctx, models.Sponsorship{
		ProviderEmail: user.Email,
		ProviderName:  user.Title,
		Title:         title,
		Amount:        amount,
		Deadline:      deadline,
		Slots:         slots,
	})
	if err != nil {
		fmt.Println("Create failed:", err)
		return err
	}
	fmt.Printf("Sponsorship created (%s).\n", sp.ID)
	return nil
}

// Sponsorships lists the postings owned by the signed-in provider.
func (a *App) Sponsorships(ctx context.Context) error {
	user, err := a.engine.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not signed in. Use 'login'.")
		return nil
	}

	list, err := a.engine.Sponsorships(ctx, user.Email)
	if err != nil {
		fmt.Println("List failed:", err)
		return err
	}
	if len(list) == 0 {
		fmt.Println("No sponsorships.")
		return nil
	}
	for _, sp := range list {
		fmt.Printf("%s — %s, %d/%d applicants, due %s (%s)\n",
			sp.Title, sp.Amount, sp.Applicants, sp.Slots, sp.Deadline, sp.ID)
	}
	return nil
}
