package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nuesadev/scholarengine/internal/models"
)

// Save prompts for the opportunity fields and adds the record to the saved
// collection. Saving a title that is already tracked is a silent no-op.
func (a *App) Save(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	provider, err := getSimpleText(a.reader, "Provider", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (scholarship/internship)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Amount (optional)", os.Stdout)
	if err != nil {
		return err
	}
	deadline, err := getSimpleText(a.reader, "Deadline (optional)", os.Stdout)
	if err != nil {
		return err
	}

	opp := models.SavedOpportunity{
		Title:    title,
		Provider: provider,
		Type:     models.OpportunityType(kind),
		Amount:   amount,
		Deadline: deadline,
	}
	if err := a.engine.SaveOpportunity(ctx, opp); err != nil {
		a.log.Warn(ctx, "save unsuccessful", "error", err)
		fmt.Println("Save failed:", err)
		return err
	}
	fmt.Println("Saved.")
	return nil
}

// List prints the saved opportunities, newest first.
func (a *App) List(ctx context.Context) error {
	saved, err := a.engine.SavedOpportunities(ctx)
	if err != nil {
		fmt.Println("List failed:", err)
		return err
	}
	if len(saved) == 0 {
		fmt.Println("Nothing saved yet.")
		return nil
	}
	for _, opp := range saved {
		line := fmt.Sprintf("[%s] %s — %s (%s)", opp.Status, opp.Title, opp.Provider, opp.ID)
		if opp.Deadline != "" {
			line += " due " + opp.Deadline
		}
		fmt.Println(line)
	}
	return nil
}

// SetStatus prompts for an opportunity id and its new application status.
func (a *App) SetStatus(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Opportunity id", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status (Interested/Applied/Won)", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.engine.UpdateOpportunityStatus(ctx, id, models.OpportunityStatus(status)); err != nil {
		fmt.Println("Update failed:", err)
		return err
	}
	fmt.Println("Updated.")
	return nil
}

// Remove prompts for an opportunity id and drops it from the saved
// collection.
func (a *App) Remove(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Opportunity id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.engine.RemoveOpportunity(ctx, id); err != nil {
		fmt.Println("Remove failed:", err)
		return err
	}
	fmt.Println("Removed.")
	return nil
}
