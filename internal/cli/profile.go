package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/validation"
)

type ProfileCmd struct {
	Edit bool `short:"e" help:"Open the interactive profile form."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}

	profile, err := ctx.Store.GetOrCreateProfile(userID)
	if err != nil {
		return err
	}

	if c.Edit {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Nickname").
					Value(&profile.Nickname),
				huh.NewText().
					Title("Bio").
					Value(&profile.Bio),
				huh.NewSelect[string]().
					Title("Pronouns").
					Options(
						huh.NewOption("she/her", models.PronounShe),
						huh.NewOption("he/him", models.PronounHe),
						huh.NewOption("they/them", models.PronounThey),
						huh.NewOption("prefer not to say", ""),
					).
					Value(&profile.Pronoun),
				huh.NewInput().
					Title("Evening reminder (HH:MM, blank for off)").
					Value(&profile.ReminderTime),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if profile.ReminderTime != "" {
			if err := validation.ReminderTime(profile.ReminderTime); err != nil {
				return err
			}
		}
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return err
		}
		fmt.Println("Profile saved.")
	}

	fmt.Println(headerStyle.Render("Profile"))
	fmt.Printf("Nickname: %s\n", orDash(profile.Nickname))
	fmt.Printf("Pronouns: %s\n", orDash(profile.Pronoun))
	fmt.Printf("Bio:      %s\n", orDash(profile.Bio))
	fmt.Printf("Reminder: %s\n", orDash(profile.ReminderTime))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
