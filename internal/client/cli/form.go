package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usuarios/internal/client/models"
	"github.com/dmitrijs2005/usuarios/internal/client/session"
)

// runForm drives the open edit session: prompt for every field, submit,
// and on failure offer another round with the draft as the user left it.
// Leaving the form any other way than a successful save closes it.
func (a *App) runForm(ctx context.Context) error {
	editing := a.users.SessionState() == session.Editing
	if editing {
		fmt.Fprintln(a.out, "Edit user (Enter keeps the current value, - clears it)")
	} else {
		fmt.Fprintln(a.out, "New user")
	}

	for {
		draft := a.users.Draft()
		if draft == nil {
			return nil
		}
		if err := a.fillDraft(ctx, draft, editing); err != nil {
			a.users.CloseForm()
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "Cancelled.")
			return err
		}

		fmt.Fprintln(a.out, "Saving...")
		res := a.users.Submit(ctx)
		a.report(res)
		if res.OK() {
			fmt.Fprintln(a.out, "User saved.")
			if res.Followup == nil || res.Followup.Err == nil {
				a.printUsers()
			}
			return nil
		}

		retry, err := GetYesNo(ctx, a.in, "Edit the form and try again?", true, a.out)
		if err != nil || !retry {
			a.users.CloseForm()
			fmt.Fprintln(a.out, "Cancelled.")
			return res.Err
		}
	}
}

// fillDraft prompts for each field in form order, writing answers straight
// into the live draft. The username of an existing user is read-only.
func (a *App) fillDraft(ctx context.Context, d *models.Draft, editing bool) error {
	var err error

	if editing {
		fmt.Fprintf(a.out, "Username: %s (read-only)\n", d.Username)
	} else if d.Username, err = GetWithDefault(ctx, a.in, "Username *", d.Username, a.out); err != nil {
		return err
	}

	fields := []struct {
		prompt string
		value  *string
	}{
		{"First name *", &d.FirstName},
		{"Middle name", &d.MiddleName},
		{"Last name *", &d.LastName},
		{"Second last name", &d.SecondLastName},
	}
	for _, f := range fields {
		if *f.value, err = GetWithDefault(ctx, a.in, f.prompt, *f.value, a.out); err != nil {
			return err
		}
	}

	depts := departmentOptions(a.users.ActiveDepartments())
	if d.DepartmentID, err = a.pickOption(ctx, "Department *", depts, d.DepartmentID); err != nil {
		return err
	}

	positions := positionOptions(a.users.ActivePositions())
	if d.PositionID, err = a.pickOption(ctx, "Position *", positions, d.PositionID); err != nil {
		return err
	}
	return nil
}

// pickOption shows the numbered choices and reads a number or an id.
// Enter keeps current.
func (a *App) pickOption(ctx context.Context, label string, opts []refOption, current string) (string, error) {
	fmt.Fprintln(a.out, label+":")
	renderOptions(a.out, opts, current)

	shown := ""
	if current != "" {
		shown = optionName(current, opts)
	}
	in, err := GetWithDefault(ctx, a.in, "Select number or id", shown, a.out)
	if err != nil {
		return "", err
	}
	if current != "" && in == shown {
		return current, nil
	}
	return resolveOption(in, opts), nil
}
