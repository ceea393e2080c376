package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usuarios/internal/common"
)

// errUsage marks a malformed command; the usage line has been printed.
var errUsage = errors.New("usage")

// List prints the users that match the current filters.
func (a *App) List(ctx context.Context) error {
	if err := a.users.UsersErr(); err != nil {
		fmt.Fprintln(a.out, "Error: the user list could not be loaded; try 'reload'")
		return err
	}
	a.printUsers()
	return nil
}

// Filter handles "filter dept <id|->", "filter pos <id|->" and "filter clear".
// Ids are taken as given, list numbers from depts/positions also work.
func (a *App) Filter(ctx context.Context, args []string) error {
	const usage = "Usage: filter dept <id|-> | filter pos <id|-> | filter clear"

	switch {
	case len(args) == 1 && args[0] == "clear":
		a.users.ClearFilters()
	case len(args) == 2 && (args[0] == "dept" || args[0] == "department"):
		id := filterValue(args[1], departmentOptions(a.users.ActiveDepartments()))
		a.users.SetDepartmentFilter(id)
	case len(args) == 2 && (args[0] == "pos" || args[0] == "position"):
		id := filterValue(args[1], positionOptions(a.users.ActivePositions()))
		a.users.SetPositionFilter(id)
	default:
		fmt.Fprintln(a.out, usage)
		return errUsage
	}
	return a.List(ctx)
}

func filterValue(arg string, opts []refOption) string {
	if arg == "-" {
		return ""
	}
	return resolveOption(arg, opts)
}

// Departments lists the active departments available for selection.
func (a *App) Departments(_ context.Context) error {
	fmt.Fprintln(a.out, "Departments:")
	renderOptions(a.out, departmentOptions(a.users.ActiveDepartments()), a.users.Filter().DepartmentID)
	return nil
}

// Positions lists the active positions available for selection.
func (a *App) Positions(_ context.Context) error {
	fmt.Fprintln(a.out, "Positions:")
	renderOptions(a.out, positionOptions(a.users.ActivePositions()), a.users.Filter().PositionID)
	return nil
}

// New opens the form for a new user.
func (a *App) New(ctx context.Context) error {
	if err := a.users.OpenForCreate(); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	return a.runForm(ctx)
}

// Edit opens the form prefilled with the user identified by id.
func (a *App) Edit(ctx context.Context, id string) error {
	u, ok := a.users.FindUser(id)
	if !ok {
		fmt.Fprintf(a.out, "User not found: %s\n", id)
		return common.ErrNotFound
	}
	if err := a.users.OpenForEdit(u); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	return a.runForm(ctx)
}

// Delete asks for confirmation and removes the user.
func (a *App) Delete(ctx context.Context, id string) error {
	u, ok := a.users.FindUser(id)
	if ok {
		fmt.Fprintf(a.out, "User: %s (%s)\n", u.Username, fullName(u.FirstName, u.LastName))
	}

	res := a.users.Delete(ctx, id, a.confirmer())
	if ctx.Err() != nil {
		return ctx.Err()
	}
	a.report(res)
	if res.OK() {
		fmt.Fprintln(a.out, "User deleted.")
		a.printUsers()
	}
	return res.Err
}

// Reload refetches everything, the same way the screen does on start.
func (a *App) Reload(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading...")
	res := a.users.Load(ctx)
	a.report(res)
	if a.users.UsersErr() == nil {
		a.printUsers()
	}
	return res.Err
}
