package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dmitrijs2005/usuarios/internal/client/models"
	"golang.org/x/term"
)

// terminalWidth is a test seam; it reports the stdout width or 0 when
// stdout is not a terminal.
var terminalWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

const (
	tableColumns  = 6
	columnPadding = 2
	minCellWidth  = 8
	notApplicable = "N/A"
)

func fullName(a, b string) string {
	return strings.TrimSpace(a + " " + b)
}

func departmentName(u models.User) string {
	if u.Department == nil || u.Department.Name == "" {
		return notApplicable
	}
	return u.Department.Name
}

func positionName(u models.User) string {
	if u.Position == nil || u.Position.Name == "" {
		return notApplicable
	}
	return u.Position.Name
}

// truncate shortens s to limit runes, marking the cut with "…". limit <= 0
// disables truncation.
func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}

// cellWidth is the budget for each non-id column once the id column has
// taken idWidth. 0 means unlimited.
func cellWidth(termWidth, idWidth int) int {
	if termWidth <= 0 {
		return 0
	}
	w := (termWidth-idWidth-columnPadding)/(tableColumns-1) - columnPadding
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

// renderUsers writes the users table followed by the record count. Ids are
// never shortened: edit and delete take them verbatim.
func renderUsers(w io.Writer, users []models.User, termWidth int) {
	idWidth := utf8.RuneCountInString("ID")
	for _, u := range users {
		idWidth = max(idWidth, utf8.RuneCountInString(u.ID))
	}
	limit := cellWidth(termWidth, idWidth)

	tw := tabwriter.NewWriter(w, 0, 0, columnPadding, ' ', 0)

	fmt.Fprintln(tw, "ID\tUSERNAME\tNAMES\tSURNAMES\tDEPARTMENT\tPOSITION")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID,
			truncate(u.Username, limit),
			truncate(fullName(u.FirstName, u.MiddleName), limit),
			truncate(fullName(u.LastName, u.SecondLastName), limit),
			truncate(departmentName(u), limit),
			truncate(positionName(u), limit),
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "Total records: %d\n", len(users))
}

// refOption is one selectable department or position.
type refOption struct {
	ID   string
	Name string
}

func departmentOptions(ds []models.Department) []refOption {
	out := make([]refOption, len(ds))
	for i, d := range ds {
		out[i] = refOption{ID: d.ID, Name: d.Name}
	}
	return out
}

func positionOptions(ps []models.Position) []refOption {
	out := make([]refOption, len(ps))
	for i, p := range ps {
		out[i] = refOption{ID: p.ID, Name: p.Name}
	}
	return out
}

// renderOptions prints a numbered list, marking the selected id.
func renderOptions(w io.Writer, opts []refOption, selected string) {
	if len(opts) == 0 {
		fmt.Fprintln(w, "  (none available)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, columnPadding, ' ', 0)
	for i, o := range opts {
		mark := " "
		if o.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s %d)\t%s\t%s\n", mark, i+1, o.Name, o.ID)
	}
	tw.Flush()
}

// resolveOption turns user input into an id. An exact id wins; otherwise a
// 1-based number picks from opts, and anything else is taken as a raw id.
func resolveOption(input string, opts []refOption) string {
	for _, o := range opts {
		if models.SameID(o.ID, input) {
			return o.ID
		}
	}
	if n, err := strconv.Atoi(input); err == nil && strconv.Itoa(n) == input && n >= 1 && n <= len(opts) {
		return opts[n-1].ID
	}
	return input
}

// optionName returns the display name for id, or id itself.
func optionName(id string, opts []refOption) string {
	for _, o := range opts {
		if models.SameID(o.ID, id) {
			return o.Name
		}
	}
	return id
}
