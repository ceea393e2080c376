package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Departments(ctx context.Context) error
	Positions(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Reload(ctx context.Context) error
}

const helpText = `Available commands:
  (l)ist                 show users matching the current filters
  filter dept <id|->     filter by department (- clears)
  filter pos <id|->      filter by position (- clears)
  filter clear           clear both filters
  depts                  list active departments
  positions              list active positions
  new                    create a user
  edit <id>              edit a user
  delete <id>            delete a user
  reload                 reload users, departments and positions
  exit | quit            leave the program`

// runREPL reads commands from in until EOF, "exit"/"quit" or ctx is
// cancelled, dispatching each to a. Cancellation also ends a prompt that is
// waiting for input. Handler errors are not fatal: handlers print their own
// messages, the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *Console, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "usuarios %s> ", statusFn())

		line, err := in.ReadLine(ctx)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx, args)

		case "depts", "departments":
			_ = a.Departments(ctx)

		case "positions", "cargos":
			_ = a.Positions(ctx)

		case "new", "add":
			_ = a.New(ctx)

		case "edit":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete", "rm":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "reload":
			_ = a.Reload(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
