package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App satisfies it; tests
// can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Ask(ctx context.Context, arg string) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context, arg string) error
	Reject(ctx context.Context, arg string) error
	refresh(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// After every command a.refresh is called so views can follow the writes the
// command made. The loop ends on EOF or "exit"/"quit". Command errors are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if s := statusFn(); s != "" {
			fmt.Fprintf(w, "xshare (%s)> ", s)
		} else {
			fmt.Fprint(w, "xshare> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		var arg string
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText(a))
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		var cmdErr error
		switch cmd {
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "add":
			cmdErr = a.Add(ctx)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "ask":
			cmdErr = a.Ask(ctx, arg)
		case "pending":
			cmdErr = a.Pending(ctx)
		case "approve":
			cmdErr = a.Approve(ctx, arg)
		case "reject":
			cmdErr = a.Reject(ctx, arg)
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		if err := a.refresh(ctx); err != nil && cmdErr == nil {
			cmdErr = err
		}
		if cmdErr != nil {
			if errors.Is(cmdErr, io.EOF) {
				fmt.Fprintln(w)
				return
			}
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}

func helpText(a execIface) string {
	switch {
	case a.isAdmin():
		return "Available commands: (l)ist, ask <n>, add, pending, approve <n>, reject <n>, whoami, logout, exit"
	case a.isLoggedIn():
		return "Available commands: (l)ist, ask <n>, add, whoami, logout, exit"
	default:
		return "Available commands: register, login, (l)ist, exit"
	}
}
