// Command mobile is a terminal stand-in for the member-facing app: it logs
// in with username and PIN, probes connectivity, and browses account,
// summary and history through the same client core the app screens use.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coopkiosk/backend/internal/client"
	"github.com/coopkiosk/backend/internal/config"
)

func main() {
	cmd := flag.String("cmd", "account", "Command: login|logout|probe|account|summary|transactions|balance|whoami")
	username := flag.String("username", "", "Member username (for login)")
	pin := flag.String("pin", "", "4-digit PIN (for login)")
	serverFlag := flag.String("server", "", "Override server base URL (e.g. https://coop.example.com)")
	page := flag.Int("page", 1, "Page number for history commands")
	limit := flag.Int("limit", client.DefaultPageLimit, "Page size for history commands")
	year := flag.Int("year", 0, "Summary year (0 = current)")
	month := flag.Int("month", 0, "Summary month 1-12 (0 = current)")
	prod := flag.Bool("prod", false, "Use the production endpoint")
	flag.Parse()

	mode := config.ModeDevelopment
	if *prod {
		mode = config.ModeProduction
	}
	cfg := config.ForMode(mode)
	if *serverFlag != "" {
		cfg.BaseURL = strings.TrimRight(*serverFlag, "/")
	}

	store := client.NewSessionStore(sessionFilePath())
	c := client.New(cfg, store)
	ctx := context.Background()

	var err error
	switch *cmd {
	case "login":
		err = runLogin(ctx, c, *username, *pin)
	case "logout":
		err = c.Logout(ctx)
		if err == nil {
			fmt.Println("Logged out.")
		}
	case "probe":
		err = runProbe(ctx, c)
	case "account":
		err = printResult(c.Account(ctx))
	case "summary":
		err = printResult(c.Summary(ctx, *year, *month))
	case "transactions":
		err = runTransactions(ctx, c, *page, *limit)
	case "balance":
		err = runBalanceTransactions(ctx, c, *page, *limit)
	case "whoami":
		err = runWhoami(store)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", *cmd)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runLogin(ctx context.Context, c *client.Client, username, pin string) error {
	member, err := c.Login(ctx, username, pin, client.DefaultLoginRetries)
	if err != nil {
		// Login failures come with an offer to diagnose connectivity.
		fmt.Fprintln(os.Stderr, "Login failed:", err)
		fmt.Fprintln(os.Stderr, "Run with -cmd probe to check whether the server is reachable.")
		os.Exit(1)
	}
	fmt.Printf("Welcome back, %s!\n", member.FullName)
	return printResult(member, nil)
}

func runProbe(ctx context.Context, c *client.Client) error {
	res := c.Probe(ctx, 3)
	if res.Connected {
		fmt.Printf("Server %s is reachable.\n", res.URL)
		return nil
	}
	return res.Err
}

func runTransactions(ctx context.Context, c *client.Client, page, limit int) error {
	txs, pg, err := c.Transactions(ctx, page, limit)
	if err != nil {
		return err
	}
	if err := printResult(txs, nil); err != nil {
		return err
	}
	fmt.Printf("Page %d of %d record(s); more: %v\n", pg.Page, pg.Total, pg.HasNext)
	return nil
}

func runBalanceTransactions(ctx context.Context, c *client.Client, page, limit int) error {
	txs, pg, err := c.BalanceTransactions(ctx, page, limit)
	if err != nil {
		return err
	}
	if err := printResult(txs, nil); err != nil {
		return err
	}
	fmt.Printf("Page %d of %d record(s); more: %v\n", pg.Page, pg.Total, pg.HasNext)
	return nil
}

func runWhoami(store *client.SessionStore) error {
	snap, ok, err := store.Get()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	return printResult(snap.Member, nil)
}

func printResult(v any, err error) error {
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func sessionFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "coop-mobile", "session.json")
}
