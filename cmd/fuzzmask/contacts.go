// CLAUDE:SUMMARY CLI subcommand managing the SQLite contact store and reporting likely duplicates.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hazyhaar/fuzzmask/pkg/contacts"
	"github.com/hazyhaar/fuzzmask/pkg/fuzzy"
	"github.com/hazyhaar/fuzzmask/pkg/policy"
)

var errUsage = errors.New("usage")

type contactsOpts struct {
	name      string
	phone     string
	threshold float64
	mode      string
}

func cmdContacts(args []string) {
	if len(args) < 1 {
		contactsUsage()
		os.Exit(1)
	}
	action, args := args[0], args[1:]

	fs := flag.NewFlagSet("contacts "+action, flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	dbPath := fs.String("db", "", "contacts database (overrides config)")
	var opts contactsOpts
	fs.StringVar(&opts.name, "name", "", "contact name (add)")
	fs.StringVar(&opts.phone, "phone", "", "contact phone (add)")
	fs.Float64Var(&opts.threshold, "threshold", 0.85, "name similarity threshold (dupes)")
	fs.StringVar(&opts.mode, "normalize", fuzzy.ModeLowercaseASCII, "name normalizer (dupes)")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath, bootLogger())
	if *dbPath != "" {
		cfg.ContactsDB = *dbPath
	}
	logger := newLogger(cfg.LogLevel)
	policies := loadPolicies(cfg, logger)

	store, err := contacts.Open(cfg.ContactsDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dd := contacts.NewDeduper(store, policies, opts.mode, logger)

	err = runContacts(context.Background(), os.Stdout, action, opts, store, dd, policies)
	store.Close()
	switch {
	case errors.Is(err, errUsage):
		contactsUsage()
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runContacts performs one action against an open store. It never exits, so
// the caller can close the store on every path.
func runContacts(ctx context.Context, w io.Writer, action string, opts contactsOpts, store *contacts.Store, dd *contacts.Deduper, policies *policy.Store) error {
	switch action {
	case "add":
		if strings.TrimSpace(opts.name) == "" {
			return errors.New("--name is required")
		}
		if opts.phone != "" && !policies.Current().Phone.IsValid(opts.phone) {
			fmt.Fprintf(os.Stderr, "Warning: %s does not look like a phone number\n", dd.Censored(contacts.Contact{Phone: opts.phone}).Phone)
		}
		c, err := store.Add(ctx, opts.name, opts.phone)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "added %s\n", c.ID)

	case "list":
		list, err := store.List(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			c = dd.Censored(c)
			fmt.Fprintf(w, "  %s  %-30s  %s\n", c.ID, c.Name, c.Phone)
		}

	case "dupes":
		dupes, err := dd.Find(ctx, opts.threshold)
		if err != nil {
			return err
		}
		if len(dupes) == 0 {
			fmt.Fprintln(w, "no duplicates")
			return nil
		}
		for _, d := range dupes {
			a, b := dd.Censored(d.A), dd.Censored(d.B)
			fmt.Fprintf(w, "  %s (%s)  <->  %s (%s)  [%s, name=%.2f]\n",
				a.Name, a.Phone, b.Name, b.Phone, strings.Join(d.Reasons, "+"), d.NameScore)
		}

	default:
		return errUsage
	}
	return nil
}

func contactsUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  fuzzmask contacts add --name <name> [--phone <number>]
  fuzzmask contacts list
  fuzzmask contacts dupes [--threshold 0.85] [--normalize lowercase_ascii]
`)
}
