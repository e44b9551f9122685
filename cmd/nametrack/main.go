// Command nametrack is the maintenance CLI. It opens the visit store
// directly (no running server required) and supports two subcommands:
//
//	nametrack show [-limit N] [-order last-seen|visits]
//	nametrack clear
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	sqliteadapter "github.com/ericfisherdev/nametrack/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/nametrack/internal/application"
	"github.com/ericfisherdev/nametrack/internal/config"
	"github.com/ericfisherdev/nametrack/internal/domain/model"
)

const usage = "usage: nametrack <show|clear> [flags]"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "nametrack:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%s", usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // Read-mostly CLI; nothing to do about a close error.

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	visitSvc := application.NewVisitService(sqliteadapter.NewVisitRepo(db))
	ctx := context.Background()

	switch args[0] {
	case "show":
		showCmd := flag.NewFlagSet("show", flag.ExitOnError)
		limit := showCmd.Int("limit", 10, "number of names to show")
		order := showCmd.String("order", string(model.OrderByLastSeen), "order results by last-seen or visits")
		_ = showCmd.Parse(args[1:]) // ExitOnError: Parse exits on bad flags.
		return show(ctx, visitSvc, *limit, *order)
	case "clear":
		return clear(ctx, visitSvc)
	default:
		return fmt.Errorf("unknown subcommand %q\n%s", args[0], usage)
	}
}

func show(ctx context.Context, svc *application.VisitService, limit int, orderArg string) error {
	order, err := model.ParseSortOrder(orderArg)
	if err != nil {
		return err
	}

	records, err := svc.TopNames(ctx, limit, order)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No names found in database")
		return nil
	}

	sortLabel := "last seen"
	if order == model.OrderByVisits {
		sortLabel = "visits"
	}

	fmt.Printf("Top %d names (sorted by %s):\n", limit, sortLabel)
	fmt.Printf("%-20s %-8s %s\n", "Name", "Visits", "Last Seen")
	fmt.Println(strings.Repeat("-", 50))

	for _, rec := range records {
		fmt.Printf("%-20s %-8d %s\n",
			rec.Name,
			rec.Count,
			rec.LastSeen.UTC().Format("2006-01-02 15:04:05"),
		)
	}

	return nil
}

func clear(ctx context.Context, svc *application.VisitService) error {
	if err := svc.Reset(ctx); err != nil {
		return err
	}

	fmt.Println("Database cleared successfully")
	return nil
}
