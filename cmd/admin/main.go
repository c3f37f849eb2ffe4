// Command admin runs editorial tasks that have no HTTP route.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"yatube/internal/app"
	"yatube/internal/config"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/admin create-group <slug> <title> [description]  - Create a group")
	fmt.Println("  go run ./cmd/admin list-groups                               - List all groups")
	fmt.Println("  go run ./cmd/admin clear-cache                               - Drop cached index pages")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	a, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	if err := run(ctx, a, os.Args[1:]); err != nil {
		a.Close()
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, a *app.App, args []string) error {
	switch args[0] {
	case "create-group":
		if len(args) < 3 {
			usage()
			return fmt.Errorf("slug and title are required")
		}
		g, err := a.Groups.CreateGroup(ctx, args[1], args[2], strings.Join(args[3:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Created group %s (ID: %d)\n", g.Slug, g.ID)

	case "list-groups":
		groups, err := a.Groups.ListGroups(ctx)
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			fmt.Println("No groups")
		}
		for _, g := range groups {
			fmt.Printf("%-4d %-24s %s\n", g.ID, g.Slug, g.Title)
		}

	case "clear-cache":
		if err := a.ClearSharedIndexCache(ctx); err != nil {
			return err
		}
		fmt.Println("Index cache cleared")

	default:
		usage()
		return fmt.Errorf("unknown command")
	}
	return nil
}
