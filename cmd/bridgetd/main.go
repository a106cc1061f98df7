/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"github.com/mikeb26/bridgescore/archive"
	"github.com/mikeb26/bridgescore/bridge"
	"github.com/mikeb26/bridgescore/internal"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"new":       handleNew,
	"pairings":  handlePairings,
	"score":     handleScore,
	"clear":     handleClear,
	"standings": handleStandings,
	"grid":      handleGrid,
	"name":      handleName,
	"fetch":     handleFetch,
	"list":      handleList,
	"push":      handlePush,
	"pull":      handlePull,
	"archive":   handleArchive,
	"season":    handleSeason,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleNew(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	date := fs.String("date", bridge.DefaultEventDate(time.Now()), "Event date")
	out := fs.String("out", "", "Output file (default is derived from the date)")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *out == "" {
		*out = bridge.SaveFileName(*date)
	}
	if _, err := os.Stat(*out); err == nil && !*force {
		log.Fatalf("%v already exists; use --force to overwrite", *out)
	}

	s := bridge.NewSession(*date)
	if err := writeSession(*out, s); err != nil {
		log.Fatalf("Error creating %v: %v", *out, err)
	}
	fmt.Printf("Created %v for %v\n", *out, bridge.FormatLongDate(*date))
}

func handlePairings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("pairings", flag.ExitOnError)
	board := fs.Int("board", 1, "Board number (1-20)")
	file := fs.String("file", "", "Tournament file to take team names from")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	s := bridge.NewSession("")
	if *file != "" {
		s = mustReadSession(*file)
	}
	output, err := bridge.BuildPairingsOutput(s, *board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}
	fmt.Print(output)
}

func handleScore(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	file := fs.String("file", "", "Tournament file")
	board := fs.Int("board", 0, "Board number (1-20)")
	resultsArg := fs.String("results", "",
		"Six results in team order, e.g. 2,1x,1x,x,x,0")
	noCheck := fs.Bool("nocheck", false, "Skip board consistency checks")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireFile(fs, *file)

	results, err := bridge.ParseResults(*resultsArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}

	s := mustReadSession(*file)
	s.ErrorChecking = !*noCheck
	if err := s.SubmitBoard(*board, results); err != nil {
		var ve *bridge.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(os.Stderr, "Board %v not recorded.\n\n%v\n", *board, err)
			os.Exit(2)
		}
		log.Fatalf("Error scoring board %v: %v", *board, err)
	}
	if err := writeSession(*file, s); err != nil {
		log.Fatalf("Error saving %v: %v", *file, err)
	}

	fmt.Printf("Board %v recorded.\n\n", *board)
	fmt.Print(bridge.BuildStandingsOutput(s))
}

func handleClear(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	file := fs.String("file", "", "Tournament file")
	board := fs.Int("board", 0, "Board number (1-20)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireFile(fs, *file)

	s := mustReadSession(*file)
	if err := s.ClearBoard(*board); err != nil {
		log.Fatalf("Error clearing board %v: %v", *board, err)
	}
	if err := writeSession(*file, s); err != nil {
		log.Fatalf("Error saving %v: %v", *file, err)
	}
	fmt.Printf("Board %v cleared.\n", *board)
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	file := fs.String("file", "", "Tournament file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireFile(fs, *file)

	fmt.Print(bridge.BuildStandingsOutput(mustReadSession(*file)))
}

func handleGrid(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("grid", flag.ExitOnError)
	file := fs.String("file", "", "Tournament file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireFile(fs, *file)

	fmt.Print(bridge.BuildBoardScoresOutput(mustReadSession(*file)))
}

func handleName(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("name", flag.ExitOnError)
	file := fs.String("file", "", "Tournament file")
	slot := fs.Int("slot", 0, "Team number (1-6)")
	name := fs.String("name", "", "Team name; empty reverts to the default")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireFile(fs, *file)

	s := mustReadSession(*file)
	if err := s.SetTeamName(*slot, *name); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}
	if err := writeSession(*file, s); err != nil {
		log.Fatalf("Error saving %v: %v", *file, err)
	}
	fmt.Printf("Team #%v is now %v\n", *slot, s.TeamName(*slot))
	fmt.Printf("Known teams: %v\n", strings.Join(s.Guests.AllNames(), ", "))
}

func handleFetch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	url := fs.String("url", "", "URL of a saved tournament file")
	out := fs.String("out", "", "Output file (default is derived from the event date)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *url == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --url.")
		fs.Usage()
		os.Exit(1)
	}

	data, err := archive.Fetch(ctx, newHttpClient(ctx), *url)
	if err != nil {
		log.Fatalf("Error fetching %v: %v", *url, err)
	}
	s, err := bridge.Deserialize(string(data))
	if err != nil {
		log.Fatalf("Failed to open %v: %v", *url, err)
	}
	if *out == "" {
		*out = bridge.SaveFileName(s.EventDate)
	}
	if err := writeSession(*out, s); err != nil {
		log.Fatalf("Error saving %v: %v", *out, err)
	}
	fmt.Printf("Saved %v\n", *out)
}

func handleList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	url := fs.String("url", "", "URL of a page linking to tournament files")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *url == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --url.")
		fs.Usage()
		os.Exit(1)
	}

	links, err := archive.ListScoreFiles(ctx, newHttpClient(ctx), *url)
	if err != nil {
		log.Fatalf("Error listing %v: %v", *url, err)
	}
	if len(links) == 0 {
		fmt.Printf("No tournament files found at %v\n", *url)
		return
	}
	for _, l := range links {
		fmt.Printf("  - %v\n", l)
	}
	fmt.Printf("\nRun '%s fetch --url <URL>' to download one\n", os.Args[0])
}

func handlePush(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("push", flag.ExitOnError)
	file := fs.String("file", "", "Tournament file")
	key := fs.String("key", "", "Archive name (default is the file's base name)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireFile(fs, *file)
	if *key == "" {
		*key = path.Base(*file)
	}

	s := mustReadSession(*file)
	store := mustStore(ctx)
	if err := store.Save(ctx, internal.ArchivePrefix, *key,
		[]byte(bridge.Serialize(s))); err != nil {
		log.Fatalf("Error pushing %v: %v", *file, err)
	}
	fmt.Printf("Pushed %v as %v\n", *file, *key)
}

func handlePull(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("pull", flag.ExitOnError)
	key := fs.String("key", "", "Archive name")
	out := fs.String("out", "", "Output file (default is the archive name)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *key == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --key.")
		fs.Usage()
		os.Exit(1)
	}
	if *out == "" {
		*out = *key
	}

	store := mustStore(ctx)
	data, err := store.Load(ctx, internal.ArchivePrefix, *key)
	if err != nil {
		log.Fatalf("Error pulling %v: %v", *key, err)
	}
	s, err := bridge.Deserialize(string(data))
	if err != nil {
		log.Fatalf("Failed to open %v: %v", *key, err)
	}
	if err := writeSession(*out, s); err != nil {
		log.Fatalf("Error saving %v: %v", *out, err)
	}
	fmt.Printf("Pulled %v into %v\n", *key, *out)
}

func handleArchive(ctx context.Context, args []string) {
	store := mustStore(ctx)
	names, err := store.List(ctx, internal.ArchivePrefix)
	if err != nil {
		log.Fatalf("Error listing archive: %v", err)
	}
	if len(names) == 0 {
		fmt.Println("The archive is empty.")
		return
	}
	for _, n := range names {
		fmt.Printf("  - %v\n", n)
	}
	fmt.Printf("\nRun '%s pull --key <name>' to retrieve one\n", os.Args[0])
}

func handleSeason(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("season", flag.ExitOnError)
	limit := fs.Int("limit", 4, "Maximum concurrent loads")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one file or URL.")
		fs.Usage()
		os.Exit(1)
	}

	loaded, err := archive.LoadAll(ctx, fs.Args(), newSourceLoader(ctx, fs.Args()),
		*limit)
	if err != nil {
		log.Fatalf("Error loading season: %v", err)
	}
	for _, l := range loaded {
		fmt.Printf("== %v\n", l.Source)
		fmt.Print(bridge.BuildStandingsOutput(l.Session))
		fmt.Println()
	}
}
