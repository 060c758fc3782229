// Command vh is the VideoHub inspection CLI.
//
// Usage:
//
//	vh                      Show help
//	vh catalog              List the seed collection
//	vh simulate             Run the audience simulator offline
//	vh events               JSONL event log viewer
//	vh stats                Archive the event log in SQLite and summarize it
package main

import (
	"fmt"
	"os"
)

const usage = `vh: VideoHub inspection CLI

Usage:
  vh <command> [flags]

Commands:
  catalog     List the seed collection for a tab
  simulate    Run simulator ticks offline and show the resulting view counts
  events      JSONL event log viewer
  stats       Import the event log into SQLite and summarize sessions

Run 'vh <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	var err error
	switch cmd {
	case "catalog":
		err = runCatalog(os.Args[1:], os.Stdout)
	case "simulate":
		err = runSimulate(os.Args[1:], os.Stdout)
	case "events":
		err = runEvents(os.Args[1:], os.Stdout)
	case "stats":
		err = runStats(os.Args[1:], os.Stdout)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "vh: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vh %s: %v\n", cmd, err)
		os.Exit(1)
	}
}
