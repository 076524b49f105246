package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sdokania30/SayDone/internal/model"
	"github.com/sdokania30/SayDone/internal/parser"
	"github.com/sdokania30/SayDone/pkg/datemath"
)

// cliTask is the flat JSON shape printed per extracted task.
type cliTask struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func main() {
	// 1. Parse Flags
	text := flag.String("text", "", "Utterance to extract tasks from (reads stdin when empty)")
	now := flag.String("now", "", "Reference instant for date resolution, RFC 3339 (default: wall clock)")
	asJSON := flag.Bool("json", false, "Print tasks as JSON instead of a table")
	flag.Parse()

	input := *text
	if input == "" && flag.NArg() > 0 {
		input = flag.Arg(0)
	}
	if input == "" {
		flag.Usage()
		os.Exit(2)
	}

	// 2. Determine reference time (Priority: Flag > Wall clock)
	refTime := time.Now()
	if *now != "" {
		parsed, err := time.Parse(time.RFC3339, *now)
		if err != nil {
			log.Fatalf("Invalid -now value %q: %v", *now, err)
		}
		refTime = parsed
	}

	// 3. Extract
	engine := parser.New(parser.DefaultConfig())
	tasks := engine.ParseTasks(input, refTime)

	// 4. Print
	if *asJSON {
		printJSON(tasks)
		return
	}
	printTable(tasks)
}

func printJSON(tasks []model.Task) {
	out := make([]cliTask, len(tasks))
	for i, t := range tasks {
		out[i] = cliTask{
			ID:          t.ID,
			Description: t.Description,
			DueDate:     datemath.FormatDayMonth(t.DueDate),
			Category:    string(t.Category),
			Priority:    string(t.Priority),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Error encoding tasks: %v", err)
	}
}

func printTable(tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	for i, t := range tasks {
		fmt.Printf("%d. %s\n", i+1, t.Description)
		fmt.Printf("   due: %-14s category: %-6s priority: %s\n",
			datemath.FormatDayMonth(t.DueDate), t.Category, t.Priority)
	}
}
