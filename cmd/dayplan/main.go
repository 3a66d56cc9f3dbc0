package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chris/dayplan/config"
	"github.com/chris/dayplan/internal/gcal"
	"github.com/chris/dayplan/internal/llm"
	"github.com/chris/dayplan/internal/planner"
	"github.com/chris/dayplan/internal/scheduler"
	"github.com/chris/dayplan/internal/score"
	"github.com/chris/dayplan/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// The scorer is a pure file-in, file-out tool; it needs no store,
	// credentials, or network.
	if os.Args[1] == "score" {
		runScore(os.Args[2:])
		return
	}

	cfg := config.Load()

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	apiKey := cfg.GroqKey
	switch cfg.LLMProvider {
	case "openai":
		apiKey = cfg.OpenAIKey
	case "anthropic":
		apiKey = cfg.AnthropicKey
	}

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   apiKey,
		Model:    cfg.LLMModel,
		BaseURL:  cfg.GroqBaseURL,
	})
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}

	cal := gcal.New(cfg.CalendarURL, cfg.CalendarToken, cfg.CalendarID, cfg.CalendarTZ)
	engine := planner.New(st, llm.NewGateway(client), cal)

	ctx := context.Background()
	switch os.Args[1] {
	case "decompose":
		report(engine.Decompose(ctx))

	case "schedule":
		date := ""
		if len(os.Args) > 2 {
			date = os.Args[2]
		}
		report(engine.ScheduleDay(ctx, date))

	case "delete":
		if len(os.Args) < 3 {
			log.Fatal("usage: dayplan delete <id>")
		}
		report(engine.Delete(ctx, os.Args[2]))

	case "add-task":
		addTask(ctx, engine, os.Args[2:])

	case "add-routine":
		addRoutine(ctx, engine, os.Args[2:])

	case "show":
		date := time.Now().Format(store.DateLayout)
		if len(os.Args) > 2 {
			date = os.Args[2]
		}
		showDay(st, date)

	case "run":
		runDaemon(cfg, engine)

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dayplan <command>

commands:
  add-task     add a one-off task (see add-task -h)
  add-routine  add a weekly routine (see add-routine -h)
  decompose    split the next high-difficulty task into subtasks
  schedule     build the timetable for a date (default today)
  show         print the stored timetable for a date
  score        compute the focus-session score (see score -h)
  delete       remove a routine or task (cascades to subtasks)
  run          run the daily cycle on a cron schedule`)
}

func report(res planner.Result, err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	fmt.Println(res.Message)
}

func addTask(ctx context.Context, engine *planner.Engine, args []string) {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	name := fs.String("name", "", "task name")
	date := fs.String("date", "", "due date (YYYY-MM-DD)")
	fixed := fs.Bool("fixed", false, "task occupies a fixed time block")
	start := fs.String("start", "", "start time (HH:MM, fixed tasks)")
	end := fs.String("end", "", "end time (HH:MM, fixed tasks)")
	hours := fs.Float64("hours", 0, "estimated hours (flexible tasks)")
	priority := fs.Int("priority", 0, "priority 1-5")
	importance := fs.Int("importance", 0, "importance 1-5")
	difficulty := fs.Int("difficulty", 0, "difficulty 1-5")
	fs.Parse(args)

	t, err := engine.NewTask(ctx, planner.TaskInput{
		Name:           *name,
		Date:           *date,
		IsFixed:        *fixed,
		StartTime:      *start,
		EndTime:        *end,
		EstimatedHours: *hours,
		Priority:       *priority,
		Importance:     *importance,
		Difficulty:     *difficulty,
	})
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	fmt.Printf("saved task %q (id %s)\n", t.Name, t.ID)
}

func addRoutine(ctx context.Context, engine *planner.Engine, args []string) {
	fs := flag.NewFlagSet("add-routine", flag.ExitOnError)
	name := fs.String("name", "", "routine name")
	date := fs.String("date", "", "anchor date (YYYY-MM-DD); the weekday repeats")
	start := fs.String("start", "", "start time (HH:MM)")
	end := fs.String("end", "", "end time (HH:MM)")
	priority := fs.Int("priority", 0, "priority 1-5")
	importance := fs.Int("importance", 0, "importance 1-5")
	difficulty := fs.Int("difficulty", 0, "difficulty 1-5")
	fs.Parse(args)

	r, err := engine.NewRoutine(ctx, planner.RoutineInput{
		Name:       *name,
		StartDate:  *date,
		StartTime:  *start,
		EndTime:    *end,
		Priority:   *priority,
		Importance: *importance,
		Difficulty: *difficulty,
	})
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	fmt.Printf("saved routine %q every %s (id %s)\n", r.Name, r.DayOfWeek, r.ID)
}

func runScore(args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	in := fs.String("in", "", "input JSON file (r, T_est, P, I, D, c, mu, T_distract, T_phone)")
	out := fs.String("out", "", "write the result JSON to a file instead of stdout")
	rate := fs.Float64("rate", 0, "base reward rate per hour (default 30)")
	hours := fs.Float64("hours", 0, "estimated hours")
	progress := fs.Float64("progress", 0, "completion ratio 0-1")
	importance := fs.Float64("importance", 0, "importance 1-5 (default 3)")
	difficulty := fs.Float64("difficulty", 0, "difficulty 1-5 (default 3)")
	concentration := fs.Float64("concentration", 0, "concentration ratio 0-1")
	mu := fs.Float64("mu", 0, "concentration exponent (default 1.2)")
	distracted := fs.Float64("distracted", 0, "hours spent distracted")
	phone := fs.Float64("phone", 0, "hours on the phone")
	fs.Parse(args)

	var input score.Input
	if *in != "" {
		data, err := os.ReadFile(*in)
		if err != nil {
			log.Fatalf("error: %v", err)
		}
		if err := json.Unmarshal(data, &input); err != nil {
			log.Fatalf("error: decoding %s: %v", *in, err)
		}
	} else {
		input = score.Input{
			Rate:            *rate,
			EstimatedHours:  *hours,
			Progress:        *progress,
			Importance:      *importance,
			Difficulty:      *difficulty,
			Concentration:   *concentration,
			Mu:              *mu,
			DistractedHours: *distracted,
			PhoneHours:      *phone,
		}
	}

	result := score.Calculate(input)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	if *out != "" {
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatalf("error: %v", err)
		}
		return
	}
	fmt.Println(string(data))
}

func showDay(st *store.Store, date string) {
	entries := st.EntriesFor(date)
	if len(entries) == 0 {
		fmt.Printf("no schedule stored for %s\n", date)
		return
	}
	for _, en := range entries {
		fmt.Printf("%s-%s | %s (%s)\n", en.StartTime, en.EndTime, en.Name, en.ID)
	}
}

func runDaemon(cfg *config.Config, engine *planner.Engine) {
	sched := scheduler.New(engine, cfg.WebhookURL)
	if err := sched.Start(cfg.AutoRunCron); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	log.Println("daily planner is running. Press Ctrl+C to exit.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down.")
}
