// Package scheduler runs the daily planning cycle on a cron schedule:
// decompose whatever is pending, build today's timetable, and post a short
// summary to an optional webhook.
package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/chris/dayplan/internal/planner"
)

type Scheduler struct {
	cron       *cron.Cron
	engine     *planner.Engine
	webhookURL string
}

func New(engine *planner.Engine, webhookURL string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		engine:     engine,
		webhookURL: webhookURL,
	}
}

func (s *Scheduler) Start(cronExpr string) error {
	if _, err := s.cron.AddFunc(cronExpr, s.runDaily); err != nil {
		return fmt.Errorf("invalid cron %q: %w", cronExpr, err)
	}
	s.cron.Start()
	log.Printf("scheduler: daily run registered with cron %q", cronExpr)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runDaily() {
	ctx := context.Background()
	var lines []string

	if res, err := s.engine.Decompose(ctx); err != nil {
		log.Printf("scheduler: decompose: %v", err)
		lines = append(lines, "decompose failed: "+err.Error())
	} else {
		lines = append(lines, res.Message)
	}

	if res, err := s.engine.ScheduleDay(ctx, ""); err != nil {
		log.Printf("scheduler: schedule: %v", err)
		lines = append(lines, "schedule failed: "+err.Error())
	} else {
		lines = append(lines, res.Message)
	}

	s.deliver(strings.Join(lines, "\n"))
	log.Println("scheduler: daily run completed")
}

func (s *Scheduler) deliver(content string) {
	if s.webhookURL == "" {
		log.Printf("scheduler: %s", content)
		return
	}
	if err := postWebhook(s.webhookURL, content); err != nil {
		log.Printf("scheduler: webhook failed: %v", err)
	}
}

func postWebhook(url, content string) error {
	payload := map[string]string{"content": content}
	body, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
