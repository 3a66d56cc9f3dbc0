// Package gcal pushes local events to a remote calendar service speaking the
// Google Calendar v3 event shape. All operations are one-way and best
// effort: local records are written first and stay authoritative, so callers
// log failures instead of rolling anything back.
package gcal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	baseURL    string
	token      string
	calendarID string
	loc        *time.Location
	http       *http.Client
}

// New builds a client. An empty token disables the client: every call
// becomes a logged no-op, matching the "sync is optional" contract.
func New(baseURL, token, calendarID, timezone string) *Client {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Printf("gcal: unknown timezone %q, using UTC", timezone)
		loc = time.UTC
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		calendarID: calendarID,
		loc:        loc,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the client has credentials to talk to the service.
func (c *Client) Enabled() bool {
	return c.token != ""
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type eventBody struct {
	ID         string    `json:"id"`
	Summary    string    `json:"summary"`
	Start      eventTime `json:"start"`
	End        eventTime `json:"end"`
	Recurrence []string  `json:"recurrence,omitempty"`
}

// Push upserts an event keyed by the caller-supplied id. date is YYYY-MM-DD,
// start/end are HH:MM in the client's timezone. rrule, when non-empty, is an
// RRULE string such as the one WeeklyRule produces.
func (c *Client) Push(ctx context.Context, summary, date, start, end, id, rrule string) error {
	if !c.Enabled() {
		log.Printf("gcal: sync disabled, keeping %q local only", summary)
		return nil
	}

	body := eventBody{
		ID:      id,
		Summary: summary,
		Start:   eventTime{DateTime: c.isoTime(date, start), TimeZone: c.loc.String()},
		End:     eventTime{DateTime: c.isoTime(date, end), TimeZone: c.loc.String()},
	}
	if rrule != "" {
		body.Recurrence = []string{rrule}
	}

	status, respBody, err := c.do(ctx, "POST", c.eventsURL(), body)
	if err != nil {
		return err
	}
	if status == http.StatusConflict {
		// The id already exists remotely; update in place.
		status, respBody, err = c.do(ctx, "PUT", c.eventsURL()+"/"+url.PathEscape(id), body)
		if err != nil {
			return err
		}
	}
	if status >= 400 {
		return fmt.Errorf("calendar push %s: status %d: %s", id, status, respBody)
	}
	return nil
}

// Remove deletes an event by id. An event that is already gone (404/410)
// counts as success.
func (c *Client) Remove(ctx context.Context, id string) error {
	if !c.Enabled() {
		return nil
	}

	status, respBody, err := c.do(ctx, "DELETE", c.eventsURL()+"/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound || status == http.StatusGone {
		log.Printf("gcal: event %s already absent remotely", id)
		return nil
	}
	if status >= 400 {
		return fmt.Errorf("calendar delete %s: status %d: %s", id, status, respBody)
	}
	return nil
}

func (c *Client) eventsURL() string {
	return fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))
}

func (c *Client) do(ctx context.Context, method, target string, body any) (int, string, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, "", fmt.Errorf("marshaling event: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("calendar request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, string(respBody), nil
}

// isoTime combines a date and clock time into RFC 3339 in the client's
// timezone. Malformed input falls back to a naive concatenation so a bad
// record still produces a request the server can reject explicitly.
func (c *Client) isoTime(date, clock string) string {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, c.loc)
	if err != nil {
		return date + "T" + clock + ":00"
	}
	return t.Format(time.RFC3339)
}

var weekdayCodes = map[string]string{
	"Monday":    "MO",
	"Tuesday":   "TU",
	"Wednesday": "WE",
	"Thursday":  "TH",
	"Friday":    "FR",
	"Saturday":  "SA",
	"Sunday":    "SU",
}

// WeeklyRule encodes a weekly recurrence on the given weekday name.
// Unrecognized weekdays default to Monday.
func WeeklyRule(weekday string) string {
	code, ok := weekdayCodes[weekday]
	if !ok {
		code = "MO"
	}
	return "RRULE:FREQ=WEEKLY;BYDAY=" + code
}
