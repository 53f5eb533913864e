package grimnir

import (
	"context"
	"net/url"
	"strconv"
)

// ShowInput describes a recurring show to create. The recurrence rule
// is an RFC 5545 RRULE string evaluated server-side.
type ShowInput struct {
	StationID       string
	Name            string
	RRule           string // e.g. "FREQ=WEEKLY;BYDAY=MO,WE,FR"
	DTStart         string // ISO 8601 start datetime
	DurationMinutes int    // default 60
	Description     string
	Color           string // hex color for the calendar, default #3B82F6
}

// GetShows returns all shows for a station.
func (c *Client) GetShows(ctx context.Context, stationID string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	resp, err := c.getJSON(ctx, "/shows", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "shows"), nil
}

// CreateShow creates a recurring show.
func (c *Client) CreateShow(ctx context.Context, input ShowInput) (map[string]any, error) {
	if input.DurationMinutes == 0 {
		input.DurationMinutes = 60
	}
	if input.Color == "" {
		input.Color = "#3B82F6"
	}
	return c.postJSON(ctx, "/shows", map[string]any{
		"station_id":               input.StationID,
		"name":                     input.Name,
		"rrule":                    input.RRule,
		"dtstart":                  input.DTStart,
		"default_duration_minutes": input.DurationMinutes,
		"description":              input.Description,
		"color":                    input.Color,
	})
}

// GetShowInstances returns the concrete show occurrences expanded from
// recurrence rules within a date range.
func (c *Client) GetShowInstances(ctx context.Context, stationID, start, end string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	params.Set("start", start)
	params.Set("end", end)
	resp, err := c.getJSON(ctx, "/show-instances", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "instances"), nil
}

// GetShowPerformance returns performance analytics by show.
func (c *Client) GetShowPerformance(ctx context.Context, stationID string, dates DateRange) (map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	dates.apply(params)
	return c.getJSON(ctx, "/schedule-analytics/shows", params)
}

// GetBestTimeSlots returns the best performing time slots. A limit of
// 0 uses the backend default of 10 slots.
func (c *Client) GetBestTimeSlots(ctx context.Context, stationID string, limit int) (map[string]any, error) {
	if limit == 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("station_id", stationID)
	params.Set("limit", strconv.Itoa(limit))
	return c.getJSON(ctx, "/schedule-analytics/best-slots", params)
}

// GetSchedulingSuggestions returns data-driven scheduling suggestions.
func (c *Client) GetSchedulingSuggestions(ctx context.Context, stationID string) (map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	return c.getJSON(ctx, "/schedule-analytics/suggestions", params)
}
