package grimnir

import (
	"context"
	"net/url"
	"strconv"
)

// LogQuery filters log retrieval. Empty string filters are omitted; a
// Limit of 0 uses the backend default of 500 entries.
type LogQuery struct {
	Level     string // debug, info, warn, error
	Component string
	Search    string
	Limit     int
}

func (q LogQuery) params() url.Values {
	if q.Limit == 0 {
		q.Limit = 500
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Level != "" {
		params.Set("level", q.Level)
	}
	if q.Component != "" {
		params.Set("component", q.Component)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	return params
}

// GetStationLogs returns log entries for one station.
func (c *Client) GetStationLogs(ctx context.Context, stationID string, query LogQuery) (map[string]any, error) {
	return c.getJSON(ctx, "/stations/"+stationID+"/logs", query.params())
}

// GetSystemLogs returns platform-wide log entries. Platform admin only.
func (c *Client) GetSystemLogs(ctx context.Context, query LogQuery) (map[string]any, error) {
	return c.getJSON(ctx, "/system/logs", query.params())
}

// GetSystemStatus returns system health. Platform admin only.
func (c *Client) GetSystemStatus(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, "/system/status", nil)
}
