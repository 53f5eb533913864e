package grimnir

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// SpinQuery filters track play history. A zero Since is omitted from
// the query; a Limit of 0 uses the backend default of 100 records.
type SpinQuery struct {
	Since time.Time
	Limit int
}

// GetNowPlaying returns the currently playing track. An empty
// stationID queries across all stations.
func (c *Client) GetNowPlaying(ctx context.Context, stationID string) (map[string]any, error) {
	params := url.Values{}
	if stationID != "" {
		params.Set("station_id", stationID)
	}
	return c.getJSON(ctx, "/analytics/now-playing", params)
}

// GetListeners returns the current listener counts. An empty stationID
// queries across all stations.
func (c *Client) GetListeners(ctx context.Context, stationID string) (map[string]any, error) {
	params := url.Values{}
	if stationID != "" {
		params.Set("station_id", stationID)
	}
	return c.getJSON(ctx, "/analytics/listeners", params)
}

// GetSpins returns track play history for a station.
func (c *Client) GetSpins(ctx context.Context, stationID string, query SpinQuery) ([]map[string]any, error) {
	if query.Limit == 0 {
		query.Limit = 100
	}
	params := url.Values{}
	params.Set("station_id", stationID)
	params.Set("limit", strconv.Itoa(query.Limit))
	if !query.Since.IsZero() {
		params.Set("since", query.Since.Format(time.RFC3339))
	}
	resp, err := c.getJSON(ctx, "/analytics/spins", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "spins"), nil
}
