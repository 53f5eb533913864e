package grimnir

import (
	"context"
	"net/url"
)

// GetPublicSchedule returns the public schedule of a station. No auth
// required.
func (c *Client) GetPublicSchedule(ctx context.Context, stationID string, dates DateRange) (map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	dates.apply(params)
	return c.getJSON(ctx, "/public/schedule", params)
}

// GetPublicNowPlaying returns the current and next show of a station.
// No auth required.
func (c *Client) GetPublicNowPlaying(ctx context.Context, stationID string) (map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	return c.getJSON(ctx, "/public/now-playing", params)
}
