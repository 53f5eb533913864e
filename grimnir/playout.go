package grimnir

import "context"

// SkipTrack skips the currently playing track.
func (c *Client) SkipTrack(ctx context.Context, stationID string) (map[string]any, error) {
	return c.postJSON(ctx, "/playout/skip", map[string]any{
		"station_id": stationID,
	})
}

// StopPlayout stops all playout for a station.
func (c *Client) StopPlayout(ctx context.Context, stationID string) (map[string]any, error) {
	return c.postJSON(ctx, "/playout/stop", map[string]any{
		"station_id": stationID,
	})
}
