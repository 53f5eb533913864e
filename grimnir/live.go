package grimnir

import (
	"context"
	"net/url"
)

// GenerateLiveToken creates a token for live DJ streaming on a mount.
func (c *Client) GenerateLiveToken(ctx context.Context, stationID, mountID string) (map[string]any, error) {
	return c.postJSON(ctx, "/live/tokens", map[string]any{
		"station_id": stationID,
		"mount_id":   mountID,
	})
}

// GetLiveSessions returns active live DJ sessions. An empty stationID
// returns sessions across all stations.
func (c *Client) GetLiveSessions(ctx context.Context, stationID string) ([]map[string]any, error) {
	params := url.Values{}
	if stationID != "" {
		params.Set("station_id", stationID)
	}
	resp, err := c.getJSON(ctx, "/live/sessions", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "sessions"), nil
}
