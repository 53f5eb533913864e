package grimnir

import (
	"context"
	"net/url"
)

// GetPlaylists returns all playlists for a station.
func (c *Client) GetPlaylists(ctx context.Context, stationID string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	resp, err := c.getJSON(ctx, "/playlists", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "playlists"), nil
}
