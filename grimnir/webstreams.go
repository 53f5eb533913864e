package grimnir

import (
	"context"
	"net/url"
)

// WebstreamInput describes a webstream relay to create.
type WebstreamInput struct {
	StationID   string
	Name        string
	URL         string
	Format      string // mp3, ogg, aac
	FallbackURL string // optional
}

// GetWebstreams returns the webstream relays of a station.
func (c *Client) GetWebstreams(ctx context.Context, stationID string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	resp, err := c.getJSON(ctx, "/webstreams", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "webstreams"), nil
}

// CreateWebstream creates a webstream relay. The fallback URL is sent
// only when set.
func (c *Client) CreateWebstream(ctx context.Context, input WebstreamInput) (map[string]any, error) {
	body := map[string]any{
		"station_id": input.StationID,
		"name":       input.Name,
		"url":        input.URL,
		"format":     input.Format,
	}
	if input.FallbackURL != "" {
		body["fallback_url"] = input.FallbackURL
	}
	return c.postJSON(ctx, "/webstreams", body)
}
