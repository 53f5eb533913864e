package grimnir

import "context"

// GetStations returns all stations the credential has access to.
func (c *Client) GetStations(ctx context.Context) ([]map[string]any, error) {
	resp, err := c.getJSON(ctx, "/stations", nil)
	if err != nil {
		return nil, err
	}
	return listField(resp, "stations"), nil
}

// GetPublicStations returns all public stations. No auth required.
func (c *Client) GetPublicStations(ctx context.Context) ([]map[string]any, error) {
	resp, err := c.getJSON(ctx, "/public/stations", nil)
	if err != nil {
		return nil, err
	}
	return listField(resp, "stations"), nil
}

// GetStation returns details of a specific station.
func (c *Client) GetStation(ctx context.Context, stationID string) (map[string]any, error) {
	return c.getJSON(ctx, "/stations/"+stationID, nil)
}

// GetStationMounts returns the stream mounts of a station.
func (c *Client) GetStationMounts(ctx context.Context, stationID string) ([]map[string]any, error) {
	resp, err := c.getJSON(ctx, "/stations/"+stationID+"/mounts", nil)
	if err != nil {
		return nil, err
	}
	return listField(resp, "mounts"), nil
}
