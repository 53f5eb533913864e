package grimnir

import (
	"context"
	"net/url"
)

// GetSponsors returns the sponsors of a station.
func (c *Client) GetSponsors(ctx context.Context, stationID string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	resp, err := c.getJSON(ctx, "/sponsors", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "sponsors"), nil
}

// CreateSponsor creates a sponsor. Contact info is sent only when
// provided.
func (c *Client) CreateSponsor(ctx context.Context, stationID, name string, contactInfo map[string]string) (map[string]any, error) {
	body := map[string]any{
		"station_id": stationID,
		"name":       name,
	}
	if len(contactInfo) > 0 {
		body["contact_info"] = contactInfo
	}
	return c.postJSON(ctx, "/sponsors", body)
}

// GetUnderwritingFulfillment returns the fulfillment report with
// obligations and aired spots.
func (c *Client) GetUnderwritingFulfillment(ctx context.Context, stationID string, dates DateRange) (map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	dates.apply(params)
	return c.getJSON(ctx, "/underwriting/fulfillment", params)
}
