package grimnir

import (
	"context"
	"net/url"
)

// NetworkSubscriptionInput subscribes a station to a network show.
type NetworkSubscriptionInput struct {
	StationID     string
	NetworkShowID string
	LocalTime     string // local broadcast time, HH:MM
	LocalDays     string // e.g. "MO,WE,FR"
	Timezone      string // default UTC
}

// GetNetworks returns syndication networks. An empty ownerID returns
// all networks.
func (c *Client) GetNetworks(ctx context.Context, ownerID string) ([]map[string]any, error) {
	params := url.Values{}
	if ownerID != "" {
		params.Set("owner_id", ownerID)
	}
	resp, err := c.getJSON(ctx, "/networks", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "networks"), nil
}

// GetNetworkShows returns network shows available for syndication. An
// empty networkID returns shows across all networks.
func (c *Client) GetNetworkShows(ctx context.Context, networkID string) ([]map[string]any, error) {
	params := url.Values{}
	if networkID != "" {
		params.Set("network_id", networkID)
	}
	resp, err := c.getJSON(ctx, "/network-shows", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "shows"), nil
}

// SubscribeToNetworkShow subscribes a station to a network show.
func (c *Client) SubscribeToNetworkShow(ctx context.Context, input NetworkSubscriptionInput) (map[string]any, error) {
	if input.Timezone == "" {
		input.Timezone = "UTC"
	}
	return c.postJSON(ctx, "/network-subscriptions", map[string]any{
		"station_id":      input.StationID,
		"network_show_id": input.NetworkShowID,
		"local_time":      input.LocalTime,
		"local_days":      input.LocalDays,
		"timezone":        input.Timezone,
	})
}
