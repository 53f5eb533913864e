package grimnir

import (
	"context"
	"net/url"
)

// SmartBlockInput describes a smart block to create. Rules are opaque
// rule objects (field, operator, value) evaluated server-side.
type SmartBlockInput struct {
	StationID   string
	Name        string
	Description string
	Rules       []map[string]any
	Limit       int    // max tracks to generate, default 10
	SortBy      string // random, newest, oldest, title, artist; default random
}

// GetSmartBlocks returns all smart blocks for a station.
func (c *Client) GetSmartBlocks(ctx context.Context, stationID string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	resp, err := c.getJSON(ctx, "/smart-blocks", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "smart_blocks"), nil
}

// CreateSmartBlock creates a new smart block.
func (c *Client) CreateSmartBlock(ctx context.Context, input SmartBlockInput) (map[string]any, error) {
	if input.Limit == 0 {
		input.Limit = 10
	}
	if input.SortBy == "" {
		input.SortBy = "random"
	}
	return c.postJSON(ctx, "/smart-blocks", map[string]any{
		"station_id":  input.StationID,
		"name":        input.Name,
		"description": input.Description,
		"rules":       input.Rules,
		"limit":       input.Limit,
		"sort_by":     input.SortBy,
	})
}

// MaterializeSmartBlock generates tracks from a smart block. A limit
// of 0 uses the backend default of 10 tracks.
func (c *Client) MaterializeSmartBlock(ctx context.Context, blockID string, limit int) ([]map[string]any, error) {
	if limit == 0 {
		limit = 10
	}
	resp, err := c.postJSON(ctx, "/smart-blocks/"+blockID+"/materialize", map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return listField(resp, "tracks"), nil
}
