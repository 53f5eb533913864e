package grimnir

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// DateRange bounds an export or report. Values are ISO 8601 dates;
// empty fields are omitted and the backend applies its defaults.
type DateRange struct {
	Start string
	End   string
}

func (r DateRange) apply(params url.Values) {
	if r.Start != "" {
		params.Set("start", r.Start)
	}
	if r.End != "" {
		params.Set("end", r.End)
	}
}

// GetSchedule returns upcoming schedule entries. Hours of 0 uses the
// backend default of 24 hours ahead.
func (c *Client) GetSchedule(ctx context.Context, stationID string, hours int) ([]map[string]any, error) {
	if hours == 0 {
		hours = 24
	}
	params := url.Values{}
	params.Set("station_id", stationID)
	params.Set("hours", strconv.Itoa(hours))
	resp, err := c.getJSON(ctx, "/schedule", params)
	if err != nil {
		return nil, err
	}
	return listField(resp, "entries"), nil
}

// RefreshSchedule forces regeneration of the station's schedule.
func (c *Client) RefreshSchedule(ctx context.Context, stationID string) (map[string]any, error) {
	return c.postJSON(ctx, "/schedule/refresh", map[string]any{
		"station_id": stationID,
	})
}

// ExportScheduleICal exports the schedule as iCal text. This is the
// one endpoint with a raw-text contract: the body comes back verbatim
// on success and is never JSON-decoded.
func (c *Client) ExportScheduleICal(ctx context.Context, stationID string, dates DateRange) (string, error) {
	params := url.Values{}
	params.Set("station_id", stationID)
	params.Set("format", "ical")
	dates.apply(params)

	raw, err := c.call(ctx, http.MethodGet, "/schedule/export", params, nil, nil)
	if err != nil {
		return "", err
	}
	return raw.text()
}
