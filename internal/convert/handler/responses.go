package handler

import (
	"chrono/internal/convert"
	"chrono/pkg/temporal"
)

// TimestampResponse is the wire view of a Timestamp: the canonical text form,
// both epoch-integer forms, and the zone-local decomposition.
type TimestampResponse struct {
	Canonical         string `json:"canonical"`
	EpochMilliseconds int64  `json:"epoch_milliseconds"`
	EpochMicroseconds int64  `json:"epoch_microseconds"`
	Zone              string `json:"zone"`
	Offset            string `json:"offset"`
	Year              int    `json:"year"`
	Month             int    `json:"month"`
	Day               int    `json:"day"`
	Hour              int    `json:"hour"`
	Minute            int    `json:"minute"`
	Second            int    `json:"second"`
	Millisecond       int    `json:"millisecond"`
	Weekday           int    `json:"weekday"`
}

// FromTimestamp builds the wire view from a domain value.
func FromTimestamp(ts temporal.Timestamp) TimestampResponse {
	return TimestampResponse{
		Canonical:         ts.String(),
		EpochMilliseconds: ts.UnixMilli(),
		EpochMicroseconds: ts.UnixMicro(),
		Zone:              ts.Zone().Name(),
		Offset:            ts.Zone().ISOOffset(),
		Year:              ts.Year(),
		Month:             ts.Month(),
		Day:               ts.Day(),
		Hour:              ts.Hour(),
		Minute:            ts.Minute(),
		Second:            ts.Second(),
		Millisecond:       ts.Millisecond(),
		Weekday:           ts.Weekday(),
	}
}

// FormatResponse is the body returned by the format endpoint.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// BatchItemResponse is one slot of a batch parse result. Exactly one of
// Result and Error is set.
type BatchItemResponse struct {
	Value  string             `json:"value"`
	Result *TimestampResponse `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// BatchResponse preserves submission order.
type BatchResponse struct {
	Results []BatchItemResponse `json:"results"`
}

// FromBatchResults maps service results onto the wire form.
func FromBatchResults(results []convert.BatchResult) BatchResponse {
	out := BatchResponse{Results: make([]BatchItemResponse, len(results))}
	for i, r := range results {
		item := BatchItemResponse{Value: r.Value}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			resp := FromTimestamp(r.Timestamp)
			item.Result = &resp
		}
		out.Results[i] = item
	}
	return out
}

// ZoneResponse is one registry entry.
type ZoneResponse struct {
	Name          string `json:"name"`
	Offset        string `json:"offset"`
	OffsetMinutes int    `json:"offset_minutes"`
}

// FromZones maps the registry onto the wire form, preserving order.
func FromZones(zones []temporal.TimeZone) []ZoneResponse {
	out := make([]ZoneResponse, len(zones))
	for i, z := range zones {
		out[i] = ZoneResponse{
			Name:          z.Name(),
			Offset:        z.ISOOffset(),
			OffsetMinutes: z.OffsetMinutes(),
		}
	}
	return out
}
