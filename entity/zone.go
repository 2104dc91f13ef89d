package entity

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Zone is a service area with its polygon in WKT.
type Zone struct {
	ID         string `json:"id"`
	ReadableID string `json:"readableId"`
	Name       string `json:"name"`
	Polygon    string `json:"polygon"`
	Active     bool   `json:"active"`
}

// ZoneRef identifies a zone in one of the two backend identifier schemes.
type ZoneRef interface {
	zoneRef()
	String() string
}

// LegacyZoneRef points at a zone of the numeric-id model.
type LegacyZoneRef struct{ ID int64 }

// ZoneV2Ref points at a zone of the UUID-keyed model.
type ZoneV2Ref struct{ ID uuid.UUID }

func (LegacyZoneRef) zoneRef() {}
func (ZoneV2Ref) zoneRef()     {}

func (r LegacyZoneRef) String() string { return strconv.FormatInt(r.ID, 10) }
func (r ZoneV2Ref) String() string     { return r.ID.String() }

// ParseZoneRef resolves a raw id. It returns nil for empty or unrecognised input.
func ParseZoneRef(raw string) ZoneRef {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if id, err := uuid.Parse(raw); err == nil {
		return ZoneV2Ref{ID: id}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
		return LegacyZoneRef{ID: n}
	}
	return nil
}
