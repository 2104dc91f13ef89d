package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseZoneRef(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, ZoneV2Ref{ID: id}, ParseZoneRef(id.String()))
	assert.Equal(t, LegacyZoneRef{ID: 42}, ParseZoneRef(" 42 "))
	assert.Nil(t, ParseZoneRef(""))
	assert.Nil(t, ParseZoneRef("zone-north"))
	assert.Nil(t, ParseZoneRef("-3"))
	assert.Equal(t, "42", LegacyZoneRef{ID: 42}.String())
}
