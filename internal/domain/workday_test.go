package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationNext(t *testing.T) {
	// Полный цикл: unset -> office -> home -> vacation -> other -> unset
	assert.Equal(t, LocationOffice, LocationUnset.Next())
	assert.Equal(t, LocationHome, LocationOffice.Next())
	assert.Equal(t, LocationVacation, LocationHome.Next())
	assert.Equal(t, LocationOther, LocationVacation.Next())
	assert.Equal(t, LocationUnset, LocationOther.Next())
}

func TestLocationValid(t *testing.T) {
	for _, location := range []Location{LocationUnset, LocationOffice, LocationHome, LocationVacation, LocationOther} {
		assert.True(t, location.Valid(), string(location))
	}
	assert.False(t, Location("remote").Valid())
}

func TestEventIsHoliday(t *testing.T) {
	assert.True(t, Event{Name: "Feiertag"}.IsHoliday())
	assert.True(t, Event{Name: "FEIERTAG"}.IsHoliday())
	assert.False(t, Event{Name: "Team Meeting"}.IsHoliday())
}
