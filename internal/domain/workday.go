package domain

type Location string

const (
	LocationUnset    Location = ""
	LocationOffice   Location = "office"
	LocationHome     Location = "home"
	LocationVacation Location = "vacation"
	LocationOther    Location = "other"
)

// Next возвращает следующее значение в цикле
// unset -> office -> home -> vacation -> other -> unset
func (l Location) Next() Location {
	switch l {
	case LocationUnset:
		return LocationOffice
	case LocationOffice:
		return LocationHome
	case LocationHome:
		return LocationVacation
	case LocationVacation:
		return LocationOther
	default:
		return LocationUnset
	}
}

func (l Location) Valid() bool {
	switch l {
	case LocationUnset, LocationOffice, LocationHome, LocationVacation, LocationOther:
		return true
	}
	return false
}

// WorkDay - статус одного участника на одну календарную дату.
// Для пары (UserID, Date) существует не более одной записи.
type WorkDay struct {
	UserID   string
	Date     string // YYYY-MM-DD
	Location Location
}
