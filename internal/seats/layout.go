package seats

import "fmt"

// Default narrow-body layout used when a flight has no stored seat map.
const (
	defaultAircraftType = "Boeing 737-800"

	businessRowEnd = 3  // rows 1-3
	premiumRowEnd  = 6  // rows 4-6
	economyRowEnd  = 30 // rows 7-30

	businessExtraPrice = 200
	premiumExtraPrice  = 50
)

var (
	businessColumns = []string{"A", "B", "C", "D"}
	standardColumns = []string{"A", "B", "C", "D", "E", "F"}
)

// GenerateDefaultSeatMap builds the standard cabin for a flight: business
// rows up front in a 2-2 layout, then premium and economy in 3-3.
func GenerateDefaultSeatMap(flightID string) *SeatMap {
	seatMap := &SeatMap{
		FlightID:     flightID,
		AircraftType: defaultAircraftType,
	}

	for row := 1; row <= economyRowEnd; row++ {
		var (
			columns []string
			class   SeatClass
			extra   float64
		)
		switch {
		case row <= businessRowEnd:
			columns, class, extra = businessColumns, ClassBusiness, businessExtraPrice
		case row <= premiumRowEnd:
			columns, class, extra = standardColumns, ClassPremium, premiumExtraPrice
		default:
			columns, class, extra = standardColumns, ClassEconomy, 0
		}

		for _, column := range columns {
			seatMap.Seats = append(seatMap.Seats, Seat{
				SeatNumber: seatNumber(row, column),
				Row:        row,
				Column:     column,
				Class:      class,
				Window:     isWindow(column, class),
				Aisle:      isAisle(column, class),
				ExtraPrice: extra,
				Available:  true,
			})
		}
	}

	return seatMap
}

func seatNumber(row int, column string) string {
	return fmt.Sprintf("%d%s", row, column)
}

func isWindow(column string, class SeatClass) bool {
	if class == ClassBusiness {
		return column == "A" || column == "D"
	}
	return column == "A" || column == "F"
}

func isAisle(column string, class SeatClass) bool {
	if class == ClassBusiness {
		return column == "B" || column == "C"
	}
	return column == "C" || column == "D"
}
