package rooms

import "fmt"

// Default hotel inventory used when a hotel has no stored layout.

type roomTypeSpec struct {
	roomType      RoomType
	description   string
	basePrice     float64
	amenities     []string
	floorStart    int
	floorEnd      int
	roomsPerFloor int
	sizeSqm       int
}

var defaultRoomTypes = []roomTypeSpec{
	{
		roomType:      TypeStandard,
		description:   "Comfortable room with all essential amenities",
		basePrice:     100,
		amenities:     []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Mini fridge"},
		floorStart:    1,
		floorEnd:      5,
		roomsPerFloor: 10,
		sizeSqm:       25,
	},
	{
		roomType:      TypeDeluxe,
		description:   "Spacious room with premium furnishings and bathtub",
		basePrice:     200,
		amenities:     []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Mini bar", "Coffee machine", "Bathtub"},
		floorStart:    6,
		floorEnd:      8,
		roomsPerFloor: 6,
		sizeSqm:       35,
	},
	{
		roomType:      TypeSuite,
		description:   "Luxury suite with separate living area and kitchenette",
		basePrice:     500,
		amenities:     []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Mini bar", "Coffee machine", "Bathtub", "Living area", "Kitchenette"},
		floorStart:    9,
		floorEnd:      10,
		roomsPerFloor: 4,
		sizeSqm:       60,
	},
}

// GenerateDefaultLayout builds the standard hotel inventory: standard rooms
// on the lower floors, deluxe in the middle, suites on top. Floor ranges do
// not overlap, so room numbers are unique across the hotel.
func GenerateDefaultLayout(hotelID string) *RoomLayout {
	layout := &RoomLayout{HotelID: hotelID}

	for _, spec := range defaultRoomTypes {
		group := RoomTypeGroup{
			Type:        spec.roomType,
			Description: spec.description,
			BasePrice:   spec.basePrice,
			Amenities:   spec.amenities,
			Images: []string{
				fmt.Sprintf("/images/rooms/%s-preview.jpg", spec.roomType),
				fmt.Sprintf("/images/rooms/%s-360.jpg", spec.roomType),
			},
		}

		for floor := spec.floorStart; floor <= spec.floorEnd; floor++ {
			for i := 1; i <= spec.roomsPerFloor; i++ {
				group.Rooms = append(group.Rooms, Room{
					RoomNumber: fmt.Sprintf("%d%02d", floor, i),
					Floor:      floor,
					View:       viewFor(spec.roomType, floor),
					SizeSqm:    spec.sizeSqm,
					Features:   featuresFor(spec.roomType, floor),
					Available:  true,
				})
			}
		}

		layout.RoomTypes = append(layout.RoomTypes, group)
	}

	return layout
}

func viewFor(roomType RoomType, floor int) string {
	switch roomType {
	case TypeSuite:
		return "ocean"
	case TypeDeluxe:
		if floor >= 7 {
			return "ocean"
		}
		return "garden"
	default:
		if floor <= 2 {
			return "city"
		}
		return "garden"
	}
}

func featuresFor(roomType RoomType, floor int) []string {
	switch roomType {
	case TypeSuite:
		return []string{"Balcony", "Living area", "Kitchenette"}
	case TypeDeluxe:
		return []string{"Balcony", "Bathtub"}
	default:
		if floor > 2 {
			return []string{"Balcony"}
		}
		return nil
	}
}
