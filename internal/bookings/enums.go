package bookings

type BookingType string

const (
	TypeFlight BookingType = "flight"
	TypeHotel  BookingType = "hotel"
)

func (t BookingType) IsValid() bool {
	return t == TypeFlight || t == TypeHotel
}

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type RefundStatus string

const (
	RefundPending       RefundStatus = "pending"
	RefundProcessed     RefundStatus = "processed"
	RefundNotApplicable RefundStatus = "not-applicable"
)

func (s RefundStatus) IsValid() bool {
	return s == RefundPending || s == RefundProcessed || s == RefundNotApplicable
}
