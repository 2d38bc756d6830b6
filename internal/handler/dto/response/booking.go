package response

import "github.com/atomospherebrand-bot/relese/internal/usecase/queries"

type BookingResponse struct {
	Booking *queries.BookingView `json:"booking"`
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
}

type SlotsResponse struct {
	Slots []string `json:"slots"`
}

type CalendarResponse struct {
	Availability []queries.CalendarDay `json:"availability"`
}

func NewBookingList(items []*queries.BookingView) BookingListResponse {
	if items == nil {
		items = []*queries.BookingView{}
	}
	return BookingListResponse{Bookings: items}
}

func NewSlots(slots []string) SlotsResponse {
	if slots == nil {
		slots = []string{}
	}
	return SlotsResponse{Slots: slots}
}

func NewCalendar(days []queries.CalendarDay) CalendarResponse {
	if days == nil {
		days = []queries.CalendarDay{}
	}
	return CalendarResponse{Availability: days}
}
