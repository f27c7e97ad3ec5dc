package aggregate

import "github.com/tripnest/travel-client/internal/core/domain"

// DedupTripsAndBookings reclassifies package-linked trips as bookings so that no
// record is counted both as a trip and as a booking. Real bookings keep their
// order and come first; converted trips follow in trip order. Only custom trips
// (nil PackageID) remain in the trip view.
func DedupTripsAndBookings(bookings []domain.Booking, trips []domain.Trip) ([]domain.Booking, []domain.Trip) {
	effBookings := make([]domain.Booking, 0, len(bookings)+len(trips))
	effBookings = append(effBookings, bookings...)

	effTrips := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if t.FromPackage() {
			effBookings = append(effBookings, BookingFromTrip(t))
			continue
		}
		effTrips = append(effTrips, t)
	}
	return effBookings, effTrips
}

// BookingFromTrip presents a package-linked trip as a booking.
func BookingFromTrip(t domain.Trip) domain.Booking {
	tripID := t.ID
	var pkgID *domain.ID
	if t.PackageID != nil {
		id := *t.PackageID
		pkgID = &id
	}
	return domain.Booking{
		ID:              t.ID,
		UserID:          t.UserID,
		PackageID:       pkgID,
		TripID:          &tripID,
		Date:            t.Date,
		Amount:          t.Price,
		Status:          domain.BookingStatus(t.Status),
		TransportType:   t.Transport,
		DerivedFromTrip: true,
	}
}
