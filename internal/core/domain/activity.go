package domain

import "time"

// ActivityKind names a lifecycle write recorded in the audit trail.
type ActivityKind string

const (
	ActivityBookingCreated   ActivityKind = "booking_created"
	ActivityBookingCancelled ActivityKind = "booking_cancelled"
	ActivityBookingStatus    ActivityKind = "booking_status_changed"
	ActivityTripCreated      ActivityKind = "trip_created"
	ActivityTripUpdated      ActivityKind = "trip_updated"
	ActivityExpenseCreated   ActivityKind = "expense_created"
	ActivityExpenseUpdated   ActivityKind = "expense_updated"
	ActivityExpenseDeleted   ActivityKind = "expense_deleted"
	ActivityPackageChanged   ActivityKind = "package_changed"
	ActivityUserChanged      ActivityKind = "user_changed"
)

// Activity records a successful lifecycle write.
type Activity struct {
	Kind      ActivityKind
	UserID    ID
	SubjectID ID
	Status    string // optional: resulting status
	Notes     string // optional
	At        time.Time
}
