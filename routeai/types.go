package routeai

import "errors"

// TripStop is one checked-out appointment handed to the estimator, in visit
// order.
type TripStop struct {
	Address string `json:"address"`
	Time    string `json:"time"`
}

// RouteSegment is the estimator's answer for one leg of the day.
type RouteSegment struct {
	Purpose    string  `json:"purpose"`
	DistanceKm float64 `json:"distance_km"`
}

var (
	// ErrNothingToImport signals that today has no checked-out appointments.
	ErrNothingToImport = errors.New("no checked-out appointments today")

	// ErrNoRoute signals the estimator answered but produced no usable segments.
	ErrNoRoute = errors.New("no usable route segments")

	// ErrQuotaExceeded signals the AI provider rejected the call for quota.
	ErrQuotaExceeded = errors.New("ai quota exceeded")

	// ErrImportInProgress signals another import holds the per-agency lock.
	ErrImportInProgress = errors.New("an import is already running")

	// ErrEstimatorUnavailable signals the estimator is not configured or the
	// provider failed in a non-quota way.
	ErrEstimatorUnavailable = errors.New("route estimator unavailable")
)
