package errors

import (
	stdErrors "errors"
	"fmt"
)

// Kind classifies where in the catalog pipeline a failure happened.
type Kind string

const (
	// ListingUnavailable means the ranking source was unreachable or unparseable.
	ListingUnavailable Kind = "listing_unavailable"
	// MetadataNotFound means the metadata provider returned no usable match.
	MetadataNotFound Kind = "metadata_not_found"
	// RatingUnavailable means the ratings provider was unreachable or had no match.
	RatingUnavailable Kind = "rating_unavailable"
	// TransportError is a failure of the HTTP service's own request handling.
	TransportError Kind = "transport_error"
)

// LookupError records a failed lookup together with the subject that was looked up
// (a title, an IMDb ID or a catalog ID).
type LookupError struct {
	Kind    Kind
	Subject string
	Err     error
}

func (e *LookupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Subject, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// NewLookupError creates a LookupError of the given kind.
func NewLookupError(kind Kind, subject string, err error) *LookupError {
	return &LookupError{Kind: kind, Subject: subject, Err: err}
}

// KindOf returns the Kind of the first LookupError in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var lookupErr *LookupError
	if stdErrors.As(err, &lookupErr) {
		return lookupErr.Kind
	}
	return ""
}

// IsListingUnavailable reports whether err is a ListingUnavailable LookupError (even when wrapped).
func IsListingUnavailable(err error) bool {
	return KindOf(err) == ListingUnavailable
}

// IsMetadataNotFound reports whether err is a MetadataNotFound LookupError (even when wrapped).
func IsMetadataNotFound(err error) bool {
	return KindOf(err) == MetadataNotFound
}

// IsRatingUnavailable reports whether err is a RatingUnavailable LookupError (even when wrapped).
func IsRatingUnavailable(err error) bool {
	return KindOf(err) == RatingUnavailable
}

// IsTransportError reports whether err is a TransportError LookupError (even when wrapped).
func IsTransportError(err error) bool {
	return KindOf(err) == TransportError
}
