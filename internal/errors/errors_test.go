package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestLookupError(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := NewLookupError(MetadataNotFound, "Film B", cause)

	expected := "metadata_not_found: Film B: connection refused"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsMetadataNotFound(err) {
		t.Fatalf("IsMetadataNotFound returned false for MetadataNotFound error")
	}

	if IsRatingUnavailable(err) {
		t.Fatalf("IsRatingUnavailable returned true for MetadataNotFound error")
	}

	if !stdErrors.Is(err, cause) {
		t.Fatalf("errors.Is did not find the wrapped cause")
	}
}

func TestLookupErrorWithoutCause(t *testing.T) {
	err := NewLookupError(TransportError, "netflix_top10", nil)

	expected := "transport_error: netflix_top10"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("building catalog: %w", NewLookupError(ListingUnavailable, "netflix-movies", nil))

	if KindOf(wrapped) != ListingUnavailable {
		t.Fatalf("KindOf = %q, want %q", KindOf(wrapped), ListingUnavailable)
	}

	if !IsListingUnavailable(wrapped) {
		t.Fatalf("IsListingUnavailable returned false for wrapped error")
	}

	if KindOf(stdErrors.New("plain")) != "" {
		t.Fatalf("KindOf returned a kind for a plain error")
	}

	if IsTransportError(nil) {
		t.Fatalf("IsTransportError returned true for nil")
	}
}

func TestStatusError(t *testing.T) {
	err := NewStatusError("tmdb", 401, " Invalid API key \n")

	expected := "tmdb: unexpected status 401: Invalid API key"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	wrapped := fmt.Errorf("search: %w", err)
	if !IsStatusError(wrapped) {
		t.Fatalf("IsStatusError returned false for wrapped StatusError")
	}

	if StatusCode(wrapped) != 401 {
		t.Fatalf("StatusCode = %d, want 401", StatusCode(wrapped))
	}
}

func TestStatusErrorNoBody(t *testing.T) {
	err := NewStatusError("rpdb", 503, "")

	expected := "rpdb: unexpected status 503"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if StatusCode(stdErrors.New("other")) != 0 {
		t.Fatalf("StatusCode returned non-zero for non-status error")
	}
}
