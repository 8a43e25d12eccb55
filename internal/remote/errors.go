package remote

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a failed remote call: HTTP status plus the backend's error payload.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("remote: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("remote: %s (status %d)", e.Message, e.Status)
}

// rlsMarkers are message fragments produced by the known row-level-security
// misconfiguration on the hosted backend (a recursive policy on user_roles).
// Matching is permissive: a false positive only degrades a read to the
// bundled sample catalog.
var rlsMarkers = []string{
	"infinite recursion",
	"policy for relation",
	"user_roles",
}

// IsRLSPolicyError reports whether err looks like the recognized
// row-level-security misconfiguration. String heuristic, not a code check;
// the backend does not emit a stable code for this failure.
func IsRLSPolicyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range rlsMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is a remote 404 or the PostgREST
// "no rows" code.
func IsNotFound(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Status == 404 || re.Code == "PGRST116"
	}
	return false
}
