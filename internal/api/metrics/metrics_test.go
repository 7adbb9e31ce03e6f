package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAuthRecorder(t *testing.T) {
	var r AuthRecorder

	before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success"))
	r.LoginAttempt("success")
	if got := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success")); got != before+1 {
		t.Fatalf("expected login counter to increase by 1, got %v -> %v", before, got)
	}

	before = testutil.ToFloat64(TokenVerificationsTotal.WithLabelValues("invalid"))
	r.TokenVerification("invalid")
	if got := testutil.ToFloat64(TokenVerificationsTotal.WithLabelValues("invalid")); got != before+1 {
		t.Fatalf("expected verification counter to increase by 1, got %v -> %v", before, got)
	}
}
