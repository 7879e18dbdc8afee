package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPICall(t *testing.T) {
	APICallsTotal.Reset()
	APICallDuration.Reset()

	RecordAPICall("localhost:57809", "Components", "OK", 0.01)
	RecordAPICall("localhost:57809", "Components", "OK", 0.02)
	RecordAPICall("localhost:57809", "SetPower", "DeadlineExceeded", 0.1)

	count := testutil.ToFloat64(APICallsTotal.WithLabelValues("localhost:57809", "Components", "OK"))
	if count != 2.0 {
		t.Errorf("Expected Components/OK count to be 2.0, got %f", count)
	}

	count = testutil.ToFloat64(APICallsTotal.WithLabelValues("localhost:57809", "SetPower", "DeadlineExceeded"))
	if count != 1.0 {
		t.Errorf("Expected SetPower/DeadlineExceeded count to be 1.0, got %f", count)
	}
}

func TestRecordAPICallTimeout(t *testing.T) {
	APICallTimeoutsTotal.Reset()

	RecordAPICallTimeout("localhost:57809", "Connections")
	RecordAPICallTimeout("localhost:57809", "Connections")

	count := testutil.ToFloat64(APICallTimeoutsTotal.WithLabelValues("localhost:57809", "Connections"))
	if count != 2.0 {
		t.Errorf("Expected timeout count to be 2.0, got %f", count)
	}

	// Independent operation pair stays untouched
	count = testutil.ToFloat64(APICallTimeoutsTotal.WithLabelValues("localhost:57809", "Components"))
	if count != 0.0 {
		t.Errorf("Expected Components timeout count to be 0.0, got %f", count)
	}
}

func TestRecordSimulatorRequest(t *testing.T) {
	SimulatorRequestsTotal.Reset()

	RecordSimulatorRequest("ListComponents")

	count := testutil.ToFloat64(SimulatorRequestsTotal.WithLabelValues("ListComponents"))
	if count != 1.0 {
		t.Errorf("Expected simulator request count to be 1.0, got %f", count)
	}
}
