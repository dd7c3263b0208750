package catalog

import (
	"strings"
	"testing"
	"time"

	"klaxon/internal/alerts"
)

func sampleContext() *alerts.ResolveContext {
	return &alerts.ResolveContext{
		Params: alerts.VehicleParams{
			CarName:       "hyundai",
			MinSteerSpeed: 8.94,
		},
		Telemetry: alerts.Telemetry{
			VEgo:                12.5,
			CalPerc:             47,
			GPSIntegrated:       true,
			AutoLaneChangeTimer: 3,
			JoystickAxes:        []float64{0.25, -0.5},
		},
		Metric: true,
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	cat := Default()
	if len(cat) == 0 {
		t.Fatal("default catalog is empty")
	}

	rctx := sampleContext()
	for id, bindings := range cat {
		if len(bindings) == 0 {
			t.Errorf("%s: no category bindings", id)
		}
		for ct, src := range bindings {
			if src.Alert == nil && src.Generate == nil {
				t.Errorf("%s/%s: empty source", id, ct)
				continue
			}
			if src.Alert != nil && src.Generate != nil {
				t.Errorf("%s/%s: both fixed and generator set", id, ct)
			}

			a := src.Alert
			if src.Generate != nil {
				got, err := src.Generate(rctx)
				if err != nil {
					t.Errorf("%s/%s: generator failed on sample context: %v", id, ct, err)
					continue
				}
				a = got
			}
			if a.Priority < alerts.PriorityLowest || a.Priority > alerts.PriorityHighest {
				t.Errorf("%s/%s: priority out of range: %v", id, ct, a.Priority)
			}
		}
	}
}

func TestNoGPSCreationDelay(t *testing.T) {
	cat := Default()
	src := cat[alerts.EventNoGPS][alerts.CategoryPermanent]
	if src.Generate == nil {
		t.Fatal("noGps/permanent is not a generator")
	}

	a, err := src.Generate(sampleContext())
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}
	if a.CreationDelay != 300*time.Second {
		t.Errorf("creation delay = %v, want 300s", a.CreationDelay)
	}
}

func TestCalibrationIncompleteAlertText(t *testing.T) {
	a, err := calibrationIncompleteAlert(sampleContext())
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}
	if !strings.Contains(a.Text1, "47%") {
		t.Errorf("text does not carry live percentage: %q", a.Text1)
	}
	if !strings.Contains(a.Text2, "km/h") {
		t.Errorf("metric units not used: %q", a.Text2)
	}
}

func TestCalibrationIncompleteRejectsBadPercentage(t *testing.T) {
	rctx := sampleContext()
	rctx.Telemetry.CalPerc = 150

	if _, err := calibrationIncompleteAlert(rctx); err == nil {
		t.Error("out-of-range percentage accepted")
	}
}

func TestBelowSteerSpeedUsesUnits(t *testing.T) {
	rctx := sampleContext()

	metric, err := belowSteerSpeedAlert(rctx)
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}
	if !strings.Contains(metric.Text2, "km/h") {
		t.Errorf("metric text = %q, want km/h", metric.Text2)
	}

	rctx.Metric = false
	imperial, err := belowSteerSpeedAlert(rctx)
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}
	if !strings.Contains(imperial.Text2, "mph") {
		t.Errorf("imperial text = %q, want mph", imperial.Text2)
	}
}

func TestWrongCarModeTextByPlatform(t *testing.T) {
	rctx := sampleContext()

	a, err := wrongCarModeAlert(rctx)
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}
	if a.Text2 != "Cruise inactive" {
		t.Errorf("text = %q, want cruise inactive", a.Text2)
	}

	rctx.Params.CarName = "honda"
	a, err = wrongCarModeAlert(rctx)
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}
	if a.Text2 != "Main switch off" {
		t.Errorf("honda text = %q, want main switch off", a.Text2)
	}
}

func TestImmediateDisableEventsOutrankWarnings(t *testing.T) {
	cat := Default()

	can := cat[alerts.EventCANError][alerts.CategoryImmediateDisable].Alert
	saturated := cat[alerts.EventSteerSaturated][alerts.CategoryWarning].Alert

	if !can.Greater(*saturated) {
		t.Error("immediate disable does not outrank a mid warning")
	}
}
