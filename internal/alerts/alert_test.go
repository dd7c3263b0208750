package alerts

import (
	"testing"
	"time"
)

func TestSelectPicksHighestPriority(t *testing.T) {
	candidates := []Alert{
		{Text1: "mid", Priority: PriorityMid},
		{Text1: "high", Priority: PriorityHigh},
		{Text1: "low", Priority: PriorityLow},
	}

	got := Select(candidates)
	if got == nil || got.Text1 != "high" {
		t.Fatalf("Select = %v, want high", got)
	}
}

func TestSelectKeepsFirstOnTie(t *testing.T) {
	candidates := []Alert{
		{Text1: "first", Priority: PriorityMid},
		{Text1: "second", Priority: PriorityMid},
		{Text1: "third", Priority: PriorityLowest},
	}

	got := Select(candidates)
	if got == nil || got.Text1 != "first" {
		t.Fatalf("Select = %v, want first on tie", got)
	}
}

func TestSelectEmpty(t *testing.T) {
	if got := Select(nil); got != nil {
		t.Errorf("Select(nil) = %v, want nil", got)
	}
}

func TestGreaterComparesPriorityOnly(t *testing.T) {
	a := Alert{Text1: "zzz", Priority: PriorityHigh}
	b := Alert{Text1: "aaa", Priority: PriorityLow}

	if !a.Greater(b) {
		t.Error("high not greater than low")
	}
	if b.Greater(a) {
		t.Error("low greater than high")
	}

	// Equal priorities compare as neither greater.
	c := Alert{Text1: "other", Priority: PriorityHigh}
	if a.Greater(c) || c.Greater(a) {
		t.Error("equal priorities must be unordered")
	}
}

func TestPresetConstructors(t *testing.T) {
	tests := []struct {
		name     string
		alert    Alert
		priority Priority
		status   Status
		size     Size
	}{
		{"noEntry", NoEntryAlert("x"), PriorityLow, StatusNormal, SizeMid},
		{"softDisable", SoftDisableAlert("x"), PriorityMid, StatusCritical, SizeFull},
		{"immediateDisable", ImmediateDisableAlert("x"), PriorityHighest, StatusCritical, SizeFull},
		{"engagement", EngagementAlert(AudibleEngage), PriorityMid, StatusNormal, SizeNone},
		{"permanentSmall", NormalPermanentAlert("x", "", time.Second), PriorityLower, StatusNormal, SizeSmall},
		{"permanentMid", NormalPermanentAlert("x", "y", time.Second), PriorityLower, StatusNormal, SizeMid},
	}

	for _, tt := range tests {
		if tt.alert.Priority != tt.priority {
			t.Errorf("%s: priority = %v, want %v", tt.name, tt.alert.Priority, tt.priority)
		}
		if tt.alert.Status != tt.status {
			t.Errorf("%s: status = %v, want %v", tt.name, tt.alert.Status, tt.status)
		}
		if tt.alert.Size != tt.size {
			t.Errorf("%s: size = %v, want %v", tt.name, tt.alert.Size, tt.size)
		}
	}
}

func TestCategoryNameRoundTrip(t *testing.T) {
	for ct := Category(0); ct < categoryCount; ct++ {
		back, ok := CategoryFromName(ct.String())
		if !ok || back != ct {
			t.Errorf("category %v failed round trip", ct)
		}
	}
	if _, ok := CategoryFromName("bogus"); ok {
		t.Error("bogus category name resolved")
	}
}

func TestPriorityOrder(t *testing.T) {
	order := []Priority{PriorityLowest, PriorityLower, PriorityLow, PriorityMid, PriorityHigh, PriorityHighest}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("priority ordinals out of order at %v", order[i])
		}
	}
}
