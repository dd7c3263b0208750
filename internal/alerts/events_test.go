package alerts

import (
	"testing"
	"time"
)

func testCatalog() Catalog {
	return Catalog{
		EventOverheat: {
			CategoryPermanent:   Fixed(NormalPermanentAlert("overheat", "", 200*time.Millisecond)),
			CategorySoftDisable: Fixed(SoftDisableAlert("overheat")),
			CategoryNoEntry:     Fixed(NoEntryAlert("overheat")),
		},
		EventDoorOpen: {
			CategoryNoEntry: Fixed(NoEntryAlert("door open")),
		},
		EventButtonEnable: {
			CategoryEnable: Fixed(EngagementAlert(AudibleEngage)),
		},
	}
}

func TestStickyPersistsAcrossClears(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)
	s.Add(EventOverheat, true)

	for tick := 0; tick < 5; tick++ {
		if !containsEvent(s.Names(), EventOverheat) {
			t.Fatalf("tick %d: sticky event missing from active set", tick)
		}
		s.Clear()
	}
}

func TestNonStickyDecaysAfterOneTick(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)
	s.Add(EventDoorOpen, false)

	if s.Len() != 1 {
		t.Fatalf("expected 1 active event, got %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("non-sticky event survived clear: %v", s.Names())
	}
}

func TestAgeMonotonicity(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)

	for tick := 0; tick < 4; tick++ {
		s.Add(EventDoorOpen, false)
		if got := s.Age(EventDoorOpen); got != tick {
			t.Fatalf("tick %d: age = %d, want %d", tick, got, tick)
		}
		s.Clear()
	}

	// One absent tick resets the counter.
	s.Clear()
	if got := s.Age(EventDoorOpen); got != 0 {
		t.Errorf("age after absence = %d, want 0", got)
	}
}

func TestAnyChecksCategoryBindings(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)

	if s.Any(CategoryNoEntry) {
		t.Fatal("Any(noEntry) true on empty set")
	}

	s.Add(EventOverheat, false)
	if !s.Any(CategoryNoEntry) {
		t.Error("Any(noEntry) false with overheat active")
	}
	if !s.Any(CategorySoftDisable) {
		t.Error("Any(softDisable) false with overheat active")
	}
	if s.Any(CategoryWarning) {
		t.Error("Any(warning) true with no warning binding active")
	}
}

func TestUnknownEventIsSilentlyTracked(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)

	const unknown = EventID(9999)
	s.Add(unknown, false)

	if s.Len() != 1 {
		t.Fatalf("unknown event not added to active set")
	}
	if s.Any(CategoryNoEntry) {
		t.Error("unknown event satisfied a category")
	}

	s.Add(unknown, false)
	s.Clear()
	s.Add(unknown, false)
	if got := s.Age(unknown); got != 1 {
		t.Errorf("unknown event age = %d, want 1", got)
	}
}

func TestDuplicateAddIsOneLogicalAssertion(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)
	s.Add(EventDoorOpen, false)
	s.Add(EventDoorOpen, false)

	got := s.CreateAlerts([]Category{CategoryNoEntry}, &ResolveContext{})
	if len(got) != 1 {
		t.Errorf("duplicate assertion produced %d alerts, want 1", len(got))
	}

	ext := s.ToExternal()
	if len(ext) != 1 {
		t.Errorf("duplicate assertion produced %d external events, want 1", len(ext))
	}
}

func TestToExternalReportsEveryBoundCategory(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)
	s.Add(EventOverheat, false)
	s.Add(EventDoorOpen, false)

	ext := s.ToExternal()
	if len(ext) != 2 {
		t.Fatalf("expected 2 external events, got %d", len(ext))
	}

	if ext[0].Name != "overheat" {
		t.Fatalf("assertion order not preserved: first event is %q", ext[0].Name)
	}
	want := []string{"noEntry", "softDisable", "permanent"}
	if len(ext[0].Categories) != len(want) {
		t.Fatalf("overheat categories = %v, want %v", ext[0].Categories, want)
	}
	for i, ct := range want {
		if ext[0].Categories[i] != ct {
			t.Errorf("overheat categories[%d] = %q, want %q", i, ext[0].Categories[i], ct)
		}
	}

	if len(ext[1].Categories) != 1 || ext[1].Categories[0] != "noEntry" {
		t.Errorf("doorOpen categories = %v, want [noEntry]", ext[1].Categories)
	}
}

func TestAddExternalResolvesNames(t *testing.T) {
	s := NewEventSet(testCatalog(), 10*time.Millisecond)
	s.AddExternal([]string{"doorOpen", "notARealEvent", "buttonEnable"})

	if s.Len() != 2 {
		t.Fatalf("expected 2 active events, got %d: %v", s.Len(), s.Names())
	}
	if !s.Any(CategoryEnable) {
		t.Error("buttonEnable not resolved from external name")
	}
}

func TestEventNameRoundTrip(t *testing.T) {
	for id := EventID(0); id < eventIDCount; id++ {
		name := id.String()
		if name == "" || name == "unknown" {
			t.Fatalf("event %d has no name", id)
		}
		back, ok := EventIDFromName(name)
		if !ok || back != id {
			t.Errorf("name %q round-tripped to %v (ok=%v), want %v", name, back, ok, id)
		}
	}

	if _, ok := EventIDFromName("bogus"); ok {
		t.Error("bogus name resolved to an event")
	}
}
