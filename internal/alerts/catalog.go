package alerts

// Category tags which state-transition effect an event's alert is filed
// under. One event may carry alerts for several categories at once.
type Category int

const (
	CategoryEnable Category = iota
	CategoryPreEnable
	CategoryNoEntry
	CategoryWarning
	CategoryUserDisable
	CategorySoftDisable
	CategoryImmediateDisable
	CategoryPermanent

	categoryCount // sentinel, keep last
)

var categoryNames = [categoryCount]string{
	CategoryEnable:           "enable",
	CategoryPreEnable:        "preEnable",
	CategoryNoEntry:          "noEntry",
	CategoryWarning:          "warning",
	CategoryUserDisable:      "userDisable",
	CategorySoftDisable:      "softDisable",
	CategoryImmediateDisable: "immediateDisable",
	CategoryPermanent:        "permanent",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for ct, name := range categoryNames {
		m[name] = Category(ct)
	}
	return m
}()

func (ct Category) String() string {
	if ct < 0 || ct >= categoryCount {
		return "unknown"
	}
	return categoryNames[ct]
}

// CategoryFromName resolves a wire name to its Category.
func CategoryFromName(name string) (Category, bool) {
	ct, ok := categoriesByName[name]
	return ct, ok
}

// Generator computes an alert from live context. Generators must be pure
// reads of the snapshot: no I/O, no blocking, return within the tick.
type Generator func(rctx *ResolveContext) (*Alert, error)

// Source binds one (event, category) pair to either a fixed alert or a
// generator. Exactly one of the two fields is set.
type Source struct {
	Alert    *Alert
	Generate Generator
}

// Fixed wraps a static alert as a Source.
func Fixed(a Alert) Source {
	return Source{Alert: &a}
}

// Dynamic wraps a generator callback as a Source.
func Dynamic(g Generator) Source {
	return Source{Generate: g}
}

// Catalog is the read-only mapping from event to its per-category alert
// sources. It is authored externally and supplied once at startup.
type Catalog map[EventID]map[Category]Source

// Bindings returns the category map for an event, nil if unknown.
func (c Catalog) Bindings(id EventID) map[Category]Source {
	return c[id]
}

// Categories returns the categories bound for an event in ordinal order.
// Map iteration order is never exposed; the ordinal walk keeps external
// reporting deterministic.
func (c Catalog) Categories(id EventID) []Category {
	bindings := c[id]
	if len(bindings) == 0 {
		return nil
	}
	out := make([]Category, 0, len(bindings))
	for ct := Category(0); ct < categoryCount; ct++ {
		if _, ok := bindings[ct]; ok {
			out = append(out, ct)
		}
	}
	return out
}
