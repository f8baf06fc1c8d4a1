package wardrobe

// Event is a sealed interface representing a run progress notification.
// Events are purely informational; failures come from Run's error return,
// not from events. The unexported marker method prevents external
// implementations.
type Event interface {
	event()
}

// EventPromptLoaded reports the user prompt after loading.
type EventPromptLoaded struct {
	Path string
	Text string
}

func (EventPromptLoaded) event() {}

// EventAssetsResolved reports the resolved input imagery.
type EventAssetsResolved struct {
	Assets AssetSet
}

func (EventAssetsResolved) event() {}

// EventSchedule reports the temperature schedule and the constant top-p
// used across the run.
type EventSchedule struct {
	Temperatures []float64
	TopP         float64
}

func (EventSchedule) event() {}

// EventVariationStarted signals the start of one variation. Index is
// 1-based; Count is the total number of variations.
type EventVariationStarted struct {
	Index       int
	Count       int
	Temperature float64
}

func (EventVariationStarted) event() {}

// EventConfigBuilt reports the request descriptor for one variation.
type EventConfigBuilt struct {
	Index  int
	Config RequestConfig
}

func (EventConfigBuilt) event() {}

// EventModelText surfaces a textual part returned alongside the images.
type EventModelText struct {
	Index int
	Text  string
}

func (EventModelText) event() {}

// EventImagesSaved reports the paths persisted for one variation.
type EventImagesSaved struct {
	Index int
	Paths []string
}

func (EventImagesSaved) event() {}

// EventWarning reports a suspicious but non-fatal condition, such as an
// explicit sampling override outside the tuned interval.
type EventWarning struct {
	Message string
}

func (EventWarning) event() {}

// Interface compliance checks.
var (
	_ Event = EventPromptLoaded{}
	_ Event = EventAssetsResolved{}
	_ Event = EventSchedule{}
	_ Event = EventVariationStarted{}
	_ Event = EventConfigBuilt{}
	_ Event = EventModelText{}
	_ Event = EventImagesSaved{}
	_ Event = EventWarning{}
)
