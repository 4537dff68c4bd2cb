// Package deck holds the slide content of the pipeline presentation and the
// navigation state over it.
//
// Content is immutable declarative data: the six slides are authored in the
// embedded deck.yaml and parsed once. Nothing in this package touches the
// terminal.
package deck

// SlideID identifies one of the fixed slides by position.
type SlideID int

const (
	Ingestion SlideID = iota
	Processing
	Training
	Inference
	Dictionary
	Flow
)

// Count is the number of slides in the deck.
const Count = 6

func (id SlideID) String() string {
	switch id {
	case Ingestion:
		return "Ingestion"
	case Processing:
		return "Processing"
	case Training:
		return "Training"
	case Inference:
		return "Inference"
	case Dictionary:
		return "Dictionary"
	case Flow:
		return "Flow"
	default:
		return "Unknown"
	}
}

// Valid reports whether id names a slide.
func (id SlideID) Valid() bool {
	return id >= 0 && int(id) < Count
}

// Kind selects the layout a slide uses.
type Kind string

const (
	KindPipeline Kind = "pipeline" // layers of boxes, connectors, three benefits
	KindServices Kind = "services" // grid of service descriptions
	KindSteps    Kind = "steps"    // numbered vertical step list
)

// Variant is the color family of a diagram box.
// Values outside the named set are kept and render with a neutral style.
type Variant string

const (
	VariantAWS       Variant = "aws"
	VariantExternal  Variant = "external"
	VariantSageMaker Variant = "sagemaker"
	VariantS3        Variant = "s3"
	VariantAthena    Variant = "athena"
	VariantDMS       Variant = "dms"
)

// Known reports whether v is one of the named variants.
func (v Variant) Known() bool {
	switch v {
	case VariantAWS, VariantExternal, VariantSageMaker, VariantS3, VariantAthena, VariantDMS:
		return true
	}
	return false
}

// Node is a labeled diagram box.
type Node struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Icon     string  `yaml:"icon"`
	Variant  Variant `yaml:"variant"`
}

// Connector is a downward arrow between layers with an optional caption.
type Connector struct {
	Label string `yaml:"label"`
}

// Layer is a row of boxes. Connector, when set, is drawn below the row.
type Layer struct {
	Nodes     []Node     `yaml:"nodes"`
	Connector *Connector `yaml:"connector,omitempty"`
}

// Benefit is a summary card shown under a pipeline diagram.
type Benefit struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Service is an entry of the service dictionary slide.
type Service struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

// Step is a numbered entry of the flow slide.
type Step struct {
	Number string `yaml:"number"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
}

// Slide is one fixed view of the deck.
type Slide struct {
	ID       SlideID   `yaml:"id"`
	Kind     Kind      `yaml:"kind"`
	Icon     string    `yaml:"icon"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Layers   []Layer   `yaml:"layers,omitempty"`
	Benefits []Benefit `yaml:"benefits,omitempty"`
	Services []Service `yaml:"services,omitempty"`
	Steps    []Step    `yaml:"steps,omitempty"`
}

// Labels is the localized text of the presentation chrome.
type Labels struct {
	FullscreenEnter string `yaml:"fullscreen_enter"`
	FullscreenExit  string `yaml:"fullscreen_exit"`
	Previous        string `yaml:"previous"`
	Next            string `yaml:"next"`
	GoTo            string `yaml:"go_to"`
}

// Deck is the complete presentation.
type Deck struct {
	Mark    string  `yaml:"mark"`
	Brand   string  `yaml:"brand"`
	Product string  `yaml:"product"`
	Labels  Labels  `yaml:"labels"`
	Slides  []Slide `yaml:"slides"`
}

// Slide returns the slide at index i. Any index outside the deck falls back
// to the first slide.
func (d *Deck) Slide(i int) Slide {
	if i < 0 || i >= len(d.Slides) {
		return d.Slides[0]
	}
	return d.Slides[i]
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Titles returns the slide titles in order.
func (d *Deck) Titles() []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Title
	}
	return out
}
