package wardrobe

// Response is the structured reply from the image model for one request.
// Absent data is represented by the variant tag on each part, never by
// probing optional fields.
type Response struct {
	Candidates []Candidate
}

// Candidate is one alternative completion. A candidate may carry no parts;
// it still occupies its index so that persisted filenames stay aligned with
// the wire response.
type Candidate struct {
	Parts []Part
}

// Part is a sealed interface representing one piece of candidate content.
// The unexported marker method prevents external implementations.
type Part interface {
	part()
}

// TextPart carries a textual explanation from the model.
type TextPart struct {
	Text string
}

func (TextPart) part() {}

// InlineDataPart carries raw image bytes and their MIME type.
type InlineDataPart struct {
	MIMEType string
	Data     []byte
}

func (InlineDataPart) part() {}

// Interface compliance checks.
var (
	_ Part = TextPart{}
	_ Part = InlineDataPart{}
)

// Texts collects the textual parts across all candidates, in order.
func (r Response) Texts() []string {
	var texts []string
	for _, c := range r.Candidates {
		for _, p := range c.Parts {
			if tp, ok := p.(TextPart); ok && tp.Text != "" {
				texts = append(texts, tp.Text)
			}
		}
	}
	return texts
}
