package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/wardrobe"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ wardrobe.Editor = (*Client)(nil)

// Client implements [wardrobe.Editor] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.5-flash-image.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Edit sends one image-edit request and returns the structured response.
// A reply without candidates is a transport failure.
func (c *Client) Edit(ctx context.Context, req wardrobe.EditRequest) (wardrobe.Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	contents := ConvertRequest(req)
	config := buildConfig(req)

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return wardrobe.Response{}, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return wardrobe.Response{}, fmt.Errorf("response did not include any candidates: %w", wardrobe.ErrTransport)
	}

	return ConvertResponse(resp), nil
}

func buildConfig(req wardrobe.EditRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		CandidateCount:     1,
		Temperature:        genai.Ptr(float32(req.Temperature)),
		TopP:               genai.Ptr(float32(req.TopP)),
	}

	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	return config
}

// ConvertRequest converts an EditRequest to genai Contents: one user message
// with the prompt text first and the images following in payload order.
// Exported for testing.
func ConvertRequest(req wardrobe.EditRequest) []*genai.Content {
	parts := []*genai.Part{{Text: req.Prompt}}
	for _, img := range req.Images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MIMEType,
				Data:     img.Data,
			},
		})
	}
	return []*genai.Content{{Role: "user", Parts: parts}}
}

// ConvertResponse converts a genai response to the tagged-variant response
// model. Candidates keep their index even when empty so persisted filenames
// stay aligned with the wire response; parts with neither text nor inline
// data are dropped. Exported for testing.
func ConvertResponse(resp *genai.GenerateContentResponse) wardrobe.Response {
	out := wardrobe.Response{Candidates: make([]wardrobe.Candidate, 0, len(resp.Candidates))}
	for _, cand := range resp.Candidates {
		var c wardrobe.Candidate
		if cand != nil && cand.Content != nil {
			for _, p := range cand.Content.Parts {
				switch {
				case p == nil:
				case p.InlineData != nil && len(p.InlineData.Data) > 0:
					c.Parts = append(c.Parts, wardrobe.InlineDataPart{
						MIMEType: p.InlineData.MIMEType,
						Data:     p.InlineData.Data,
					})
				case p.Text != "":
					c.Parts = append(c.Parts, wardrobe.TextPart{Text: p.Text})
				}
			}
		}
		out.Candidates = append(out.Candidates, c)
	}
	return out
}
