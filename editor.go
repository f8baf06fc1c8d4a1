package wardrobe

import "context"

// ImageInput is one image transmitted with an edit request.
type ImageInput struct {
	Path     string
	MIMEType string
	Data     []byte
}

// EditRequest is the flattened, wire-ready form of one request. Images
// follow the payload order of the RequestConfig that produced it: references
// first, target last.
type EditRequest struct {
	Model       string // model ID, empty = editor default
	System      string
	Prompt      string
	Images      []ImageInput
	Temperature float64
	TopP        float64
}

// Editor is a strategy pattern interface for the image model transport.
// Edit blocks for the duration of the network call; cancellation flows
// through ctx.
type Editor interface {
	Edit(ctx context.Context, req EditRequest) (Response, error)
}

// Persister writes the image payloads of a response to durable storage and
// returns the paths written, in response order.
type Persister interface {
	Save(resp Response, dir, preferredName string) ([]string, error)
}

// AssetSource loads prompts and imagery from local storage.
type AssetSource interface {
	// ResolveAssets resolves reference imagery and the edit target against
	// their configured directories. See the fs package for the constraints
	// it enforces.
	ResolveAssets(referenceDir, targetDir string, referenceNames []string, targetName string) (AssetSet, error)

	// ResolveReferences resolves an explicit, non-empty list of reference
	// names against a directory. Used by extraction runs, where the first
	// reference doubles as the editing canvas.
	ResolveReferences(dir string, names []string) ([]string, error)

	// LoadPrompt reads a markdown prompt by directory and file name and
	// returns its trimmed text.
	LoadPrompt(dir, name string) (string, error)

	// ReadImages loads the ordered payload images for transmission.
	ReadImages(paths []string) ([]ImageInput, error)
}
