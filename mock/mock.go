// Package mock provides test doubles for wardrobe interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/fwojciec/wardrobe"
)

// Interface compliance checks.
var (
	_ wardrobe.Editor      = (*Editor)(nil)
	_ wardrobe.Persister   = (*Persister)(nil)
	_ wardrobe.AssetSource = (*AssetSource)(nil)
	_ wardrobe.Rand        = (*Rand)(nil)
)

// Editor is a test double for wardrobe.Editor.
// Set EditFn before calling Edit.
type Editor struct {
	EditFn func(ctx context.Context, req wardrobe.EditRequest) (wardrobe.Response, error)
}

// Edit delegates to EditFn.
func (e *Editor) Edit(ctx context.Context, req wardrobe.EditRequest) (wardrobe.Response, error) {
	return e.EditFn(ctx, req)
}

// Persister is a test double for wardrobe.Persister.
// Set SaveFn before calling Save.
type Persister struct {
	SaveFn func(resp wardrobe.Response, dir, preferredName string) ([]string, error)
}

// Save delegates to SaveFn.
func (p *Persister) Save(resp wardrobe.Response, dir, preferredName string) ([]string, error) {
	return p.SaveFn(resp, dir, preferredName)
}

// AssetSource is a test double for wardrobe.AssetSource.
// Set the function fields for the methods you need.
type AssetSource struct {
	ResolveAssetsFn     func(referenceDir, targetDir string, referenceNames []string, targetName string) (wardrobe.AssetSet, error)
	ResolveReferencesFn func(dir string, names []string) ([]string, error)
	LoadPromptFn        func(dir, name string) (string, error)
	ReadImagesFn        func(paths []string) ([]wardrobe.ImageInput, error)
}

// ResolveAssets delegates to ResolveAssetsFn.
func (s *AssetSource) ResolveAssets(referenceDir, targetDir string, referenceNames []string, targetName string) (wardrobe.AssetSet, error) {
	return s.ResolveAssetsFn(referenceDir, targetDir, referenceNames, targetName)
}

// ResolveReferences delegates to ResolveReferencesFn.
func (s *AssetSource) ResolveReferences(dir string, names []string) ([]string, error) {
	return s.ResolveReferencesFn(dir, names)
}

// LoadPrompt delegates to LoadPromptFn.
func (s *AssetSource) LoadPrompt(dir, name string) (string, error) {
	return s.LoadPromptFn(dir, name)
}

// ReadImages delegates to ReadImagesFn.
func (s *AssetSource) ReadImages(paths []string) ([]wardrobe.ImageInput, error) {
	return s.ReadImagesFn(paths)
}

// Rand is a test double for wardrobe.Rand. It returns Values in order,
// repeating the last one when exhausted.
type Rand struct {
	Values []float64
	next   int
}

// Float64 returns the next configured value.
func (r *Rand) Float64() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	if r.next >= len(r.Values) {
		return r.Values[len(r.Values)-1]
	}
	v := r.Values[r.next]
	r.next++
	return v
}
