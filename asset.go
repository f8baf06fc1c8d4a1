package wardrobe

// AssetSet is the resolved input imagery for a run: reference paths in
// transmission order plus the single target path. Invariant: the target
// never appears among the references, and there are at most
// [MaxReferenceImages] references.
type AssetSet struct {
	References []string
	Target     string
}

// Paths returns the payload order: references first, target last.
func (a AssetSet) Paths() []string {
	paths := make([]string, 0, len(a.References)+1)
	paths = append(paths, a.References...)
	paths = append(paths, a.Target)
	return paths
}
