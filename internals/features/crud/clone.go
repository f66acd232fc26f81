// file: internals/features/crud/clone.go
package crud

// ClonePtr: salinan nilai di balik pointer (nil tetap nil).
func ClonePtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
