package draft

import "github.com/google/uuid"

// Previewer produces a transient preview handle for a newly picked file. The
// returned release func frees whatever backs the preview and is called exactly
// once, either when the pending item is removed or when the draft is closed.
type Previewer interface {
	Preview(f File) (url string, release func())
}

// tokenPreviewer issues opaque handles with nothing to free. Callers that
// materialize real previews (temp files, caches) plug in their own Previewer.
type tokenPreviewer struct{}

func (tokenPreviewer) Preview(File) (string, func()) {
	return "blob:" + uuid.NewString(), func() {}
}

type previewRegistry struct {
	previewer Previewer
	active    map[string]func() // keyed by pending item id
}

func newPreviewRegistry(p Previewer) *previewRegistry {
	if p == nil {
		p = tokenPreviewer{}
	}
	return &previewRegistry{previewer: p, active: make(map[string]func())}
}

func (r *previewRegistry) add(id string, f File) string {
	url, release := r.previewer.Preview(f)
	r.active[id] = release
	return url
}

func (r *previewRegistry) release(id string) {
	if release, ok := r.active[id]; ok {
		delete(r.active, id)
		release()
	}
}

func (r *previewRegistry) releaseAll() {
	for id, release := range r.active {
		delete(r.active, id)
		release()
	}
}
