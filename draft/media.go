package draft

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MediaClass names one of the product's independent media collections.
type MediaClass string

const (
	Images          MediaClass = "images"
	Videos          MediaClass = "videos"
	QuickstartPDFs  MediaClass = "quickstartpdfs"
	DownloadPDFs    MediaClass = "downloadpdfs"
	FeaturePictures MediaClass = "featurePictures"
)

// classOrder fixes the multipart assembly order.
var classOrder = []MediaClass{Images, Videos, QuickstartPDFs, DownloadPDFs, FeaturePictures}

// Classes returns every media class in assembly order.
func Classes() []MediaClass {
	out := make([]MediaClass, len(classOrder))
	copy(out, classOrder)
	return out
}

type identityMode int

const (
	byPublicID identityMode = iota
	byIndex                 // PDFs: the wire format carries positions, not ids
)

type classConfig struct {
	field       string
	removeField string
	accept      string // required Content-Type prefix, "" accepts anything
	maxCount    int    // 0 means unbounded
	maxSize     int64  // bytes, 0 means unbounded
	identity    identityMode
}

var classConfigs = map[MediaClass]classConfig{
	Images: {
		field:       "images",
		removeField: "removeImages",
		accept:      "image/",
		maxSize:     5 << 20,
	},
	Videos: {
		field:       "videos",
		removeField: "removeVideos",
		accept:      "video/",
		maxCount:    10,
		maxSize:     100 << 20,
	},
	QuickstartPDFs: {
		field:       "quickstartpdfs",
		removeField: "removeQuickstartIndices",
		accept:      "application/pdf",
		identity:    byIndex,
	},
	DownloadPDFs: {
		field:       "downloadpdfs",
		removeField: "removeDownloadIndices",
		accept:      "application/pdf",
		identity:    byIndex,
	},
	FeaturePictures: {
		field:       "featurePictures",
		removeField: "removeFeaturePictures",
		accept:      "image/",
		maxCount:    10,
		maxSize:     5 << 20,
	},
}

// ConfirmedItem is a media item already persisted server-side. PDFs get a
// synthetic ID at hydration time so list operations never depend on shifting
// positions; the original hydration index is kept for the wire format.
type ConfirmedItem struct {
	ID  string
	URL string

	index int
}

// PendingItem is a locally picked file staged for the next submit.
type PendingItem struct {
	ID      string
	File    File
	Preview string
}

type mediaCollection struct {
	cfg       classConfig
	confirmed []ConfirmedItem
	pending   []PendingItem
	removed   []string
}

func (m *mediaCollection) hasConfirmed(id string) bool {
	for _, it := range m.confirmed {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (m *mediaCollection) isRemoved(id string) bool {
	for _, r := range m.removed {
		if r == id {
			return true
		}
	}
	return false
}

// displayed is confirmed minus the staged removals.
func (m *mediaCollection) displayed() []ConfirmedItem {
	out := make([]ConfirmedItem, 0, len(m.confirmed))
	for _, it := range m.confirmed {
		if !m.isRemoved(it.ID) {
			out = append(out, it)
		}
	}
	return out
}

func (d *Draft) collection(class MediaClass) (*mediaCollection, error) {
	col, ok := d.media[class]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}
	return col, nil
}

// AddFiles stages files for upload. The batch is atomic: a type, size or
// count violation rejects every file and leaves the draft untouched.
func (d *Draft) AddFiles(class MediaClass, files ...File) error {
	if err := d.mutable(); err != nil {
		return err
	}
	col, err := d.collection(class)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}
	for _, f := range files {
		if col.cfg.accept != "" && !strings.HasPrefix(f.ContentType, col.cfg.accept) {
			return fmt.Errorf("%w: %s is %s, want %s*", ErrFileType, f.Name, f.ContentType, col.cfg.accept)
		}
		if col.cfg.maxSize > 0 && f.Size > col.cfg.maxSize {
			return fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, f.Name, col.cfg.maxSize)
		}
	}
	if col.cfg.maxCount > 0 {
		total := len(col.displayed()) + len(col.pending) + len(files)
		if total > col.cfg.maxCount {
			return fmt.Errorf("%w: %s allows at most %d files, would have %d",
				ErrLimitExceeded, class, col.cfg.maxCount, total)
		}
	}
	for _, f := range files {
		id := uuid.NewString()
		col.pending = append(col.pending, PendingItem{
			ID:      id,
			File:    f,
			Preview: d.previews.add(id, f),
		})
	}
	return nil
}

// RemoveConfirmed stages a server-side item for deletion on the next submit.
// Unknown or already removed identifiers are a no-op.
func (d *Draft) RemoveConfirmed(class MediaClass, id string) error {
	if err := d.mutable(); err != nil {
		return err
	}
	col, err := d.collection(class)
	if err != nil {
		return err
	}
	if !col.hasConfirmed(id) || col.isRemoved(id) {
		return nil
	}
	col.removed = append(col.removed, id)
	return nil
}

// RemovePending drops a staged file and releases its preview.
func (d *Draft) RemovePending(class MediaClass, id string) error {
	if err := d.mutable(); err != nil {
		return err
	}
	col, err := d.collection(class)
	if err != nil {
		return err
	}
	for i, p := range col.pending {
		if p.ID == id {
			col.pending = append(col.pending[:i], col.pending[i+1:]...)
			d.previews.release(id)
			return nil
		}
	}
	return nil
}

// Displayed returns the confirmed items still visible, i.e. not staged for
// removal.
func (d *Draft) Displayed(class MediaClass) []ConfirmedItem {
	col, err := d.collection(class)
	if err != nil {
		return nil
	}
	return col.displayed()
}

// Pending returns the files staged for upload.
func (d *Draft) Pending(class MediaClass) []PendingItem {
	col, err := d.collection(class)
	if err != nil {
		return nil
	}
	out := make([]PendingItem, len(col.pending))
	copy(out, col.pending)
	return out
}

// Removed returns the identifiers staged for deletion.
func (d *Draft) Removed(class MediaClass) []string {
	col, err := d.collection(class)
	if err != nil {
		return nil
	}
	out := make([]string, len(col.removed))
	copy(out, col.removed)
	return out
}
