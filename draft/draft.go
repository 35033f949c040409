// Package draft holds the client-local, unsaved state of one catalog entity
// being created or edited: scalar fields, five independently reconciled media
// collections, and the parameter tree. Nothing here touches the network; the
// draft is turned into exactly one multipart request by Assemble.
package draft

import (
	"errors"

	"github.com/sonikrishna9/Tenda-admin/models"

	"github.com/google/uuid"
)

var (
	// ErrLocked is returned by every mutator while a submit is in flight.
	ErrLocked = errors.New("draft is locked during submit")
	// ErrClosed is returned once the draft has been discarded.
	ErrClosed = errors.New("draft is closed")

	ErrUnknownClass  = errors.New("unknown media class")
	ErrFileType      = errors.New("unsupported file type")
	ErrFileTooLarge  = errors.New("file too large")
	ErrLimitExceeded = errors.New("media limit exceeded")
	ErrIndexRange    = errors.New("index out of range")
	ErrUnknownField  = errors.New("unknown parameter field")
)

// State tracks the submission lifecycle of one draft.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateClosed
)

// Scalars are the plain form fields of a product draft.
type Scalars struct {
	Title          string
	Subtitle       string
	Description    string
	ParentCategory string
	SubCategory    string
	Status         string // active | inactive
	Featured       bool
	USPPoints      []string
}

func (s Scalars) clone() Scalars {
	if s.USPPoints != nil {
		points := make([]string, len(s.USPPoints))
		copy(points, s.USPPoints)
		s.USPPoints = points
	}
	return s
}

// ParameterGroup is one named block of title/subtitle rows. Open is purely
// presentational and never serialized.
type ParameterGroup struct {
	Title string                 `json:"title"`
	Items []models.ParameterItem `json:"items"`
	Open  bool                   `json:"-"`
}

type Draft struct {
	scalars  Scalars
	media    map[MediaClass]*mediaCollection
	params   []ParameterGroup
	previews *previewRegistry
	state    State
}

type Option func(*options)

type options struct {
	previewer Previewer
}

// WithPreviewer replaces the default opaque preview handles with a caller
// supplied allocator.
func WithPreviewer(p Previewer) Option {
	return func(o *options) { o.previewer = p }
}

// New returns an empty draft for the create flow.
func New(opts ...Option) *Draft {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	d := &Draft{
		scalars:  Scalars{Status: "active"},
		media:    make(map[MediaClass]*mediaCollection, len(classConfigs)),
		previews: newPreviewRegistry(o.previewer),
	}
	for class, cfg := range classConfigs {
		d.media[class] = &mediaCollection{cfg: cfg}
	}
	return d
}

// FromRecord hydrates a draft from a fetched product for the update flow.
// Images, videos and feature pictures keep their server public_id; PDFs carry
// no id on the wire, so each gets a synthetic one with its hydration position
// remembered for the removal-index format.
func FromRecord(p *models.Product, opts ...Option) *Draft {
	d := New(opts...)
	d.scalars = Scalars{
		Title:          p.Title,
		Subtitle:       p.Subtitle,
		Description:    p.Description,
		ParentCategory: p.ParentCategory,
		SubCategory:    p.SubCategory,
		Status:         p.Status,
		Featured:       p.Featured,
		USPPoints:      append([]string(nil), p.USPPoints...),
	}
	if d.scalars.Status == "" {
		d.scalars.Status = "active"
	}
	d.media[Images].confirmed = refsToConfirmed(p.Images)
	d.media[Videos].confirmed = refsToConfirmed(p.Videos)
	d.media[FeaturePictures].confirmed = refsToConfirmed(p.FeaturePictures)
	d.media[QuickstartPDFs].confirmed = pdfsToConfirmed(p.PDF.Quickstartpdfs)
	d.media[DownloadPDFs].confirmed = pdfsToConfirmed(p.PDF.Downloadpdfs)
	for _, g := range p.Parameters {
		d.params = append(d.params, ParameterGroup{
			Title: g.Title,
			Items: append([]models.ParameterItem(nil), g.Items...),
		})
	}
	return d
}

func refsToConfirmed(refs []models.MediaRef) []ConfirmedItem {
	out := make([]ConfirmedItem, 0, len(refs))
	for i, r := range refs {
		out = append(out, ConfirmedItem{ID: r.PublicID, URL: r.URL, index: i})
	}
	return out
}

func pdfsToConfirmed(docs []models.PDFDoc) []ConfirmedItem {
	out := make([]ConfirmedItem, 0, len(docs))
	for i, doc := range docs {
		out = append(out, ConfirmedItem{ID: uuid.NewString(), URL: doc.URL, index: i})
	}
	return out
}

func (d *Draft) mutable() error {
	switch d.state {
	case StateSubmitting:
		return ErrLocked
	case StateClosed:
		return ErrClosed
	}
	return nil
}

func (d *Draft) State() State {
	return d.state
}

// Scalars returns a copy of the draft's plain fields.
func (d *Draft) Scalars() Scalars {
	return d.scalars.clone()
}

// SetScalars replaces the plain fields wholesale.
func (d *Draft) SetScalars(s Scalars) error {
	if err := d.mutable(); err != nil {
		return err
	}
	d.scalars = s.clone()
	return nil
}

// BeginSubmit locks the draft for the duration of one submit attempt.
func (d *Draft) BeginSubmit() error {
	if err := d.mutable(); err != nil {
		return err
	}
	d.state = StateSubmitting
	return nil
}

// EndSubmit records the outcome of the attempt. Success discards the draft
// and releases every outstanding preview; failure returns it to editable with
// all state intact so the user can retry.
func (d *Draft) EndSubmit(success bool) {
	if d.state != StateSubmitting {
		return
	}
	if success {
		d.state = StateClosed
		d.previews.releaseAll()
		return
	}
	d.state = StateEditing
}

// Close discards the draft, releasing every outstanding preview. Safe to call
// more than once.
func (d *Draft) Close() {
	d.previews.releaseAll()
	d.state = StateClosed
}
