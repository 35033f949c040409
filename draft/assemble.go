package draft

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
)

type formField struct {
	name  string
	value string
}

// FilePart is one binary part of an assembled submission.
type FilePart struct {
	Field string
	File  File
}

// Submission is an ordered multipart payload: plain fields first, then file
// parts. It is built once per submit and encoded into a single request body.
type Submission struct {
	fields []formField
	files  []FilePart
}

func NewSubmission() *Submission {
	return &Submission{}
}

func (s *Submission) AddField(name, value string) {
	s.fields = append(s.fields, formField{name: name, value: value})
}

func (s *Submission) AddJSONField(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	s.AddField(name, string(data))
	return nil
}

func (s *Submission) AddFile(field string, f File) {
	s.files = append(s.files, FilePart{Field: field, File: f})
}

// Files returns the binary parts in assembly order.
func (s *Submission) Files() []FilePart {
	out := make([]FilePart, len(s.files))
	copy(out, s.files)
	return out
}

// Encode writes the multipart body to w and returns its Content-Type,
// boundary included. File contents are streamed, not buffered.
func (s *Submission) Encode(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)
	for _, f := range s.fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	for _, p := range s.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, p.Field, p.File.Name))
		contentType := p.File.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)
		pw, err := mw.CreatePart(h)
		if err != nil {
			return "", fmt.Errorf("create part %s: %w", p.Field, err)
		}
		rc, err := p.File.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", p.File.Name, err)
		}
		_, err = io.Copy(pw, rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("copy %s: %w", p.File.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}

// Assemble serializes the draft into one outgoing submission: scalar fields
// stringified, uspPoints and parameters JSON-encoded, one removal array per
// media class (deduplicated, indices for the PDF classes), and every pending
// file as a binary part under its class field name.
func (d *Draft) Assemble() (*Submission, error) {
	if d.state == StateClosed {
		return nil, ErrClosed
	}
	s := NewSubmission()
	sc := d.scalars
	s.AddField("title", sc.Title)
	s.AddField("subtitle", sc.Subtitle)
	s.AddField("description", sc.Description)
	s.AddField("parentCategory", sc.ParentCategory)
	s.AddField("subCategory", sc.SubCategory)
	s.AddField("status", sc.Status)
	s.AddField("featured", strconv.FormatBool(sc.Featured))
	points := sc.USPPoints
	if points == nil {
		points = []string{}
	}
	if err := s.AddJSONField("uspPoints", points); err != nil {
		return nil, err
	}
	params := d.params
	if params == nil {
		params = []ParameterGroup{}
	}
	if err := s.AddJSONField("parameters", params); err != nil {
		return nil, err
	}
	for _, class := range classOrder {
		col := d.media[class]
		if err := appendRemovals(s, col); err != nil {
			return nil, err
		}
	}
	for _, class := range classOrder {
		col := d.media[class]
		for _, p := range col.pending {
			s.AddFile(col.cfg.field, p.File)
		}
	}
	return s, nil
}

// appendRemovals writes one removal array, collapsing duplicate marks so a
// twice-removed item is deleted once.
func appendRemovals(s *Submission, col *mediaCollection) error {
	seen := make(map[string]bool, len(col.removed))
	ids := make([]string, 0, len(col.removed))
	for _, id := range col.removed {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if col.cfg.identity == byIndex {
		indices := make([]int, 0, len(ids))
		for _, id := range ids {
			for _, it := range col.confirmed {
				if it.ID == id {
					indices = append(indices, it.index)
					break
				}
			}
		}
		return s.AddJSONField(col.cfg.removeField, indices)
	}
	return s.AddJSONField(col.cfg.removeField, ids)
}
