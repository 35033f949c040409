package draft_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/sonikrishna9/Tenda-admin/draft"
	"github.com/sonikrishna9/Tenda-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeAndParse runs a submission through the real multipart codec and
// returns the decoded form.
func encodeAndParse(t *testing.T, sub *draft.Submission) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	contentType, err := sub.Encode(&buf)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	form, err := multipart.NewReader(&buf, params["boundary"]).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func TestAssembleFullDraft(t *testing.T) {
	rec := &models.Product{
		Title:          "Router X1",
		Subtitle:       "AX3000",
		Description:    "Dual band router",
		ParentCategory: "networking",
		SubCategory:    "routers",
		Status:         "active",
		Featured:       true,
		USPPoints:      []string{"fast", "cheap"},
		Images: []models.MediaRef{
			{URL: "/uploads/a.png", PublicID: "a"},
			{URL: "/uploads/b.png", PublicID: "b"},
		},
		Videos: []models.MediaRef{{URL: "/uploads/v.mp4", PublicID: "v"}},
		PDF: models.ProductPDFs{
			Quickstartpdfs: []models.PDFDoc{{URL: "/uploads/q0.pdf"}, {URL: "/uploads/q1.pdf"}},
			Downloadpdfs:   []models.PDFDoc{{URL: "/uploads/d0.pdf"}},
		},
	}
	d := draft.FromRecord(rec)

	require.NoError(t, d.RemoveConfirmed(draft.Images, "a"))
	quickstarts := d.Displayed(draft.QuickstartPDFs)
	require.NoError(t, d.RemoveConfirmed(draft.QuickstartPDFs, quickstarts[1].ID))
	require.NoError(t, d.AddFiles(draft.Images, imageFile("new1.png"), imageFile("new2.png")))
	require.NoError(t, d.AddFiles(draft.Videos, videoFile("new.mp4")))
	require.NoError(t, d.AddFiles(draft.DownloadPDFs, pdfFile("new.pdf")))
	require.NoError(t, d.AddGroup())
	require.NoError(t, d.SetGroupTitle(0, "Specs"))
	require.NoError(t, d.UpdateItem(0, 0, "title", "Weight"))

	sub, err := d.Assemble()
	require.NoError(t, err)
	form := encodeAndParse(t, sub)

	// Scalar fields
	assert.Equal(t, "Router X1", form.Value["title"][0])
	assert.Equal(t, "AX3000", form.Value["subtitle"][0])
	assert.Equal(t, "Dual band router", form.Value["description"][0])
	assert.Equal(t, "networking", form.Value["parentCategory"][0])
	assert.Equal(t, "routers", form.Value["subCategory"][0])
	assert.Equal(t, "active", form.Value["status"][0])
	assert.Equal(t, "true", form.Value["featured"][0])

	var points []string
	require.NoError(t, json.Unmarshal([]byte(form.Value["uspPoints"][0]), &points))
	assert.Equal(t, []string{"fast", "cheap"}, points)

	// Removal arrays: ids for public_id classes, positions for PDFs.
	assertJSONField(t, form, "removeImages", []string{"a"})
	assertJSONField(t, form, "removeVideos", []string{})
	assertJSONField(t, form, "removeFeaturePictures", []string{})
	assertJSONIntField(t, form, "removeQuickstartIndices", []int{1})
	assertJSONIntField(t, form, "removeDownloadIndices", []int{})

	// Binary parts per class field.
	assert.Len(t, form.File["images"], 2)
	assert.Len(t, form.File["videos"], 1)
	assert.Len(t, form.File["downloadpdfs"], 1)
	assert.Empty(t, form.File["quickstartpdfs"])
	assert.Empty(t, form.File["featurePictures"])

	fh := form.File["videos"][0]
	assert.Equal(t, "new.mp4", fh.Filename)
	assert.Equal(t, "video/mp4", fh.Header.Get("Content-Type"))
	f, err := fh.Open()
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, []byte("mp4-bytes"), data)

	// The open flag is UI-only and must not leak onto the wire.
	assert.False(t, strings.Contains(form.Value["parameters"][0], "open"))
	var groups []models.ParameterGroup
	require.NoError(t, json.Unmarshal([]byte(form.Value["parameters"][0]), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "Specs", groups[0].Title)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Weight", groups[0].Items[0].Title)
}

func assertJSONField(t *testing.T, form *multipart.Form, name string, want []string) {
	t.Helper()
	require.Len(t, form.Value[name], 1, "field %s", name)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(form.Value[name][0]), &got))
	assert.Equal(t, want, got, "field %s", name)
}

func assertJSONIntField(t *testing.T, form *multipart.Form, name string, want []int) {
	t.Helper()
	require.Len(t, form.Value[name], 1, "field %s", name)
	var got []int
	require.NoError(t, json.Unmarshal([]byte(form.Value[name][0]), &got))
	assert.Equal(t, want, got, "field %s", name)
}

func TestAssembleEmptyDraft(t *testing.T) {
	d := draft.New()
	sub, err := d.Assemble()
	require.NoError(t, err)
	form := encodeAndParse(t, sub)

	assert.Equal(t, "", form.Value["title"][0])
	assert.Equal(t, "active", form.Value["status"][0])
	assert.Equal(t, "false", form.Value["featured"][0])
	assert.Equal(t, "[]", form.Value["uspPoints"][0])
	assert.Equal(t, "[]", form.Value["parameters"][0])
	for _, name := range []string{"removeImages", "removeVideos", "removeFeaturePictures"} {
		assertJSONField(t, form, name, []string{})
	}
	assert.Empty(t, form.File)
}

func TestAssembleCountsMatchStagedWork(t *testing.T) {
	d := draft.FromRecord(twoImageRecord())
	require.NoError(t, d.RemoveConfirmed(draft.Images, "a"))
	require.NoError(t, d.RemoveConfirmed(draft.Images, "b"))
	require.NoError(t, d.AddFiles(draft.Images, imageFile("1.png")))
	require.NoError(t, d.AddFiles(draft.FeaturePictures, imageFile("2.png"), imageFile("3.png")))

	sub, err := d.Assemble()
	require.NoError(t, err)
	form := encodeAndParse(t, sub)

	totalFiles := 0
	for _, fhs := range form.File {
		totalFiles += len(fhs)
	}
	assert.Equal(t, 3, totalFiles)
	assertJSONField(t, form, "removeImages", []string{"a", "b"})
}
