package draft_test

import (
	"testing"

	"github.com/sonikrishna9/Tenda-admin/draft"
	"github.com/sonikrishna9/Tenda-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftDefaults(t *testing.T) {
	d := draft.New()

	sc := d.Scalars()
	assert.Equal(t, "active", sc.Status)
	assert.False(t, sc.Featured)
	assert.Equal(t, draft.StateEditing, d.State())
	for _, class := range draft.Classes() {
		assert.Empty(t, d.Displayed(class))
		assert.Empty(t, d.Pending(class))
		assert.Empty(t, d.Removed(class))
	}
	assert.Empty(t, d.Parameters())
}

func TestFromRecordHydration(t *testing.T) {
	rec := &models.Product{
		Title:          "Router X1",
		Subtitle:       "AX3000",
		Description:    "Dual band router",
		ParentCategory: "networking",
		SubCategory:    "routers",
		Featured:       true,
		USPPoints:      []string{"fast"},
		Images:         []models.MediaRef{{URL: "/uploads/a.png", PublicID: "a"}},
		Videos:         []models.MediaRef{{URL: "/uploads/v.mp4", PublicID: "v"}},
		FeaturePictures: []models.MediaRef{
			{URL: "/uploads/f.png", PublicID: "f"},
		},
		PDF: models.ProductPDFs{
			Quickstartpdfs: []models.PDFDoc{{URL: "/uploads/q.pdf"}},
		},
		Parameters: []models.ParameterGroup{
			{Title: "Specs", Items: []models.ParameterItem{{Title: "Weight", Subtitle: "1.2kg"}}},
		},
	}

	d := draft.FromRecord(rec)

	sc := d.Scalars()
	assert.Equal(t, "Router X1", sc.Title)
	assert.Equal(t, "AX3000", sc.Subtitle)
	assert.Equal(t, "networking", sc.ParentCategory)
	assert.Equal(t, "active", sc.Status, "missing status defaults to active")
	assert.True(t, sc.Featured)
	assert.Equal(t, []string{"fast"}, sc.USPPoints)

	require.Len(t, d.Displayed(draft.Images), 1)
	assert.Equal(t, "a", d.Displayed(draft.Images)[0].ID)
	require.Len(t, d.Displayed(draft.Videos), 1)
	require.Len(t, d.Displayed(draft.FeaturePictures), 1)
	require.Len(t, d.Displayed(draft.QuickstartPDFs), 1)
	assert.Empty(t, d.Displayed(draft.DownloadPDFs))

	groups := d.Parameters()
	require.Len(t, groups, 1)
	assert.Equal(t, "Specs", groups[0].Title)
	assert.False(t, groups[0].Open, "hydrated groups start collapsed")
}

func TestHydrationIsDetachedFromRecord(t *testing.T) {
	rec := &models.Product{
		Title: "t", Description: "d", ParentCategory: "c",
		USPPoints:  []string{"one"},
		Parameters: []models.ParameterGroup{{Title: "g", Items: []models.ParameterItem{{Title: "i"}}}},
	}
	d := draft.FromRecord(rec)

	rec.USPPoints[0] = "mutated"
	rec.Parameters[0].Items[0].Title = "mutated"

	assert.Equal(t, []string{"one"}, d.Scalars().USPPoints)
	assert.Equal(t, "i", d.Parameters()[0].Items[0].Title)
}

func TestScalarsCopySemantics(t *testing.T) {
	d := draft.New()
	require.NoError(t, d.SetScalars(draft.Scalars{
		Title:     "original",
		Status:    "active",
		USPPoints: []string{"a"},
	}))

	sc := d.Scalars()
	sc.Title = "mutated"
	sc.USPPoints[0] = "mutated"

	fresh := d.Scalars()
	assert.Equal(t, "original", fresh.Title)
	assert.Equal(t, []string{"a"}, fresh.USPPoints)
}
