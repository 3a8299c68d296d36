package importer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/config"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/docs"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/matching"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/menu"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/parlevel"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/recipe"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/sales"
)

type fakeDocs struct {
	uploads  []docs.Upload
	imported []int
}

func (f *fakeDocs) ListBatch(_ context.Context, batchID string) ([]docs.Upload, error) {
	var out []docs.Upload
	for _, u := range f.uploads {
		if u.BatchID == batchID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeDocs) MarkImported(_ context.Context, id int) error {
	f.imported = append(f.imported, id)
	return nil
}

type fakeCatalog struct {
	entries []matching.CatalogEntry
}

func (f *fakeCatalog) Catalog(context.Context) ([]matching.CatalogEntry, error) {
	return f.entries, nil
}

type fakeSalesWriter struct {
	records []sales.Record
}

func (f *fakeSalesWriter) Ingest(_ context.Context, rec *sales.Record) error {
	f.records = append(f.records, *rec)
	return nil
}

type fakeParWriter struct {
	pars []parlevel.ParLevel
}

func (f *fakeParWriter) UpsertMany(_ context.Context, pars []parlevel.ParLevel) (int, error) {
	f.pars = append(f.pars, pars...)
	return len(pars), nil
}

type fakeRecipeWriter struct {
	recipes []recipe.Recipe
}

func (f *fakeRecipeWriter) Create(_ context.Context, rec *recipe.Recipe) (*recipe.Recipe, error) {
	f.recipes = append(f.recipes, *rec)
	return rec, nil
}

type fakeMenuWriter struct {
	items []menu.Item
}

func (f *fakeMenuWriter) Create(_ context.Context, item *menu.Item) (*menu.Item, error) {
	f.items = append(f.items, *item)
	return item, nil
}

func testConfig() config.MatchingConfig {
	return config.MatchingConfig{
		FuzzyThreshold:        0.5,
		OverlapThreshold:      0.7,
		ParSheetStripsPortion: true,
		SalesStripsPortion:    false,
	}
}

func extractedUpload(id int, batchID, filename, rawText string, payload any) docs.Upload {
	parsed, _ := json.Marshal(payload)
	docType := "sales"
	status := docs.StatusExtracted
	text := rawText
	return docs.Upload{
		ID:         id,
		BatchID:    batchID,
		Filename:   filename,
		Status:     status,
		DocType:    &docType,
		RawText:    &text,
		ParsedData: parsed,
	}
}

func newTestService(docSource *fakeDocs, catalog *fakeCatalog) (*Service, *fakeSalesWriter, *fakeParWriter, *fakeRecipeWriter, *fakeMenuWriter) {
	sw := &fakeSalesWriter{}
	pw := &fakeParWriter{}
	rw := &fakeRecipeWriter{}
	mw := &fakeMenuWriter{}
	svc := NewService(testConfig(), docSource, catalog, sw, pw, rw, mw)
	return svc, sw, pw, rw, mw
}

func TestPreviewResolvesSalesRows(t *testing.T) {
	payload := map[string]any{
		"type": "sales",
		"sales": []map[string]any{
			{"item": "ribeye steak", "date": "2026-08-24", "quantity": 12},
			{"item": "Caesar", "date": "2026-08-24", "quantity": 8},
			{"item": "Torched Octopus", "date": "2026-08-24", "quantity": 2},
		},
	}
	store := &fakeDocs{uploads: []docs.Upload{
		extractedUpload(1, "batch-1", "sales_aug24.csv", "ribeye steak,12\ncaesar,8\n", payload),
	}}
	catalog := &fakeCatalog{entries: []matching.CatalogEntry{
		{ID: "m1", Name: "Ribeye Steak"},
		{ID: "m2", Name: "Caesar Salad"},
	}}
	svc, _, _, _, _ := newTestService(store, catalog)

	preview, err := svc.Preview(context.Background(), "batch-1")
	require.NoError(t, err)
	require.Len(t, preview.Documents, 1)

	rows := preview.Documents[0].Rows
	require.Len(t, rows, 3)

	assert.Equal(t, matching.ConfidenceExact, rows[0].Match.Confidence)
	assert.Equal(t, "m1", rows[0].Match.Entry.ID)
	assert.True(t, rows[0].Preselected)

	assert.Equal(t, matching.ConfidenceFuzzy, rows[1].Match.Confidence)
	assert.Equal(t, "m2", rows[1].Match.Entry.ID)
	assert.True(t, rows[1].Preselected)

	assert.Equal(t, matching.ConfidenceNone, rows[2].Match.Confidence)
	assert.False(t, rows[2].Preselected)
}

func TestPreviewPortionPrefixDivergesByFlow(t *testing.T) {
	catalog := &fakeCatalog{entries: []matching.CatalogEntry{
		{ID: "m2", Name: "Caesar Salad"},
	}}

	parPayload := map[string]any{
		"type": "par_sheet",
		"par_sheet": []map[string]any{
			{"item": "Half Caesar Salad", "day_of_week": 1, "quantity": 10},
		},
	}
	salesPayload := map[string]any{
		"type": "sales",
		"sales": []map[string]any{
			{"item": "Half Caesar Salad", "date": "2026-08-24", "quantity": 4},
		},
	}

	parUpload := extractedUpload(1, "batch-p", "pars_monday.csv", "half caesar salad,10\n", parPayload)
	parType := "par_sheet"
	parUpload.DocType = &parType

	store := &fakeDocs{uploads: []docs.Upload{
		parUpload,
		extractedUpload(2, "batch-s", "sales_aug24.csv", "half caesar salad,4\n", salesPayload),
	}}
	svc, _, _, _, _ := newTestService(store, catalog)

	// Par sheets strip the portion prefix, so the name lands on the
	// catalog entry at normalized confidence.
	parPreview, err := svc.Preview(context.Background(), "batch-p")
	require.NoError(t, err)
	require.Len(t, parPreview.Documents[0].Rows, 1)
	assert.Equal(t, matching.ConfidenceNormalized, parPreview.Documents[0].Rows[0].Match.Confidence)

	// Sales keep the prefix; the same name only reaches the entry via
	// the fuzzy containment path.
	salesPreview, err := svc.Preview(context.Background(), "batch-s")
	require.NoError(t, err)
	require.Len(t, salesPreview.Documents[0].Rows, 1)
	assert.Equal(t, matching.ConfidenceFuzzy, salesPreview.Documents[0].Rows[0].Match.Confidence)
}

func TestPreviewFlagsDuplicateDocuments(t *testing.T) {
	text := "Ribeye Steak,12\nCaesar Salad,8\nFish Tacos,5\n"
	payload := map[string]any{
		"type": "sales",
		"sales": []map[string]any{
			{"item": "Ribeye Steak", "date": "2026-08-24", "quantity": 12},
		},
	}
	store := &fakeDocs{uploads: []docs.Upload{
		extractedUpload(1, "batch-1", "sales_aug24.csv", text, payload),
		extractedUpload(2, "batch-1", "sales_aug24 (1).csv", text, payload),
	}}
	catalog := &fakeCatalog{entries: []matching.CatalogEntry{{ID: "m1", Name: "Ribeye Steak"}}}
	svc, _, _, _, _ := newTestService(store, catalog)

	preview, err := svc.Preview(context.Background(), "batch-1")
	require.NoError(t, err)
	require.Len(t, preview.Documents, 2)

	assert.Nil(t, preview.Documents[0].DuplicateOfID)
	require.NotNil(t, preview.Documents[1].DuplicateOfID)
	assert.Equal(t, 1, *preview.Documents[1].DuplicateOfID)
}

func TestCommitWritesSalesAndCountsFailures(t *testing.T) {
	payload := map[string]any{
		"type": "sales",
		"sales": []map[string]any{
			{"item": "Ribeye Steak", "date": "2026-08-24", "quantity": 12, "gross": 540},
			{"item": "Caesar Salad", "date": "2026-08-24", "quantity": 8, "gross": 96},
			{"item": "Mystery Dish", "date": "not-a-date", "quantity": 1},
		},
	}
	store := &fakeDocs{uploads: []docs.Upload{
		extractedUpload(1, "batch-1", "sales_aug24.csv", "x", payload),
	}}
	svc, sw, _, _, _ := newTestService(store, &fakeCatalog{})

	summary, err := svc.Commit(context.Background(), "batch-1", CommitRequest{
		Documents: []DocumentCommit{{
			DocumentID: 1,
			Rows: []RowCommit{
				{Index: 0, Include: true, MenuItemID: "m1"},
				{Index: 1, Include: false},
				{Index: 2, Include: true, MenuItemID: "m3"},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)

	require.Len(t, sw.records, 1)
	assert.Equal(t, "m1", sw.records[0].MenuItemID)
	assert.Equal(t, 12.0, sw.records[0].Quantity)
	assert.Equal(t, []int{1}, store.imported)
}

func TestCommitUpsertsParLevels(t *testing.T) {
	payload := map[string]any{
		"type": "par_sheet",
		"par_sheet": []map[string]any{
			{"item": "Ribeye Steak", "day_of_week": 5, "quantity": 20},
			{"item": "Caesar Salad", "day_of_week": 5, "quantity": 30},
		},
	}
	u := extractedUpload(1, "batch-1", "pars_friday.csv", "x", payload)
	parType := "par_sheet"
	u.DocType = &parType

	store := &fakeDocs{uploads: []docs.Upload{u}}
	svc, _, pw, _, _ := newTestService(store, &fakeCatalog{})

	summary, err := svc.Commit(context.Background(), "batch-1", CommitRequest{
		Documents: []DocumentCommit{{
			DocumentID: 1,
			Rows: []RowCommit{
				{Index: 0, Include: true, MenuItemID: "m1"},
				{Index: 1, Include: true, MenuItemID: "m2"},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Imported)
	require.Len(t, pw.pars, 2)
	assert.Equal(t, 5, pw.pars[0].DayOfWeek)
	assert.Equal(t, 20.0, pw.pars[0].Quantity)
}

func TestCommitLinksRecipeToMenuItem(t *testing.T) {
	payload := map[string]any{
		"type": "recipe",
		"recipe": map[string]any{
			"name": "Caesar Dressing",
			"ingredients": []map[string]any{
				{"name": "Anchovy", "quantity": 6, "unit": "fillet"},
				{"name": "Garlic", "quantity": 2, "unit": "clove"},
			},
			"method": "Blend everything.",
			"yield":  "1 qt",
		},
	}
	u := extractedUpload(1, "batch-1", "caesar_dressing.txt", "x", payload)
	recType := "recipe"
	u.DocType = &recType

	store := &fakeDocs{uploads: []docs.Upload{u}}
	svc, _, _, rw, _ := newTestService(store, &fakeCatalog{})

	summary, err := svc.Commit(context.Background(), "batch-1", CommitRequest{
		Documents: []DocumentCommit{{
			DocumentID: 1,
			Rows:       []RowCommit{{Index: 0, Include: true, MenuItemID: "m2"}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	require.Len(t, rw.recipes, 1)
	assert.Equal(t, "Caesar Dressing", rw.recipes[0].Name)
	require.NotNil(t, rw.recipes[0].MenuItemID)
	assert.Equal(t, "m2", *rw.recipes[0].MenuItemID)
	assert.Len(t, rw.recipes[0].Ingredients, 2)
}

func TestCommitSkipsExistingMenuItems(t *testing.T) {
	payload := map[string]any{
		"type": "menu_item",
		"menu_items": []map[string]any{
			{"item": "", "name": "Ribeye Steak", "category": "Entrees", "price": 45},
			{"name": "Smoked Old Fashioned", "category": "Drinks", "price": 14},
		},
	}
	u := extractedUpload(1, "batch-1", "menu.txt", "x", payload)
	menuType := "menu_item"
	u.DocType = &menuType

	store := &fakeDocs{uploads: []docs.Upload{u}}
	svc, _, _, _, mw := newTestService(store, &fakeCatalog{})

	summary, err := svc.Commit(context.Background(), "batch-1", CommitRequest{
		Documents: []DocumentCommit{{
			DocumentID: 1,
			Rows: []RowCommit{
				{Index: 0, Include: true, MenuItemID: "m1"}, // already on the menu
				{Index: 1, Include: true},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, mw.items, 1)
	assert.Equal(t, "Smoked Old Fashioned", mw.items[0].Name)
}

func TestCommitSkipDocumentSkipsAllRows(t *testing.T) {
	payload := map[string]any{
		"type": "sales",
		"sales": []map[string]any{
			{"item": "Ribeye Steak", "date": "2026-08-24", "quantity": 12},
		},
	}
	store := &fakeDocs{uploads: []docs.Upload{
		extractedUpload(1, "batch-1", "sales.csv", "x", payload),
	}}
	svc, sw, _, _, _ := newTestService(store, &fakeCatalog{})

	summary, err := svc.Commit(context.Background(), "batch-1", CommitRequest{
		Documents: []DocumentCommit{{
			DocumentID: 1,
			Skip:       true,
			Rows:       []RowCommit{{Index: 0, Include: true, MenuItemID: "m1"}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, sw.records)
	assert.Empty(t, store.imported)
}
