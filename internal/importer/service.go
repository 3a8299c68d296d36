package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/config"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/docs"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/extract"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/matching"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/menu"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/parlevel"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/recipe"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/sales"
)

// DocumentSource is the slice of the document store the importer reads
// from and closes out.
type DocumentSource interface {
	ListBatch(ctx context.Context, batchID string) ([]docs.Upload, error)
	MarkImported(ctx context.Context, id int) error
}

// CatalogSource provides the canonical entries raw names resolve against.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]matching.CatalogEntry, error)
}

type SalesWriter interface {
	Ingest(ctx context.Context, rec *sales.Record) error
}

type ParWriter interface {
	UpsertMany(ctx context.Context, pars []parlevel.ParLevel) (int, error)
}

type RecipeWriter interface {
	Create(ctx context.Context, rec *recipe.Recipe) (*recipe.Recipe, error)
}

type MenuWriter interface {
	Create(ctx context.Context, item *menu.Item) (*menu.Item, error)
}

// Service turns extracted documents into reviewed, committed domain rows.
type Service struct {
	documents DocumentSource
	catalog   CatalogSource

	salesWriter  SalesWriter
	parWriter    ParWriter
	recipeWriter RecipeWriter
	menuWriter   MenuWriter

	detector *matching.DuplicateDetector

	// Per-flow resolvers. Par sheets and sales reports intentionally
	// disagree on portion-prefix stripping; see the matching package.
	salesResolver   *matching.Resolver
	parResolver     *matching.Resolver
	defaultResolver *matching.Resolver
}

func NewService(
	cfg config.MatchingConfig,
	documents DocumentSource,
	catalog CatalogSource,
	salesWriter SalesWriter,
	parWriter ParWriter,
	recipeWriter RecipeWriter,
	menuWriter MenuWriter,
) *Service {
	return &Service{
		documents:    documents,
		catalog:      catalog,
		salesWriter:  salesWriter,
		parWriter:    parWriter,
		recipeWriter: recipeWriter,
		menuWriter:   menuWriter,
		detector:     matching.NewDuplicateDetector(cfg.OverlapThreshold),
		salesResolver: matching.NewResolver(matching.ResolverConfig{
			FuzzyThreshold: cfg.FuzzyThreshold,
			Normalize:      matching.NormalizeOptions{StripPortionPrefix: cfg.SalesStripsPortion},
		}),
		parResolver: matching.NewResolver(matching.ResolverConfig{
			FuzzyThreshold: cfg.FuzzyThreshold,
			Normalize:      matching.NormalizeOptions{StripPortionPrefix: cfg.ParSheetStripsPortion},
		}),
		defaultResolver: matching.NewResolver(matching.ResolverConfig{
			FuzzyThreshold: cfg.FuzzyThreshold,
		}),
	}
}

func (s *Service) resolverFor(docType extract.DocType) *matching.Resolver {
	switch docType {
	case extract.DocTypeSales:
		return s.salesResolver
	case extract.DocTypeParSheet:
		return s.parResolver
	default:
		return s.defaultResolver
	}
}

// Preview resolves every document of a batch against the catalog and
// flags likely duplicate files within the batch, without writing anything.
func (s *Service) Preview(ctx context.Context, batchID string) (*BatchPreview, error) {
	uploads, err := s.documents.ListBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	preview := &BatchPreview{BatchID: batchID}

	// Fingerprints of earlier batch documents, for duplicate flagging.
	type printed struct {
		id int
		fp matching.Fingerprint
	}
	var seen []printed

	for _, u := range uploads {
		dp := DocumentPreview{
			DocumentID: u.ID,
			Filename:   u.Filename,
			Status:     u.Status,
		}
		if u.DocType != nil {
			dp.DocType = *u.DocType
		}
		if u.FailureReason != nil {
			dp.FailureReason = *u.FailureReason
		}

		if u.RawText != nil {
			fp := matching.NewFingerprint(u.Filename, *u.RawText)
			for _, p := range seen {
				if s.detector.AreDuplicates(p.fp, fp) {
					dup := p.id
					dp.DuplicateOfID = &dup
					break
				}
			}
			seen = append(seen, printed{id: u.ID, fp: fp})
		}

		if u.Status == docs.StatusExtracted && len(u.ParsedData) > 0 {
			doc, err := extract.NarrowDocument(u.ParsedData)
			if err != nil {
				dp.FailureReason = err.Error()
			} else {
				dp.Document = doc
				dp.Rows = s.resolveRows(doc, catalog)
			}
		}

		preview.Documents = append(preview.Documents, dp)
	}

	return preview, nil
}

func (s *Service) resolveRows(doc *extract.Document, catalog []matching.CatalogEntry) []RowPreview {
	resolver := s.resolverFor(doc.Type)

	names := doc.RawNames()
	rows := make([]RowPreview, 0, len(names))
	for i, name := range names {
		match := resolver.Resolve(name, catalog)
		rows = append(rows, RowPreview{
			Index:       i,
			RawName:     name,
			Match:       match,
			Preselected: match.Confidence != matching.ConfidenceNone,
		})
	}

	return rows
}

// Commit applies the reviewer's decisions for a batch. Each document's
// rows are re-read from the stored extraction, then written through the
// domain services. Failures are counted per row and never abort the batch.
func (s *Service) Commit(ctx context.Context, batchID string, req CommitRequest) (*CommitSummary, error) {
	uploads, err := s.documents.ListBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]docs.Upload, len(uploads))
	for _, u := range uploads {
		byID[u.ID] = u
	}

	summary := &CommitSummary{BatchID: batchID}

	for _, dc := range req.Documents {
		outcome := DocumentOutcome{DocumentID: dc.DocumentID}

		u, ok := byID[dc.DocumentID]
		switch {
		case !ok:
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, "document not in batch")
		case dc.Skip:
			outcome.Skipped = len(dc.Rows)
		case u.Status != docs.StatusExtracted:
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("document status %s is not committable", u.Status))
		default:
			doc, err := extract.NarrowDocument(u.ParsedData)
			if err != nil {
				outcome.Failed++
				outcome.Errors = append(outcome.Errors, err.Error())
			} else {
				s.commitDocument(ctx, doc, dc.Rows, &outcome)
				if outcome.Imported > 0 {
					_ = s.documents.MarkImported(ctx, dc.DocumentID)
				}
			}
		}

		summary.Imported += outcome.Imported
		summary.Skipped += outcome.Skipped
		summary.Failed += outcome.Failed
		summary.Documents = append(summary.Documents, outcome)
	}

	return summary, nil
}

func (s *Service) commitDocument(ctx context.Context, doc *extract.Document, rows []RowCommit, outcome *DocumentOutcome) {
	switch doc.Type {
	case extract.DocTypeSales:
		s.commitSales(ctx, doc.Sales, rows, outcome)
	case extract.DocTypeParSheet:
		s.commitParSheet(ctx, doc.ParSheet, rows, outcome)
	case extract.DocTypeRecipe:
		s.commitRecipe(ctx, doc.Recipe, rows, outcome)
	case extract.DocTypeMenuItem:
		s.commitMenuItems(ctx, doc.MenuItems, rows, outcome)
	default:
		outcome.Failed++
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("doc type %q is not importable", doc.Type))
	}
}

func (s *Service) commitSales(ctx context.Context, salesRows []extract.SalesRow, rows []RowCommit, outcome *DocumentOutcome) {
	for _, rc := range rows {
		if rc.Index < 0 || rc.Index >= len(salesRows) {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d out of range", rc.Index))
			continue
		}
		if !rc.Include {
			outcome.Skipped++
			continue
		}
		if rc.MenuItemID == "" {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d has no menu item", rc.Index))
			continue
		}

		row := salesRows[rc.Index]

		saleDate, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d: bad sale date %q", rc.Index, row.Date))
			continue
		}

		rec := &sales.Record{
			MenuItemID: rc.MenuItemID,
			SaleDate:   saleDate,
			Quantity:   row.Quantity,
			Gross:      row.Gross,
		}
		if err := s.salesWriter.Ingest(ctx, rec); err != nil {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d: %v", rc.Index, err))
			continue
		}

		outcome.Imported++
	}
}

func (s *Service) commitParSheet(ctx context.Context, parRows []extract.ParRow, rows []RowCommit, outcome *DocumentOutcome) {
	var pars []parlevel.ParLevel

	for _, rc := range rows {
		if rc.Index < 0 || rc.Index >= len(parRows) {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d out of range", rc.Index))
			continue
		}
		if !rc.Include {
			outcome.Skipped++
			continue
		}
		if rc.MenuItemID == "" {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d has no menu item", rc.Index))
			continue
		}

		row := parRows[rc.Index]
		pars = append(pars, parlevel.ParLevel{
			MenuItemID: rc.MenuItemID,
			DayOfWeek:  row.DayOfWeek,
			Quantity:   row.Quantity,
		})
	}

	if len(pars) == 0 {
		return
	}

	written, err := s.parWriter.UpsertMany(ctx, pars)
	outcome.Imported += written
	if failed := len(pars) - written; failed > 0 {
		outcome.Failed += failed
		if err != nil {
			outcome.Errors = append(outcome.Errors, err.Error())
		}
	}
}

func (s *Service) commitRecipe(ctx context.Context, card *extract.RecipeCard, rows []RowCommit, outcome *DocumentOutcome) {
	// A recipe document carries exactly one card; the single row decision
	// covers the card and its optional menu-item link.
	if len(rows) == 0 || !rows[0].Include {
		outcome.Skipped++
		return
	}

	rec := &recipe.Recipe{
		Name:   card.Name,
		Method: card.Method,
		Yield:  card.Yield,
	}
	if rows[0].MenuItemID != "" {
		id := rows[0].MenuItemID
		rec.MenuItemID = &id
	}
	for _, ing := range card.Ingredients {
		rec.Ingredients = append(rec.Ingredients, recipe.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	if _, err := s.recipeWriter.Create(ctx, rec); err != nil {
		outcome.Failed++
		outcome.Errors = append(outcome.Errors, err.Error())
		return
	}

	outcome.Imported++
}

func (s *Service) commitMenuItems(ctx context.Context, menuRows []extract.MenuItemRow, rows []RowCommit, outcome *DocumentOutcome) {
	for _, rc := range rows {
		if rc.Index < 0 || rc.Index >= len(menuRows) {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d out of range", rc.Index))
			continue
		}
		if !rc.Include {
			outcome.Skipped++
			continue
		}
		// A row resolved to an existing catalog entry means the item is
		// already on the menu; creating it again would duplicate it.
		if rc.MenuItemID != "" {
			outcome.Skipped++
			continue
		}

		row := menuRows[rc.Index]
		item := &menu.Item{
			Name:     row.Name,
			Category: row.Category,
			Price:    row.Price,
		}
		if _, err := s.menuWriter.Create(ctx, item); err != nil {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("row %d: %v", rc.Index, err))
			continue
		}

		outcome.Imported++
	}
}
