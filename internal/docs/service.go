package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/extract"
)

// ObjectStore is the slice of the storage client the document pipeline
// needs: put a file, resolve its public URL.
type ObjectStore interface {
	UploadMultipartFile(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
	PublicURL(key string) string
}

type Service struct {
	repo    *Repository
	store   ObjectStore
	client  extract.Client
	httpGet func(url string) (*http.Response, error)
}

func NewService(repo *Repository, store ObjectStore, client extract.Client) *Service {
	return &Service{
		repo:    repo,
		store:   store,
		client:  client,
		httpGet: http.Get,
	}
}

// UploadBatch stores each file in R2 and queues it for extraction under a
// single batch id. Files that fail to upload are reported per-file; one
// bad file never sinks the batch.
func (s *Service) UploadBatch(ctx context.Context, uploadedBy *string, files []*multipart.FileHeader) (string, []UploadReceipt, error) {
	if len(files) == 0 {
		return "", nil, fmt.Errorf("no files provided")
	}

	batchID := uuid.New().String()

	receipts := make([]UploadReceipt, 0, len(files))
	for _, fh := range files {
		key := fmt.Sprintf("documents/%s/%s%s", batchID, uuid.New().String(), filepath.Ext(fh.Filename))

		if _, err := s.store.UploadMultipartFile(ctx, key, fh); err != nil {
			receipts = append(receipts, UploadReceipt{Filename: fh.Filename, Error: err.Error()})
			continue
		}

		id, err := s.repo.Insert(ctx, batchID, uploadedBy, key, fh.Filename)
		if err != nil {
			receipts = append(receipts, UploadReceipt{Filename: fh.Filename, Error: err.Error()})
			continue
		}

		receipts = append(receipts, UploadReceipt{ID: id, Filename: fh.Filename, Status: StatusUploaded})
	}

	return batchID, receipts, nil
}

// UploadReceipt is the per-file outcome of a batch upload.
type UploadReceipt struct {
	ID       int    `json:"id,omitempty"`
	Filename string `json:"filename"`
	Status   string `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ProcessOne picks ONE pending document and runs extraction on it safely.
// Every failure path marks the row FAILED and returns nil so the worker
// loop never stalls on a bad document.
func (s *Service) ProcessOne(ctx context.Context) error {
	id, objectKey, err := s.repo.FetchPending(ctx)
	if err != nil || id == 0 {
		// No pending jobs is NOT an error
		return nil
	}

	resp, err := s.httpGet(s.store.PublicURL(objectKey))
	if err != nil {
		_ = s.repo.MarkFailed(ctx, id, "fetch failed: "+err.Error())
		return nil // do NOT block worker
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_ = s.repo.MarkFailed(ctx, id, fmt.Sprintf("fetch failed: status %d", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		_ = s.repo.MarkFailed(ctx, id, "read failed: "+err.Error())
		return nil
	}

	text, ok := documentText(body)
	if !ok {
		log.Printf("EXTRACT_SKIPPED (binary) id=%d key=%s", id, objectKey)
		_ = s.repo.MarkFailed(ctx, id, "unsupported binary format")
		return nil
	}

	log.Printf("EXTRACT_PROCESSING id=%d bytes=%d", id, len(text))

	doc, err := extract.ParseDocument(ctx, s.client, text, "")
	if err != nil {
		_ = s.repo.MarkFailed(ctx, id, "extraction failed: "+err.Error())
		return nil
	}

	parsed, err := json.Marshal(doc)
	if err != nil {
		_ = s.repo.MarkFailed(ctx, id, "encode failed: "+err.Error())
		return nil
	}

	log.Printf("EXTRACT_DONE id=%d type=%s items=%d", id, doc.Type, len(doc.RawNames()))

	return s.repo.SaveExtracted(ctx, id, string(doc.Type), text, parsed)
}

// documentText decides whether an uploaded object is text we can hand to
// the extraction model. PDFs and other binary blobs are rejected rather
// than garbled.
func documentText(body []byte) (string, bool) {
	if bytes.HasPrefix(body, []byte("%PDF")) {
		return "", false
	}
	if !utf8.Valid(body) {
		return "", false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return "", false
	}
	return string(body), true
}
