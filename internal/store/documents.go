package store

import (
	"context"
	"fmt"

	"github.com/adwitiya/lexio/ent"
	"github.com/adwitiya/lexio/ent/document"
)

// documentRepo implements DocumentRepo backed by ent.
type documentRepo struct {
	client *ent.Client
}

func (r *documentRepo) Save(ctx context.Context, doc *Document) error {
	_, err := r.client.Document.Create().
		SetDocID(doc.ID).
		SetTitle(doc.Title).
		SetContent(doc.Content).
		SetCategory(doc.Category).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (r *documentRepo) Get(ctx context.Context, id string) (*Document, error) {
	row, err := r.client.Document.Query().
		Where(document.DocIDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return docFromRow(row), nil
}

func (r *documentRepo) List(ctx context.Context) ([]*Document, error) {
	rows, err := r.client.Document.Query().
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	docs := make([]*Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, docFromRow(row))
	}
	return docs, nil
}

func (r *documentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Document.Delete().
		Where(document.DocIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func docFromRow(row *ent.Document) *Document {
	return &Document{
		ID:        row.DocID,
		Title:     row.Title,
		Content:   row.Content,
		Category:  row.Category,
		CreatedAt: row.CreatedAt,
	}
}
