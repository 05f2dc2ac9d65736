package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/internal/documents"
	"github.com/navigatehome/waypoint/internal/gateway"
	"github.com/navigatehome/waypoint/pkg/pagination"
	"github.com/navigatehome/waypoint/pkg/query"
	"github.com/navigatehome/waypoint/pkg/repository"
)

type repo struct {
	db         *sql.DB
	gw         gateway.System
	documents  documents.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an analysis repository implementing the System interface.
func New(
	db *sql.DB,
	gw gateway.System,
	docs documents.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		gw:         gw,
		documents:  docs,
		logger:     logger.With("system", "analyses"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Analysis], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Summary")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAnalysis)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAnalysis)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) FindByDocument(ctx context.Context, documentID uuid.UUID) (*Analysis, error) {
	q, args := query.NewBuilder(projection).BuildSingle("DocumentID", documentID)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAnalysis)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Analyze(ctx context.Context, documentID uuid.UUID, questions []string) (*Analysis, error) {
	doc, err := r.document(ctx, documentID)
	if err != nil {
		return nil, err
	}

	outcome, err := r.runPipeline(ctx, doc)
	if err != nil {
		return nil, err
	}

	answered, err := r.answerQuestions(ctx, doc, questions)
	if err != nil {
		return nil, err
	}

	keyInfo, err := json.Marshal(outcome.keyInfo)
	if err != nil {
		return nil, fmt.Errorf("encode key_information: %w", err)
	}
	recs, err := json.Marshal(outcome.recommendations)
	if err != nil {
		return nil, fmt.Errorf("encode recommendations: %w", err)
	}
	qa, err := json.Marshal(answered)
	if err != nil {
		return nil, fmt.Errorf("encode questions_answered: %w", err)
	}

	q := `
		INSERT INTO analyses(id, document_id, summary, key_information, recommendations, questions_answered, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (document_id) DO UPDATE SET
			summary = EXCLUDED.summary,
			key_information = EXCLUDED.key_information,
			recommendations = EXCLUDED.recommendations,
			questions_answered = EXCLUDED.questions_answered,
			source = EXCLUDED.source,
			analyzed_at = now()
		RETURNING id, document_id, summary, key_information, recommendations, questions_answered, source, analyzed_at`

	args := []any{uuid.New(), documentID, outcome.summary, keyInfo, recs, qa, outcome.source}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Analysis, error) {
		return repository.QueryOne(ctx, tx, q, args, scanAnalysis)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document analyzed",
		"document_id", documentID,
		"source", a.Source,
	)
	return &a, nil
}

func (r *repo) Ask(ctx context.Context, documentID uuid.UUID, question string) (*gateway.ServiceResult, error) {
	doc, err := r.document(ctx, documentID)
	if err != nil {
		return nil, err
	}

	result, err := r.gw.Handle(ctx, gateway.ServiceRequest{
		Kind:         gateway.KindQuestionExplanation,
		Question:     question,
		FormType:     doc.FormType,
		DocumentID:   doc.ID.String(),
		DocumentText: documentText(doc),
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repo) Translate(ctx context.Context, documentID uuid.UUID, language string) (*gateway.ServiceResult, error) {
	doc, err := r.document(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// Translate the analysis summary when one exists. The raw extracted
	// text is a poor translation source.
	text := documentText(doc)
	if a, err := r.FindByDocument(ctx, documentID); err == nil && a.Summary != "" {
		text = a.Summary
	}

	result, err := r.gw.Handle(ctx, gateway.ServiceRequest{
		Kind:           gateway.KindTranslation,
		Text:           text,
		TargetLanguage: language,
		DocumentID:     doc.ID.String(),
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repo) Simplify(ctx context.Context, documentID uuid.UUID) (*gateway.ServiceResult, error) {
	doc, err := r.document(ctx, documentID)
	if err != nil {
		return nil, err
	}

	result, err := r.gw.Handle(ctx, gateway.ServiceRequest{
		Kind:         gateway.KindSimplify,
		FormType:     doc.FormType,
		DocumentID:   doc.ID.String(),
		DocumentText: documentText(doc),
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM analyses WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("analysis deleted", "id", id)
	return nil
}

func (r *repo) document(ctx context.Context, id uuid.UUID) (*documents.Document, error) {
	doc, err := r.documents.Find(ctx, id)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return doc, nil
}

// documentText returns the best available text for assistant calls. When
// extraction produced nothing, the filename still carries enough signal
// for the offline responder.
func documentText(doc *documents.Document) string {
	if doc.TextContent != "" {
		return doc.TextContent
	}
	return doc.Filename
}
