package analyses

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/navigatehome/waypoint/internal/documents"
	"github.com/navigatehome/waypoint/internal/gateway"
)

// pipelineOutcome collects the three analysis results produced for a
// document in one pass.
type pipelineOutcome struct {
	summary         string
	keyInfo         gateway.KeyInformation
	recommendations []string
	source          gateway.Source
}

// runPipeline fans the summary, key information, and recommendation
// requests out concurrently and fails as a unit: a single strict-policy
// failure aborts the whole analysis.
func (r *repo) runPipeline(ctx context.Context, doc *documents.Document) (*pipelineOutcome, error) {
	base := gateway.ServiceRequest{
		FormType:     doc.FormType,
		DocumentID:   doc.ID.String(),
		DocumentText: documentText(doc),
	}

	var outcome pipelineOutcome

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		req := base
		req.Kind = gateway.KindDocumentSummary

		result, err := r.gw.Handle(ctx, req)
		if err != nil {
			return err
		}
		outcome.summary = result.Answer
		outcome.source = result.Source
		return nil
	})

	g.Go(func() error {
		req := base
		req.Kind = gateway.KindKeyInformation

		result, err := r.gw.Handle(ctx, req)
		if err != nil {
			return err
		}
		if result.KeyInfo != nil {
			outcome.keyInfo = *result.KeyInfo
		}
		return nil
	})

	g.Go(func() error {
		req := base
		req.Kind = gateway.KindRecommendations

		result, err := r.gw.Handle(ctx, req)
		if err != nil {
			return err
		}
		outcome.recommendations = result.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &outcome, nil
}

// answerQuestions resolves caller-supplied questions one at a time after
// the pipeline proper, preserving their order in the stored analysis.
func (r *repo) answerQuestions(
	ctx context.Context,
	doc *documents.Document,
	questions []string,
) ([]AnsweredQuestion, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	answered := make([]AnsweredQuestion, 0, len(questions))
	for _, q := range questions {
		result, err := r.gw.Handle(ctx, gateway.ServiceRequest{
			Kind:         gateway.KindQuestionExplanation,
			Question:     q,
			FormType:     doc.FormType,
			DocumentID:   doc.ID.String(),
			DocumentText: documentText(doc),
		})
		if err != nil {
			return nil, err
		}
		answered = append(answered, AnsweredQuestion{Question: q, Answer: result.Answer})
	}

	return answered, nil
}
