package analyses

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/internal/documents"
	"github.com/navigatehome/waypoint/internal/gateway"
)

type recordingGateway struct {
	requests []gateway.ServiceRequest
	handleFn func(req gateway.ServiceRequest) (gateway.ServiceResult, error)
}

func (g *recordingGateway) Handle(_ context.Context, req gateway.ServiceRequest) (gateway.ServiceResult, error) {
	g.requests = append(g.requests, req)
	return g.handleFn(req)
}

func (g *recordingGateway) Mode() gateway.Source { return gateway.SourceMock }

func (g *recordingGateway) InvalidateDocument(string) {}

func pipelineDoc() *documents.Document {
	return &documents.Document{
		ID:          uuid.New(),
		Filename:    "i-130-petition.pdf",
		FormType:    "I-130",
		TextContent: "Petition for Alien Relative",
	}
}

func TestAnswerQuestions(t *testing.T) {
	t.Run("answers in order with document context", func(t *testing.T) {
		gw := &recordingGateway{
			handleFn: func(req gateway.ServiceRequest) (gateway.ServiceResult, error) {
				return gateway.ServiceResult{
					Kind:   req.Kind,
					Answer: "Answer to: " + req.Question,
					Source: gateway.SourceMock,
				}, nil
			},
		}
		r := &repo{gw: gw}
		doc := pipelineDoc()

		answered, err := r.answerQuestions(context.Background(), doc, []string{
			"Who qualifies as a sponsor?",
			"What fees apply?",
		})
		if err != nil {
			t.Fatalf("answerQuestions() error = %v", err)
		}

		if len(answered) != 2 {
			t.Fatalf("answered = %d, want 2", len(answered))
		}
		if answered[0].Question != "Who qualifies as a sponsor?" {
			t.Errorf("first question = %q", answered[0].Question)
		}
		if answered[0].Answer != "Answer to: Who qualifies as a sponsor?" {
			t.Errorf("first answer = %q", answered[0].Answer)
		}
		if answered[1].Question != "What fees apply?" {
			t.Errorf("second question = %q", answered[1].Question)
		}

		for i, req := range gw.requests {
			if req.Kind != gateway.KindQuestionExplanation {
				t.Errorf("request %d kind = %q, want question_explanation", i, req.Kind)
			}
			if req.FormType != "I-130" {
				t.Errorf("request %d form type = %q, want I-130", i, req.FormType)
			}
			if req.DocumentID != doc.ID.String() {
				t.Errorf("request %d document id = %q", i, req.DocumentID)
			}
			if req.DocumentText != "Petition for Alien Relative" {
				t.Errorf("request %d document text = %q", i, req.DocumentText)
			}
		}
	})

	t.Run("no questions means no dispatch", func(t *testing.T) {
		gw := &recordingGateway{
			handleFn: func(gateway.ServiceRequest) (gateway.ServiceResult, error) {
				return gateway.ServiceResult{}, nil
			},
		}
		r := &repo{gw: gw}

		answered, err := r.answerQuestions(context.Background(), pipelineDoc(), nil)
		if err != nil {
			t.Fatalf("answerQuestions() error = %v", err)
		}
		if answered != nil {
			t.Errorf("answered = %v, want nil", answered)
		}
		if len(gw.requests) != 0 {
			t.Errorf("requests = %d, want 0", len(gw.requests))
		}
	})

	t.Run("failing question aborts", func(t *testing.T) {
		failure := errors.New("assistant unavailable")
		gw := &recordingGateway{
			handleFn: func(req gateway.ServiceRequest) (gateway.ServiceResult, error) {
				if req.Question == "second" {
					return gateway.ServiceResult{}, failure
				}
				return gateway.ServiceResult{Answer: "ok"}, nil
			},
		}
		r := &repo{gw: gw}

		_, err := r.answerQuestions(context.Background(), pipelineDoc(), []string{"first", "second", "third"})
		if !errors.Is(err, failure) {
			t.Fatalf("error = %v, want %v", err, failure)
		}
		if len(gw.requests) != 2 {
			t.Errorf("requests = %d, want 2 (third question should not dispatch)", len(gw.requests))
		}
	})
}
