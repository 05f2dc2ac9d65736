package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/navigatehome/waypoint/pkg/formatting"
)

// Policy controls what happens when a live call fails after dispatch.
type Policy string

const (
	// PolicyLenient substitutes the mock result for any post-dispatch
	// failure, keeping the service available at reduced quality.
	PolicyLenient Policy = "lenient"
	// PolicyStrict surfaces live failures to the caller unchanged.
	PolicyStrict Policy = "strict"
)

func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(value)) {
	case PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q", value)
	}
}

// InstructionSource supplies per-stage prompt instructions. The prompts
// module backs this with operator overrides persisted in Postgres.
type InstructionSource interface {
	Instructions(ctx context.Context, stage string) (string, error)
}

// System is the single entry point for external assistant capabilities.
// Callers never see whether a result came from the live service or the
// offline responder except through ServiceResult.Source.
type System interface {
	Handle(ctx context.Context, req ServiceRequest) (ServiceResult, error)
	Mode() Source
	InvalidateDocument(id string)
}

type Options struct {
	APIKey        string
	BaseURL       string
	Model         string
	MaxTokens     int
	Temperature   float64
	TranslatorURL string
	TranslatorKey string
	Policy        Policy
	Client        HTTPClient
	Instructions  InstructionSource
}

type gateway struct {
	formatter    Formatter
	caller       *Caller
	cache        *Cache
	policy       Policy
	instructions InstructionSource
	live         bool
	logger       *slog.Logger
}

// NewSystem probes the configured credential once and fixes the operating
// mode for the life of the process. With no usable credential the caller
// is never constructed, so the mock path cannot touch the network.
func NewSystem(logger *slog.Logger, opts Options) System {
	g := &gateway{
		formatter: Formatter{
			Model:       opts.Model,
			MaxTokens:   opts.MaxTokens,
			Temperature: opts.Temperature,
		},
		cache:        NewCache(),
		policy:       opts.Policy,
		instructions: opts.Instructions,
		logger:       logger.With("system", "gateway"),
	}

	if g.policy == "" {
		g.policy = PolicyLenient
	}

	if HasUsableCredential(opts.APIKey) {
		g.live = true
		g.caller = NewCaller(opts.Client, opts.BaseURL, opts.APIKey, opts.TranslatorURL, opts.TranslatorKey)
		g.logger.Info("assistant gateway starting in live mode", "policy", g.policy)
	} else {
		g.logger.Info("no usable assistant credential, starting in mock mode")
	}

	return g
}

func (g *gateway) Mode() Source {
	if g.live {
		return SourceLive
	}
	return SourceMock
}

func (g *gateway) InvalidateDocument(id string) {
	g.cache.InvalidateDocument(id)
}

func (g *gateway) Handle(ctx context.Context, req ServiceRequest) (ServiceResult, error) {
	if err := Validate(req); err != nil {
		return ServiceResult{}, err
	}

	if !g.live {
		return RespondMock(req), nil
	}

	key := req.Identity()
	if cached, ok := g.cache.Get(key); ok {
		return cached, nil
	}

	result, err := g.callLive(ctx, req)
	if err != nil {
		if g.policy == PolicyStrict {
			return ServiceResult{}, err
		}
		g.logger.Warn("live call failed, serving mock result",
			"kind", req.Kind,
			"error", err,
		)
		return RespondMock(req), nil
	}

	g.cache.Put(key, result, req.DocumentID)
	return result, nil
}

func (g *gateway) callLive(ctx context.Context, req ServiceRequest) (ServiceResult, error) {
	instructions, err := g.stageInstructions(ctx, req)
	if err != nil {
		return ServiceResult{}, err
	}

	payload, err := g.formatter.Format(req, instructions)
	if err != nil {
		return ServiceResult{}, err
	}

	text, err := g.caller.Call(ctx, payload)
	if err != nil {
		return ServiceResult{}, err
	}

	return interpret(req, text)
}

func (g *gateway) stageInstructions(ctx context.Context, req ServiceRequest) (string, error) {
	stage := StageFor(req.Kind)
	if stage == "" || g.instructions == nil {
		return "", nil
	}
	return g.instructions.Instructions(ctx, stage)
}

// interpret shapes the raw live text into the same result structure the
// mock responder produces for the kind, so callers cannot depend on which
// path served them.
func interpret(req ServiceRequest, text string) (ServiceResult, error) {
	result := ServiceResult{Kind: req.Kind, Source: SourceLive}

	switch req.Kind {
	case KindRightsGuidance, KindEligibilityCheck, KindCommunityInsights, KindRecommendations:
		result.Items = splitItems(text)
	case KindResourceSearch:
		result.Resources = parseResources(text)
	case KindFormValidation:
		result.Check = parseFieldCheck(req, text)
	case KindKeyInformation:
		info, err := parseKeyInformation(text)
		if err != nil {
			return ServiceResult{}, err
		}
		result.KeyInfo = info
	default:
		result.Answer = text
	}

	return result, nil
}

// splitItems turns a line-per-item response into a list, stripping common
// bullet and numbering prefixes.
func splitItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

func parseResources(text string) []Resource {
	var resources []Resource
	for _, item := range splitItems(text) {
		name, description, found := strings.Cut(item, ": ")
		if !found {
			name, description, _ = strings.Cut(item, " - ")
		}
		resources = append(resources, Resource{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(description),
		})
	}
	return resources
}

func parseFieldCheck(req ServiceRequest, text string) *FieldCheck {
	lower := strings.ToLower(text)
	valid := !strings.Contains(lower, "invalid") &&
		!strings.Contains(lower, "incorrect") &&
		!strings.Contains(lower, "missing")

	return &FieldCheck{
		Field:    req.FieldName,
		Valid:    valid,
		Guidance: text,
	}
}

type keyInformationWire struct {
	FormNumber              string   `json:"form_number"`
	Deadlines               []string `json:"deadlines"`
	RequiredDocuments       []string `json:"required_documents"`
	Fees                    []string `json:"fees"`
	EligibilityRequirements []string `json:"eligibility_requirements"`
	ProcessingTime          string   `json:"processing_time"`
}

func parseKeyInformation(text string) (*KeyInformation, error) {
	wire, err := formatting.Parse[keyInformationWire](text)
	if err != nil {
		return nil, fmt.Errorf("parsing key information: %w", ErrMalformedResponse)
	}

	return &KeyInformation{
		FormNumber:              wire.FormNumber,
		Deadlines:               wire.Deadlines,
		RequiredDocuments:       wire.RequiredDocuments,
		Fees:                    wire.Fees,
		EligibilityRequirements: wire.EligibilityRequirements,
		ProcessingTime:          wire.ProcessingTime,
	}, nil
}
