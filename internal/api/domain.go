package api

import (
	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/internal/analyses"
	"github.com/navigatehome/waypoint/internal/chat"
	"github.com/navigatehome/waypoint/internal/documents"
	"github.com/navigatehome/waypoint/internal/gateway"
	"github.com/navigatehome/waypoint/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Gateway   gateway.System
	Documents documents.System
	Analyses  analyses.System
	Prompts   prompts.System
	Chat      chat.System
}

// NewDomain creates all domain systems from the API runtime. The prompts
// system feeds stage instructions into the gateway; the documents system
// invalidates gateway caches when a document is removed.
func NewDomain(runtime *Runtime) *Domain {
	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	// Config validation already rejected unknown policies; an empty value
	// still normalizes to lenient here.
	policy, err := gateway.ParsePolicy(runtime.Gateway.FallbackPolicy)
	if err != nil {
		policy = gateway.PolicyLenient
	}

	gatewaySystem := gateway.NewSystem(runtime.Logger, gateway.Options{
		APIKey:        runtime.Gateway.APIKey,
		BaseURL:       runtime.Gateway.BaseURL,
		Model:         runtime.Gateway.Model,
		MaxTokens:     runtime.Gateway.MaxTokens,
		Temperature:   runtime.Gateway.Temperature,
		TranslatorURL: runtime.Gateway.TranslatorURL,
		TranslatorKey: runtime.Gateway.TranslatorKey,
		Policy:        policy,
		Instructions:  promptsSystem,
	})

	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
		func(id uuid.UUID) { gatewaySystem.InvalidateDocument(id.String()) },
	)

	analysesSystem := analyses.New(
		runtime.Database.Connection(),
		gatewaySystem,
		docsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	chatSystem := chat.New(runtime.Sessions, gatewaySystem, runtime.Logger)

	return &Domain{
		Gateway:   gatewaySystem,
		Documents: docsSystem,
		Analyses:  analysesSystem,
		Prompts:   promptsSystem,
		Chat:      chatSystem,
	}
}
