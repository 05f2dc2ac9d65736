package api

import (
	"net/http"

	"github.com/navigatehome/waypoint/internal/config"
	"github.com/navigatehome/waypoint/internal/gateway"
	"github.com/navigatehome/waypoint/pkg/openapi"
	"github.com/navigatehome/waypoint/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	routes.Register(
		mux,
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)
	routes.Register(mux, domain.Analyses.Handler().Routes())
	routes.Register(mux, domain.Prompts.Handler().Routes())
	routes.Register(mux, domain.Chat.Handler().Routes())
	routes.Register(
		mux,
		gateway.NewHandler(domain.Gateway, runtime.Logger).Routes(),
	)

	spec, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))

	return nil
}
