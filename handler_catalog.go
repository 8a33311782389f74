package main

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

type ListTablesInput struct {
	Schema string `uri:"schema"`
}

type SchemasResponse struct {
	Catalog string   `json:"catalog"`
	Schemas []string `json:"schemas"`
}

type TablesResponse struct {
	Schema string   `json:"schema"`
	Tables []string `json:"tables"`
}

func NewHandlerCatalog(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerCatalog, error) {
	var err error
	var serviceCatalog *ServiceCatalog
	var trino *TrinoClient

	if serviceCatalog, err = NewServiceCatalog(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create catalog service: %w", err)
	}

	if trino, err = ProvideTrinoClient(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create trino client: %w", err)
	}

	return &HandlerCatalog{
		serviceCatalog: serviceCatalog,
		trino:          trino,
	}, nil
}

type HandlerCatalog struct {
	serviceCatalog *ServiceCatalog
	trino          *TrinoClient
}

func (h *HandlerCatalog) ListSchemas(ctx context.Context) (httpserver.Response, error) {
	schemas, err := h.serviceCatalog.ListSchemas(ctx)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&SchemasResponse{
		Catalog: h.trino.Catalog(),
		Schemas: schemas,
	}), nil
}

func (h *HandlerCatalog) ListTables(ctx context.Context, input *ListTablesInput) (httpserver.Response, error) {
	tables, err := h.serviceCatalog.ListTables(ctx, input.Schema)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&TablesResponse{
		Schema: input.Schema,
		Tables: tables,
	}), nil
}
