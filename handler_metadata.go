package main

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

type MetadataViewInput struct {
	Schema string `uri:"schema"`
	Table  string `uri:"table"`
	View   string `uri:"view"`
}

type DdlResponse struct {
	Schema string `json:"schema"`
	Table  string `json:"table"`
	Ddl    string `json:"ddl"`
}

type SnapshotsResponse struct {
	Schema    string          `json:"schema"`
	Table     string          `json:"table"`
	Snapshots []SnapshotEntry `json:"snapshots"`
}

type MetadataViewsResponse struct {
	Views []string `json:"views"`
}

func NewHandlerMetadata(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerMetadata, error) {
	var err error
	var serviceMetadata *ServiceMetadata

	if serviceMetadata, err = NewServiceMetadata(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create metadata service: %w", err)
	}

	return &HandlerMetadata{
		serviceMetadata: serviceMetadata,
	}, nil
}

type HandlerMetadata struct {
	serviceMetadata *ServiceMetadata
}

func (h *HandlerMetadata) ListViews(ctx context.Context) (httpserver.Response, error) {
	return httpserver.NewJsonResponse(&MetadataViewsResponse{
		Views: h.serviceMetadata.ListViews(),
	}), nil
}

func (h *HandlerMetadata) GetView(ctx context.Context, input *MetadataViewInput) (httpserver.Response, error) {
	view, err := h.serviceMetadata.GetView(ctx, input.Schema, input.Table, input.View)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(view), nil
}

func (h *HandlerMetadata) ShowCreateTable(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	ddl, err := h.serviceMetadata.ShowCreateTable(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&DdlResponse{
		Schema: input.Schema,
		Table:  input.Table,
		Ddl:    ddl,
	}), nil
}

func (h *HandlerMetadata) ListSnapshots(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	snapshots, err := h.serviceMetadata.ListSnapshots(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&SnapshotsResponse{
		Schema:    input.Schema,
		Table:     input.Table,
		Snapshots: snapshots,
	}), nil
}
