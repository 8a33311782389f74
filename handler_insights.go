package main

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

type TableInput struct {
	Schema string `uri:"schema"`
	Table  string `uri:"table"`
}

type StatsResponse struct {
	Schema string      `json:"schema"`
	Table  string      `json:"table"`
	Stats  *TableStats `json:"stats"`
}

type GrowthResponse struct {
	Schema string        `json:"schema"`
	Table  string        `json:"table"`
	Points []GrowthPoint `json:"points"`
}

type FilesResponse struct {
	Schema string       `json:"schema"`
	Table  string       `json:"table"`
	Files  []FileDetail `json:"files"`
}

type HistogramResponse struct {
	Schema  string       `json:"schema"`
	Table   string       `json:"table"`
	Buckets []SizeBucket `json:"buckets"`
}

type ColumnSizesResponse struct {
	Schema  string       `json:"schema"`
	Table   string       `json:"table"`
	Columns []ColumnSize `json:"columns"`
}

func NewHandlerInsights(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerInsights, error) {
	var err error
	var serviceStats *ServiceStats
	var serviceGrowth *ServiceGrowth
	var serviceFiles *ServiceFiles
	var serviceColumns *ServiceColumns

	if serviceStats, err = NewServiceStats(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create stats service: %w", err)
	}

	if serviceGrowth, err = NewServiceGrowth(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create growth service: %w", err)
	}

	if serviceFiles, err = NewServiceFiles(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create files service: %w", err)
	}

	if serviceColumns, err = NewServiceColumns(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create columns service: %w", err)
	}

	return &HandlerInsights{
		serviceStats:   serviceStats,
		serviceGrowth:  serviceGrowth,
		serviceFiles:   serviceFiles,
		serviceColumns: serviceColumns,
	}, nil
}

type HandlerInsights struct {
	serviceStats   *ServiceStats
	serviceGrowth  *ServiceGrowth
	serviceFiles   *ServiceFiles
	serviceColumns *ServiceColumns
}

func (h *HandlerInsights) Stats(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	stats, err := h.serviceStats.FetchStats(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&StatsResponse{
		Schema: input.Schema,
		Table:  input.Table,
		Stats:  stats,
	}), nil
}

func (h *HandlerInsights) Growth(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	points, err := h.serviceGrowth.LoadGrowth(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&GrowthResponse{
		Schema: input.Schema,
		Table:  input.Table,
		Points: points,
	}), nil
}

func (h *HandlerInsights) Files(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	files, err := h.serviceFiles.ListFiles(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&FilesResponse{
		Schema: input.Schema,
		Table:  input.Table,
		Files:  files,
	}), nil
}

func (h *HandlerInsights) FileHistogram(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	buckets, err := h.serviceFiles.SizeHistogram(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&HistogramResponse{
		Schema:  input.Schema,
		Table:   input.Table,
		Buckets: buckets,
	}), nil
}

func (h *HandlerInsights) ColumnSizes(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	columns, err := h.serviceColumns.ListColumnSizes(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(&ColumnSizesResponse{
		Schema:  input.Schema,
		Table:   input.Table,
		Columns: columns,
	}), nil
}
