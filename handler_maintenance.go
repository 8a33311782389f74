package main

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

type OptimizeInput struct {
	Schema              string `uri:"schema"`
	Table               string `uri:"table"`
	FileSizeThresholdMb int    `json:"file_size_threshold_mb"`
}

type RetentionInput struct {
	Schema        string `uri:"schema"`
	Table         string `uri:"table"`
	RetentionDays int    `json:"retention_days"`
}

type ListHistoryInput struct {
	Schema string   `form:"schema"`
	Table  string   `form:"table"`
	Status []string `form:"status"`
	Limit  int      `form:"limit"`
	Offset int      `form:"offset"`
}

func NewHandlerMaintenance(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerMaintenance, error) {
	var err error
	var serviceMaintenance *ServiceMaintenance

	if serviceMaintenance, err = NewServiceMaintenance(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create maintenance service: %w", err)
	}

	return &HandlerMaintenance{
		serviceMaintenance: serviceMaintenance,
	}, nil
}

type HandlerMaintenance struct {
	serviceMaintenance *ServiceMaintenance
}

func (h *HandlerMaintenance) Analyze(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	result, err := h.serviceMaintenance.Analyze(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMaintenance) Optimize(ctx context.Context, input *OptimizeInput) (httpserver.Response, error) {
	result, err := h.serviceMaintenance.Optimize(ctx, input.Schema, input.Table, input.FileSizeThresholdMb)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMaintenance) OptimizeManifests(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	result, err := h.serviceMaintenance.OptimizeManifests(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMaintenance) ExpireSnapshots(ctx context.Context, input *RetentionInput) (httpserver.Response, error) {
	result, err := h.serviceMaintenance.ExpireSnapshots(ctx, input.Schema, input.Table, input.RetentionDays)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMaintenance) RemoveOrphanFiles(ctx context.Context, input *RetentionInput) (httpserver.Response, error) {
	result, err := h.serviceMaintenance.RemoveOrphanFiles(ctx, input.Schema, input.Table, input.RetentionDays)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMaintenance) DropExtendedStats(ctx context.Context, input *TableInput) (httpserver.Response, error) {
	result, err := h.serviceMaintenance.DropExtendedStats(ctx, input.Schema, input.Table)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMaintenance) ListHistory(ctx context.Context, input *ListHistoryInput) (httpserver.Response, error) {
	result, err := h.serviceMaintenance.ListHistory(ctx, input.Schema, input.Table, input.Status, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(result), nil
}
