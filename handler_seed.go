package main

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

func NewHandlerSeed(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerSeed, error) {
	var err error
	var serviceSeed *ServiceSeed

	if serviceSeed, err = NewServiceSeed(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create seed service: %w", err)
	}

	return &HandlerSeed{
		serviceSeed: serviceSeed,
	}, nil
}

type HandlerSeed struct {
	serviceSeed *ServiceSeed
}

func (h *HandlerSeed) Seed(ctx context.Context) (httpserver.Response, error) {
	report, err := h.serviceSeed.Seed(ctx)
	if err != nil {
		return nil, err
	}

	return httpserver.NewJsonResponse(report), nil
}
