// Package pipeline runs the generation stages in dependency order. Every
// stage acquires its own gateway, reads what earlier stages wrote, and
// inserts its rows before releasing the gateway. A failed stage stops the
// run; rows written by earlier stages stay.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/generator"
	"github.com/Rana718/petseed/internal/storage"
)

const (
	StageCustomers  = "customers"
	StageAddresses  = "addresses"
	StagePets       = "pets"
	StageLinks      = "customer_address_links"
	StageOrders     = "orders"
	StageOrderItems = "order_items"
	StageRequests   = "requests"
)

var ErrUnknownStage = errors.New("unknown stage")

// Result is what one stage produced.
type Result struct {
	Stage   string
	Rows    int
	Elapsed time.Duration
}

type stage struct {
	name string
	run  func(ctx context.Context, gw storage.Gateway) (int, error)
}

type Pipeline struct {
	cfg      *config.Config
	open     storage.Opener
	gen      *generator.Generator
	reporter Reporter
}

// New wires a pipeline. A nil reporter discards progress.
func New(cfg *config.Config, open storage.Opener, gen *generator.Generator, reporter Reporter) *Pipeline {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Pipeline{
		cfg:      cfg,
		open:     open,
		gen:      gen,
		reporter: reporter,
	}
}

// Stages lists the stage names in run order.
func Stages() []string {
	return []string{
		StageCustomers,
		StageAddresses,
		StagePets,
		StageLinks,
		StageOrders,
		StageOrderItems,
		StageRequests,
	}
}

func (p *Pipeline) stages() []stage {
	return []stage{
		{StageCustomers, p.customers},
		{StageAddresses, p.addresses},
		{StagePets, p.pets},
		{StageLinks, p.links},
		{StageOrders, p.orders},
		{StageOrderItems, p.orderItems},
		{StageRequests, p.requests},
	}
}

// Run executes every stage in order and stops at the first failure.
func (p *Pipeline) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, s := range p.stages() {
		res, err := p.runStage(ctx, s)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunStage executes a single stage by name.
func (p *Pipeline) RunStage(ctx context.Context, name string) (Result, error) {
	for _, s := range p.stages() {
		if s.name == name {
			return p.runStage(ctx, s)
		}
	}
	return Result{}, fmt.Errorf("%w: %s", ErrUnknownStage, name)
}

func (p *Pipeline) runStage(ctx context.Context, s stage) (res Result, err error) {
	p.reporter.StageStarted(s.name)
	start := time.Now()
	defer func() {
		if err != nil {
			p.reporter.StageFailed(s.name, err)
		}
	}()

	gw, err := p.open(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("stage %s: failed to open storage: %w", s.name, err)
	}
	defer gw.Close()

	rows, err := s.run(ctx, gw)
	if err != nil {
		return Result{}, fmt.Errorf("stage %s: %w", s.name, err)
	}

	res = Result{Stage: s.name, Rows: rows, Elapsed: time.Since(start)}
	p.reporter.StageFinished(res)
	return res, nil
}
