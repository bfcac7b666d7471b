package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/faker"
	"github.com/Rana718/petseed/internal/generator"
	"github.com/Rana718/petseed/internal/storage"
	"github.com/Rana718/petseed/internal/types"
)

// countingGateway records every Insert call per table.
type countingGateway struct {
	storage.Gateway
	inserts map[string]int
}

func (c *countingGateway) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	c.inserts[table] += len(rows)
	return c.Gateway.Insert(ctx, table, columns, rows)
}

type recordingReporter struct {
	started  []string
	finished []Result
	failed   map[string]error
}

func (r *recordingReporter) StageStarted(name string) { r.started = append(r.started, name) }
func (r *recordingReporter) StageFinished(res Result) { r.finished = append(r.finished, res) }
func (r *recordingReporter) StageFailed(name string, err error) {
	if r.failed == nil {
		r.failed = make(map[string]error)
	}
	r.failed[name] = err
}

type fixture struct {
	cfg      *config.Config
	pipeline *Pipeline
	reporter *recordingReporter
	inserts  map[string]int
	open     storage.Opener
}

func newFixture(t *testing.T, customers int) *fixture {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "petseed.db")

	gw, err := storage.Open(ctx, "sqlite", path, 50)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	schema, err := os.ReadFile(filepath.Join("..", "storage", "testdata", "schema.sql"))
	if err != nil {
		t.Fatalf("Failed to read schema: %v", err)
	}
	if err := gw.ExecScript(ctx, string(schema)); err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}
	gw.Close()

	cfg := config.Default()
	cfg.Database.Provider = "sqlite"
	cfg.Generation.Customers = customers

	f := &fixture{cfg: cfg, reporter: &recordingReporter{}, inserts: make(map[string]int)}
	f.open = func(ctx context.Context) (storage.Gateway, error) {
		gw, err := storage.Open(ctx, "sqlite", path, 50)
		if err != nil {
			return nil, err
		}
		return &countingGateway{Gateway: gw, inserts: f.inserts}, nil
	}

	gen := generator.New(cfg, faker.New(1), generator.WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	f.pipeline = New(cfg, f.open, gen, f.reporter)
	return f
}

func (f *fixture) search(t *testing.T, q storage.Query) []storage.Row {
	t.Helper()
	gw, err := f.open(context.Background())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer gw.Close()

	rows, err := gw.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search on %s failed: %v", q.Table, err)
	}
	return rows
}

func (f *fixture) count(t *testing.T, table string) int {
	t.Helper()
	gw, err := f.open(context.Background())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer gw.Close()

	n, err := gw.Count(context.Background(), table)
	if err != nil {
		t.Fatalf("Count on %s failed: %v", table, err)
	}
	return n
}

func TestStagesOrder(t *testing.T) {
	want := []string{"customers", "addresses", "pets", "customer_address_links", "orders", "order_items", "requests"}
	got := Stages()
	if len(got) != len(want) {
		t.Fatalf("Expected %d stages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stage %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRunEndToEnd(t *testing.T) {
	f := newFixture(t, 25)

	results, err := f.pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != len(Stages()) {
		t.Fatalf("Expected a result per stage, got %d", len(results))
	}
	if len(f.reporter.finished) != len(Stages()) || len(f.reporter.failed) != 0 {
		t.Errorf("Unexpected reporter state: %+v", f.reporter)
	}

	if n := f.count(t, types.TableCustomer); n != 25 {
		t.Errorf("Expected 25 customers, got %d", n)
	}
	if n := f.count(t, types.TableCustomerAddress); n != 25 {
		t.Errorf("Expected every customer linked, got %d", n)
	}

	// every link is one customer to one distinct residence
	links := f.search(t, storage.Query{
		Table:   "CUSTOMER_ADDRESS ca",
		Columns: []string{"ca.ADDRESS_ID", "a.ADDRESS_TYPE_ID"},
		Join:    []string{"JOIN ADDRESS a ON a.ID = ca.ADDRESS_ID"},
	})
	seen := make(map[int64]bool)
	for _, row := range links {
		id, _ := row.Int64("ADDRESS_ID")
		kind, _ := row.Int64("ADDRESS_TYPE_ID")
		if seen[id] {
			t.Errorf("Address %d linked twice", id)
		}
		seen[id] = true
		if kind != types.AddressTypeResidence {
			t.Errorf("Address %d is not residential", id)
		}
	}

	// orders ship to their customer's linked address inside a store state
	orders := f.search(t, storage.Query{
		Table:   "CUSTOMER_ORDER co",
		Columns: []string{"co.ORDER_DATE", "ca.CUSTOMER_ID", "c.STATE_ID"},
		Join: []string{
			"LEFT JOIN CUSTOMER_ADDRESS ca ON ca.CUSTOMER_ID = co.CUSTOMER_ID AND ca.ADDRESS_ID = co.ADDRESS_ID",
			"JOIN ADDRESS a ON a.ID = co.ADDRESS_ID",
			"JOIN CITY c ON c.ID = a.CITY_ID",
		},
	})
	start, end := f.cfg.CampaignWindow()
	for _, row := range orders {
		if v := row["CUSTOMER_ID"]; v == nil {
			t.Fatal("Order address is not the customer's linked address")
		}
		state, _ := row.Int64("STATE_ID")
		if state != 25 && state != 19 && state != 13 {
			t.Errorf("Order placed in state %d without stores", state)
		}
		date, err := row.Time("ORDER_DATE")
		if err != nil {
			t.Fatalf("Failed to read order date: %v", err)
		}
		if date.Before(start) || date.After(end) {
			t.Errorf("Order date %v outside campaign", date)
		}
	}

	// requests go to a store address that offers the service
	requests := f.search(t, storage.Query{
		Table:   "REQUEST r",
		Columns: []string{"r.REQUEST_DATE", "r.SERVICE_DATE", "ss.STORE_ID", "b.SPECIE_ID", "r.SERVICE_ID"},
		Join: []string{
			"JOIN STORE st ON st.ADDRESS_ID = r.ADDRESS_ID",
			"LEFT JOIN STORE_SERVICE ss ON ss.STORE_ID = st.ID AND ss.SERVICE_ID = r.SERVICE_ID",
			"JOIN PET p ON p.ID = r.PET_ID",
			"JOIN BREED b ON b.ID = p.BREED_ID",
		},
	})
	if len(requests) != f.count(t, types.TableRequest) {
		t.Errorf("Some requests do not point at a store address")
	}
	for _, row := range requests {
		if row["STORE_ID"] == nil {
			t.Error("Request booked at a store that does not offer the service")
		}
		specie, _ := row.Int64("SPECIE_ID")
		service, _ := row.Int64("SERVICE_ID")
		if specie == 3 {
			t.Error("Fish must not request services")
		}
		if specie >= 4 && service != 4 {
			t.Errorf("Species %d booked service %d", specie, service)
		}

		requested, _ := row.Time("REQUEST_DATE")
		served, _ := row.Time("SERVICE_DATE")
		days := served.Sub(requested.Truncate(24*time.Hour)).Hours() / 24
		if days < 1 || days >= 31 {
			t.Errorf("Service %v not 1-30 days after request %v", served, requested)
		}
	}
}

func TestRunStageTwiceKeepsLinksUnique(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	for _, name := range []string{StageCustomers, StageAddresses, StageLinks, StageLinks} {
		if _, err := f.pipeline.RunStage(ctx, name); err != nil {
			t.Fatalf("RunStage(%s) returned error: %v", name, err)
		}
	}
	if n := f.count(t, types.TableCustomerAddress); n != 5 {
		t.Errorf("Expected 5 links after a rerun, got %d", n)
	}
}

func TestLinkStageInsufficientAddresses(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	if _, err := f.pipeline.RunStage(ctx, StageCustomers); err != nil {
		t.Fatalf("customers stage failed: %v", err)
	}
	f.cfg.Generation.Customers = 9
	if _, err := f.pipeline.RunStage(ctx, StageAddresses); err != nil {
		t.Fatalf("addresses stage failed: %v", err)
	}

	_, err := f.pipeline.RunStage(ctx, StageLinks)
	if !errors.Is(err, generator.ErrInsufficientAddresses) {
		t.Fatalf("Expected ErrInsufficientAddresses, got %v", err)
	}
	if f.inserts[types.TableCustomerAddress] != 0 {
		t.Errorf("Expected no link inserts, got %d", f.inserts[types.TableCustomerAddress])
	}
	if n := f.count(t, types.TableCustomerAddress); n != 0 {
		t.Errorf("Expected no links stored, got %d", n)
	}
	if f.reporter.failed[StageLinks] == nil {
		t.Error("Expected the reporter to see the failure")
	}
}

func TestRunStopsAtFailedStage(t *testing.T) {
	f := newFixture(t, 3)
	broken := errors.New("connection refused")
	calls := 0
	open := f.open
	f.pipeline.open = func(ctx context.Context) (storage.Gateway, error) {
		calls++
		if calls == 2 {
			return nil, broken
		}
		return open(ctx)
	}

	results, err := f.pipeline.Run(context.Background())
	if !errors.Is(err, broken) {
		t.Fatalf("Expected the open error, got %v", err)
	}
	if len(results) != 1 || results[0].Stage != StageCustomers {
		t.Errorf("Expected only the customers stage to finish, got %+v", results)
	}
	if calls != 2 {
		t.Errorf("Expected the run to stop after the failed stage, got %d opens", calls)
	}
}

func TestRunStageUnknown(t *testing.T) {
	f := newFixture(t, 1)
	if _, err := f.pipeline.RunStage(context.Background(), "invoices"); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("Expected ErrUnknownStage, got %v", err)
	}
}
