package driftService

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/KotFed0t/invest_contracts/config"
	"github.com/KotFed0t/invest_contracts/internal/model"
	"github.com/KotFed0t/invest_contracts/internal/service"
	"github.com/KotFed0t/invest_contracts/model/restModel"
	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	positionNoType = `{"trackingId":"t1","status":"Ok","payload":{"positions":[{"figi":"F","balance":1,"lots":1,"name":"n"}]}}`
	errorEnvelope  = `{"trackingId":"t2","status":"Error","payload":{"message":"Invalid token","code":"Unauthorized"}}`
)

type fakeApi struct {
	mu      sync.Mutex
	bodies  map[string]string
	err     error
	fetched []string
}

func (a *fakeApi) Fetch(_ context.Context, endpoint string, _ map[string]string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fetched = append(a.fetched, endpoint)
	if a.err != nil {
		return nil, a.err
	}
	return []byte(a.bodies[endpoint]), nil
}

type fakeReport struct {
	summary model.DriftSummary
}

func (r *fakeReport) Generate(_ context.Context, summary model.DriftSummary) ([]byte, string, error) {
	r.summary = summary
	return []byte("report"), ".xlsx", nil
}

func writeFixture(t *testing.T, dir, rel, body string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newService(cfg *config.Config, api InvestApi, rep ReportGenerator) *DriftService {
	s := New(cfg, api, rep)
	s.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestCheckSelectsVersionExplicitly(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "portfolio/v1.json", positionNoType)
	s := newService(&config.Config{}, &fakeApi{}, nil)

	v1, err := s.Check(context.Background(), Target{Key: restModel.ContractKey{Endpoint: "portfolio", Version: 1}, Fixture: path})
	require.NoError(t, err)
	assert.False(t, v1.OK())
	assert.ErrorIs(t, v1.Err, wire.ErrSchemaViolation)
	assert.Equal(t, "PortfolioPositionV1", v1.Entity)
	assert.Equal(t, "instrument_type", v1.Field)
	assert.Equal(t, "instrumentType", v1.Key)
	assert.Equal(t, "payload.positions[0]", v1.Path)
	assert.Equal(t, "mandatory field is missing", v1.Reason)
	assert.Equal(t, path, v1.Source)

	v2, err := s.Check(context.Background(), Target{Key: restModel.ContractKey{Endpoint: "portfolio", Version: 2}, Fixture: path})
	require.NoError(t, err)
	assert.True(t, v2.OK())
	assert.Equal(t, "Ok", v2.Status)
	assert.Equal(t, 2, v2.Version)
}

func TestCheckLiveErrorEnvelope(t *testing.T) {
	api := &fakeApi{bodies: map[string]string{"user/accounts": errorEnvelope}}
	s := newService(&config.Config{}, api, nil)

	f, err := s.Check(context.Background(), Target{Key: restModel.ContractKey{Endpoint: "user/accounts", Version: 3}})
	require.NoError(t, err)
	assert.True(t, f.OK())
	assert.Equal(t, "Error", f.Status)
	assert.Equal(t, "live:user/accounts", f.Source)
	assert.Equal(t, []string{"user/accounts"}, api.fetched)
}

func TestCheckMalformedPayload(t *testing.T) {
	api := &fakeApi{bodies: map[string]string{"orders": `{"trackingId":"t","status":"Ok","payload":[`}}
	s := newService(&config.Config{}, api, nil)

	f, err := s.Check(context.Background(), Target{Key: restModel.ContractKey{Endpoint: "orders", Version: 1}})
	require.NoError(t, err)
	assert.ErrorIs(t, f.Err, wire.ErrMalformedInput)
	assert.Contains(t, f.Reason, "malformed JSON at offset")
}

func TestCheckFailures(t *testing.T) {
	s := newService(&config.Config{}, &fakeApi{err: errors.New("connection refused")}, nil)

	_, err := s.Check(context.Background(), Target{Key: restModel.ContractKey{Endpoint: "nowhere", Version: 1}})
	assert.ErrorIs(t, err, restModel.ErrUnknownContract)

	_, err = s.Check(context.Background(), Target{Key: restModel.ContractKey{Endpoint: "orders", Version: 1}})
	assert.EqualError(t, err, "connection refused")

	_, err = s.Check(context.Background(), Target{
		Key:     restModel.ContractKey{Endpoint: "orders", Version: 1},
		Fixture: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTargets(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "portfolio/v1.json", positionNoType)
	writeFixture(t, dir, "user/accounts/v3_error.json", errorEnvelope)
	writeFixture(t, dir, "user/accounts/README.md", "not a fixture")

	targets, err := LoadTargets(dir)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	keys := []restModel.ContractKey{targets[0].Key, targets[1].Key}
	assert.ElementsMatch(t, []restModel.ContractKey{
		{Endpoint: "portfolio", Version: 1},
		{Endpoint: "user/accounts", Version: 3},
	}, keys)
}

func TestLoadTargetsBadNames(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "top.json", "{}")
	_, err := LoadTargets(dir)
	assert.ErrorIs(t, err, service.ErrBadFixtureName)

	dir = t.TempDir()
	writeFixture(t, dir, "portfolio/latest.json", "{}")
	_, err = LoadTargets(dir)
	assert.ErrorIs(t, err, service.ErrBadFixtureName)

	dir = t.TempDir()
	writeFixture(t, dir, "portfolio/vX.json", "{}")
	_, err = LoadTargets(dir)
	assert.ErrorIs(t, err, restModel.ErrUnknownContract)
}

func TestLiveTargets(t *testing.T) {
	targets, err := LiveTargets([]string{"portfolio", " user/accounts@v1", ""})
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, restModel.ContractKey{Endpoint: "portfolio", Version: 2}, targets[0].Key)
	assert.Equal(t, restModel.ContractKey{Endpoint: "user/accounts", Version: 1}, targets[1].Key)

	_, err = LiveTargets([]string{"unknown/endpoint"})
	assert.ErrorIs(t, err, restModel.ErrUnknownContract)
}

func TestCheckAll(t *testing.T) {
	api := &fakeApi{bodies: map[string]string{
		"portfolio":     positionNoType,
		"user/accounts": errorEnvelope,
	}}
	cfg := &config.Config{}
	cfg.Drift.Parallelism = 2
	s := newService(cfg, api, nil)

	targets := []Target{
		{Key: restModel.ContractKey{Endpoint: "portfolio", Version: 1}},
		{Key: restModel.ContractKey{Endpoint: "portfolio", Version: 2}},
		{Key: restModel.ContractKey{Endpoint: "user/accounts", Version: 3}},
	}
	summary, err := s.CheckAll(context.Background(), targets)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Findings, 3)
	assert.Equal(t, 1, summary.Findings[0].Version)
	assert.False(t, summary.Findings[0].OK())
	assert.True(t, summary.Findings[1].OK())
	assert.Equal(t, "Error", summary.Findings[2].Status)

	_, err = s.CheckAll(context.Background(), nil)
	assert.ErrorIs(t, err, service.ErrNoTargets)
}

func TestCheckAllStopsOnFetchError(t *testing.T) {
	s := newService(&config.Config{}, &fakeApi{err: errors.New("timeout")}, nil)

	_, err := s.CheckAll(context.Background(), []Target{{Key: restModel.ContractKey{Endpoint: "orders", Version: 1}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders@v1")
}

func TestRunChecks(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "portfolio/v2.json", positionNoType)

	cfg := &config.Config{}
	cfg.Drift.FixturesDir = dir
	cfg.Drift.ReportFile = filepath.Join(t.TempDir(), "drift")
	rep := &fakeReport{}
	s := newService(cfg, &fakeApi{}, rep)

	require.NoError(t, s.RunChecks(context.Background()))
	assert.Equal(t, 1, rep.summary.Total)

	saved, err := os.ReadFile(cfg.Drift.ReportFile + ".xlsx")
	require.NoError(t, err)
	assert.Equal(t, "report", string(saved))

	writeFixture(t, dir, "portfolio/v1.json", positionNoType)
	err = s.RunChecks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, 1, rep.summary.Failed)
}

func TestRepositoryFixturesMatchContracts(t *testing.T) {
	targets, err := LoadTargets(filepath.Join("..", "..", "..", "testdata", "fixtures"))
	require.NoError(t, err)
	require.NotEmpty(t, targets)

	summary, err := newService(&config.Config{}, &fakeApi{}, nil).CheckAll(context.Background(), targets)
	require.NoError(t, err)
	for _, f := range summary.Findings {
		assert.True(t, f.OK(), "%s: %v", f.Source, f.Err)
	}
}
