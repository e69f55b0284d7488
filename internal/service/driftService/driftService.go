package driftService

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KotFed0t/invest_contracts/config"
	"github.com/KotFed0t/invest_contracts/internal/model"
	"github.com/KotFed0t/invest_contracts/internal/service"
	"github.com/KotFed0t/invest_contracts/model/restModel"
	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/KotFed0t/invest_contracts/utils"
	"golang.org/x/sync/errgroup"
)

type InvestApi interface {
	Fetch(ctx context.Context, endpoint string, params map[string]string) ([]byte, error)
}

type ReportGenerator interface {
	Generate(ctx context.Context, summary model.DriftSummary) (fileBytes []byte, fileExtension string, err error)
}

// Target is one payload to check. An empty Fixture means the payload is fetched from the api.
type Target struct {
	Key     restModel.ContractKey
	Fixture string
	Params  map[string]string
}

func (t Target) source() string {
	if t.Fixture != "" {
		return t.Fixture
	}
	return "live:" + t.Key.Endpoint
}

type DriftService struct {
	cfg       *config.Config
	investApi InvestApi
	reportGen ReportGenerator
	now       func() time.Time
}

func New(cfg *config.Config, investApi InvestApi, reportGen ReportGenerator) *DriftService {
	return &DriftService{
		cfg:       cfg,
		investApi: investApi,
		reportGen: reportGen,
		now:       time.Now,
	}
}

// Check decodes the target payload with the contract selected by target.Key.
// Contract violations are reported in the finding, the returned error is kept for
// failures to obtain the payload or to select the contract.
func (s *DriftService) Check(ctx context.Context, target Target) (model.Finding, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "DriftService.Check"

	finding := model.Finding{
		Endpoint:  target.Key.Endpoint,
		Version:   target.Key.Version,
		Source:    target.source(),
		CheckedAt: s.now(),
	}

	decode, err := restModel.Contract(target.Key)
	if err != nil {
		slog.Error("got error from restModel.Contract", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return finding, err
	}

	data, err := s.load(ctx, target)
	if err != nil {
		slog.Error("can't load payload", slog.String("rqID", rqID), slog.String("op", op), slog.String("source", finding.Source), slog.String("err", err.Error()))
		return finding, err
	}

	res, err := decode(data)
	if err != nil {
		describe(&finding, err)
		slog.Warn(
			"contract drift",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("contract", target.Key.String()),
			slog.String("source", finding.Source),
			slog.String("err", err.Error()),
		)
		return finding, nil
	}

	if _, failed := res.(restModel.ResponseData[restModel.ErrorPayload]); failed {
		finding.Status = "Error"
	} else {
		finding.Status = "Ok"
	}

	slog.Debug("contract matches", slog.String("rqID", rqID), slog.String("op", op), slog.String("contract", target.Key.String()), slog.String("source", finding.Source))

	return finding, nil
}

func (s *DriftService) load(ctx context.Context, target Target) ([]byte, error) {
	if target.Fixture != "" {
		return os.ReadFile(target.Fixture)
	}
	return s.investApi.Fetch(ctx, target.Key.Endpoint, target.Params)
}

func describe(f *model.Finding, err error) {
	f.Err = err

	var sv *wire.SchemaViolationError
	var mi *wire.MalformedInputError
	switch {
	case errors.As(err, &sv):
		f.Entity = sv.Entity
		f.Field = sv.Field
		f.Key = sv.Key
		f.Path = sv.Path
		f.Token = sv.Token
		f.Reason = sv.Reason
	case errors.As(err, &mi):
		f.Entity = mi.Entity
		f.Reason = fmt.Sprintf("malformed JSON at offset %d", mi.Offset)
	default:
		f.Reason = err.Error()
	}
}

// CheckAll runs the targets with bounded parallelism. Findings keep the order of targets.
func (s *DriftService) CheckAll(ctx context.Context, targets []Target) (model.DriftSummary, error) {
	if len(targets) == 0 {
		return model.DriftSummary{}, service.ErrNoTargets
	}

	findings := make([]model.Finding, len(targets))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.Drift.Parallelism, 1))

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			f, err := s.Check(gCtx, target)
			if err != nil {
				return fmt.Errorf("%s (%s): %w", target.Key, target.source(), err)
			}
			findings[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return model.DriftSummary{}, err
	}

	summary := model.DriftSummary{Total: len(findings), Findings: findings}
	for _, f := range findings {
		if !f.OK() {
			summary.Failed++
		}
	}
	return summary, nil
}

// LoadTargets collects fixtures under dir. The directory path of a fixture is the endpoint,
// the file name selects the version: portfolio/v1.json, user/accounts/v3_empty.json.
func LoadTargets(dir string) ([]Target, error) {
	var targets []Target

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		endpoint := filepath.ToSlash(filepath.Dir(rel))
		version, _, _ := strings.Cut(strings.TrimSuffix(filepath.Base(rel), ".json"), "_")
		if endpoint == "." || !strings.HasPrefix(version, "v") {
			return fmt.Errorf("%w: %s", service.ErrBadFixtureName, rel)
		}

		key, err := restModel.ParseContractKey(endpoint + "@" + version)
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}

		targets = append(targets, Target{Key: key, Fixture: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return targets, nil
}

// LiveTargets parses the configured contract keys of live checks.
func LiveTargets(keys []string) ([]Target, error) {
	targets := make([]Target, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		key, err := restModel.ParseContractKey(k)
		if err != nil {
			return nil, err
		}
		targets = append(targets, Target{Key: key})
	}
	return targets, nil
}

// RunChecks is one pass of the checker over fixtures and live endpoints.
// It fails when any payload drifted from its contract, so the scheduler logs the job as failed.
func (s *DriftService) RunChecks(ctx context.Context) error {
	ctx = utils.CtxWithRqID(ctx)
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "DriftService.RunChecks"

	slog.Info("RunChecks start", slog.String("rqID", rqID), slog.String("op", op))

	targets, err := s.targets()
	if err != nil {
		slog.Error("can't collect targets", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	summary, err := s.CheckAll(ctx, targets)
	if err != nil {
		slog.Error("got error from CheckAll", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	if err := s.saveReport(ctx, summary); err != nil {
		return err
	}

	slog.Info(
		"RunChecks finished",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.Int("total", summary.Total),
		slog.Int("failed", summary.Failed),
	)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d payloads drifted from their contracts", summary.Failed, summary.Total)
	}
	return nil
}

func (s *DriftService) targets() ([]Target, error) {
	var targets []Target

	if s.cfg.Drift.FixturesDir != "" {
		fixtures, err := LoadTargets(s.cfg.Drift.FixturesDir)
		if err != nil {
			return nil, err
		}
		targets = append(targets, fixtures...)
	}

	live, err := LiveTargets(s.cfg.Drift.LiveEndpoints)
	if err != nil {
		return nil, err
	}
	return append(targets, live...), nil
}

func (s *DriftService) saveReport(ctx context.Context, summary model.DriftSummary) error {
	if s.cfg.Drift.ReportFile == "" || s.reportGen == nil {
		return nil
	}

	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "DriftService.saveReport"

	fileBytes, ext, err := s.reportGen.Generate(ctx, summary)
	if err != nil {
		slog.Error("got error from reportGen.Generate", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	path := s.cfg.Drift.ReportFile
	if filepath.Ext(path) == "" {
		path += ext
	}

	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		slog.Error("can't write report", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	slog.Info("report saved", slog.String("rqID", rqID), slog.String("op", op), slog.String("path", path))
	return nil
}
