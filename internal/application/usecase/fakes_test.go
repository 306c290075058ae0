package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/repository"
	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
)

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                          { return "" }

type noopHandle struct{}

func (noopHandle) Increment() {}
func (noopHandle) Stop()      {}

type fakeStatus struct {
	console *fakeConsole
}

func (s fakeStatus) Update(message string) {
	s.console.statuses = append(s.console.statuses, message)
}

func (fakeStatus) Stop() {}

type fakeConsole struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
	success  []string
	statuses []string
	printed  []string
	tables   []*fakeTable
	charts   map[string][]types.CaseTotal
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{charts: map[string][]types.CaseTotal{}}
}

func (c *fakeConsole) Print(...interface{}) {}
func (c *fakeConsole) Printf(format string, a ...interface{}) {
	c.printed = append(c.printed, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Println(...interface{}) {}

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(message string) types.StatusHandle {
	c.statuses = append(c.statuses, message)
	return fakeStatus{console: c}
}

func (c *fakeConsole) Progress([]string) types.ProgressHandle { return noopHandle{} }

func (c *fakeConsole) CreateTable() types.TableInterface {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}

func (c *fakeConsole) DisplayComparisonBars(title, _ string, totals []types.CaseTotal) {
	c.charts[title] = totals
}

type fakeExport struct {
	fail  map[string]bool
	calls []string
}

func (e *fakeExport) export(kind string, filename, dir string) (string, error) {
	e.calls = append(e.calls, kind)
	if e.fail[kind] {
		return "", errors.New("disk full")
	}
	return filepath.Join(dir, filename+"."+kind), nil
}

func (e *fakeExport) ExportToCSV(_ entity.EstimateResult, filename, dir string) (string, error) {
	return e.export("csv", filename, dir)
}

func (e *fakeExport) ExportToJSON(_ entity.EstimateResult, filename, dir string) (string, error) {
	return e.export("json", filename, dir)
}

func (e *fakeExport) ExportToPDF(_ entity.EstimateResult, filename, dir string) (string, error) {
	return e.export("pdf", filename, dir)
}

type fakeConfigRepo struct {
	cfg *types.Config
	err error
}

func (r fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	return r.cfg, r.err
}

type fakeStorage struct {
	identityErr error
	published   []string
	target      repository.StorageTarget
}

func (s *fakeStorage) Identity(context.Context, repository.StorageTarget) (string, error) {
	if s.identityErr != nil {
		return "", s.identityErr
	}
	return "123456789012", nil
}

func (s *fakeStorage) Publish(_ context.Context, target repository.StorageTarget, localPath string) (string, error) {
	s.target = target
	s.published = append(s.published, localPath)
	return "s3://" + target.Bucket + "/" + filepath.Base(localPath), nil
}

func f64(v float64) *float64 { return &v }
func boolean(v bool) *bool   { return &v }
func str(v string) *string   { return &v }
