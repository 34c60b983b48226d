package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// runCLI executes the root command with args and returns what it printed.
// The config file lives in a fresh temp dir unless args set --config.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(&buf)
	root.SetErr(io.Discard)

	hasConfig := false
	for _, a := range args {
		if a == "--config" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...)
	}
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func rect(x, y, w, h int) *placement.Rect {
	return &placement.Rect{X: x, Y: y, W: w, H: h}
}

// writeLayout writes l to a temp file and returns its path.
func writeLayout(t *testing.T, l dashboard.Layout) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.json")
	if err := dashboard.WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	return path
}

func halfRow() dashboard.Layout {
	return dashboard.Layout{Widgets: []dashboard.Widget{{ID: "a", Position: rect(0, 0, 6, 2)}}}
}

func placeJSON(t *testing.T, args ...string) placeResult {
	t.Helper()
	out, err := runCLI(t, append([]string{"place", "--json"}, args...)...)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	var res placeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	return res
}

func TestPlaceJSON(t *testing.T) {
	path := writeLayout(t, halfRow())
	res := placeJSON(t, path, "--size", "6x2")

	if res.Result.X != 6 || res.Result.Y != 0 || res.Result.Fallback {
		t.Errorf("result = %+v, want (6,0)", res.Result)
	}
	if want := (placement.Rect{X: 6, Y: 0, W: 6, H: 2}); res.Position != want {
		t.Errorf("position = %v, want %v", res.Position, want)
	}
	if res.Columns != placement.DefaultColumns {
		t.Errorf("columns = %d, want %d", res.Columns, placement.DefaultColumns)
	}
	if len(res.Result.Alternatives) != placement.DefaultAlternatives {
		t.Errorf("got %d alternatives, want %d", len(res.Result.Alternatives), placement.DefaultAlternatives)
	}
}

func TestPlaceColumns(t *testing.T) {
	l := halfRow()
	l.Columns = 6
	path := writeLayout(t, l)

	tests := []struct {
		name  string
		args  []string
		wantX int
		wantY int
	}{
		{"layout columns", nil, 0, 2},
		{"flag overrides layout", []string{"--columns", "12"}, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := placeJSON(t, append([]string{path, "--size", "6x2"}, tt.args...)...)
			if res.Result.X != tt.wantX || res.Result.Y != tt.wantY {
				t.Errorf("got (%d,%d), want (%d,%d)", res.Result.X, res.Result.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlaceFallback(t *testing.T) {
	path := writeLayout(t, halfRow())
	res := placeJSON(t, path, "--size", "13x1")

	if !res.Result.Fallback {
		t.Fatal("want fallback for a widget wider than the grid")
	}
	if res.Result.X != 0 || res.Result.Y != 2 {
		t.Errorf("fallback = (%d,%d), want (0,2)", res.Result.X, res.Result.Y)
	}
	if res.Result.Alternatives == nil || len(res.Result.Alternatives) != 0 {
		t.Errorf("alternatives = %v, want empty", res.Result.Alternatives)
	}
}

func TestPlaceSizeResolution(t *testing.T) {
	path := writeLayout(t, dashboard.Layout{})

	tests := []struct {
		name string
		args []string
		want placement.Size
	}{
		{"explicit size", []string{"--size", "4x3"}, placement.Size{W: 4, H: 3}},
		{"type default", []string{"--type", "kpi"}, placement.Size{W: 3, H: 2}},
		{"size clamped to type", []string{"--type", "kpi", "--size", "8x1"}, placement.Size{W: 6, H: 1}},
		{"size raised to type minimum", []string{"--type", "chart", "--size", "1x1"}, placement.Size{W: 3, H: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := placeJSON(t, append([]string{path}, tt.args...)...)
			if res.Size != tt.want {
				t.Errorf("size = %v, want %v", res.Size, tt.want)
			}
		})
	}
}

func TestPlaceErrors(t *testing.T) {
	path := writeLayout(t, dashboard.Layout{})

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no size", []string{"place", path}, errors.ErrCodeInvalidInput},
		{"bad size", []string{"place", path, "--size", "6by2"}, errors.ErrCodeInvalidSize},
		{"unknown type", []string{"place", path, "--type", "gauge"}, errors.ErrCodeUnknownWidget},
		{"bad type", []string{"place", path, "--type", "Gauge!"}, errors.ErrCodeInvalidWidgetType},
		{"missing layout", []string{"place", filepath.Join(t.TempDir(), "nope.json"), "--size", "1x1"}, errors.ErrCodeFileNotFound},
		{"not json", []string{"place", "layout.yaml", "--size", "1x1"}, errors.ErrCodeInvalidPath},
		{"too many columns", []string{"place", path, "--size", "1x1", "--columns", "100000"}, errors.ErrCodeInvalidInput},
		{"negative columns", []string{"place", path, "--size", "1x1", "--columns", "-3"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestPlacePreview(t *testing.T) {
	path := writeLayout(t, halfRow())
	out, err := runCLI(t, "place", path, "--size", "6x2", "--preview")
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	for _, want := range []string{"6x2@6,0", "best", cellNew, cellUsed} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAddCreatesLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.json")

	for range 2 {
		if _, err := runCLI(t, "add", path, "--type", "chart"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	l, err := dashboard.ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if len(l.Widgets) != 2 {
		t.Fatalf("got %d widgets, want 2", len(l.Widgets))
	}

	wantPos := []placement.Rect{{X: 0, Y: 0, W: 6, H: 4}, {X: 6, Y: 0, W: 6, H: 4}}
	for i, w := range l.Widgets {
		if w.Position == nil || *w.Position != wantPos[i] {
			t.Errorf("widget %d position = %v, want %v", i, w.Position, wantPos[i])
		}
		if w.Type != "chart" || w.Title != "Chart" || w.ID == "" {
			t.Errorf("widget %d = %+v", i, w)
		}
	}
}

func TestAddRecordsColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.json")

	if _, err := runCLI(t, "add", path, "--size", "3x1", "--columns", "24"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := runCLI(t, "add", path, "--size", "12x1"); err != nil {
		t.Fatalf("second add: %v", err)
	}

	l, err := dashboard.ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if l.Columns != 24 {
		t.Errorf("Columns = %d, want 24", l.Columns)
	}
	want := placement.Rect{X: 3, Y: 0, W: 12, H: 1}
	if got := l.Widgets[1].Position; got == nil || *got != want {
		t.Errorf("second widget = %v, want %v", got, want)
	}
}

func TestAddOutput(t *testing.T) {
	path := writeLayout(t, halfRow())
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "next.json")

	if _, err := runCLI(t, "add", path, "--size", "6x2", "--title", "Latency", "-o", out); err != nil {
		t.Fatalf("add: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("input layout changed")
	}

	l, err := dashboard.ReadLayoutFile(out)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	added := l.Widgets[len(l.Widgets)-1]
	if added.Title != "Latency" || *added.Position != (placement.Rect{X: 6, Y: 0, W: 6, H: 2}) {
		t.Errorf("added widget = %+v", added)
	}
}

func TestCatalogJSON(t *testing.T) {
	out, err := runCLI(t, "catalog", "--json")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var defs []dashboard.Definition
	if err := json.Unmarshal([]byte(out), &defs); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}

	var types []string
	for _, d := range defs {
		types = append(types, d.Type)
	}
	if got, want := strings.Join(types, ","), "chart,kpi,notes,table"; got != want {
		t.Errorf("types = %s, want %s", got, want)
	}
}

func TestCatalogLookup(t *testing.T) {
	out, err := runCLI(t, "catalog", "kpi")
	if err != nil {
		t.Fatalf("catalog kpi: %v", err)
	}
	if !strings.Contains(out, "KPI") || !strings.Contains(out, "3x2") {
		t.Errorf("output missing kpi row:\n%s", out)
	}

	if _, err := runCLI(t, "catalog", "gauge"); !errors.Is(err, errors.ErrCodeUnknownWidget) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeUnknownWidget)
	}
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridfit", "config.toml")

	out, err := runCLI(t, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", out, path)
	}

	if _, err := runCLI(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err = runCLI(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("second config init: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("second init should warn, got:\n%s", out)
	}

	out, err = runCLI(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"columns = 12", "[widgets.kpi]"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestConfigAppliesToPlace(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "[grid]\ncolumns = 6\n\n[widgets.wide]\nw = 6\nh = 1\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	layout := writeLayout(t, halfRow())

	out, err := runCLI(t, "--config", cfgPath, "place", layout, "--type", "wide", "--json")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	var res placeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Columns != 6 || res.Result.X != 0 || res.Result.Y != 2 {
		t.Errorf("result = %+v, want (0,2) on 6 columns", res)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[grid]\ncolums = 6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "--config", cfgPath, "catalog")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
