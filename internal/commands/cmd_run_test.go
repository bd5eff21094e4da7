package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/stockroom/internal/core/config"
	"github.com/colonyops/stockroom/internal/core/styles"
)

func writeTestManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stockroom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runApp(t *testing.T, flags *Flags, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "stockroom",
		Writer: &buf,
	}
	NewRunCmd(flags).Register(app)
	NewCategoriesCmd(flags).Register(app)
	NewValidateCmd(flags).Register(app)

	err := app.Run(context.Background(), append([]string{"stockroom"}, args...))
	return buf.String(), err
}

func TestRunReport(t *testing.T) {
	styles.SetEnabled(false)
	t.Cleanup(func() { styles.SetEnabled(true) })

	path := writeTestManifest(t, `
items:
  - name: Normal Item
    days_to_sell: 10
    quality: 20
  - name: Aged Brie
    days_to_sell: 2
    quality: 0
`)

	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	out, err := runApp(t, flags, "run", "--days", "2", "--manifest", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Day 1",
		"Day 2",
		"NAME",
		"Normal Item",
		"Aged Brie",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Day 2: Normal Item at 8 days / quality 18.
	if !regexp.MustCompile(`Normal Item\s+8\s+18`).MatchString(out) {
		t.Errorf("output missing aged Normal Item row:\n%s", out)
	}
}

func TestRunJSONOutput(t *testing.T) {
	path := writeTestManifest(t, `
items:
  - name: Backstage passes to a TAFKAL80ETC concert
    days_to_sell: 0
    quality: 25
`)

	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	out, err := runApp(t, flags, "run", "--json", "--manifest", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 JSON line, got %d:\n%s", len(lines), out)
	}

	var got dayItem
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("invalid JSON line %q: %v", lines[0], err)
	}

	want := dayItem{
		Day:        1,
		Name:       "Backstage passes to a TAFKAL80ETC concert",
		DaysToSell: -1,
		Quality:    0,
		PastDue:    true,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRunPastDueStatus(t *testing.T) {
	styles.SetEnabled(false)
	t.Cleanup(func() { styles.SetEnabled(true) })

	path := writeTestManifest(t, `
items:
  - name: Normal Item
    days_to_sell: 0
    quality: 10
`)

	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	out, err := runApp(t, flags, "run", "--manifest", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "past due") {
		t.Errorf("output missing past due status:\n%s", out)
	}
}

func TestRunRejectsZeroDays(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	_, err := runApp(t, flags, "run", "--days", "0")
	if err == nil {
		t.Fatal("expected error for --days 0")
	}
	if !strings.Contains(err.Error(), "days must be at least 1") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunConfigBindings(t *testing.T) {
	path := writeTestManifest(t, `
items:
  - name: Vintage Cheddar
    days_to_sell: 5
    quality: 10
`)

	cfg := config.DefaultConfig()
	cfg.Categories = map[string][]string{"improving": {"Vintage Cheddar"}}
	flags := &Flags{Config: &cfg}

	out, err := runApp(t, flags, "run", "--json", "--manifest", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got dayItem
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	// Improving rule: quality climbs instead of decaying.
	if got.Quality != 11 {
		t.Errorf("quality = %d, want 11", got.Quality)
	}
}

func TestCategoriesListsBindings(t *testing.T) {
	styles.SetEnabled(false)
	t.Cleanup(func() { styles.SetEnabled(true) })

	cfg := config.DefaultConfig()
	cfg.Categories = map[string][]string{"legendary": {"The Crown Jewels"}}
	flags := &Flags{Config: &cfg}

	out, err := runApp(t, flags, "categories")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Aged Brie",
		"improving",
		"Backstage passes to a TAFKAL80ETC concert",
		"event",
		"Sulfuras, Hand of Ragnaros",
		"legendary",
		"The Crown Jewels",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidateReportsBadManifest(t *testing.T) {
	styles.SetEnabled(false)
	t.Cleanup(func() { styles.SetEnabled(true) })

	path := writeTestManifest(t, `
items:
  - days_to_sell: 5
    quality: 10
`)

	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	out, err := runApp(t, flags, "validate", "--manifest", path)
	if err == nil {
		t.Fatal("expected non-zero exit for invalid manifest")
	}

	if !strings.Contains(out, "name is required") {
		t.Errorf("output missing validation error:\n%s", out)
	}
}

func TestValidateWarnsOnOutOfRangeQuality(t *testing.T) {
	styles.SetEnabled(false)
	t.Cleanup(func() { styles.SetEnabled(true) })

	path := writeTestManifest(t, `
items:
  - name: Normal Item
    days_to_sell: 5
    quality: 80
  - name: Sulfuras, Hand of Ragnaros
    days_to_sell: 0
    quality: 80
`)

	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	out, err := runApp(t, flags, "validate", "--manifest", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `"Normal Item" starts with quality 80`) {
		t.Errorf("output missing warning:\n%s", out)
	}
	// Legendary items are exempt, so only one warning.
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("expected exactly one warning:\n%s", out)
	}
}
