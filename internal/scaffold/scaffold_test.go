package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forgebyte/forge/internal/configschema"
	"github.com/forgebyte/forge/internal/errs"
	"github.com/forgebyte/forge/internal/projectfs"
)

const testSettings = `from pathlib import Path

DJANGO_APPS = [
    'django.contrib.admin',
]

LOCAL_APPS = [

]

INSTALLED_APPS = DJANGO_APPS + LOCAL_APPS
`

// newTestProject creates a temp project with a settings file and returns a
// generator rooted at it.
func newTestProject(t *testing.T, settingsContent string) (*Generator, string) {
	t.Helper()

	root := t.TempDir()
	settingsPath := filepath.Join(root, "config", "settings.py")
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(settingsPath, []byte(settingsContent), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	fs := projectfs.New(root)
	return New(fs, configschema.Default()), root
}

func readSettings(t *testing.T, root string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, "config", "settings.py"))
	if err != nil {
		t.Fatalf("failed to read settings file: %v", err)
	}
	return string(data)
}

func TestCreateModule(t *testing.T) {
	gen, root := newTestProject(t, testSettings)

	result, err := gen.CreateModule("billing")
	if err != nil {
		t.Fatalf("CreateModule failed: %v", err)
	}

	if !result.Registered {
		t.Error("expected module to be registered")
	}
	if result.ClassName != "BillingConfig" {
		t.Errorf("expected class name BillingConfig, got %q", result.ClassName)
	}

	// Every directory of the structure template exists with its marker.
	for _, dir := range []string{"delivery", "repository", "services", "usecases", "models", "migrations"} {
		markerPath := filepath.Join(root, "modules", "billing", dir, "__init__.py")
		if _, err := os.Stat(markerPath); err != nil {
			t.Errorf("expected package marker in %s: %v", dir, err)
		}
	}

	// Leaf files carry exactly the specified content.
	apiPath := filepath.Join(root, "modules", "billing", "delivery", "api.py")
	apiContent, err := os.ReadFile(apiPath)
	if err != nil {
		t.Fatalf("failed to read api.py: %v", err)
	}
	if string(apiContent) != "#write API endpoints and controllers here." {
		t.Errorf("unexpected api.py content: %q", apiContent)
	}

	appsPath := filepath.Join(root, "modules", "billing", "apps.py")
	appsContent, err := os.ReadFile(appsPath)
	if err != nil {
		t.Fatalf("failed to read apps.py: %v", err)
	}
	for _, want := range []string{
		"class BillingConfig(AppConfig):",
		"label = 'billing'",
		"name = 'modules.billing'",
	} {
		if !strings.Contains(string(appsContent), want) {
			t.Errorf("apps.py missing %q:\n%s", want, appsContent)
		}
	}

	// The registration entry is spliced immediately after the anchor.
	lines := strings.Split(readSettings(t, root), "\n")
	anchorIdx := -1
	for i, line := range lines {
		if line == "LOCAL_APPS = [" {
			anchorIdx = i
			break
		}
	}
	if anchorIdx == -1 {
		t.Fatal("anchor line missing from settings after registration")
	}
	wantEntry := "    'modules.billing.apps.BillingConfig',"
	if lines[anchorIdx+1] != wantEntry {
		t.Errorf("expected entry %q after anchor, got %q", wantEntry, lines[anchorIdx+1])
	}

	// Every reported path exists.
	for _, p := range result.CreatedPaths {
		if _, err := os.Stat(filepath.Join(root, p)); err != nil {
			t.Errorf("reported created path %s does not exist: %v", p, err)
		}
	}
}

func TestCreateModuleAlreadyExists(t *testing.T) {
	gen, root := newTestProject(t, testSettings)

	if _, err := gen.CreateModule("billing"); err != nil {
		t.Fatalf("first CreateModule failed: %v", err)
	}

	// Drop a sentinel file to detect any overwrite of the existing tree.
	sentinel := filepath.Join(root, "modules", "billing", "services", "invoice.py")
	if err := os.WriteFile(sentinel, []byte("KEEP"), 0644); err != nil {
		t.Fatalf("failed to write sentinel: %v", err)
	}

	_, err := gen.CreateModule("billing")
	if err == nil {
		t.Fatal("expected second CreateModule to fail")
	}
	if !errs.IsCode(err, errs.CodeAlreadyExists) {
		t.Errorf("expected ALREADY_EXISTS, got %v", err)
	}

	data, err := os.ReadFile(sentinel)
	if err != nil || string(data) != "KEEP" {
		t.Errorf("existing module tree was modified: %v %q", err, data)
	}

	// Idempotence-of-rejection: the registration entry appears exactly once.
	content := readSettings(t, root)
	if n := strings.Count(content, "'modules.billing.apps.BillingConfig',"); n != 1 {
		t.Errorf("expected exactly one registration entry, found %d", n)
	}
}

func TestCreateModuleInvalidName(t *testing.T) {
	cases := []string{
		"",
		"9lives",
		"has space",
		"with-dash",
		"class",
		"pkg.sub",
	}

	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			gen, root := newTestProject(t, testSettings)

			_, err := gen.CreateModule(name)
			if err == nil {
				t.Fatalf("expected CreateModule(%q) to fail", name)
			}
			if !errs.IsCode(err, errs.CodeInvalidName) {
				t.Errorf("expected INVALID_NAME, got %v", err)
			}

			// No filesystem writes happened at all.
			if _, err := os.Stat(filepath.Join(root, "modules")); !os.IsNotExist(err) {
				t.Errorf("modules root was created for invalid name %q", name)
			}
			if got := readSettings(t, root); got != testSettings {
				t.Errorf("settings file was modified for invalid name %q", name)
			}
		})
	}
}

func TestCreateModuleAnchorNotFound(t *testing.T) {
	gen, root := newTestProject(t, "INSTALLED_APPS = []\n")

	_, err := gen.CreateModule("billing")
	if err == nil {
		t.Fatal("expected CreateModule to fail without anchor")
	}
	if !errs.IsCode(err, errs.CodeAnchorNotFound) {
		t.Errorf("expected ANCHOR_NOT_FOUND, got %v", err)
	}

	// Documented non-transactional behavior: the created tree stays on disk.
	if _, err := os.Stat(filepath.Join(root, "modules", "billing", "apps.py")); err != nil {
		t.Errorf("expected scaffold tree to remain on disk: %v", err)
	}
}

func TestCreateModuleAlreadyRegistered(t *testing.T) {
	preRegistered := strings.Replace(testSettings,
		"LOCAL_APPS = [\n",
		"LOCAL_APPS = [\n    'modules.billing.apps.BillingConfig',\n",
		1)
	gen, root := newTestProject(t, preRegistered)

	result, err := gen.CreateModule("billing")
	if err != nil {
		t.Fatalf("CreateModule failed: %v", err)
	}

	if result.Registered {
		t.Error("expected duplicate guard to skip registration")
	}

	// The tree is still created; the settings document is untouched.
	if _, err := os.Stat(filepath.Join(root, "modules", "billing", "apps.py")); err != nil {
		t.Errorf("expected module tree to be created: %v", err)
	}
	if got := readSettings(t, root); got != preRegistered {
		t.Error("settings document was modified despite duplicate guard")
	}
}

func TestCreateModuleMissingSettingsFile(t *testing.T) {
	root := t.TempDir()
	gen := New(projectfs.New(root), configschema.Default())

	_, err := gen.CreateModule("billing")
	if err == nil {
		t.Fatal("expected CreateModule to fail without settings file")
	}
	if !errs.IsCode(err, errs.CodeIOFailure) {
		t.Errorf("expected IO_FAILURE, got %v", err)
	}
}

func TestModules(t *testing.T) {
	gen, root := newTestProject(t, testSettings)

	if _, err := gen.CreateModule("billing"); err != nil {
		t.Fatalf("CreateModule failed: %v", err)
	}

	// An unregistered module dropped in by hand.
	if err := os.MkdirAll(filepath.Join(root, "modules", "shipping"), 0755); err != nil {
		t.Fatalf("failed to create shipping dir: %v", err)
	}

	modules, err := gen.Modules()
	if err != nil {
		t.Fatalf("Modules failed: %v", err)
	}

	byName := make(map[string]bool, len(modules))
	for _, m := range modules {
		byName[m.Name] = m.Registered
	}

	if registered, ok := byName["billing"]; !ok || !registered {
		t.Errorf("expected billing to be registered, got %v (present=%v)", registered, ok)
	}
	if registered, ok := byName["shipping"]; !ok || registered {
		t.Errorf("expected shipping to be unregistered, got %v (present=%v)", registered, ok)
	}
}

func TestModulesNoRoot(t *testing.T) {
	gen, _ := newTestProject(t, testSettings)

	modules, err := gen.Modules()
	if err != nil {
		t.Fatalf("Modules failed: %v", err)
	}
	if len(modules) != 0 {
		t.Errorf("expected no modules, got %d", len(modules))
	}
}
