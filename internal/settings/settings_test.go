package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forgebyte/forge/internal/errs"
)

const testDocument = `# settings
LOCAL_APPS = [
    'modules.billing.apps.BillingConfig',
]
`

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.py")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.py"))
	if err == nil {
		t.Fatal("expected Load to fail for missing file")
	}
	if !errs.IsCode(err, errs.CodeIOFailure) {
		t.Errorf("expected IO_FAILURE, got %v", err)
	}
}

func TestAnchorIndex(t *testing.T) {
	doc, err := Load(writeDocument(t, testDocument))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	idx, err := doc.AnchorIndex("LOCAL_APPS = [")
	if err != nil {
		t.Fatalf("AnchorIndex failed: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected anchor at line 1, got %d", idx)
	}
}

func TestAnchorIndexExactMatch(t *testing.T) {
	// The anchor must match the whole line exactly; an indented or
	// extended variant does not count.
	doc, err := Load(writeDocument(t, "  LOCAL_APPS = [\nLOCAL_APPS = [x]\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err = doc.AnchorIndex("LOCAL_APPS = [")
	if err == nil {
		t.Fatal("expected AnchorIndex to fail")
	}
	if !errs.IsCode(err, errs.CodeAnchorNotFound) {
		t.Errorf("expected ANCHOR_NOT_FOUND, got %v", err)
	}
}

func TestMentions(t *testing.T) {
	doc, err := Load(writeDocument(t, testDocument))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !doc.Mentions("billing") {
		t.Error("expected document to mention billing")
	}
	if doc.Mentions("shipping") {
		t.Error("did not expect document to mention shipping")
	}
	// Substring heuristic: "bill" is contained in "billing".
	if !doc.Mentions("bill") {
		t.Error("expected substring match for bill")
	}
}

func TestInsertAfterAndSave(t *testing.T) {
	path := writeDocument(t, testDocument)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	idx, err := doc.AnchorIndex("LOCAL_APPS = [")
	if err != nil {
		t.Fatalf("AnchorIndex failed: %v", err)
	}

	doc.InsertAfter(idx, "    'modules.shipping.apps.ShippingConfig',")
	if err := doc.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved document: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if lines[2] != "    'modules.shipping.apps.ShippingConfig'," {
		t.Errorf("expected inserted entry at line 2, got %q", lines[2])
	}
	if lines[3] != "    'modules.billing.apps.BillingConfig'," {
		t.Errorf("expected original entry pushed to line 3, got %q", lines[3])
	}

	// Save rewrites the document in full, preserving the trailing newline.
	if !strings.HasSuffix(string(data), "]\n") {
		t.Errorf("unexpected document tail: %q", string(data))
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	doc, err := Load(writeDocument(t, testDocument))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	lines := doc.Lines()
	lines[0] = "mutated"

	if doc.Lines()[0] == "mutated" {
		t.Error("Lines must return a copy")
	}
}
