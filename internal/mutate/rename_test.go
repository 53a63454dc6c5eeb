package mutate

import (
	"strings"
	"testing"

	"projectpad/internal/model"
)

func TestRename_TruncatesAndReportsExcess(t *testing.T) {
	tr := []model.Node{{ID: "a", Title: "old"}}
	long := strings.Repeat("x", 50)

	out, res := Rename(tr, "a", long)
	if !res.Changed {
		t.Fatalf("expected change")
	}
	if got := len([]rune(out[0].Title)); got != model.MaxTitleLen {
		t.Fatalf("expected stored title of %d runes, got %d", model.MaxTitleLen, got)
	}
	if res.Excess != 14 {
		t.Fatalf("expected excess 14, got %d", res.Excess)
	}
}

func TestRename_TrimsAndDefaultsEmpty(t *testing.T) {
	tr := []model.Node{{ID: "a", Title: "old"}}

	out, res := Rename(tr, "a", "   ")
	if !res.Changed {
		t.Fatalf("expected change")
	}
	if out[0].Title != model.UnnamedTitle {
		t.Fatalf("expected sentinel title, got %q", out[0].Title)
	}
	if res.Excess != 0 {
		t.Fatalf("expected no excess, got %d", res.Excess)
	}

	out, res = Rename(out, "a", "  padded  ")
	if out[0].Title != "padded" {
		t.Fatalf("expected trimmed title, got %q", out[0].Title)
	}
	if !res.Changed {
		t.Fatalf("expected change")
	}
}

func TestRename_NoOpOnSameTitle(t *testing.T) {
	tr := []model.Node{{ID: "a", Title: "same"}}
	_, res := Rename(tr, "a", "same")
	if res.Changed {
		t.Fatalf("expected no change for identical title")
	}
}

func TestRename_MissingID(t *testing.T) {
	tr := []model.Node{{ID: "a", Title: "x"}}
	out, res := Rename(tr, "zz", "new")
	if res.Changed {
		t.Fatalf("expected no change")
	}
	if out[0].Title != "x" {
		t.Fatalf("tree modified: %+v", out)
	}
}

func TestRename_ExcessCountsRunesNotBytes(t *testing.T) {
	tr := []model.Node{{ID: "a"}}
	title := strings.Repeat("ü", model.MaxTitleLen+3)
	out, res := Rename(tr, "a", title)
	if res.Excess != 3 {
		t.Fatalf("expected excess 3, got %d", res.Excess)
	}
	if got := len([]rune(out[0].Title)); got != model.MaxTitleLen {
		t.Fatalf("expected %d runes stored, got %d", model.MaxTitleLen, got)
	}
}
