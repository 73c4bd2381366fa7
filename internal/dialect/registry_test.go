package dialect

import (
	"errors"
	"reflect"
	"testing"

	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
)

// stubDialect is a no-op parser/serializer pair for registry tests.
type stubDialect struct {
	format canonical.Format
}

func (d stubDialect) Format() canonical.Format { return d.format }

func (d stubDialect) Parse(raw string, meta SourceMeta) (*canonical.Package, error) {
	return &canonical.Package{ID: meta.ID, Format: d.format}, nil
}

func (d stubDialect) Serialize(pkg *canonical.Package, opts Options) (*Result, error) {
	var w Warnings
	return Finish("", d.format, &w, nil, opts), nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	stub := stubDialect{format: canonical.FormatCursor}

	if err := r.Register(stub, stub); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	p, err := r.Parser(canonical.FormatCursor)
	if err != nil {
		t.Fatalf("Parser() error = %v", err)
	}
	if p.Format() != canonical.FormatCursor {
		t.Errorf("Parser().Format() = %v, want cursor", p.Format())
	}

	s, err := r.Serializer(canonical.FormatCursor)
	if err != nil {
		t.Fatalf("Serializer() error = %v", err)
	}
	if s.Format() != canonical.FormatCursor {
		t.Errorf("Serializer().Format() = %v, want cursor", s.Format())
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	stub := stubDialect{format: canonical.FormatKiro}

	if err := r.Register(stub, stub); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	err := r.Register(stub, stub)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("second Register() error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegistry_NotRegistered(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Parser(canonical.FormatDroid); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Parser() error = %v, want ErrNotRegistered", err)
	}
	if _, err := r.Serializer(canonical.FormatDroid); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Serializer() error = %v, want ErrNotRegistered", err)
	}
}

func TestRegistry_RejectsCanonicalTag(t *testing.T) {
	r := NewRegistry()
	stub := stubDialect{format: canonical.FormatCanonical}

	if err := r.Register(stub, stub); err == nil {
		t.Error("Register() accepted the canonical storage tag")
	}
}

func TestRegistry_RejectsMismatchedPair(t *testing.T) {
	r := NewRegistry()
	err := r.Register(stubDialect{format: canonical.FormatClaude}, stubDialect{format: canonical.FormatCursor})
	if err == nil {
		t.Error("Register() accepted a parser/serializer format mismatch")
	}
}

func TestRegistry_FormatsOrder(t *testing.T) {
	r := NewRegistry()
	// Register out of display order; Formats() must still return canonical
	// display order.
	for _, f := range []canonical.Format{canonical.FormatGeneric, canonical.FormatClaude, canonical.FormatKiro} {
		stub := stubDialect{format: f}
		if err := r.Register(stub, stub); err != nil {
			t.Fatalf("Register(%s) error = %v", f, err)
		}
	}

	want := []canonical.Format{canonical.FormatClaude, canonical.FormatKiro, canonical.FormatGeneric}
	if got := r.Formats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestFinish(t *testing.T) {
	var w Warnings
	w.SkippedSection(canonical.SectionHook, canonical.FormatCursor)

	vr := &validate.Result{}
	vr.AddError("description", "description is required", nil)
	vr.AddWarning("globs", "globs are recommended", nil)

	res := Finish("body", canonical.FormatCursor, &w, vr, Options{})
	if res.Content != "body" || res.Format != canonical.FormatCursor {
		t.Errorf("Finish() content/format = %q/%v", res.Content, res.Format)
	}
	if !res.LossyConversion {
		t.Error("skipped section should mark the conversion lossy")
	}
	if len(res.ValidationErrors) != 1 {
		t.Errorf("ValidationErrors = %v, want the single error", res.ValidationErrors)
	}
	// One lossy warning (-10) and one validation error (-5).
	if res.QualityScore != 85 {
		t.Errorf("QualityScore = %d, want 85", res.QualityScore)
	}
}

func TestFinish_Strict(t *testing.T) {
	var w Warnings

	vr := &validate.Result{}
	vr.AddWarning("description", "description is recommended", nil)

	res := Finish("body", canonical.FormatDroid, &w, vr, Options{Strict: true})
	if len(res.ValidationErrors) != 1 {
		t.Errorf("strict mode should escalate validator warnings, got %v", res.ValidationErrors)
	}

	res = Finish("body", canonical.FormatDroid, &w, vr, Options{})
	if len(res.ValidationErrors) != 0 {
		t.Errorf("non-strict mode leaked validator warnings: %v", res.ValidationErrors)
	}
}

func TestFinish_Clean(t *testing.T) {
	var w Warnings
	res := Finish("body", canonical.FormatClaude, &w, nil, Options{})
	if res.LossyConversion {
		t.Error("clean conversion flagged lossy")
	}
	if res.QualityScore != 100 {
		t.Errorf("QualityScore = %d, want 100", res.QualityScore)
	}
	if len(res.Warnings) != 0 || len(res.ValidationErrors) != 0 {
		t.Errorf("clean conversion carries issues: %+v", res)
	}
}
