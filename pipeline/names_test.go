package pipeline

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/OlgaCeban/LightAutoML/dataset"
)

func TestMapPipelineNames(t *testing.T) {
	t.Parallel()

	in := []string{"price", "city", "dt__ts"}

	tests := []struct {
		name string
		out  string
		want string
	}{
		{"identity", "price", "price"},
		{"single prefix", "log__price", "price"},
		{"numbered prefix", "ohe__3__city", "city"},
		{"input containing separator", "lag__dt__ts", "dt__ts"},
		{"untraceable", "foo__bar", "foo__bar"},
		{"no separator", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPipelineNames(in, []string{tt.out})
			if got[0] != tt.want {
				t.Errorf("MapPipelineNames(%q) = %q, want %q", tt.out, got[0], tt.want)
			}
		})
	}
}

func TestMapPipelineNames_Order(t *testing.T) {
	t.Parallel()

	got := MapPipelineNames([]string{"a", "b"}, []string{"log__b", "a", "sq__a"})
	want := []string{"b", "a", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mapped[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestColumnPipeline_Transform(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(3, 2, []float64{
		1, 4,
		2, 5,
		3, 6,
	})
	roles := map[string]dataset.Role{"x": {ForceInput: true}, "y": {}}
	ds, err := dataset.FromDense([]string{"x", "y"}, roles, m)
	if err != nil {
		t.Fatalf("FromDense failed: %v", err)
	}

	p := &ColumnPipeline{Prefix: "sq", Fn: func(v float64) float64 { return v * v }}
	out, err := p.FitTransform(ds)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	features := out.Features()
	want := []string{"sq__x", "sq__y"}
	if len(features) != len(want) {
		t.Fatalf("features = %v, want %v", features, want)
	}
	for i := range want {
		if features[i] != want[i] {
			t.Errorf("features[%d] = %q, want %q", i, features[i], want[i])
		}
	}

	col, err := out.(dataset.Columnar).Column("sq__x")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if got := col.AtVec(2); math.Abs(got-9) > 1e-12 {
		t.Errorf("sq__x[2] = %v, want 9", got)
	}

	// Derived columns inherit the source role.
	if !out.Roles()["sq__x"].ForceInput {
		t.Error("derived column should inherit the source role")
	}

	// The derived names trace back to their sources.
	mapped := MapPipelineNames(ds.Features(), features)
	if mapped[0] != "x" || mapped[1] != "y" {
		t.Errorf("mapped = %v, want [x y]", mapped)
	}
}

func TestColumnPipeline_KeepOriginal(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(2, 1, []float64{1, 2})
	ds, err := dataset.FromDense([]string{"x"}, nil, m)
	if err != nil {
		t.Fatalf("FromDense failed: %v", err)
	}

	p := &ColumnPipeline{Prefix: "neg", Fn: func(v float64) float64 { return -v }, KeepOriginal: true}
	out, err := p.Transform(ds)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	features := out.Features()
	if len(features) != 2 || features[0] != "x" || features[1] != "neg__x" {
		t.Errorf("features = %v, want [x neg__x]", features)
	}
}
