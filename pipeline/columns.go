package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/OlgaCeban/LightAutoML/dataset"
)

// ColumnPipeline derives one engineered column per input column by applying
// an elementwise transform. Derived columns are named Prefix + "__" + source
// name, so MapPipelineNames can trace them back. With KeepOriginal set the
// source columns stay in the output ahead of the derived ones.
type ColumnPipeline struct {
	Prefix       string
	Fn           func(float64) float64
	KeepOriginal bool
}

// FitTransform learns nothing (the transform is stateless) and applies it to
// the train dataset.
func (p *ColumnPipeline) FitTransform(train dataset.Dataset) (dataset.Dataset, error) {
	return p.Transform(train)
}

// Transform applies the elementwise transform to every column.
func (p *ColumnPipeline) Transform(ds dataset.Dataset) (dataset.Dataset, error) {
	cr, ok := ds.(dataset.Columnar)
	if !ok {
		return nil, fmt.Errorf("column pipeline: dataset %T does not expose columns", ds)
	}

	in := ds.Features()
	roles := ds.Roles()

	names := make([]string, 0, 2*len(in))
	cols := make([]*mat.VecDense, 0, 2*len(in))
	outRoles := make(map[string]dataset.Role, 2*len(in))

	for _, name := range in {
		src, err := cr.Column(name)
		if err != nil {
			return nil, err
		}

		if p.KeepOriginal {
			names = append(names, name)
			cols = append(cols, mat.VecDenseCopyOf(src))
			outRoles[name] = roles[name]
		}

		derived := mat.NewVecDense(src.Len(), nil)
		for i := 0; i < src.Len(); i++ {
			derived.SetVec(i, p.Fn(src.AtVec(i)))
		}
		outName := p.Prefix + NameSeparator + name
		names = append(names, outName)
		cols = append(cols, derived)
		outRoles[outName] = roles[name]
	}

	out, err := dataset.NewArrayDataset(names, outRoles, cols)
	if err != nil {
		return nil, fmt.Errorf("column pipeline: %w", err)
	}
	return out, nil
}
