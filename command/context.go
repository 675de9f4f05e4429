package command

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"path/filepath"
	"strings"

	"github.com/m4gshm/gollections/c"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/enumfields/annotation"
	"github.com/m4gshm/enumfields/generator"
	"github.com/m4gshm/enumfields/logger"
	"github.com/m4gshm/enumfields/model/union"
	"github.com/m4gshm/enumfields/model/util"
	"github.com/m4gshm/enumfields/params"
	"github.com/m4gshm/enumfields/use"
)

type Context struct {
	Config   *params.Config
	FileSet  *token.FileSet
	Packages c.Range[*packages.Package]
	// Args is the command line written into the generated file header.
	Args []string
	Out  io.Writer

	model *union.Model
}

func (c *Context) Model() (*union.Model, error) {
	if m := c.model; m != nil {
		return m, nil
	}
	typ := *c.Config.Type
	if len(typ) == 0 {
		return nil, use.Err("no type arg")
	}
	named, _, filePath, file, err := util.FindTypePackageFile(typ, c.FileSet, c.Packages)
	if err != nil {
		return nil, err
	} else if named == nil {
		return nil, use.Err(fmt.Sprintf("type not found, %s", typ))
	}
	model, err := union.New(c.FileSet, named, filePath, file)
	if posErr := (*use.Error)(nil); errors.As(err, &posErr) {
		return nil, err
	} else if err != nil {
		return nil, use.PositionErr(c.FileSet.Position(named.Obj().Pos()), err, err.Error())
	}
	c.model = model
	return model, nil
}

// Accessors parses the union's annotations and plans its accessors.
func (c *Context) Accessors(config *params.GeneratorConfig) (*union.Model, []generator.Accessor, error) {
	model, err := c.Model()
	if err != nil {
		return nil, nil, err
	}
	specs := make([]annotation.FieldSpec, 0, len(model.Annotations))
	for _, a := range model.Annotations {
		spec, err := annotation.Parse(a.Payload)
		if err != nil {
			return nil, nil, c.annotationErr(a, err)
		}
		logger.Debugw("field annotation", "union", model.TypeName(), "spec", spec.String(), "modes", spec.Modes)
		specs = append(specs, spec)
	}
	naming, err := config.Naming()
	if err != nil {
		return nil, nil, err
	}
	accessors, err := generator.Synthesize(model.TypeName(), model.Variants, specs, generator.Options{
		Allowed:     config.AllowedModes(),
		Naming:      naming,
		Imports:     model.Imports,
		DotImported: model.DotImported,
	})
	if err != nil {
		return nil, nil, use.PositionErr(c.FileSet.Position(model.Typ.Obj().Pos()), err, err.Error())
	}
	return model, accessors, nil
}

func (c *Context) annotationErr(a union.Annotation, err error) error {
	var syntaxErr *annotation.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return use.PositionErr(c.FileSet.Position(a.Pos), err, err.Error())
	}
	return use.PositionErr(c.FileSet.Position(a.Pos+token.Pos(syntaxErr.Offset)), err, syntaxErr.Message())
}

// OutputFile returns the generated file path; by default it is placed next to the union's file.
func (c *Context) OutputFile(model *union.Model) (string, error) {
	if out := *c.Config.Output; len(out) > 0 {
		return filepath.Abs(out)
	}
	return filepath.Join(filepath.Dir(model.FilePath), strings.ToLower(model.TypeName())+params.DefaultFileSuffix), nil
}
