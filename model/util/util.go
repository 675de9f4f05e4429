package util

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"github.com/m4gshm/gollections/c"
	"github.com/m4gshm/gollections/collection/mutable/ordered"
	"github.com/m4gshm/gollections/collection/mutable/ordered/set"
	"github.com/m4gshm/gollections/expr/use"
	"github.com/m4gshm/gollections/op"
	"github.com/m4gshm/gollections/slice"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/enumfields/logger"
)

const packageMode = packages.NeedSyntax | packages.NeedName | packages.NeedTypesInfo | packages.NeedTypes | packages.NeedModule | packages.NeedImports | packages.NeedForTest

func ExtractPackages(fileSet *token.FileSet, buildTags []string, fileName string) (*ordered.Set[*packages.Package], error) {
	if dir, err := GetDir(fileName); err != nil {
		return nil, err
	} else if pkgs, err := packages.Load(&packages.Config{
		Dir:        dir,
		Fset:       fileSet,
		Mode:       packageMode,
		BuildFlags: buildTagsArg(buildTags),
		Tests:      true,
		Logf:       func(format string, args ...any) { logger.Debugf("packagesLoad: "+format, args...) },
	}, "."); err != nil {
		return nil, err
	} else {
		return set.Of(pkgs...), nil
	}
}

func buildTagsArg(buildTags []string) []string {
	return []string{fmt.Sprintf("-tags=%s", strings.Join(buildTags, " "))}
}

func GetDir(fileName string) (string, error) {
	fileStat, err := os.Stat(fileName)
	isNoExists := errors.Is(err, os.ErrNotExist)
	if !isNoExists && err != nil {
		return "", err
	}
	return use.If(!isNoExists && fileStat.IsDir(), fileName).ElseGet(func() string { return filepath.Dir(fileName) }), nil
}

// FindTypePackageFile looks up a named type in the packages and returns it with its package and the declaring file.
func FindTypePackageFile(typeName string, fileSet *token.FileSet, pkgs c.Range[*packages.Package]) (*types.Named, *packages.Package, string, *ast.File, error) {
	for pkg := range pkgs.All {
		if lookup := pkg.Types.Scope().Lookup(typeName); lookup == nil {
			logger.Debugf("no type '%s' in package '%s'", typeName, pkg.Types.Name())
			continue
		} else if typeNamed, ok := lookup.Type().(*types.Named); !ok {
			return nil, nil, "", nil, fmt.Errorf("'%s' is not a named type", typeName)
		} else {
			logger.Debugf("look package '%s', syntax file count %d", pkg.Name, len(pkg.Syntax))
			filePath, typFile, err := FindTypeFile(typeNamed, fileSet, pkg.Syntax)
			return typeNamed, pkg, filePath, typFile, err
		}
	}
	return nil, nil, "", nil, nil
}

func FindTypeFile(typeNamed *types.Named, fileSet *token.FileSet, files []*ast.File) (string, *ast.File, error) {
	typeObj := typeNamed.Obj()
	typTokenFile := fileSet.File(typeObj.Pos())

	typFile, ok := slice.First(files, func(p *ast.File) bool {
		start := typTokenFile.Base()
		return p.FileStart == token.Pos(start) && p.FileEnd == token.Pos(start+typTokenFile.Size())
	})

	f, err := op.IfElseGetErr(ok, typFile, func() error { return fmt.Errorf("type's file not found: type %s", typeObj.Id()) })
	if err == nil {
		logger.Debugf("found type file (type [%s], file [%s])'", typeObj.Id(), typTokenFile.Name())
	}
	return typTokenFile.Name(), f, err
}

// FindTypeSpec returns the declaration of a type in a file.
func FindTypeSpec(file *ast.File, typeName string) (*ast.GenDecl, *ast.TypeSpec) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			if typeSpec, ok := spec.(*ast.TypeSpec); ok && typeSpec.Name.Name == typeName {
				return genDecl, typeSpec
			}
		}
	}
	return nil, nil
}

func GetPackageName(pkgPath string) string {
	j := len(pkgPath)
	i := j - 1
	for ; i >= 0; i-- {
		if pkgPath[i] == '/' {
			part := pkgPath[i+1 : j]
			if !isVersionElement(part) {
				return part
			}
			j = i
		}
	}
	return pkgPath[i+1 : j]
}

// isVersionElement reports whether s is a well-formed path version element:
// v2, v3, v10, etc, but not v0, v05, v1.
func isVersionElement(pkgName string) bool {
	if len(pkgName) < 2 || pkgName[0] != 'v' || pkgName[1] == '0' || pkgName[1] == '1' && len(pkgName) == 2 {
		return false
	}
	for i := 1; i < len(pkgName); i++ {
		if pkgName[i] < '0' || '9' < pkgName[i] {
			return false
		}
	}
	return true
}
