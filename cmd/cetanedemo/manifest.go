package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cetane-dev/cetane/internal/ast"
	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/registry"
	"github.com/cetane-dev/cetane/internal/schema"
	"github.com/cetane-dev/cetane/internal/strutil"
)

// manifestFile is the on-disk YAML shape cetanedemo reads migrations from —
// a static stand-in for the registration code a library consumer would
// otherwise write directly against pkg/cetane.
type manifestFile struct {
	Migrations []manifestMigration `yaml:"migrations"`
}

type manifestMigration struct {
	Name       string               `yaml:"name"`
	DependsOn  []string             `yaml:"depends_on"`
	Atomic     *bool                `yaml:"atomic"`
	Operations []manifestOperation  `yaml:"operations"`
}

// manifestOperation is a tagged union over every field this demo's manifest
// format can populate; only the fields matching Type are meaningful.
//
// TODO: add_constraint/remove_constraint/alter_field manifest entries —
// the public library surface already supports them, the YAML shape just
// hasn't been designed yet.
type manifestOperation struct {
	Type string `yaml:"type"`

	Table string          `yaml:"table"`
	Name  string          `yaml:"name"` // field/index name, depending on Type
	From  string          `yaml:"from"`
	To    string          `yaml:"to"`

	Fields []manifestField `yaml:"fields"`
	Field  *manifestField  `yaml:"field"`

	Index *manifestIndex `yaml:"index"`

	SQL      string            `yaml:"sql"`
	Portable map[string]string `yaml:"portable"`
}

type manifestField struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Length     uint32 `yaml:"length"`
	Precision  uint8  `yaml:"precision"`
	Scale      uint8  `yaml:"scale"`
	Nullable   bool   `yaml:"nullable"`
	Default    string `yaml:"default"`
	PrimaryKey bool   `yaml:"primary_key"`
	Unique     bool   `yaml:"unique"`
}

type manifestIndex struct {
	Name    string             `yaml:"name"`
	Columns []manifestIndexCol `yaml:"columns"`
	Unique  bool               `yaml:"unique"`
	Filter  string             `yaml:"filter"`
}

type manifestIndexCol struct {
	Name      string `yaml:"name"`
	Direction string `yaml:"direction"`
}

func loadManifest(path string) (*registry.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	reg := registry.New()
	for _, mm := range file.Migrations {
		ops := make([]ast.Operation, 0, len(mm.Operations))
		for i, mo := range mm.Operations {
			op, err := buildOperation(mo)
			if err != nil {
				return nil, fmt.Errorf("migration %s operation %d: %w", mm.Name, i, err)
			}
			ops = append(ops, op)
		}

		m := registry.NewMigration(mm.Name, ops...)
		if len(mm.DependsOn) > 0 {
			m.DependsOnNames(mm.DependsOn...)
		}
		if mm.Atomic != nil && !*mm.Atomic {
			m.NonAtomic()
		}
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func buildOperation(mo manifestOperation) (ast.Operation, error) {
	switch mo.Type {
	case "create_table":
		fields, err := buildFields(mo.Fields)
		if err != nil {
			return nil, err
		}
		return &ast.CreateTable{TableName: mo.Table, Fields: fields}, nil

	case "drop_table":
		return &ast.DropTable{TableName: mo.Table}, nil

	case "rename_table":
		return &ast.RenameTable{From: mo.From, To: mo.To}, nil

	case "add_field":
		if mo.Field == nil {
			return nil, fmt.Errorf("add_field requires a field definition")
		}
		f, err := buildField(*mo.Field)
		if err != nil {
			return nil, err
		}
		return &ast.AddField{TableName: mo.Table, Field: f}, nil

	case "remove_field":
		return &ast.RemoveField{TableName: mo.Table, FieldName: mo.Name}, nil

	case "rename_field":
		return &ast.RenameField{TableName: mo.Table, From: mo.From, To: mo.To}, nil

	case "add_index":
		if mo.Index == nil {
			return nil, fmt.Errorf("add_index requires an index definition")
		}
		idx, err := buildIndex(mo.Table, *mo.Index)
		if err != nil {
			return nil, err
		}
		return &ast.AddIndex{TableName: mo.Table, Index: idx}, nil

	case "remove_index":
		return &ast.RemoveIndex{TableName: mo.Table, IndexName: mo.Name}, nil

	case "run_sql":
		op := &ast.RunSql{SQL: mo.SQL}
		if len(mo.Portable) > 0 {
			op.Portable = make(map[dialect.Name]string, len(mo.Portable))
			for name, sql := range mo.Portable {
				op.Portable[dialect.Name(name)] = sql
			}
		}
		return op, nil

	default:
		return nil, fmt.Errorf("unknown operation type %q", mo.Type)
	}
}

func buildFields(in []manifestField) ([]schema.Field, error) {
	out := make([]schema.Field, 0, len(in))
	for _, mf := range in {
		f, err := buildField(mf)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func buildField(mf manifestField) (schema.Field, error) {
	var ft schema.FieldType
	switch schema.TypeKind(mf.Type) {
	case schema.VarChar:
		ft = schema.NewVarChar(mf.Length)
	case schema.Decimal:
		ft = schema.NewDecimal(mf.Precision, mf.Scale)
	case "":
		return schema.Field{}, fmt.Errorf("field %q is missing a type", mf.Name)
	default:
		ft = schema.Simple(schema.TypeKind(mf.Type))
	}

	return schema.Field{
		Name:       mf.Name,
		Type:       ft,
		Nullable:   mf.Nullable,
		Default:    mf.Default,
		PrimaryKey: mf.PrimaryKey,
		Unique:     mf.Unique,
	}, nil
}

func buildIndex(table string, mi manifestIndex) (schema.Index, error) {
	cols := make([]schema.IndexColumn, 0, len(mi.Columns))
	colNames := make([]string, 0, len(mi.Columns))
	for _, c := range mi.Columns {
		dir := schema.Asc
		if schema.SortDirection(c.Direction) == schema.Desc {
			dir = schema.Desc
		}
		cols = append(cols, schema.IndexColumn{Name: c.Name, Direction: dir})
		colNames = append(colNames, c.Name)
	}

	name := mi.Name
	if name == "" {
		name = strutil.IndexName(table, colNames...)
	}

	return schema.Index{
		Name:    name,
		Table:   table,
		Columns: cols,
		Unique:  mi.Unique,
		Filter:  mi.Filter,
	}, nil
}
