// Package schema holds the declarative attribute records — fields, indexes,
// constraints, and partial field changes — shared across every operation in
// the migration IR (package ast).
package schema

import (
	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/validate"
)

// TypeKind is the closed tagged set of field types a migration can declare.
// VarChar and Decimal carry extra parameters (Length, or Precision/Scale).
type TypeKind string

const (
	Serial          TypeKind = "serial"
	BigSerial       TypeKind = "bigserial"
	Integer         TypeKind = "integer"
	BigInt          TypeKind = "bigint"
	SmallInt        TypeKind = "smallint"
	Text            TypeKind = "text"
	VarChar         TypeKind = "varchar"
	Boolean         TypeKind = "boolean"
	Timestamp       TypeKind = "timestamp"
	TimestampTz     TypeKind = "timestamptz"
	Date            TypeKind = "date"
	Time            TypeKind = "time"
	Uuid            TypeKind = "uuid"
	Json            TypeKind = "json"
	JsonB           TypeKind = "jsonb"
	Binary          TypeKind = "binary"
	Real            TypeKind = "real"
	DoublePrecision TypeKind = "double_precision"
	Decimal         TypeKind = "decimal"
)

// FieldType is a fully-parameterized instance of the closed TypeKind set.
// Length is meaningful only for VarChar; Precision/Scale only for Decimal.
type FieldType struct {
	Kind      TypeKind
	Length    uint32 // VarChar(n)
	Precision uint8  // Decimal{precision, scale}
	Scale     uint8
}

// NewVarChar builds a VarChar(n) field type.
func NewVarChar(n uint32) FieldType { return FieldType{Kind: VarChar, Length: n} }

// NewDecimal builds a Decimal{precision, scale} field type.
func NewDecimal(precision, scale uint8) FieldType {
	return FieldType{Kind: Decimal, Precision: precision, Scale: scale}
}

// Simple builds a field type with no parameters (every kind but VarChar/Decimal).
func Simple(kind TypeKind) FieldType { return FieldType{Kind: kind} }

// IsIdentity reports whether this type implies integer identity (auto-increment).
func (t FieldType) IsIdentity() bool {
	return t.Kind == Serial || t.Kind == BigSerial
}

// ForeignKeyRef describes the table/column a field's inline REFERENCES targets.
type ForeignKeyRef struct {
	Table    string
	Column   string
	OnDelete ReferentialAction
	OnUpdate ReferentialAction
}

// ReferentialAction mirrors SQL's ON DELETE/ON UPDATE behaviors.
type ReferentialAction string

const (
	NoAction   ReferentialAction = "NO ACTION"
	Restrict   ReferentialAction = "RESTRICT"
	Cascade    ReferentialAction = "CASCADE"
	SetNull    ReferentialAction = "SET NULL"
	SetDefault ReferentialAction = "SET DEFAULT"
)

// Field is a complete column declaration used by CreateTable/AddField.
//
// Invariant: a Serial/BigSerial field implies integer identity and implies
// NOT NULL — Normalize enforces this before the field reaches SQL generation.
type Field struct {
	Name       string
	Type       FieldType
	Nullable   bool
	Default    string // opaque raw SQL fragment, never parsed (see design notes)
	PrimaryKey bool
	Unique     bool
	ForeignKey *ForeignKeyRef
}

// Normalize returns a copy of f with the Serial/BigSerial-implies-not-null
// invariant applied.
func (f Field) Normalize() Field {
	if f.Type.IsIdentity() {
		f.Nullable = false
	}
	return f
}

// Validate checks that the field is well-formed on its own terms (it does
// not check cross-field invariants like duplicate names within a table;
// that is the caller's — typically ast.CreateTable's — responsibility).
func (f Field) Validate() error {
	if f.Name == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "field name is required")
	}
	if err := validate.ColumnName(f.Name); err != nil {
		return err
	}
	if f.Type.Kind == "" {
		return alerr.New(alerr.ErrSchemaInvalid, "field type is required").WithColumn(f.Name)
	}
	if f.Type.Kind == VarChar && f.Type.Length == 0 {
		return alerr.New(alerr.ErrSchemaInvalid, "varchar requires a positive length").WithColumn(f.Name)
	}
	if f.Type.Kind == Decimal && f.Type.Precision == 0 {
		return alerr.New(alerr.ErrSchemaInvalid, "decimal requires a positive precision").WithColumn(f.Name)
	}
	return nil
}

// FieldChanges is a partial update record for AlterField: every field is
// optional, and at least one must be set to be a valid forward or reverse
// spec.
type FieldChanges struct {
	NewType       *FieldType
	SetNullable   *bool
	SetDefault    *string // nil = no change; pointer to "" clears the default
	SetUnique     *bool
	SetPrimaryKey *bool
}

// IsEmpty reports whether no field has been set — an invalid state per spec.
func (c FieldChanges) IsEmpty() bool {
	return c.NewType == nil && c.SetNullable == nil && c.SetDefault == nil &&
		c.SetUnique == nil && c.SetPrimaryKey == nil
}

// Validate enforces the "at least one field set" invariant.
func (c FieldChanges) Validate() error {
	if c.IsEmpty() {
		return alerr.New(alerr.ErrFieldChangesEmpty, "field changes must set at least one field")
	}
	return nil
}
