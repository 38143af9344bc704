package store

import (
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/winterarc/winterarc/ent/schema"
)

const (
	plansTable     = "plans"
	setEventsTable = "set_events"
)

var tables = []*schema.Table{
	tableFor(plansTable, entschema.Plan{}),
	tableFor(setEventsTable, entschema.SetEvent{}),
}

// tableFor derives a migration table from an ent schema definition. Mixin
// fields come first. Schemas without an "id" field get an auto-increment
// integer key.
func tableFor(name string, s ent.Interface) *schema.Table {
	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	t := schema.NewTable(name)
	primary := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	for _, f := range fields {
		if d := f.Descriptor(); d.Name == "id" {
			primary = column(d)
		}
	}
	t.AddPrimary(primary)

	for _, f := range fields {
		if d := f.Descriptor(); d.Name != "id" {
			t.AddColumn(column(d))
		}
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		t.AddIndex(name+"_"+strings.Join(d.Fields, "_"), d.Unique, d.Fields)
	}
	return t
}

func column(d *field.Descriptor) *schema.Column {
	return &schema.Column{
		Name:     d.Name,
		Type:     d.Info.Type,
		Nullable: d.Optional,
		Unique:   d.Unique,
		Comment:  d.Comment,
	}
}
