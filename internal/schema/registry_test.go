package schema_test

import (
	"testing"

	"disclot/internal/schema"
)

func TestColumnsAreUniqueAndOrdered(t *testing.T) {
	cols := schema.Columns()
	if len(cols) != schema.Count() {
		t.Fatalf("Columns length %d does not match Count %d", len(cols), schema.Count())
	}
	seen := make(map[string]struct{}, len(cols))
	for i, col := range cols {
		if col.Name == "" {
			t.Fatalf("column %d has empty name", i)
		}
		if _, dup := seen[col.Name]; dup {
			t.Fatalf("duplicate column name %q", col.Name)
		}
		seen[col.Name] = struct{}{}

		idx, ok := schema.Index(col.Name)
		if !ok || idx != i {
			t.Fatalf("Index(%q) = %d, %v; want %d, true", col.Name, idx, ok, i)
		}
	}
}

func TestRequiredColumnsAreMarkedRequired(t *testing.T) {
	required := schema.RequiredColumns()
	if len(required) == 0 {
		t.Fatal("expected required columns")
	}
	for _, col := range required {
		if !col.Required {
			t.Fatalf("RequiredColumns returned optional column %q", col.Name)
		}
	}
	for _, name := range []string{schema.ColTitle, schema.ColStartPrice, schema.ColQuantity, schema.ColDescription} {
		found := false
		for _, col := range required {
			if col.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %q to be required", name)
		}
	}
}

func TestNamesMatchesColumnOrder(t *testing.T) {
	names := schema.Names()
	cols := schema.Columns()
	if len(names) != len(cols) {
		t.Fatalf("Names length %d, Columns length %d", len(names), len(cols))
	}
	for i := range names {
		if names[i] != cols[i].Name {
			t.Fatalf("Names[%d] = %q, Columns[%d].Name = %q", i, names[i], i, cols[i].Name)
		}
	}
}

func TestLookupUnknownColumn(t *testing.T) {
	if _, ok := schema.Lookup("NoSuchColumn"); ok {
		t.Fatal("expected lookup miss for unknown column")
	}
}

func TestConditionDomainMembership(t *testing.T) {
	col, ok := schema.Lookup(schema.ColConditionID)
	if !ok {
		t.Fatalf("missing %q column", schema.ColConditionID)
	}
	if !col.InDomain("4000") {
		t.Fatal("expected 4000 to be an accepted condition ID")
	}
	if col.InDomain("9999") {
		t.Fatal("expected 9999 to be rejected")
	}
}

func TestFreeTextColumnsAcceptAnything(t *testing.T) {
	col, ok := schema.Lookup(schema.ColStudio)
	if !ok {
		t.Fatalf("missing %q column", schema.ColStudio)
	}
	if !col.InDomain("Any Studio At All") {
		t.Fatal("free-text column rejected a value")
	}
}
