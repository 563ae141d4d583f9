package schema

import (
	"errors"
	"testing"

	"github.com/moengage/p2ee"
	"github.com/moengage/p2ee/field"
)

func TestBuild(t *testing.T) {
	name := &field.StringField{}
	age := &field.IntField{}

	def, err := New("user").
		Field("name", name).
		Field("age", age).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if def.Name() != "user" {
		t.Errorf("expected name 'user', got %q", def.Name())
	}
	if !def.Flexible() {
		t.Error("expected schema to be flexible by default")
	}
	if def.Len() != 2 {
		t.Errorf("expected 2 fields, got %d", def.Len())
	}
	if def.Field("name") != name {
		t.Error("expected composed descriptor to be the declared one")
	}
	if name.Name() != "name" {
		t.Errorf("expected descriptor to be bound to 'name', got %q", name.Name())
	}
	if age.Name() != "age" {
		t.Errorf("expected descriptor to be bound to 'age', got %q", age.Name())
	}

	want := []string{"name", "age"}
	got := def.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected field %d to be %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuildStrict(t *testing.T) {
	def, err := New("event").Strict().Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Flexible() {
		t.Error("expected strict schema")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{"empty field name", New("t").Field("", &field.StringField{})},
		{"nil descriptor", New("t").Field("x", nil)},
		{"duplicate field", New("t").Field("x", &field.StringField{}).Field("x", &field.IntField{})},
		{"unnamed type", New("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Build()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, p2ee.ErrInvalidDefinition) {
				t.Errorf("expected definition error, got %v", err)
			}
		})
	}
}

func TestInheritanceOwnFieldWins(t *testing.T) {
	parentX := &field.StringField{}
	parent, err := New("parent").
		Field("x", parentX).
		Field("y", &field.IntField{}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	childX := &field.IntField{}
	child, err := New("child").
		Field("x", childX).
		Extends(parent).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if child.Field("x") != childX {
		t.Error("child's own descriptor must win over the inherited one")
	}
	if child.Field("y") != parent.Field("y") {
		t.Error("inherited descriptor must be shared with the parent")
	}
	if child.Len() != 2 {
		t.Errorf("expected 2 fields, got %d", child.Len())
	}
}

func TestInheritanceWithoutOwnFields(t *testing.T) {
	parent, err := New("parent").
		Field("a", &field.StringField{}).
		Field("b", &field.BoolField{}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child, err := New("child").Extends(parent).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if child.Len() != parent.Len() {
		t.Fatalf("expected child to have exactly the parent's field set")
	}
	for _, name := range parent.FieldNames() {
		if child.Field(name) != parent.Field(name) {
			t.Errorf("expected field %q to be inherited as-is", name)
		}
	}
}

func TestFlexibilityFlagComposition(t *testing.T) {
	strictParent, _ := New("strict_parent").Strict().Build()
	flexParent, _ := New("flex_parent").Build()

	tests := []struct {
		name     string
		b        *Builder
		flexible bool
	}{
		{"strict parent propagates", New("c1").Extends(strictParent), false},
		{"flexible parent, strict child", New("c2").Strict().Extends(flexParent), false},
		{"both flexible", New("c3").Extends(flexParent), true},
		{"no parent", New("c4"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := tt.b.Build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if def.Flexible() != tt.flexible {
				t.Errorf("expected flexible=%v, got %v", tt.flexible, def.Flexible())
			}
		})
	}
}

func TestSharedDescriptorKeepsFirstName(t *testing.T) {
	shared := &field.StringField{}

	if _, err := New("first").Field("alpha", shared).Build(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := New("second").Field("beta", shared).Build(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if shared.Name() != "alpha" {
		t.Errorf("expected shared descriptor to keep its first name, got %q", shared.Name())
	}
}

func TestEveryComposedFieldIsNamed(t *testing.T) {
	def, err := New("t").
		Field("a", &field.StringField{}).
		Field("b", &field.IntField{}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range def.FieldNames() {
		if def.Field(name).Name() == "" {
			t.Errorf("field %q has no bound name after composition", name)
		}
	}
}
