package validation

import (
	"testing"

	"todo_api/internal/domain"
)

func TestCheckAuthName(t *testing.T) {
	a := domain.Auth{Name: "", Email: "a@x.com", Password1: "p", Password2: "p"}
	errs := Check(&a)
	if len(errs) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(errs))
	}
	if errs[0].Field != "Name" {
		t.Fatalf("expected failure on Name, got %q", errs[0].Field)
	}

	a.Name = "Ana"
	if errs := Check(&a); errs != nil {
		t.Fatalf("expected no failures, got %v", errs)
	}
}

func TestCheckTodoTitle(t *testing.T) {
	in := domain.CreateUpdateTodo{Title: "", Content: "x"}
	errs := Check(&in)
	if len(errs) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(errs))
	}
	if errs[0].Field != "Title" {
		t.Fatalf("expected failure on Title, got %q", errs[0].Field)
	}

	in.Title = "Buy milk"
	if errs := Check(&in); errs != nil {
		t.Fatalf("expected no failures, got %v", errs)
	}
}

func TestCheckContentUnconstrained(t *testing.T) {
	// content may be empty; only the title carries a rule
	in := domain.CreateUpdateTodo{Title: "t", Content: ""}
	if errs := Check(&in); errs != nil {
		t.Fatalf("expected no failures, got %v", errs)
	}
}
