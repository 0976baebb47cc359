package repository

import (
	"strings"
	"testing"
)

func TestLikeOperatorByDialect(t *testing.T) {
	if got := likeOperatorByDialect("postgres"); got != "ILIKE" {
		t.Fatalf("postgres operator want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("sqlite"); got != "LIKE" {
		t.Fatalf("sqlite operator want LIKE got %s", got)
	}
	if got := likeOperatorByDialect(""); got != "LIKE" {
		t.Fatalf("default operator want LIKE got %s", got)
	}
}

func TestBuildSearchCondition(t *testing.T) {
	condition, argCount := buildSearchConditionByDialect("sqlite", []string{"title", "description", " "})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if !strings.Contains(condition, "title LIKE ?") {
		t.Fatalf("condition should contain title LIKE, got %s", condition)
	}
	if !strings.Contains(condition, "description LIKE ?") {
		t.Fatalf("condition should contain description LIKE, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%cake%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%cake%" {
			t.Fatalf("args[%d] want %%cake%% got %v", idx, arg)
		}
	}
}
