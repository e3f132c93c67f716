package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/store"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		in      store.WishInput
		wantErr bool
	}{
		{"valid", store.WishInput{Name: "Mia", Message: "hi", Theme: "birthday"}, false},
		{"valid pin", store.WishInput{Name: "Mia", Message: "hi", Theme: "congrats", Pin: "12ab"}, false},
		{"missing name", store.WishInput{Message: "hi", Theme: "birthday"}, true},
		{"missing message", store.WishInput{Name: "Mia", Theme: "birthday"}, true},
		{"pin too long", store.WishInput{Name: "Mia", Message: "hi", Theme: "birthday", Pin: "12345"}, true},
		{"unknown theme", store.WishInput{Name: "Mia", Message: "hi", Theme: "Birthday"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	err := validateInput(store.WishInput{Name: "Mia", Message: "hi", Theme: "nope"})
	if !errors.Is(err, config.ErrUnknownTheme) {
		t.Errorf("unknown theme error = %v, want ErrUnknownTheme", err)
	}
}

func TestRunCreateListDelete(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "wishes.db")

	var out bytes.Buffer
	err := run(ctx, []string{"create", "-db", db, "-copy=false", "-base", "https://w.example",
		"-name", "Mia", "-message", "Happy birthday!", "-pin", "4821"}, &out)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "https://w.example/wish/") {
		t.Fatalf("create output = %q", out.String())
	}
	id := strings.TrimPrefix(lines[0], "created ")

	out.Reset()
	if err := run(ctx, []string{"list", "-db", db}, &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), id) || !strings.Contains(out.String(), "1 wishes, 1 locked") {
		t.Errorf("list output = %q", out.String())
	}

	out.Reset()
	if err := run(ctx, []string{"link", "-db", db, "-base", "https://w.example/", id}, &out); err != nil {
		t.Fatalf("link: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "https://w.example/wish/"+id {
		t.Errorf("link = %q", got)
	}

	out.Reset()
	if err := run(ctx, []string{"delete", "-db", db, id}, &out); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = run(ctx, []string{"delete", "-db", db, id}, &out)
	if !errors.Is(err, store.ErrWishNotFound) {
		t.Errorf("second delete err = %v, want ErrWishNotFound", err)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	if err := run(ctx, nil, &out); err == nil {
		t.Error("missing command should fail")
	}
	if err := run(ctx, []string{"frobnicate"}, &out); err == nil {
		t.Error("unknown command should fail")
	}
	if err := run(ctx, []string{"delete", "-db", filepath.Join(t.TempDir(), "x.db")}, &out); err == nil {
		t.Error("delete without id should fail")
	}
}
