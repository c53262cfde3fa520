package domain_test

import (
	"testing"
	"time"

	"go.trai.ch/remake/internal/core/domain"
)

func TestUpToDate(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	older := base.Add(-time.Hour)
	newer := base.Add(time.Hour)

	tests := []struct {
		name   string
		target domain.Node
		deps   []domain.Node
		want   bool
	}{
		{
			name:   "target without timestamp is never current",
			target: &fakeNode{id: "app"},
			deps:   []domain.Node{&fakeNode{id: "main.o", ts: older, ok: true}},
			want:   false,
		},
		{
			name:   "all dependencies strictly older",
			target: &fakeNode{id: "app", ts: base, ok: true},
			deps: []domain.Node{
				&fakeNode{id: "a.o", ts: older, ok: true},
				&fakeNode{id: "b.o", ts: older.Add(time.Minute), ok: true},
			},
			want: true,
		},
		{
			name:   "dependency newer than target",
			target: &fakeNode{id: "app", ts: base, ok: true},
			deps:   []domain.Node{&fakeNode{id: "main.o", ts: newer, ok: true}},
			want:   false,
		},
		{
			name:   "dependency with equal timestamp",
			target: &fakeNode{id: "app", ts: base, ok: true},
			deps:   []domain.Node{&fakeNode{id: "main.o", ts: base, ok: true}},
			want:   false,
		},
		{
			name:   "dependency without timestamp counts as older",
			target: &fakeNode{id: "app", ts: base, ok: true},
			deps: []domain.Node{
				&fakeNode{id: "phony"},
				&fakeNode{id: "main.o", ts: older, ok: true},
			},
			want: true,
		},
		{
			name:   "no dependencies",
			target: &fakeNode{id: "app", ts: base, ok: true},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.UpToDate(tt.target, tt.deps); got != tt.want {
				t.Errorf("UpToDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModificationID(t *testing.T) {
	if got := domain.ModificationID("config.ini", "debug"); got != "config.ini_debug" {
		t.Errorf("unexpected modification id: %s", got)
	}
}
