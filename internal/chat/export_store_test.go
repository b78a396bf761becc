package chat_test

import (
	"testing"
	"time"

	"timesheet-assistant/internal/chat"
	"timesheet-assistant/internal/model"
)

func TestExportStore(t *testing.T) {
	s := chat.NewExportStore(2, time.Minute)

	id := s.Put(model.Export{Filename: "a.csv", Data: []byte("x")})
	if id == "" {
		t.Fatal("expected an id")
	}
	got, ok := s.Get(id)
	if !ok || got.Filename != "a.csv" {
		t.Fatalf("Get(%q) = %+v, %v", id, got, ok)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("unknown ids must not resolve")
	}

	s.Put(model.Export{Filename: "b.csv"})
	s.Put(model.Export{Filename: "c.csv"})
	if _, ok := s.Get(id); ok {
		t.Error("the oldest export should be evicted past the size bound")
	}
}

func TestExportStore_Expiry(t *testing.T) {
	s := chat.NewExportStore(0, 20*time.Millisecond)
	id := s.Put(model.Export{Filename: "a.csv"})

	time.Sleep(60 * time.Millisecond)
	if _, ok := s.Get(id); ok {
		t.Error("expired exports must not resolve")
	}
}
