package broadcast

import (
	"testing"

	"github.com/olahol/melody"
)

func TestRegisterDeregister(t *testing.T) {
	service := NewMelodyService(melody.New())

	first := &melody.Session{}
	second := &melody.Session{}

	service.Register("session-1", first)
	service.Register("session-1", second)
	service.Register("session-2", first)

	if got := service.Members("session-1"); got != 2 {
		t.Fatalf("Members(session-1) = %d, want 2", got)
	}
	if got := service.Members("session-2"); got != 1 {
		t.Fatalf("Members(session-2) = %d, want 1", got)
	}

	service.Deregister("session-1", first)
	if got := service.Members("session-1"); got != 1 {
		t.Fatalf("Members(session-1) after deregister = %d, want 1", got)
	}

	service.Deregister("session-1", second)
	if got := service.Members("session-1"); got != 0 {
		t.Fatalf("Members(session-1) after emptying = %d, want 0", got)
	}

	// deregister trên group không tồn tại không panic
	service.Deregister("missing", first)
}

func TestPublishEmptyGroup(t *testing.T) {
	service := NewMelodyService(melody.New())

	if err := service.Publish("missing", []byte("payload")); err != nil {
		t.Fatalf("Publish to empty group err: %v", err)
	}
}

func TestPublishWithoutMelody(t *testing.T) {
	service := NewMelodyService(nil)

	if err := service.Publish("session-1", []byte("payload")); err == nil {
		t.Fatal("expected error when melody instance is nil")
	}
}
