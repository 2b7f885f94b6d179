package bus

import "testing"

func TestInvokeBeforeRegisterIsSafeNoop(t *testing.T) {
	var slot AskSlot
	if slot.Registered() {
		t.Fatal("fresh slot must be empty")
	}
	if slot.Invoke("What should I work on?") {
		t.Fatal("invoking an empty slot must report false")
	}
}

func TestInvokeDelegatesExactMessage(t *testing.T) {
	var slot AskSlot
	var got []string
	slot.Register(func(message string) { got = append(got, message) })

	if !slot.Invoke("What should I work on?") {
		t.Fatal("expected invoke to report true after registration")
	}
	if len(got) != 1 || got[0] != "What should I work on?" {
		t.Fatalf("expected exactly one delegated call with the literal prompt, got %v", got)
	}
}

func TestLastRegistrationWins(t *testing.T) {
	var slot AskSlot
	first, second := 0, 0
	slot.Register(func(string) { first++ })
	slot.Register(func(string) { second++ })

	slot.Invoke("hello")
	if first != 0 || second != 1 {
		t.Fatalf("expected only the latest registration to fire, got first=%d second=%d", first, second)
	}
}

func TestRegisterNilClearsSlot(t *testing.T) {
	var slot AskSlot
	slot.Register(func(string) {})
	slot.Register(nil)
	if slot.Registered() {
		t.Fatal("nil registration must clear the slot")
	}
	if slot.Invoke("anything") {
		t.Fatal("cleared slot must be a no-op")
	}
}
