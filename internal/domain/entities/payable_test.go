package entities

import "testing"

func TestPayableState_Terminal(t *testing.T) {
	cases := map[PayableState]bool{
		PayableStateAwaitingPayment: false,
		PayableStatePaid:            true,
		PayableStateFailed:          true,
		PayableStateCancelled:       true,
		PayableState("UNKNOWN"):     false,
		PayableState(""):            false,
	}
	for state, want := range cases {
		if got := state.Terminal(); got != want {
			t.Fatalf("%s.Terminal() = %t, want %t", state, got, want)
		}
	}
}
