package service

import "fmt"

// Interleave reorders the per-class groups for duplex A5 printing: split the
// list into a first half of ceil(N/2) entries and a second half of the rest,
// then alternate elements of both halves. Stacking and cutting the printed
// pages then keeps the class order.
//
// The output must contain exactly the input entries; anything else means
// data would be silently dropped from the printout, so fail loudly.
func Interleave[T any](items []T) ([]T, error) {
	n := len(items)
	half := (n + 1) / 2

	out := make([]T, 0, n)
	for i := 0; i < half; i++ {
		out = append(out, items[i])
		if half+i < n {
			out = append(out, items[half+i])
		}
	}

	if len(out) != n {
		return nil, fmt.Errorf("interleave produced %d entries from %d", len(out), n)
	}
	return out, nil
}
