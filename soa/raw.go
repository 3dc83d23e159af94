package soa

// RawBuffer is a non-owning view over one array of a larger allocation.
// It is valid only while the allocation it was carved from is alive.
type RawBuffer[T any] []T

// Len returns the number of elements in the view.
func (b RawBuffer[T]) Len() int { return len(b) }

// At returns a pointer to element i.
func (b RawBuffer[T]) At(i int) *T { return &b[i] }

// CopyTo copies min(b.Len(), dst.Len()) elements into dst and returns the
// number copied.
func (b RawBuffer[T]) CopyTo(dst RawBuffer[T]) int {
	return copy(dst, b)
}

// CopyToFill copies like CopyTo and sets every element of dst past the copied
// prefix to fill. Used when an array is resized and the new tail must start in
// a known state.
func (b RawBuffer[T]) CopyToFill(dst RawBuffer[T], fill T) int {
	n := copy(dst, b)
	for i := n; i < len(dst); i++ {
		dst[i] = fill
	}
	return n
}

// Fill sets every element to v.
func (b RawBuffer[T]) Fill(v T) {
	for i := range b {
		b[i] = v
	}
}
