package service

// Partition splits recipients into contiguous batches of at most size
// entries, preserving order. It returns nil when the list fits in a single
// batch, meaning no batching is needed.
func Partition(recipients []string, size int) [][]string {
	if size <= 0 || len(recipients) <= size {
		return nil
	}

	batches := make([][]string, 0, (len(recipients)+size-1)/size)
	for start := 0; start < len(recipients); start += size {
		end := min(start+size, len(recipients))
		batches = append(batches, recipients[start:end:end])
	}
	return batches
}
