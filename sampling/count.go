package sampling

// CountLabels returns how often each label value occurs at labelCol.
// It fails with ErrInvalidColumn if labelCol is out of range for any sample
// and with ErrUnhashableLabel if a label cannot be used as a map key.
//
// Complexity: O(n) time, O(k) memory (k = number of labels).
func CountLabels(samples []Sample, labelCol int) (LabelCounts, error) {
	counts := make(LabelCounts)
	for i, s := range samples {
		label, err := labelOf(s, i, labelCol)
		if err != nil {
			return nil, err
		}
		counts[label]++
	}
	return counts, nil
}
