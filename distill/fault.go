package distill

import "github.com/katalvlaran/chp/rng"

// classify runs the low-space distillation circuit with a Z fault injected
// on the ancilla at every phasor index in faultSet, then buckets the
// outcome the way the circuit's checks are meant to: "good" (undetected,
// correct output), "ERROR" (undetected, wrong output), "caught" (detected,
// wrong output it would have produced) or "victim" (detected, correct
// output it would have produced anyway).
func classify(src rng.Source, faultSet map[int]bool) (string, error) {
	y, checks, err := runLowSpace5(src, faultSet)
	if err != nil {
		return "", err
	}

	goodResult := !y.Value
	checksPassed := true
	for _, c := range checks {
		if c.Value {
			checksPassed = false
			break
		}
	}

	switch {
	case checksPassed && goodResult:
		return "good", nil
	case checksPassed && !goodResult:
		return "ERROR", nil
	case !checksPassed && goodResult:
		return "victim", nil
	default:
		return "caught", nil
	}
}

// FaultClassify injects every possible combination of weight simultaneous Z
// faults (one per erroring phasor) into the low-space distillation circuit
// and tallies how each combination is classified. For weight 0 this is a
// single fault-free run; for weight 1-3 it reproduces the published
// single/double/triple fault census over the circuit's seven phasors.
func FaultClassify(weight int) (map[string]int, error) {
	counts := make(map[string]int)
	for seed, combo := range combinations(7, weight) {
		faultSet := make(map[int]bool, len(combo))
		for _, e := range combo {
			faultSet[e] = true
		}
		src := rng.NewMathRand(int64(seed) + 1)
		label, err := classify(src, faultSet)
		if err != nil {
			return nil, err
		}
		counts[label]++
	}
	return counts, nil
}

// combinations returns every k-element subset of {0, ..., n-1}, each in
// increasing order, in lexicographic order. It panics if k is negative or
// greater than n, since FaultClassify's callers only ever pass fixed,
// known-valid weights.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		panic("distill: invalid combination parameters")
	}
	if k == 0 {
		return [][]int{{}}
	}

	var result [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		copy(combo, idx)
		result = append(result, combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return result
}
