package engine

const (
	SemanticBlend      = 0.4
	DeterministicBlend = 1.5
)

// Merge blends the calibrated and extracted vectors over the union of their
// traits: semantic*0.4 + deterministic*1.5. Negative inputs count as 0.
func Merge(deterministic, semantic Vector) Vector {
	out := make(Vector, len(deterministic)+len(semantic))
	for trait := range deterministic {
		out[trait] = 0
	}
	for trait := range semantic {
		out[trait] = 0
	}
	for trait := range out {
		out[trait] = nonNegative(semantic[trait])*SemanticBlend +
			nonNegative(deterministic[trait])*DeterministicBlend
	}
	return out
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
