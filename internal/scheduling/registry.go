package scheduling

// algorithms is the fixed, ordered strategy table. The registry holds no
// state; each engine invocation is fully self-contained.
var algorithms = []Algorithm{
	greedyFirstAvailable{},
	balancedLoad{},
	roundRobin{},
	batchScheduler{},
}

// Algorithms returns the registered strategies in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Get resolves a strategy by identifier.
func Get(id string) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}
