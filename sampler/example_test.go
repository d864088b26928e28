package sampler_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/intergen/probas"
	"github.com/katalvlaran/intergen/sampler"
)

// ExampleSampler_Run samples distinct dice throws until four faces were seen
// or fifty throws were wasted.
func ExampleSampler_Run() {
	die := sampler.GeneratorFunc[token](func(r *rand.Rand, _, _ int, _ probas.Profile) (token, bool) {
		return token(1 + r.Intn(6)), true
	})
	var names []string
	persist := sampler.PersisterFunc[token](func(ordinal int, t token) (string, error) {
		name := fmt.Sprintf("i%d", ordinal)
		names = append(names, name)
		return name, nil
	})

	cfg := sampler.Config{Target: 4, MaxDepth: 1, MinSymbols: 1, RetryBudget: 50, Seed: 42}
	smp, err := sampler.New[token](cfg, probas.Default(), die, persist)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := smp.Run()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.State, res.Produced, names)
	// Output:
	// succeeded 4 [i0 i1 i2 i3]
}
