package probas

// presetWeights returns the weights of a named preset. The table is a switch
// rather than a package map so nothing can mutate a preset at run time.
func presetWeights(name string) (Weights, bool) {
	switch name {
	case PresetDefault:
		return Weights{
			Empty:           0.10,
			Action:          0.10,
			Strict:          0.05,
			Sequence:        0.15,
			CoRegion:        0.05,
			Parallel:        0.15,
			LoopStrict:      0.05,
			LoopWeak:        0.05,
			LoopInterleaved: 0.05,
			Alternative:     0.10,
			Transmission:    0.10,
			Broadcast:       0.05,
		}, true
	case PresetConservative:
		return Weights{
			Empty:        0.05,
			Action:       0.20,
			Strict:       0.10,
			Sequence:     0.25,
			Parallel:     0.10,
			LoopStrict:   0.05,
			LoopWeak:     0.05,
			Alternative:  0.10,
			Transmission: 0.10,
		}, true
	case PresetProtocolsWithCoReg:
		return Weights{
			Empty:        0.05,
			Action:       0.05,
			Strict:       0.15,
			Sequence:     0.15,
			CoRegion:     0.15,
			Parallel:     0.05,
			LoopStrict:   0.05,
			LoopWeak:     0.05,
			Alternative:  0.10,
			Transmission: 0.15,
			Broadcast:    0.05,
		}, true
	default:
		return Weights{}, false
	}
}

// Presets lists the names accepted by FromPreset, in a stable order.
func Presets() []string {
	return []string{PresetDefault, PresetConservative, PresetProtocolsWithCoReg}
}

// Default returns the PresetDefault profile.
func Default() Profile {
	w, _ := presetWeights(PresetDefault)
	return Profile{name: PresetDefault, weights: w.vector()}
}
