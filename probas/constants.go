package probas

//-----------------------------------------------------------------------------
// Method names used to prefix errors.
//-----------------------------------------------------------------------------

const (
	methodFromPreset   = "FromPreset"
	methodFromExplicit = "FromExplicit"
	methodFromMap      = "FromMap"
	methodParse        = "ParseCategory"
	methodValidate     = "Validate"
)

//-----------------------------------------------------------------------------
// Preset names
//-----------------------------------------------------------------------------

const (
	// PresetDefault is the general purpose, non-regular preset. It is used
	// when no preset name is supplied.
	PresetDefault = "default"
	// PresetConservative favours sequencing and plain actions, and never
	// emits co-regions, interleaved loops or broadcasts.
	PresetConservative = "conservative"
	// PresetProtocolsWithCoReg favours protocol-like shapes: transmissions
	// ordered by strict/weak sequencing and co-regions.
	PresetProtocolsWithCoReg = "protocols_with_coreg"
	// PresetCustom is not a preset: Resolve routes it to FromExplicit.
	PresetCustom = "custom"
)

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

// MinWeight is the inclusive lower bound of a single category weight.
const MinWeight = 0.0

// MaxWeight is the inclusive upper bound of a single category weight.
const MaxWeight = 1.0

// Epsilon is the tolerance on |Σ weights − 1|.
const Epsilon = 1e-9
