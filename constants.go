package marcher

// Tunable rendering constants.
const (
	// MinStep is the surface threshold / ray step tolerance.
	MinStep = 1e-4

	// MaxLength is the maximum travel distance for any ray.
	MaxLength = 60

	// SecondaryOffset biases shadow and reflection ray origins off the
	// surface to avoid immediate self-intersection.
	SecondaryOffset = 10 * MinStep

	// StepLimit is the maximum number of ray-march iterations.
	StepLimit = 200

	// JobCoreMultiplierRelease is the tiles-per-core multiplier used in
	// production builds.
	JobCoreMultiplierRelease = 5

	// JobCoreMultiplierDebug is the tiles-per-core multiplier used when
	// finer-grained progress reporting is desired (more, smaller tiles).
	JobCoreMultiplierDebug = 50

	// InitialStepSize is the pixel stride a worker walks within a tile.
	// A value >1 produces a coarse block-preview pass.
	InitialStepSize = 1

	// MaxReflectionDepth is the primary-ray recursion cap.
	MaxReflectionDepth = 4

	// ShadowPenumbraK is the penumbra constant used by soft shadow rays
	// cast toward point lights.
	ShadowPenumbraK = 24
)
