package pkg

const (
	// number of vertices used by the random graph source
	NUM_VERTICES = 1000
	// capacity generator upper limit, weights are drawn from [1, COST_GEN_RANGE]
	COST_GEN_RANGE = 10
	// max random out-edges per vertex and attempts to place them
	MAX_RANDOM_OUT_EDGES   = 2
	MAX_RANDOM_EDGE_TRIALS = 10

	// neighbour expansion depth of the local min-cut estimator
	DEFAULT_SPREAD = 1

	// locate bumps its threshold after seeing the same minimum this many times
	LOCATE_TIE_ATTEMPTS   = 2
	MAX_LOCATE_ITERATIONS = 10000

	ROOT_VERTEX = 0

	// builder logs its progress every this many inserted vertices
	BUILD_PROGRESS_INTERVAL = 1000
)
