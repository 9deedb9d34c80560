package searcher

import "isolation/game"

// Defaults for agents built without options

const DefaultSearchDepth = 3

// Milliseconds left on the clock at which a search gives up
const DefaultTimeout = 10.0

var DefaultEvaluator game.Evaluator = game.CustomScore
