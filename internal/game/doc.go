// Package game implements the card game War as a step-wise state
// machine: two players, a turn counter and a private RNG. Each call to
// Step plays exactly one turn and reports what happened as an ordered
// list of events, so an external driver can run a game to completion
// and observe every battle and war along the way.
package game
