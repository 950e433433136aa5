package component

// GameplayOnly tags an entity as belonging to the current run. Everything
// carrying it is swept when the run ends.
type GameplayOnly struct{}
