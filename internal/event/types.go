// internal/event/types.go
package event

const (
	WaveSpawned     EventType = "WaveSpawned"
	StageAdvanced   EventType = "StageAdvanced"
	StagesExhausted EventType = "StagesExhausted" // stage timer fired on the last stage
	SessionEnded    EventType = "SessionEnded"
)

// WaveSpawnedData is the payload of WaveSpawned.
type WaveSpawnedData struct {
	Stage int
	Wave  int // 1-based count of waves this run
	Count int // entities created
}

// StageAdvancedData is the payload of StageAdvanced.
type StageAdvancedData struct {
	From, To int
}

// StagesExhaustedData is the payload of StagesExhausted.
type StagesExhaustedData struct {
	Stage int
}

// SessionEndedData is the payload of SessionEnded.
type SessionEndedData struct {
	Elapsed   float64
	Waves     int
	Spawned   int
	Despawned int
}
