package search

import "github.com/Antoniohuaman/FacturaFacil-sub001/core"

// Monitor provides hooks to observe a search pass.
// Implement this interface to track intermediate steps and results.
type Monitor interface {
	Start(query string, tokens []string, numericQuery string)
	SectionBuilt(key string, section core.SectionResult)
	Finish(state core.EngineState)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = noopMonitor{}

func (noopMonitor) Start(_ string, _ []string, _ string)        {}
func (noopMonitor) SectionBuilt(_ string, _ core.SectionResult) {}
func (noopMonitor) Finish(_ core.EngineState)                   {}
