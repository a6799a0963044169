package search

import (
	"github.com/poiesic/prodsearch/core"
)

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to inspect raw similarities, including items
// that fall below the threshold.
type RankMonitor interface {
	Start(query string)
	AfterQueryEmbedding(dimension int)
	Kept(product core.Product, raw float64)
	Discarded(product core.Product, raw float64)
	Finish(results []core.RankedResult)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) AfterQueryEmbedding(_ int)           {}
func (n *noopMonitor) Kept(_ core.Product, _ float64)      {}
func (n *noopMonitor) Discarded(_ core.Product, _ float64) {}
func (n *noopMonitor) Finish(_ []core.RankedResult)        {}
