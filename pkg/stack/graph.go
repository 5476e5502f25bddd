package stack

import (
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/klothoplatform/kbpipeline/pkg/provider/aws/resources"
)

type Graph = graph.Graph[resources.ResourceId, resources.Resource]

func newGraph() Graph {
	return graph.New(
		func(r resources.Resource) resources.ResourceId { return r.Id() },
		graph.Directed(),
		graph.Acyclic(),
		graph.PreventCycles(),
	)
}

func idLess(a, b resources.ResourceId) bool {
	return a.Less(b)
}

// deployOrder returns ids with every dependency before its dependents. Ties are
// broken by id so the order is the same on every run.
func deployOrder(g Graph) ([]resources.ResourceId, error) {
	return graph.StableTopologicalSort(g, idLess)
}

// teardownOrder returns ids with every dependent before its dependencies.
func teardownOrder(g Graph) ([]resources.ResourceId, error) {
	reverseLess := func(a, b resources.ResourceId) bool {
		return !idLess(b, a)
	}
	topo, err := graph.StableTopologicalSort(g, reverseLess)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(topo)/2; i++ {
		topo[i], topo[len(topo)-i-1] = topo[len(topo)-i-1], topo[i]
	}
	return topo, nil
}

func sortIds(ids []resources.ResourceId) {
	sort.Slice(ids, func(i, j int) bool { return idLess(ids[i], ids[j]) })
}
