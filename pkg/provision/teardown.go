package provision

import (
	"sync"

	"github.com/dominikbraun/graph"
)

// Resource is a kind of resource a run creates.
type Resource string

const (
	ResourceFarm        Resource = "farm"
	ResourceQueue       Resource = "queue"
	ResourceRole        Resource = "role"
	ResourceRolePolicy  Resource = "role_policy"
	ResourceFleet       Resource = "fleet"
	ResourceAssociation Resource = "queue_fleet_association"
)

// dependencies maps each resource to the resources it needs to exist first.
// The role waits for the queue: it is only created once the queue is ready, so
// it has to go before the queue on teardown.
var dependencies = map[Resource][]Resource{
	ResourceFarm:        nil,
	ResourceQueue:       {ResourceFarm},
	ResourceRole:        {ResourceQueue},
	ResourceRolePolicy:  {ResourceRole},
	ResourceFleet:       {ResourceFarm, ResourceRole, ResourceRolePolicy},
	ResourceAssociation: {ResourceQueue, ResourceFleet},
}

// creationRank breaks ties between resources that have no dependency on each other.
var creationRank = map[Resource]int{
	ResourceFarm:        0,
	ResourceQueue:       1,
	ResourceRole:        2,
	ResourceRolePolicy:  3,
	ResourceFleet:       4,
	ResourceAssociation: 5,
}

func dependencyGraph() (graph.Graph[Resource, Resource], error) {
	g := graph.New(func(r Resource) Resource { return r }, graph.Directed(), graph.PreventCycles())
	for r := range dependencies {
		if err := g.AddVertex(r); err != nil {
			return nil, err
		}
	}
	for r, deps := range dependencies {
		for _, dep := range deps {
			if err := g.AddEdge(dep, r); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

var creationOrder = sync.OnceValues(func() ([]Resource, error) {
	g, err := dependencyGraph()
	if err != nil {
		return nil, err
	}
	return graph.StableTopologicalSort(g, func(a, b Resource) bool {
		return creationRank[a] < creationRank[b]
	})
})

// CreationOrder is the order a run creates resources in.
func CreationOrder() ([]Resource, error) {
	order, err := creationOrder()
	if err != nil {
		return nil, err
	}
	return append([]Resource(nil), order...), nil
}

// TeardownOrder is CreationOrder reversed.
func TeardownOrder() ([]Resource, error) {
	order, err := CreationOrder()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
