package searcher

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"nogo/game"
)

const graphName = "arena"

// graph renders the arena as a directed tree, one vertex per node.
func (a *arena) graph() (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	for i := range a.nodes {
		n := &a.nodes[i]
		label := "root"
		if i > 0 {
			label = fmt.Sprintf("%s d=%d\n%d/%d %.3f", game.Coordinate(n.move), n.depth, n.wins, n.visits, n.score)
		}
		attrs := map[string]string{"label": strconv.Quote(label)}
		if err := g.AddNode(graphName, vertex(i), attrs); err != nil {
			return nil, errors.Wrapf(err, "failed to add node %d", i)
		}
		if i > 0 {
			if err := g.AddEdge(vertex(n.parent), vertex(i), true, nil); err != nil {
				return nil, errors.Wrapf(err, "failed to add edge %d->%d", n.parent, i)
			}
		}
	}
	return g, nil
}

func (a *arena) writeGraph(w io.Writer) error {
	g, err := a.graph()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return errors.Wrap(err, "failed to write graph")
}

func vertex(i int) string {
	return "n" + strconv.Itoa(i)
}
