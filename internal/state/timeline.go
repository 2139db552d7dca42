package state

import "fmt"

// Timeline geometry, in pixels.
const (
	timelineLabelWidth  = 119
	timelineLeftPadding = 14
	timelineTopPadding  = 14
	timelineLaneHeight  = 29
	timelineStepX       = 37
	timelineNodeRadius  = 5
)

var laneColors = []string{"#667eea", "#48bb78", "#ed8936", "#805ad5", "#38b2ac", "#e53e3e"}

// Timeline is the layout of the commit graph: one horizontal lane per branch,
// one column per commit in insertion order.
type Timeline struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Lanes  []TimelineLane `json:"lanes"`
	Nodes  []TimelineNode `json:"nodes"`
	Edges  []TimelineEdge `json:"edges"`
}

type TimelineLane struct {
	Branch  string  `json:"branch"`
	Y       float64 `json:"y"`
	Color   string  `json:"color"`
	Current bool    `json:"current"`
}

type TimelineNode struct {
	Hash   string   `json:"hash"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Radius float64  `json:"radius"`
	Color  string   `json:"color"`
	Labels []string `json:"labels,omitempty"`
}

// Edge kinds.
const (
	EdgeLane  = "lane"
	EdgeSplit = "split"
	EdgeMerge = "merge"
)

type TimelineEdge struct {
	Kind  string `json:"kind"`
	Path  string `json:"path"`
	Color string `json:"color,omitempty"`
}

// Timeline derives the graph layout from the current state. Nothing about the
// layout is stored between calls.
func (r *Repository) Timeline() Timeline {
	laneY := make(map[string]float64, len(r.branches))
	laneColor := make(map[string]string, len(r.branches))
	t := Timeline{
		Lanes: make([]TimelineLane, 0, len(r.branches)),
		Nodes: make([]TimelineNode, 0, len(r.commits)),
		Edges: []TimelineEdge{},
	}
	for i, b := range r.branches {
		y := float64(timelineTopPadding + i*timelineLaneHeight)
		color := laneColors[i%len(laneColors)]
		laneY[b] = y
		laneColor[b] = color
		t.Lanes = append(t.Lanes, TimelineLane{Branch: b, Y: y, Color: color, Current: b == r.currentBranch})
	}

	commitX := make(map[string]float64, len(r.commits))
	commitY := make(map[string]float64, len(r.commits))
	for i, c := range r.commits {
		commitX[c.Hash] = float64(timelineLabelWidth + timelineLeftPadding + i*timelineStepX)
		y, ok := laneY[c.Branch]
		if !ok {
			y = timelineTopPadding
		}
		commitY[c.Hash] = y
	}

	t.Width = float64(timelineLabelWidth + 2*timelineLeftPadding + max(1, len(r.commits)-1)*timelineStepX + timelineStepX)
	t.Height = float64(2*timelineTopPadding + max(1, len(r.branches))*timelineLaneHeight)

	for _, b := range r.branches {
		y := laneY[b]

		base, parent := r.branchBases[b], r.branchParents[b]
		if b != DefaultBranch && base != "" && parent != "" {
			x, okX := commitX[base]
			parentY, okY := laneY[parent]
			if okX && okY {
				t.Edges = append(t.Edges, TimelineEdge{
					Kind: EdgeSplit,
					Path: fmt.Sprintf("M %g %g C %g %g, %g %g, %g %g", x, parentY, x, parentY+9, x, y-9, x, y),
				})
			}
		}

		reachable := r.Reachable(r.branchHeads[b])
		var prev string
		for _, c := range r.commits {
			if _, ok := reachable[c.Hash]; !ok || c.Branch != b {
				continue
			}
			if prev != "" {
				t.Edges = append(t.Edges, TimelineEdge{
					Kind:  EdgeLane,
					Path:  fmt.Sprintf("M %g %g L %g %g", commitX[prev], y, commitX[c.Hash], y),
					Color: laneColor[b],
				})
			}
			prev = c.Hash
		}
	}

	currentHead := r.CurrentHead()
	for _, c := range r.commits {
		x, y := commitX[c.Hash], commitY[c.Hash]
		color, ok := laneColor[c.Branch]
		if !ok {
			color = laneColors[0]
		}
		node := TimelineNode{Hash: c.Hash, X: x, Y: y, Radius: timelineNodeRadius, Color: color}

		if len(c.Parents) > 1 {
			other := c.Parents[1]
			px, okX := commitX[other]
			py, okY := commitY[other]
			if okX && okY {
				mid := (px + x) / 2
				t.Edges = append(t.Edges, TimelineEdge{
					Kind: EdgeMerge,
					Path: fmt.Sprintf("M %g %g C %g %g, %g %g, %g %g", px, py, mid, py, mid, y, x, y),
				})
			}
		}

		if currentHead == c.Hash {
			node.Labels = append(node.Labels, "HEAD")
		}
		if remote := r.remoteHeads[RemoteRef(DefaultRemote, c.Branch)]; remote != "" && remote == c.Hash {
			node.Labels = append(node.Labels, "REMOTE")
		}
		t.Nodes = append(t.Nodes, node)
	}
	return t
}
