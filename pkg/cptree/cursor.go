package cptree

// cursor 遍历时的位置：要么恰好位于某个节点，要么位于该节点某条出边的中途
type cursor struct {
	nodeIndex int
	edgeIndex int // -1 表示位于节点上
	offset    int // 已匹配的边标签字符数
}

func newCursor() cursor {
	return cursor{nodeIndex: rootIndex, edgeIndex: -1}
}

func (c *cursor) atNode() bool {
	return c.edgeIndex < 0
}

func (c *cursor) enterEdge(edgeIndex int) {
	c.edgeIndex = edgeIndex
	c.offset = 0
}

func (c *cursor) moveTo(nodeIndex int) {
	c.nodeIndex = nodeIndex
	c.edgeIndex = -1
	c.offset = 0
}

// edge 返回 cursor 当前所在的边，仅在 !atNode() 时有效
func (t *Tree) edgeAt(c *cursor) *edge {
	return &t.nodes[c.nodeIndex].children[c.edgeIndex]
}
