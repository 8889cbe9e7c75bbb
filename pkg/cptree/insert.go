package cptree

// insert 插入一条记录
// 逐字符推进 cursor：在节点上时选择出边（不消耗字符），在边上时逐个比较字符，
// 标签中途不匹配则分裂该边，走出树外则把剩余后缀作为一条新边挂到当前节点
func (t *Tree) insert(record string) {
	c := newCursor()
	for i := 0; i < len(record); {
		ch := record[i]
		if c.atNode() {
			k := t.findChild(c.nodeIndex, ch)
			if k < 0 {
				t.attachLeaf(c.nodeIndex, record[i:])
				return
			}
			// 在进入的边上重新检查同一个字符
			c.enterEdge(k)
			continue
		}

		e := t.edgeAt(&c)
		if ch == t.stash.charAt(e.span, c.offset) {
			i++
			c.offset++
			if c.offset == e.length() {
				c.moveTo(e.destination)
			}
			continue
		}

		// 首字符已由 findChild 保证匹配，这里 c.offset > 0
		mid := t.splitEdge(c.nodeIndex, c.edgeIndex, c.offset, false)
		c.moveTo(mid)
	}

	if c.atNode() {
		t.nodes[c.nodeIndex].terminal = true
		return
	}
	if t.splitOnEnd {
		t.splitEdge(c.nodeIndex, c.edgeIndex, c.offset, true)
	}
}

// attachLeaf 将 suffix 写入 stash，并从 parent 连一条指向新叶子节点的边
func (t *Tree) attachLeaf(parent int, suffix string) {
	leaf := t.newNode(true)
	s := t.stash.append(suffix)
	p := &t.nodes[parent]
	p.children = append(p.children, edge{destination: leaf, span: s})
}

// splitEdge 将 parent 的第 edgeIndex 条边在 k 处分裂：
// [left, left+k) 指向新的中间节点，中间节点再以 [left+k, right) 指向原目标节点
// 返回中间节点下标
func (t *Tree) splitEdge(parent int, edgeIndex int, k int, terminal bool) int {
	mid := t.newNode(terminal)

	// newNode 可能导致 nodes 重新分配，必须在其之后再取边
	e := &t.nodes[parent].children[edgeIndex]
	lower := edge{
		destination: e.destination,
		span:        span{left: e.left + k, right: e.right},
	}
	e.right = e.left + k
	e.destination = mid

	m := &t.nodes[mid]
	m.children = append(m.children, lower)
	return mid
}
