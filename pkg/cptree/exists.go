package cptree

// Exists 判断 query 是否恰好终止于某个节点（而不是某条边的中途）
// Terminal 模式下该节点还必须是某条记录的结束位置
// 构建完成后 Tree 只读，可以被多个 goroutine 并发调用
func (t *Tree) Exists(query string) bool {
	c := newCursor()
	for i := 0; i < len(query); {
		if c.atNode() {
			k := t.findChild(c.nodeIndex, query[i])
			if k < 0 {
				return false
			}
			c.enterEdge(k)
			continue
		}

		e := t.edgeAt(&c)
		if query[i] != t.stash.charAt(e.span, c.offset) {
			return false
		}
		i++
		c.offset++
		if c.offset == e.length() {
			c.moveTo(e.destination)
		}
	}

	if !c.atNode() {
		return false
	}
	if t.mode == Structural {
		return true
	}
	return t.nodes[c.nodeIndex].terminal
}
