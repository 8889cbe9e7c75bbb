package cptree

import (
	"CP-Tree/pkg/system/sysPrint"
)

type MatchMode string

const (
	// Terminal 查询必须停在某条记录结束的节点上
	Terminal MatchMode = "terminal"
	// Structural 查询停在任意节点上即可（包括分裂产生的分支节点）
	Structural MatchMode = "structural"
)

const rootIndex = 0

// ParseMatchMode 将配置中的字符串转换为 MatchMode
func ParseMatchMode(name string) (MatchMode, error) {
	switch MatchMode(name) {
	case Terminal:
		return Terminal, nil
	case Structural:
		return Structural, nil
	default:
		return "", sysPrint.ErrUnknownMatchMode
	}
}

type edge struct {
	destination int
	span
}

type node struct {
	children []edge // 无序，但同一节点下各边首字符互不相同
	terminal bool   // 是否有记录恰好在此结束
}

// Tree 压缩前缀树
// nodes[0] 为根节点，节点之间通过下标引用；边标签保存在共享的 stash 中
type Tree struct {
	nodes      []node
	stash      stash
	mode       MatchMode
	splitOnEnd bool
}

type Option func(*Tree)

// WithMatchMode 设置 Exists 的匹配方式，默认为 Terminal
func WithMatchMode(mode MatchMode) Option {
	return func(t *Tree) {
		t.mode = mode
	}
}

// WithSplitOnRecordEnd 记录在某条边中途结束时，在结束位置分裂该边，
// 使每条插入的记录都对应一个节点
func WithSplitOnRecordEnd() Option {
	return func(t *Tree) {
		t.splitOnEnd = true
	}
}

// New 通过 dictionary 构建前缀树，构建完成后只读
func New(dictionary []string, opts ...Option) *Tree {
	t := &Tree{
		nodes: make([]node, 1, len(dictionary)*2+1),
		mode:  Terminal,
	}
	t.nodes[rootIndex].terminal = true
	for _, opt := range opts {
		opt(t)
	}
	for _, record := range dictionary {
		t.insert(record)
	}
	return t
}

// newNode 在 arena 末尾追加一个节点并返回其下标
// 注意：会使之前取得的 *node / *edge 失效
func (t *Tree) newNode(terminal bool) int {
	index := len(t.nodes)
	t.nodes = append(t.nodes, node{terminal: terminal})
	return index
}

// findChild 返回 nodeIndex 下首字符为 c 的边的下标，不存在时返回 -1
func (t *Tree) findChild(nodeIndex int, c byte) int {
	for i, e := range t.nodes[nodeIndex].children {
		if t.stash.charAt(e.span, 0) == c {
			return i
		}
	}
	return -1
}

func (t *Tree) Mode() MatchMode {
	return t.mode
}

func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

func (t *Tree) EdgeCount() int {
	// 除根节点外每个节点恰有一条入边
	return len(t.nodes) - 1
}

func (t *Tree) StashLen() int {
	return t.stash.len()
}
