package cptree

// span 边标签在 stash 中的区间 [left, right)
type span struct {
	left  int
	right int
}

func (s span) length() int {
	return s.right - s.left
}

// stash 所有边标签共享的字符缓冲区，只追加，不修改
// span 记录的是整数下标，缓冲区扩容后依然有效
type stash struct {
	buf []byte
}

// append 将 text 追加到缓冲区末尾，返回其所占区间
func (st *stash) append(text string) span {
	left := len(st.buf)
	st.buf = append(st.buf, text...)
	return span{left: left, right: len(st.buf)}
}

// charAt 返回 s 区间内第 offset 个字符
func (st *stash) charAt(s span, offset int) byte {
	return st.buf[s.left+offset]
}

func (st *stash) label(s span) string {
	return string(st.buf[s.left:s.right])
}

func (st *stash) len() int {
	return len(st.buf)
}
