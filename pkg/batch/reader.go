package batch

import (
	"bufio"
	"fmt"
	"io"

	"CP-Tree/pkg/system/sysPrint"
)

const maxPrealloc = 1 << 16

// readCount 读取记录条数，并跳过其后的所有空白字符（包括空行）
func readCount(r *bufio.Reader) (int, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return 0, fmt.Errorf("%w: %v", sysPrint.ErrBadCount, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", sysPrint.ErrBadCount, n)
	}
	if err := skipSpace(r); err != nil {
		return 0, err
	}
	return n, nil
}

func skipSpace(r *bufio.Reader) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch b {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		return r.UnreadByte()
	}
}

// readLine 读取一行，去掉行尾的 "\n" 与 "\r"
// 返回的切片指向 r 的内部缓冲区或 scratch，只在下一次读取前有效
// 没有换行符的最后一行同样会被返回
func readLine(r *bufio.Reader, scratch *[]byte) ([]byte, error) {
	line, err := r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		buf := append((*scratch)[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.ReadSlice('\n')
			buf = append(buf, line...)
		}
		*scratch = buf
		line = buf
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	if err == io.EOF && len(line) == 0 {
		return nil, io.EOF
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, nil
}

// forEachLine 依次读取 n 行并交给 fn 处理，line 在 fn 返回后即失效
func forEachLine(r *bufio.Reader, n int, fn func(line []byte)) error {
	var scratch []byte
	for i := 0; i < n; i++ {
		line, err := readLine(r, &scratch)
		if err == io.EOF {
			return fmt.Errorf("%w: expect %d lines, got %d", sysPrint.ErrTruncatedInput, n, i)
		}
		if err != nil {
			return err
		}
		fn(line)
	}
	return nil
}

// ReadRecords 读取一个计数块：记录条数 m，随后 m 行记录
func ReadRecords(r *bufio.Reader) ([]string, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	records := make([]string, 0, min(n, maxPrealloc))
	err = forEachLine(r, n, func(line []byte) {
		records = append(records, string(line))
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
