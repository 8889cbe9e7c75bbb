package batch

import (
	"bufio"
	"io"
	"strings"

	"CP-Tree/pkg/cptree"
	"CP-Tree/pkg/system/sysPrint"
	"CP-Tree/pkg/utils/byteStringConv"
)

type OutputFormat string

const (
	Numeric OutputFormat = "numeric" // 1 / 0
	Word    OutputFormat = "word"    // true / false
)

const (
	DefaultSeparator = " "
	readBufferSize   = 64 * 1024
)

// ParseOutputFormat 将配置中的字符串转换为 OutputFormat
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch OutputFormat(name) {
	case Numeric:
		return Numeric, nil
	case Word:
		return Word, nil
	default:
		return "", sysPrint.ErrUnknownOutputFormat
	}
}

func (f OutputFormat) text(ok bool) string {
	if f == Word {
		if ok {
			return "true"
		}
		return "false"
	}
	if ok {
		return "1"
	}
	return "0"
}

type Options struct {
	TreeOptions  []cptree.Option
	OutputFormat OutputFormat
	Separator    string
}

// Result 一次批处理的统计信息
type Result struct {
	Records  int
	Queries  int
	Hits     int
	Nodes    int
	StashLen int
}

// Run 从 in 读取字典与查询，构建前缀树并逐条查询，
// 所有结果以 Separator 分隔写成 out 的最后一行
func Run(in io.Reader, out io.Writer, opts Options) (Result, error) {
	var res Result
	if opts.OutputFormat == "" {
		opts.OutputFormat = Numeric
	}
	if _, err := ParseOutputFormat(string(opts.OutputFormat)); err != nil {
		return res, err
	}
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	r := bufio.NewReaderSize(in, readBufferSize)
	dictionary, err := ReadRecords(r)
	if err != nil {
		return res, err
	}
	tree := cptree.New(dictionary, opts.TreeOptions...)
	res.Records = len(dictionary)
	res.Nodes = tree.NodeCount()
	res.StashLen = tree.StashLen()

	q, err := readCount(r)
	if err != nil {
		return res, err
	}

	builder := strings.Builder{}
	err = forEachLine(r, q, func(line []byte) {
		// Exists 不保留 query，可以直接引用读缓冲区
		ok := tree.Exists(byteStringConv.BytesToString(line))
		if res.Queries > 0 {
			builder.WriteString(opts.Separator)
		}
		builder.WriteString(opts.OutputFormat.text(ok))
		res.Queries++
		if ok {
			res.Hits++
		}
	})
	if err != nil {
		return res, err
	}
	builder.WriteByte('\n')

	_, err = out.Write(byteStringConv.StringToBytes(builder.String()))
	return res, err
}
