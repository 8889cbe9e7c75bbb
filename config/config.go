package config

import (
	"CP-Tree/pkg/batch"
	"CP-Tree/pkg/cptree"
	"CP-Tree/pkg/system/sysPrint"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

const (
	defaultMatchMode        = cptree.Terminal
	defaultSplitOnRecordEnd = false
	defaultOutputFormat     = batch.Numeric
	defaultSeparator        = batch.DefaultSeparator
	defaultLogFile          = ""
	defaultVerbose          = false
)

var (
	// ConfigFilePath 为空时使用默认配置，不读写任何文件
	ConfigFilePath string
)

type TreeConfig struct {
	MatchMode        cptree.MatchMode   `yaml:"match-mode"`          // terminal / structural
	SplitOnRecordEnd bool               `yaml:"split-on-record-end"` // 记录在边中途结束时是否分裂该边
	OutputFormat     batch.OutputFormat `yaml:"output-format"`       // numeric / word
	Separator        string             `yaml:"separator"`           // 查询结果之间的分隔符
	LogFile          string             `yaml:"log-file,omitempty"`  // 日志文件路径，留空则只输出到 stderr
	Verbose          bool               `yaml:"verbose"`             // 是否输出构建统计信息
}

func init() {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		if args[i] == "-configPath" && i+1 < len(args) {
			ConfigFilePath = args[i+1]
			break
		}
	}
}

func defaultConfig() *TreeConfig {
	return &TreeConfig{
		MatchMode:        defaultMatchMode,
		SplitOnRecordEnd: defaultSplitOnRecordEnd,
		OutputFormat:     defaultOutputFormat,
		Separator:        defaultSeparator,
		LogFile:          defaultLogFile,
		Verbose:          defaultVerbose,
	}
}

// NewTreeConfig 读取 path 指定的配置文件
// path 为空时返回默认配置；文件不存在时写入一份默认配置并返回
func NewTreeConfig(path string) (*TreeConfig, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.Create(path)
		if err != nil {
			sysPrint.PrintlnSystemMsg("Failed to create config file: " + err.Error())
			return nil, err
		}
		defer file.Close()
		return createDefaultConfig(file)
	}

	file, err := os.Open(path)
	if err != nil {
		sysPrint.PrintlnSystemMsg("Failed to open config file: " + err.Error())
		return nil, err
	}
	defer file.Close()
	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	// 未出现在文件中的字段保持默认值
	tc := defaultConfig()
	if err = yaml.Unmarshal(buf, tc); err != nil {
		return nil, err
	}
	if err = tc.validate(); err != nil {
		return nil, err
	}
	return tc, nil
}

func createDefaultConfig(file *os.File) (*TreeConfig, error) {
	tc := defaultConfig()
	yamlData, err := yaml.Marshal(tc)
	if err != nil {
		return nil, err
	}
	if _, err = file.Seek(0, 0); err != nil {
		return nil, err
	}
	if _, err = file.Write(yamlData); err != nil {
		return nil, err
	}
	return tc, nil
}

func (tc *TreeConfig) validate() error {
	if _, err := cptree.ParseMatchMode(string(tc.MatchMode)); err != nil {
		return err
	}
	if _, err := batch.ParseOutputFormat(string(tc.OutputFormat)); err != nil {
		return err
	}
	return nil
}

// TreeOptions 将配置转换为构建前缀树的选项
func (tc *TreeConfig) TreeOptions() []cptree.Option {
	opts := []cptree.Option{cptree.WithMatchMode(tc.MatchMode)}
	if tc.SplitOnRecordEnd {
		opts = append(opts, cptree.WithSplitOnRecordEnd())
	}
	return opts
}

// BatchOptions 将配置转换为批处理选项
func (tc *TreeConfig) BatchOptions() batch.Options {
	return batch.Options{
		TreeOptions:  tc.TreeOptions(),
		OutputFormat: tc.OutputFormat,
		Separator:    tc.Separator,
	}
}

// WriteConfig 将 tc 写入 path
func WriteConfig(path string, tc *TreeConfig) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	yamlData, err := yaml.Marshal(tc)
	if err != nil {
		return err
	}
	_, err = file.Write(yamlData)
	return err
}
