package main

import (
	"CP-Tree/config"
	"CP-Tree/pkg/batch"
	"CP-Tree/pkg/system/sysPrint"
	"bufio"
	"flag"
	"os"
	"strconv"
)

var (
	saveConfigPath string
)

func init() {
	flag.StringVar(&config.ConfigFilePath, "configPath", config.ConfigFilePath, "yaml config file path, defaults are used when empty")
	flag.StringVar(&saveConfigPath, "saveConfig", "", "write the effective config to this path and exit")
}

func main() {
	flag.Parse()

	tc, err := config.NewTreeConfig(config.ConfigFilePath)
	if err != nil {
		sysPrint.PrintlnAndLogWriteFatalMsg(err.Error())
		os.Exit(1)
	}

	if saveConfigPath != "" {
		if err = config.WriteConfig(saveConfigPath, tc); err != nil {
			sysPrint.PrintlnErrorMsg(err.Error())
			os.Exit(1)
		}
		sysPrint.PrintlnSystemMsg("config saved to " + saveConfigPath)
		return
	}

	if tc.LogFile != "" {
		if err = sysPrint.OpenLogFile(tc.LogFile); err != nil {
			sysPrint.PrintlnErrorMsg("Failed to open log file: " + err.Error())
			os.Exit(1)
		}
		defer sysPrint.LogClose()
	}

	out := bufio.NewWriter(os.Stdout)
	res, err := batch.Run(os.Stdin, out, tc.BatchOptions())
	if err != nil {
		sysPrint.PrintlnAndLogWriteErrorMsg(err.Error())
		sysPrint.LogClose()
		os.Exit(1)
	}
	if err = out.Flush(); err != nil {
		sysPrint.PrintlnAndLogWriteErrorMsg(err.Error())
		sysPrint.LogClose()
		os.Exit(1)
	}

	msg := "records: " + strconv.Itoa(res.Records) +
		", nodes: " + strconv.Itoa(res.Nodes) +
		", stash bytes: " + strconv.Itoa(res.StashLen) +
		", queries: " + strconv.Itoa(res.Queries) +
		", hits: " + strconv.Itoa(res.Hits)
	if tc.Verbose {
		sysPrint.PrintlnAndLogWriteSystemMsg(msg)
	} else {
		sysPrint.LogWriteSystemMsg(msg)
	}
}
