package sysPrint

import (
	"errors"
	"log"
	"os"
)

const (
	SYSTEM = "[SYSTEM]:"
	ERROR  = "[ERROR]:"
	FATAL  = "[FATAL]"
)

var (
	ErrUnknownMatchMode    = ErrorMsg("Unknown match mode.")
	ErrUnknownOutputFormat = ErrorMsg("Unknown output format.")
	ErrBadCount            = ErrorMsg("Record count missing or invalid.")
	ErrTruncatedInput      = ErrorMsg("Input ended before all announced records were read.")
)

var (
	logFile *os.File
)

// OpenLogFile 打开（或创建）日志文件，之后的 LogWrite* 会追加写入该文件
func OpenLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

func ErrorMsg(msg string) error {
	return errors.New(ERROR + msg)
}

func logWrite(msg string) {
	if logFile == nil {
		return
	}
	log.SetOutput(logFile)
	log.Println(msg)
}

func PrintlnErrorMsg(msg string) {
	log.SetOutput(os.Stderr)
	log.Println(ERROR + msg)
}

func PrintlnAndLogWriteErrorMsg(msg string) {
	PrintlnErrorMsg(msg)
	logWrite(ERROR + msg)
}

func PrintlnSystemMsg(msg string) {
	log.SetOutput(os.Stderr)
	log.Println(SYSTEM + msg)
}

func PrintlnAndLogWriteSystemMsg(msg string) {
	PrintlnSystemMsg(msg)
	logWrite(SYSTEM + msg)
}

func LogWriteSystemMsg(msg string) {
	logWrite(SYSTEM + msg)
}

func PrintlnAndLogWriteFatalMsg(msg string) {
	log.SetOutput(os.Stderr)
	log.Println(FATAL + msg)
	logWrite(FATAL + msg)
}

func LogClose() {
	if logFile == nil {
		return
	}
	LogWriteSystemMsg("log close...")
	logFile.Close()
	logFile = nil
}
