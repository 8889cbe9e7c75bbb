package byteStringConv

import (
	"unsafe"
)

// BytesToString 注意内存安全，该方法 string 与 byte 指向同个内存地址
// 返回的 string 只能在 b 被修改或复用之前使用
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes 注意内存安全，该方法 string 与 byte 指向同个内存地址，返回值不可修改
func StringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
