package varsubst

import "fmt"

// UnclosedBraceError 表示一个 ${ 引用在遇到 } 之前到达了输入末尾。
//
// Offset 为该引用起始 '$' 的字节偏移。
type UnclosedBraceError struct {
	Offset int
}

func (e *UnclosedBraceError) Error() string {
	return fmt.Sprintf("varsubst: unclosed brace at position %d", e.Offset)
}

// InvalidVarNameError 表示花括号引用内的变量名非法：
// 名字为空（${}），或名字中出现了标识符字母表之外的字符。
//
// Name 为出错前已收集到的名字片段（可能为空），
// Offset 为该引用起始 '$' 的字节偏移。
type InvalidVarNameError struct {
	Name   string
	Offset int
}

func (e *InvalidVarNameError) Error() string {
	return fmt.Sprintf("varsubst: invalid variable name %q at position %d", e.Name, e.Offset)
}
