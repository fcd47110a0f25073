// Package varsubst 提供模板字符串的变量替换。
//
// 该包以手写状态机单遍扫描输入，识别 ${NAME}（以及可选的 $NAME）
// 变量引用与转义序列，时间复杂度 O(n)，不做预分词、不使用正则、
// 不回溯。适合配置文件模板、Shell 风格文本生成等场景。
//
// # 语义说明
//
//  1. ${NAME} - 标准花括号引用（始终支持）
//  2. $NAME - 短格式引用（通过 [Options.ShortSyntax] 开启）
//  3. \$ \{ \} \\ - 转义序列（通过 [Options.Escape] 控制，默认开启）
//  4. 未定义的变量原样保留（含定界符），不视为错误
//  5. 变量名仅限 ASCII 字母、数字、下划线，且不能以数字开头
//
// 未定义变量的原样保留使模板可以分层、多遍替换：上游替换掉自己
// 认识的变量，剩余引用逐字传递给下游。是否要求"不得残留未定义
// 变量"属于调用方策略，见 cmd/render 的 --fail-on-undefined。
//
// # 错误
//
// 仅两类解析错误，均携带引用起始处的字节偏移：
//
//   - [UnclosedBraceError] - ${ 在遇到 } 之前到达输入末尾
//   - [InvalidVarNameError] - 花括号内出现非法字符，或名字为空（${}）
//
// # 快速开始
//
// 使用显式查找表：
//
//	vars := map[string]string{"NAME": "World"}
//	out, err := varsubst.Substitute("Hello ${NAME}!", vars)
//
// 使用当前进程环境变量：
//
//	out, err := varsubst.SubstituteFromEnv("home=${HOME}")
//
// 开启短格式：
//
//	opts := varsubst.Options{Escape: true, ShortSyntax: true}
//	out, err := varsubst.SubstituteWith("$USER@$HOST", vars, opts)
package varsubst
