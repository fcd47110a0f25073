package varsubst

import (
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 选项
// ═══════════════════════════════════════════════════════════════════════════

// Options 控制扫描器识别哪些语法。
//
// 两个开关彼此独立，四种组合均受支持；同一份编译产物可以在
// 运行期覆盖全部模式，测试无需重新构建。
type Options struct {
	// Escape 开启反斜杠转义：\$ \{ \} \\ 还原为对应字面字符，
	// 反斜杠后跟其他字符时两个字符均原样保留。
	// 关闭后反斜杠是普通文本，行尾的 \ 也原样输出。
	Escape bool

	// ShortSyntax 开启短格式引用 $NAME。
	// 关闭后 $ 后跟非 { 字符时两个字符均按字面输出。
	ShortSyntax bool
}

// DefaultOptions 返回默认选项：转义开启，短格式关闭。
func DefaultOptions() Options {
	return Options{Escape: true}
}

// ═══════════════════════════════════════════════════════════════════════════
// 状态机
// ═══════════════════════════════════════════════════════════════════════════

// state 标记扫描器当前处于变量引用的哪个阶段。
// 任意时刻恰好一个状态生效，仅存续于单次扫描之内。
type state int

const (
	stateNormal   state = iota // 普通文本
	stateEscape                // 前一个字符是 \
	stateDollar                // 前一个字符是 $
	stateBraceVar              // 在 ${...} 内收集变量名
	stateShortVar              // 在裸 $ 之后收集短格式变量名
)

// scanner 保存单次替换的全部临时状态。
// 输出缓冲与名字缓冲互斥：每一步字符恰好流入其中之一。
type scanner struct {
	opts  Options
	vars  map[string]string
	out   strings.Builder
	name  strings.Builder
	state state
	start int // 当前引用起始 '$' 的字节偏移
}

func isNameStart(ch rune) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch rune) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

// step 处理一个输入字符。pos 为该字符的字节偏移。
func (s *scanner) step(ch rune, pos int) error {
	switch s.state {
	case stateNormal:
		s.stepNormal(ch, pos)

	case stateEscape:
		switch ch {
		case '$', '{', '}', '\\':
			s.out.WriteRune(ch)
		default:
			// 转义只对元字符有意义，其余场合两个字符原样保留
			s.out.WriteByte('\\')
			s.out.WriteRune(ch)
		}
		s.state = stateNormal

	case stateDollar:
		switch {
		case ch == '{':
			s.state = stateBraceVar
			s.name.Reset()
		case s.opts.ShortSyntax && isNameStart(ch):
			s.state = stateShortVar
			s.name.Reset()
			s.name.WriteRune(ch)
		default:
			// $ 后面接不上引用，两个字符均按字面输出
			s.out.WriteByte('$')
			s.out.WriteRune(ch)
			s.state = stateNormal
		}

	case stateBraceVar:
		switch {
		case ch == '}':
			if s.name.Len() == 0 {
				return &InvalidVarNameError{Offset: s.start}
			}
			s.resolveBrace()
			s.state = stateNormal
		case isNameChar(ch):
			s.name.WriteRune(ch)
		default:
			return &InvalidVarNameError{Name: s.name.String(), Offset: s.start}
		}

	case stateShortVar:
		if isNameChar(ch) {
			s.name.WriteRune(ch)

			break
		}
		// 短格式没有闭合定界符：当前字符不属于引用。
		// 先结算名字，再让同一个字符走一遍 Normal 逻辑，
		// 它可能是新引用或转义的开头，游标不能多走一格。
		s.resolveShort()
		s.state = stateNormal
		s.stepNormal(ch, pos)
	}

	return nil
}

// stepNormal 是 Normal 状态的单字符转移，
// 同时被 step 与短格式退出时的重派发复用。
func (s *scanner) stepNormal(ch rune, pos int) {
	switch {
	case s.opts.Escape && ch == '\\':
		s.state = stateEscape
	case ch == '$':
		s.state = stateDollar
		s.start = pos
	default:
		s.out.WriteRune(ch)
	}
}

// resolveBrace 结算 ${NAME}：命中则写入值，
// 未命中则原样写回整个引用（含定界符），保证逐字节无损透传。
func (s *scanner) resolveBrace() {
	name := s.name.String()
	if val, ok := s.vars[name]; ok {
		s.out.WriteString(val)

		return
	}
	s.out.WriteString("${")
	s.out.WriteString(name)
	s.out.WriteByte('}')
}

// resolveShort 结算 $NAME，未命中时同样原样写回。
// 短格式的名字不可能为空：进入 ShortVar 前已通过首字符检查。
func (s *scanner) resolveShort() {
	name := s.name.String()
	if val, ok := s.vars[name]; ok {
		s.out.WriteString(val)

		return
	}
	s.out.WriteByte('$')
	s.out.WriteString(name)
}

// finish 处理输入末尾的收尾状态。
// 只有未闭合的 ${ 是错误，行尾的 \ 和 $ 都按字面输出。
func (s *scanner) finish() error {
	switch s.state {
	case stateEscape:
		s.out.WriteByte('\\')
	case stateDollar:
		s.out.WriteByte('$')
	case stateBraceVar:
		return &UnclosedBraceError{Offset: s.start}
	case stateShortVar:
		s.resolveShort()
	}

	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 入口
// ═══════════════════════════════════════════════════════════════════════════

// Substitute 以默认选项（见 [DefaultOptions]）替换 template 中的变量引用。
//
// vars 为名字到替换值的查找表，仅被读取、不被修改，调用返回后
// 不再持有其引用。未定义的变量原样保留，不视为错误。
//
// 示例：
//
//	vars := map[string]string{"NAME": "World", "COUNT": "42"}
//	out, err := varsubst.Substitute("Hello ${NAME}! Count: ${COUNT}", vars)
//	// out == "Hello World! Count: 42"
func Substitute(template string, vars map[string]string) (string, error) {
	return SubstituteWith(template, vars, DefaultOptions())
}

// SubstituteWith 按给定选项替换 template 中的变量引用。
//
// 单遍扫描：每个输入字符恰好被访问一次，总开销与模板长度线性相关，
// 外加每个引用一次查找表访问；不回溯、不重扫。
// 输出缓冲按模板长度预分配，多数模板替换前后长度相近。
//
// 错误偏移以字节计（见 [UnclosedBraceError] 与 [InvalidVarNameError]），
// 标识符规则按 Unicode 码点判定，仅 ASCII 字母、数字、下划线合法。
func SubstituteWith(template string, vars map[string]string, opts Options) (string, error) {
	s := scanner{opts: opts, vars: vars}
	s.out.Grow(len(template))

	for i, ch := range template {
		if err := s.step(ch, i); err != nil {
			return "", err
		}
	}
	if err := s.finish(); err != nil {
		return "", err
	}

	return s.out.String(), nil
}
