package varsubst

import (
	"os"
	"strings"
)

// Environ 生成当前进程环境变量的快照。
//
// 快照生成后与进程环境互不影响。值中允许包含 '='，仅按第一个 '=' 切分。
func Environ() map[string]string {
	vars := make(map[string]string)
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) == 2 {
			vars[parts[0]] = parts[1]
		}
	}

	return vars
}

// SubstituteFromEnv 以当前进程环境变量为查找表执行替换，
// 等价于 Substitute(template, Environ())。不做任何额外校验。
func SubstituteFromEnv(template string) (string, error) {
	return Substitute(template, Environ())
}

// SubstituteFromEnvWith 是 [SubstituteFromEnv] 的带选项版本。
func SubstituteFromEnvWith(template string, opts Options) (string, error) {
	return SubstituteWith(template, Environ(), opts)
}
