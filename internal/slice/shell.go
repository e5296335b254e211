package slice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// splitPreserveNewlines 将 s 拆分成若干片段，换行序列 "\r\n"、"\r"、"\n" 作为单独元素保留在结果中。
// 示例 "a\r\nb\nc\r" -> ["a", "\r\n", "b", "\n", "c", "\r"]
func splitPreserveNewlines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		if ch != '\r' && ch != '\n' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
		if ch == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			parts = append(parts, "\r\n")
			i += 2
		} else {
			parts = append(parts, string(ch))
			i++
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// buildShellLiteral quotes s for POSIX shells: single quotes, with embedded
// single quotes written as '\''. Newlines need no escaping inside quotes.
func buildShellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// buildPowershellLiteral returns an expression of single-quoted pieces joined by +,
// with newlines as "`n"/"`r" pieces.
func buildPowershellLiteral(s string) string {
	if s == "" {
		return "''"
	}
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			// 单引号内双写单引号以转义
			out = append(out, "'"+strings.ReplaceAll(p, "'", "''")+"'")
		}
	}
	return strings.Join(out, " + ")
}

// buildCmdLiteral renders s for cmd.exe as double-quoted pieces with literal \r \n markers.
func buildCmdLiteral(s string) string {
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, `"\\n"`)
		case "\r":
			out = append(out, `"\\r"`)
		case "\r\n":
			out = append(out, `"\\r\\n"`)
		default:
			out = append(out, `"`+strings.ReplaceAll(p, `"`, `\"`)+`"`)
		}
	}
	return strings.Join(out, "")
}

// ExportStatement returns a statement assigning val to varName in the given
// shell. global selects the persistent form (export / setx / User scope).
func ExportStatement(shellType ShellType, varName string, val string, global bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		if global {
			return fmt.Sprintf("export %s=%s", varName, buildShellLiteral(val)), nil
		}
		return fmt.Sprintf("%s=%s", varName, buildShellLiteral(val)), nil
	case ShellTypePowershell:
		if global {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable('%s',%s,'User')",
				strings.ReplaceAll(varName, "'", "''"), buildPowershellLiteral(val)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", varName, buildPowershellLiteral(val)), nil
	case ShellTypeCmd:
		escaped := buildCmdLiteral(val)
		if global {
			return fmt.Sprintf("setx %s %s", varName, escaped), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", varName, strings.Trim(escaped, `"`)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

// decideShellType resolves ShellTypeAuto by looking at the parent processes.
func decideShellType(shellType ShellType) (ShellType, error) {
	if shellType != ShellTypeAuto {
		return shellType, nil
	}
	shellName, err := detectUserShell()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	shellName = strings.TrimSuffix(strings.ToLower(shellName), ".exe")
	switch shellName {
	case "powershell", "pwsh":
		return ShellTypePowershell, nil
	case "cmd":
		return ShellTypeCmd, nil
	default:
		return ShellTypeSh, nil
	}
}

// detectUserShell 沿父进程链查找常见 shell 名称，找不到时回退到 SHELL / COMSPEC。
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	known := []string{
		"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
		"powershell", "pwsh", "cmd",
	}

	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		exe, _ := p.Exe()
		n := strings.ToLower(name)
		if n == "" && exe != "" {
			n = strings.ToLower(filepath.Base(exe))
		}
		for _, k := range known {
			if strings.Contains(n, k) {
				if name != "" {
					return name, nil
				}
				return filepath.Base(exe), nil
			}
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	// SHELL / COMSPEC 只是默认 shell，不一定是当前实际使用的 shell
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}
