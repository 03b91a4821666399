// Package output provides output formatting functionality for CLI commands.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Format 输出格式
type Format string

const (
	// FormatJSON JSON格式（默认）
	FormatJSON Format = "json"
	// FormatPretty 美化JSON格式
	FormatPretty Format = "pretty"
	// FormatTable 表格格式
	FormatTable Format = "table"
	// FormatText 纯文本格式
	FormatText Format = "text"
)

// ParseFormat 解析输出格式
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatPretty, FormatTable, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (json|pretty|table|text)", s)
	}
}

// Tabular 可以按行列输出的数据
type Tabular interface {
	Header() []string
	Rows() [][]string
}

// Formatter 输出格式化器
type Formatter struct {
	format    Format
	writer    io.Writer // 数据输出（JSON/表格等）
	logWriter io.Writer // 提示信息输出
	silent    bool
}

// NewFormatter 创建格式化器
func NewFormatter(format Format, writer io.Writer) *Formatter {
	if writer == nil {
		writer = os.Stdout
	}

	return &Formatter{
		format:    format,
		writer:    writer,
		logWriter: os.Stderr, // 避免污染 stdout 上的 JSON
	}
}

// SetLogWriter 设置提示信息输出目标（默认 stderr）
func (f *Formatter) SetLogWriter(writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	f.logWriter = writer
}

// SetSilent 设置静默模式
func (f *Formatter) SetSilent(silent bool) {
	f.silent = silent
}

// Print 打印输出
func (f *Formatter) Print(data interface{}) error {
	if f.silent {
		return nil
	}

	switch f.format {
	case FormatPretty:
		return f.printJSON(data, true)
	case FormatTable:
		return f.printTable(data)
	case FormatText:
		return f.printText(data)
	default:
		return f.printJSON(data, false)
	}
}

func (f *Formatter) printJSON(data interface{}, pretty bool) error {
	var out []byte
	var err error

	if pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := fmt.Fprintln(f.writer, string(out)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printTable 使用 pterm 渲染表格，无法转换为行列的数据退回到美化JSON
func (f *Formatter) printTable(data interface{}) error {
	var header []string
	var rows [][]string

	switch v := data.(type) {
	case Tabular:
		header, rows = v.Header(), v.Rows()
	case map[string]interface{}:
		header = []string{"Key", "Value"}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, []string{k, formatValue(v[k])})
		}
	case []map[string]interface{}:
		header = extractColumns(v)
		for _, row := range v {
			values := make([]string, len(header))
			for i, col := range header {
				if val, ok := row[col]; ok {
					values[i] = formatValue(val)
				} else {
					values[i] = "-"
				}
			}
			rows = append(rows, values)
		}
	default:
		return f.printJSON(data, true)
	}

	if len(rows) == 0 {
		return nil
	}

	tableData := make(pterm.TableData, 0, len(rows)+1)
	tableData = append(tableData, header)
	tableData = append(tableData, rows...)

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	if _, err := fmt.Fprintln(f.writer, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printText 优先使用 String()，否则每行以空格分隔，便于 shell 管道处理
func (f *Formatter) printText(data interface{}) error {
	if s, ok := data.(fmt.Stringer); ok {
		if _, err := fmt.Fprintln(f.writer, s.String()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if t, ok := data.(Tabular); ok {
		for _, row := range t.Rows() {
			if _, err := fmt.Fprintln(f.writer, strings.Join(row, " ")); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return nil
	}
	if _, err := fmt.Fprintf(f.writer, "%v\n", data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// PrintSuccess 打印成功消息
func (f *Formatter) PrintSuccess(message string) {
	if f.silent {
		return
	}
	_, _ = fmt.Fprintf(f.logWriter, "✅ %s\n", message)
}

// PrintError 打印错误消息
func (f *Formatter) PrintError(err error) {
	_, _ = fmt.Fprintf(f.logWriter, "❌ Error: %v\n", err)
}

// PrintWarning 打印警告消息
func (f *Formatter) PrintWarning(message string) {
	if f.silent {
		return
	}
	_, _ = fmt.Fprintf(f.logWriter, "⚠️  %s\n", message)
}

// PrintInfo 打印信息消息
func (f *Formatter) PrintInfo(message string) {
	if f.silent {
		return
	}
	_, _ = fmt.Fprintf(f.logWriter, "ℹ️  %s\n", message)
}

// formatValue 格式化值
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int, int64, uint, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case time.Duration:
		return v.String()
	case nil:
		return "-"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// extractColumns 按首次出现的顺序收集列名
func extractColumns(data []map[string]interface{}) []string {
	columnSet := make(map[string]bool)
	columns := make([]string, 0)

	for _, row := range data {
		keys := make([]string, 0, len(row))
		for key := range row {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if !columnSet[key] {
				columnSet[key] = true
				columns = append(columns, key)
			}
		}
	}

	return columns
}

// ErrorOutput 错误输出结构
type ErrorOutput struct {
	Error struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	} `json:"error"`
}

// NewErrorOutput 创建错误输出
func NewErrorOutput(code string, message string, details interface{}) *ErrorOutput {
	out := &ErrorOutput{}
	out.Error.Code = code
	out.Error.Message = message
	out.Error.Details = details
	return out
}
