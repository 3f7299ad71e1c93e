package xrabbit

import (
	"sort"
	"strconv"
	"time"
)

// FieldKind 表示 FieldValue 携带的值类型。
type FieldKind int

const (
	// KindBool 布尔值。
	KindBool FieldKind = iota
	// KindInt64 有符号整数。
	KindInt64
	// KindFloat64 双精度浮点数。
	KindFloat64
	// KindString 字符串。
	KindString
	// KindTimestamp 时间戳。
	KindTimestamp
	// KindTable 嵌套字段表。
	KindTable
)

// String 返回 FieldKind 的可读字符串表示，用于调试和日志输出。
func (k FieldKind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindTimestamp:
		return "Timestamp"
	case KindTable:
		return "Table"
	default:
		return "FieldKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// FieldValue 是带类型标签的 AMQP 字段值。
// 用于客户端身份表等需要呈现给 Broker 的键值数据。
//
// 零值是 KindBool 的 false，可直接使用。
type FieldValue struct {
	kind     FieldKind
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	timeVal  time.Time
	tableVal FieldTable
}

// BoolValue 构造布尔字段值。
func BoolValue(v bool) FieldValue {
	return FieldValue{kind: KindBool, boolVal: v}
}

// Int64Value 构造整数字段值。
func Int64Value(v int64) FieldValue {
	return FieldValue{kind: KindInt64, intVal: v}
}

// Float64Value 构造浮点字段值。
func Float64Value(v float64) FieldValue {
	return FieldValue{kind: KindFloat64, floatVal: v}
}

// StringValue 构造字符串字段值。
func StringValue(v string) FieldValue {
	return FieldValue{kind: KindString, strVal: v}
}

// TimestampValue 构造时间戳字段值。
func TimestampValue(v time.Time) FieldValue {
	return FieldValue{kind: KindTimestamp, timeVal: v}
}

// TableValue 构造嵌套表字段值。表内容被拷贝，后续修改原表不影响字段值。
func TableValue(v FieldTable) FieldValue {
	return FieldValue{kind: KindTable, tableVal: v.Clone()}
}

// Kind 返回值类型标签。
func (v FieldValue) Kind() FieldKind {
	return v.kind
}

// Bool 返回布尔值，类型不匹配时 ok 为 false。
func (v FieldValue) Bool() (value, ok bool) {
	return v.boolVal, v.kind == KindBool
}

// Int64 返回整数值，类型不匹配时 ok 为 false。
func (v FieldValue) Int64() (int64, bool) {
	return v.intVal, v.kind == KindInt64
}

// Float64 返回浮点值，类型不匹配时 ok 为 false。
func (v FieldValue) Float64() (float64, bool) {
	return v.floatVal, v.kind == KindFloat64
}

// String 返回字符串值；类型不匹配时返回调试表示。
// 实现 fmt.Stringer，可直接用于日志输出。
func (v FieldValue) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindInt64:
		return strconv.FormatInt(v.intVal, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case KindString:
		return v.strVal
	case KindTimestamp:
		return v.timeVal.Format(time.RFC3339)
	case KindTable:
		return "table[" + strconv.Itoa(len(v.tableVal)) + "]"
	default:
		return "FieldValue(" + v.kind.String() + ")"
	}
}

// Str 返回字符串值，类型不匹配时 ok 为 false。
func (v FieldValue) Str() (string, bool) {
	return v.strVal, v.kind == KindString
}

// Timestamp 返回时间戳值，类型不匹配时 ok 为 false。
func (v FieldValue) Timestamp() (time.Time, bool) {
	return v.timeVal, v.kind == KindTimestamp
}

// Table 返回嵌套表的拷贝，类型不匹配时 ok 为 false。
func (v FieldValue) Table() (FieldTable, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	return v.tableVal.Clone(), true
}

// FieldTable 是键唯一的字段表，呈现给 Broker 的客户端身份表即为此类型。
type FieldTable map[string]FieldValue

// Clone 返回字段表的拷贝。nil 表返回非 nil 的空表。
func (t FieldTable) Clone() FieldTable {
	out := make(FieldTable, len(t))
	for name, value := range t {
		out[name] = value
	}
	return out
}

// Names 返回按字典序排序的键名列表。
func (t FieldTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
