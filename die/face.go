package die

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind 骰面取值类型
type Kind uint8

const (
	KindInvalid Kind = iota // 零值，非法骰面
	KindInt                 // 整数骰面
	KindString              // 字符串骰面
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Face 骰面（结果标签）
// 功能：整数与字符串两种取值的封闭联合类型
// 说明：Face是可比较的值类型，可直接作为map键；零值为非法骰面。
// 全序关系：整数排在字符串之前，整数按数值比较，字符串按字典序比较
type Face struct {
	kind Kind
	num  int64
	str  string
}

// IntFace 创建整数骰面
func IntFace(v int64) Face {
	return Face{kind: KindInt, num: v}
}

// StringFace 创建字符串骰面
func StringFace(s string) Face {
	return Face{kind: KindString, str: s}
}

// IntFaces 批量创建整数骰面
func IntFaces(values ...int) []Face {
	faces := make([]Face, len(values))
	for i, v := range values {
		faces[i] = IntFace(int64(v))
	}
	return faces
}

// StringFaces 批量创建字符串骰面
func StringFaces(values ...string) []Face {
	faces := make([]Face, len(values))
	for i, v := range values {
		faces[i] = StringFace(v)
	}
	return faces
}

func (f Face) Kind() Kind {
	return f.kind
}

func (f Face) IsValid() bool {
	return f.kind == KindInt || f.kind == KindString
}

// Int 获取整数值，非整数骰面返回false
func (f Face) Int() (int64, bool) {
	return f.num, f.kind == KindInt
}

// Str 获取字符串值，非字符串骰面返回false
func (f Face) Str() (string, bool) {
	return f.str, f.kind == KindString
}

func (f Face) String() string {
	switch f.kind {
	case KindInt:
		return strconv.FormatInt(f.num, 10)
	case KindString:
		return f.str
	default:
		return "<invalid>"
	}
}

// Compare 比较两个骰面，返回-1、0、1
func (f Face) Compare(o Face) int {
	if f.kind != o.kind {
		if f.kind < o.kind {
			return -1
		}
		return 1
	}
	switch f.kind {
	case KindInt:
		switch {
		case f.num < o.num:
			return -1
		case f.num > o.num:
			return 1
		}
		return 0
	case KindString:
		return strings.Compare(f.str, o.str)
	}
	return 0
}

// CompareFaces 按字典序比较两组骰面
// 说明：逐项比较，前缀较短者更小
func CompareFaces(a, b []Face) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// ParseFace 将动态类型的值转换为骰面
// 功能：接受Go的整数类型与字符串，其余类型一律拒绝
// 参数：v-待转换的值（通常来自YAML解码）
// 返回：骰面、错误信息（ErrInvalidType）
func ParseFace(v any) (Face, error) {
	switch x := v.(type) {
	case Face:
		if !x.IsValid() {
			return Face{}, fmt.Errorf("%w: zero face", ErrInvalidType)
		}
		return x, nil
	case string:
		return StringFace(x), nil
	case int:
		return IntFace(int64(x)), nil
	case int8:
		return IntFace(int64(x)), nil
	case int16:
		return IntFace(int64(x)), nil
	case int32:
		return IntFace(int64(x)), nil
	case int64:
		return IntFace(x), nil
	case uint:
		return parseUint(uint64(x))
	case uint8:
		return IntFace(int64(x)), nil
	case uint16:
		return IntFace(int64(x)), nil
	case uint32:
		return IntFace(int64(x)), nil
	case uint64:
		return parseUint(x)
	}
	return Face{}, fmt.Errorf("%w: face %v of type %T", ErrInvalidType, v, v)
}

func parseUint(x uint64) (Face, error) {
	if x > math.MaxInt64 {
		return Face{}, fmt.Errorf("%w: face %d overflows int64", ErrInvalidType, x)
	}
	return IntFace(int64(x)), nil
}

// ParseFaces 批量转换骰面，要求所有骰面类型一致
func ParseFaces(values []any) ([]Face, error) {
	faces := make([]Face, len(values))
	for i, v := range values {
		f, err := ParseFace(v)
		if err != nil {
			return nil, fmt.Errorf("face[%d]: %w", i, err)
		}
		faces[i] = f
	}
	if err := checkHomogeneous(faces); err != nil {
		return nil, err
	}
	return faces, nil
}

// checkHomogeneous 检查骰面合法且类型一致
func checkHomogeneous(faces []Face) error {
	for i, f := range faces {
		if !f.IsValid() {
			return fmt.Errorf("%w: face[%d] is the zero face", ErrInvalidType, i)
		}
		if f.kind != faces[0].kind {
			return fmt.Errorf("%w: face[%d] is %v, want %v", ErrInvalidType, i, f.kind, faces[0].kind)
		}
	}
	return nil
}
