package game

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/montecarlo-sim/die"
)

// Table 表格形式的投掷结果
type Table interface {
	Shape() (rows, cols int) // 行数、列数
	Columns() []string       // 列名
}

// Results 宽表：行为投掷序号，列为骰子序号，单元格为该骰子在该轮投出的骰面
// 说明：这是投掷结果唯一的规范存储，窄表由Narrow按需生成
type Results struct {
	rows [][]die.Face
	cols int
}

// newResults 由按骰子组织的列构造宽表，要求所有列等长
func newResults(columns [][]die.Face) *Results {
	if len(columns) == 0 {
		return &Results{}
	}
	rolls := len(columns[0])
	rows := make([][]die.Face, rolls)
	for i := range rows {
		rows[i] = lo.Map(columns, func(col []die.Face, _ int) die.Face {
			return col[i]
		})
	}
	return &Results{rows: rows, cols: len(columns)}
}

// NewResults 由行构造宽表（行被复制）
// 说明：所有行必须等长，供分析器与测试直接构造结果
func NewResults(rows [][]die.Face) *Results {
	r := &Results{rows: make([][]die.Face, len(rows))}
	for i, row := range rows {
		r.rows[i] = append([]die.Face(nil), row...)
	}
	if len(rows) > 0 {
		r.cols = len(rows[0])
	}
	return r
}

func (r *Results) Shape() (int, int) {
	return len(r.rows), r.cols
}

// Columns 列名为骰子序号
func (r *Results) Columns() []string {
	return lo.Times(r.cols, strconv.Itoa)
}

// At 第roll轮第dice个骰子的骰面
func (r *Results) At(roll, dice int) die.Face {
	return r.rows[roll][dice]
}

// Row 第i轮所有骰子的骰面（副本）
func (r *Results) Row(i int) []die.Face {
	return append([]die.Face(nil), r.rows[i]...)
}

// Column 第j个骰子所有轮次的骰面（副本）
func (r *Results) Column(j int) []die.Face {
	return lo.Map(r.rows, func(row []die.Face, _ int) die.Face {
		return row[j]
	})
}

// Rows 全部行的深拷贝
func (r *Results) Rows() [][]die.Face {
	return lo.Map(r.rows, func(row []die.Face, _ int) []die.Face {
		return append([]die.Face(nil), row...)
	})
}

// Clone 深拷贝
func (r *Results) Clone() *Results {
	return &Results{rows: r.Rows(), cols: r.cols}
}

// Record 窄表的一行
type Record struct {
	Roll int      // 投掷序号
	Die  int      // 骰子序号
	Face die.Face // 骰面
}

// Narrow 窄表：每个(投掷, 骰子)一行
type Narrow []Record

func (n Narrow) Shape() (int, int) {
	return len(n), 3
}

func (n Narrow) Columns() []string {
	return []string{"roll", "die", "face"}
}

// Narrow 将宽表逆透视为窄表
// 算法说明：外层按投掷序号、内层按骰子序号遍历，与宽表的行优先布局一致
func (r *Results) Narrow() Narrow {
	records := make(Narrow, 0, len(r.rows)*r.cols)
	for i, row := range r.rows {
		for j, f := range row {
			records = append(records, Record{Roll: i, Die: j, Face: f})
		}
	}
	return records
}
